package quest

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	"golang.org/x/xerrors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore collection names.
const (
	collEvents       = "Events"
	collUsers        = "Users"
	collTierConfigs  = "TierConfigs"
	collLeads        = "Leads"
	collSystemConfig = "SystemConfig"

	systemConfigDoc = "global"
)

// FirestoreStore is the live persistence backend.
type FirestoreStore struct {
	Client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{Client: client}
}

func (s *FirestoreStore) GetAll(ctx context.Context, ownerID string, includePrivate bool) ([]EventConfiguration, error) {
	iter := s.Client.Collection(collEvents).Documents(ctx)
	defer iter.Stop()

	var events []EventConfiguration
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, xerrors.Errorf("list events: %w", err)
		}

		var event EventConfiguration
		if err := doc.DataTo(&event); err != nil {
			log.Printf("Failed to decode event document %s: %v\n", doc.Ref.ID, err)
			continue
		}
		if eventVisible(event, ownerID, includePrivate) {
			events = append(events, event)
		}
	}
	return events, nil
}

func (s *FirestoreStore) Get(ctx context.Context, id string) (*EventConfiguration, error) {
	doc, err := s.Client.Collection(collEvents).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, xerrors.Errorf("get event %s: %w", id, err)
	}

	var event EventConfiguration
	if err := doc.DataTo(&event); err != nil {
		return nil, xerrors.Errorf("decode event %s: %w", id, err)
	}
	return &event, nil
}

func (s *FirestoreStore) Save(ctx context.Context, event EventConfiguration) error {
	_, err := s.Client.Collection(collEvents).Doc(event.ID).Set(ctx, event)
	if err != nil {
		return xerrors.Errorf("save event %s: %w", event.ID, err)
	}
	return nil
}

func (s *FirestoreStore) Delete(ctx context.Context, id string) error {
	_, err := s.Client.Collection(collEvents).Doc(id).Delete(ctx)
	if err != nil {
		return xerrors.Errorf("delete event %s: %w", id, err)
	}
	return nil
}

func (s *FirestoreStore) AppendResult(ctx context.Context, eventID string, result Result) error {
	docRef := s.Client.Collection(collEvents).Doc(eventID)

	err := s.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			return err
		}

		var event EventConfiguration
		if err := doc.DataTo(&event); err != nil {
			return err
		}

		event.Results = append(event.Results, result)
		event.ParticipantIDs = AddParticipant(event.ParticipantIDs, result.ParticipantID)

		return tx.Set(docRef, event)
	})
	if err != nil {
		return xerrors.Errorf("append result to event %s: %w", eventID, err)
	}
	return nil
}

func (s *FirestoreStore) GetParticipated(ctx context.Context, userID string) ([]EventConfiguration, error) {
	docs, err := s.Client.Collection(collEvents).
		Where("participantIds", "array-contains", userID).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, xerrors.Errorf("list participated events for %s: %w", userID, err)
	}

	var events []EventConfiguration
	for _, doc := range docs {
		var event EventConfiguration
		if err := doc.DataTo(&event); err != nil {
			log.Printf("Failed to decode event document %s: %v\n", doc.Ref.ID, err)
			continue
		}
		events = append(events, event)
	}
	return events, nil
}

func (s *FirestoreStore) GetUser(ctx context.Context, id string) (*UserProfile, error) {
	doc, err := s.Client.Collection(collUsers).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, xerrors.Errorf("get user %s: %w", id, err)
	}

	var user UserProfile
	if err := doc.DataTo(&user); err != nil {
		return nil, xerrors.Errorf("decode user %s: %w", id, err)
	}
	return &user, nil
}

func (s *FirestoreStore) SaveUser(ctx context.Context, user UserProfile) error {
	_, err := s.Client.Collection(collUsers).Doc(user.ID).Set(ctx, user)
	if err != nil {
		return xerrors.Errorf("save user %s: %w", user.ID, err)
	}
	return nil
}

func (s *FirestoreStore) ListUsers(ctx context.Context) ([]UserProfile, error) {
	docs, err := s.Client.Collection(collUsers).Documents(ctx).GetAll()
	if err != nil {
		return nil, xerrors.Errorf("list users: %w", err)
	}

	var users []UserProfile
	for _, doc := range docs {
		var user UserProfile
		if err := doc.DataTo(&user); err != nil {
			log.Printf("Failed to decode user document %s: %v\n", doc.Ref.ID, err)
			continue
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *FirestoreStore) DeleteUser(ctx context.Context, id string) error {
	_, err := s.Client.Collection(collUsers).Doc(id).Delete(ctx)
	if err != nil {
		return xerrors.Errorf("delete user %s: %w", id, err)
	}
	return nil
}

func (s *FirestoreStore) GetTierConfig(ctx context.Context, tier string) (*TierConfig, error) {
	doc, err := s.Client.Collection(collTierConfigs).Doc(tier).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, xerrors.Errorf("get tier config %s: %w", tier, err)
	}

	var config TierConfig
	if err := doc.DataTo(&config); err != nil {
		return nil, xerrors.Errorf("decode tier config %s: %w", tier, err)
	}
	return &config, nil
}

func (s *FirestoreStore) ListTierConfigs(ctx context.Context) ([]TierConfig, error) {
	docs, err := s.Client.Collection(collTierConfigs).Documents(ctx).GetAll()
	if err != nil {
		return nil, xerrors.Errorf("list tier configs: %w", err)
	}

	var configs []TierConfig
	for _, doc := range docs {
		var config TierConfig
		if err := doc.DataTo(&config); err != nil {
			log.Printf("Failed to decode tier config document %s: %v\n", doc.Ref.ID, err)
			continue
		}
		configs = append(configs, config)
	}
	return configs, nil
}

func (s *FirestoreStore) SaveTierConfig(ctx context.Context, config TierConfig) error {
	_, err := s.Client.Collection(collTierConfigs).Doc(config.Tier).Set(ctx, config)
	if err != nil {
		return xerrors.Errorf("save tier config %s: %w", config.Tier, err)
	}
	return nil
}

func (s *FirestoreStore) ListLeads(ctx context.Context) ([]Lead, error) {
	docs, err := s.Client.Collection(collLeads).Documents(ctx).GetAll()
	if err != nil {
		return nil, xerrors.Errorf("list leads: %w", err)
	}

	var leads []Lead
	for _, doc := range docs {
		var lead Lead
		if err := doc.DataTo(&lead); err != nil {
			log.Printf("Failed to decode lead document %s: %v\n", doc.Ref.ID, err)
			continue
		}
		leads = append(leads, lead)
	}
	return leads, nil
}

func (s *FirestoreStore) SaveLead(ctx context.Context, lead Lead) error {
	_, err := s.Client.Collection(collLeads).Doc(lead.ID).Set(ctx, lead)
	if err != nil {
		return xerrors.Errorf("save lead %s: %w", lead.ID, err)
	}
	return nil
}

func (s *FirestoreStore) DeleteLead(ctx context.Context, id string) error {
	_, err := s.Client.Collection(collLeads).Doc(id).Delete(ctx)
	if err != nil {
		return xerrors.Errorf("delete lead %s: %w", id, err)
	}
	return nil
}

func (s *FirestoreStore) GetSystemConfig(ctx context.Context) (*SystemConfig, error) {
	doc, err := s.Client.Collection(collSystemConfig).Doc(systemConfigDoc).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, xerrors.Errorf("get system config: %w", err)
	}

	var config SystemConfig
	if err := doc.DataTo(&config); err != nil {
		return nil, xerrors.Errorf("decode system config: %w", err)
	}
	return &config, nil
}

func (s *FirestoreStore) SaveSystemConfig(ctx context.Context, config SystemConfig) error {
	_, err := s.Client.Collection(collSystemConfig).Doc(systemConfigDoc).Set(ctx, config)
	if err != nil {
		return xerrors.Errorf("save system config: %w", err)
	}
	return nil
}
