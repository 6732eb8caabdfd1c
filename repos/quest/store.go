package quest

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// Store is the persistence collaborator. Two implementations exist: the
// Firestore-backed live store and the in-memory mock store. Which one a
// deployment gets is decided once at startup, never per call.
type Store interface {
	GetAll(ctx context.Context, ownerID string, includePrivate bool) ([]EventConfiguration, error)
	Get(ctx context.Context, id string) (*EventConfiguration, error)
	// Save upserts the full record by id.
	Save(ctx context.Context, event EventConfiguration) error
	Delete(ctx context.Context, id string) error
	// AppendResult atomically appends a result and unions the participant
	// id into the event's participant set.
	AppendResult(ctx context.Context, eventID string, result Result) error
	GetParticipated(ctx context.Context, userID string) ([]EventConfiguration, error)

	GetUser(ctx context.Context, id string) (*UserProfile, error)
	SaveUser(ctx context.Context, user UserProfile) error
	ListUsers(ctx context.Context) ([]UserProfile, error)
	DeleteUser(ctx context.Context, id string) error

	GetTierConfig(ctx context.Context, tier string) (*TierConfig, error)
	ListTierConfigs(ctx context.Context) ([]TierConfig, error)
	SaveTierConfig(ctx context.Context, config TierConfig) error

	ListLeads(ctx context.Context) ([]Lead, error)
	SaveLead(ctx context.Context, lead Lead) error
	DeleteLead(ctx context.Context, id string) error

	GetSystemConfig(ctx context.Context) (*SystemConfig, error)
	SaveSystemConfig(ctx context.Context, config SystemConfig) error
}

// AddParticipant returns ids with id unioned in. Order is preserved; an
// id already present is not duplicated.
func AddParticipant(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

// eventVisible reports whether an event belongs in a GetAll listing for
// the given filter. Both store implementations share this rule.
// includePrivate is the only thing that admits a private event: ownerID
// is a filter, not an identity, so it must never widen visibility on its
// own. Whether the caller may set includePrivate is decided above the
// store.
func eventVisible(event EventConfiguration, ownerID string, includePrivate bool) bool {
	if ownerID != "" && event.OwnerID != ownerID {
		return false
	}
	if !includePrivate && !event.IsPublic {
		return false
	}
	return true
}
