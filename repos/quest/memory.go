package quest

import (
	"context"
	"sync"
)

// MemoryStore is the mock persistence backend used for local development
// and tests. It keeps everything in process memory; nothing survives a
// restart.
type MemoryStore struct {
	mu sync.RWMutex

	events       map[string]EventConfiguration
	users        map[string]UserProfile
	tierConfigs  map[string]TierConfig
	leads        map[string]Lead
	systemConfig *SystemConfig
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		events:      map[string]EventConfiguration{},
		users:       map[string]UserProfile{},
		tierConfigs: map[string]TierConfig{},
		leads:       map[string]Lead{},
	}
}

func (s *MemoryStore) GetAll(ctx context.Context, ownerID string, includePrivate bool) ([]EventConfiguration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var events []EventConfiguration
	for _, event := range s.events {
		if eventVisible(event, ownerID, includePrivate) {
			events = append(events, copyEvent(event))
		}
	}
	return events, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*EventConfiguration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok := s.events[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := copyEvent(event)
	return &copied, nil
}

func (s *MemoryStore) Save(ctx context.Context, event EventConfiguration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events[event.ID] = copyEvent(event)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.events, id)
	return nil
}

func (s *MemoryStore) AppendResult(ctx context.Context, eventID string, result Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[eventID]
	if !ok {
		return ErrNotFound
	}

	event.Results = append(event.Results, result)
	event.ParticipantIDs = AddParticipant(event.ParticipantIDs, result.ParticipantID)

	s.events[eventID] = event
	return nil
}

func (s *MemoryStore) GetParticipated(ctx context.Context, userID string) ([]EventConfiguration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var events []EventConfiguration
	for _, event := range s.events {
		for _, id := range event.ParticipantIDs {
			if id == userID {
				events = append(events, copyEvent(event))
				break
			}
		}
	}
	return events, nil
}

func (s *MemoryStore) GetUser(ctx context.Context, id string) (*UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemoryStore) SaveUser(ctx context.Context, user UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[user.ID] = user
	return nil
}

func (s *MemoryStore) ListUsers(ctx context.Context) ([]UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var users []UserProfile
	for _, user := range s.users {
		users = append(users, user)
	}
	return users, nil
}

func (s *MemoryStore) DeleteUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.users, id)
	return nil
}

func (s *MemoryStore) GetTierConfig(ctx context.Context, tier string) (*TierConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	config, ok := s.tierConfigs[tier]
	if !ok {
		return nil, ErrNotFound
	}
	return &config, nil
}

func (s *MemoryStore) ListTierConfigs(ctx context.Context) ([]TierConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var configs []TierConfig
	for _, config := range s.tierConfigs {
		configs = append(configs, config)
	}
	return configs, nil
}

func (s *MemoryStore) SaveTierConfig(ctx context.Context, config TierConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tierConfigs[config.Tier] = config
	return nil
}

func (s *MemoryStore) ListLeads(ctx context.Context) ([]Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var leads []Lead
	for _, lead := range s.leads {
		leads = append(leads, lead)
	}
	return leads, nil
}

func (s *MemoryStore) SaveLead(ctx context.Context, lead Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.leads[lead.ID] = lead
	return nil
}

func (s *MemoryStore) DeleteLead(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.leads, id)
	return nil
}

func (s *MemoryStore) GetSystemConfig(ctx context.Context) (*SystemConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.systemConfig == nil {
		return nil, ErrNotFound
	}
	config := *s.systemConfig
	return &config, nil
}

func (s *MemoryStore) SaveSystemConfig(ctx context.Context, config SystemConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.systemConfig = &config
	return nil
}

// copyEvent deep-copies the slices so callers cannot mutate stored state
// through a returned record.
func copyEvent(event EventConfiguration) EventConfiguration {
	copied := event
	copied.Checkpoints = append([]Checkpoint(nil), event.Checkpoints...)
	copied.Results = append([]Result(nil), event.Results...)
	copied.Ratings = append([]Rating(nil), event.Ratings...)
	copied.ParticipantIDs = append([]string(nil), event.ParticipantIDs...)
	for i := range copied.Checkpoints {
		if copied.Checkpoints[i].Location != nil {
			loc := *copied.Checkpoints[i].Location
			copied.Checkpoints[i].Location = &loc
		}
	}
	return copied
}
