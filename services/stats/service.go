package stats

import (
	"log"

	"github.com/gin-gonic/gin"
	"golang.org/x/xerrors"

	quest "github.com/Flexibelstudio/quester-backend/repos/quest"
)

type StatsService struct {
	store quest.Store
}

func NewStatsService(store quest.Store) *StatsService {
	return &StatsService{
		store: store,
	}
}

// GetOverview walks the stored events and users and counts what the
// back office cares about. It is computed on demand, nothing is cached.
func (s *StatsService) GetOverview(c *gin.Context) (*Overview, error) {
	events, err := s.store.GetAll(c, "", true)
	if err != nil {
		log.Printf("Failed to list events for stats: %v\n", err)
		return nil, xerrors.Errorf("list events: %w", err)
	}

	users, err := s.store.ListUsers(c)
	if err != nil {
		return nil, xerrors.Errorf("list users: %w", err)
	}

	leads, err := s.store.ListLeads(c)
	if err != nil {
		return nil, xerrors.Errorf("list leads: %w", err)
	}

	tierByUser := make(map[string]string, len(users))
	for _, user := range users {
		tierByUser[user.ID] = user.Tier
	}

	overview := &Overview{
		Users:        len(users),
		Leads:        len(leads),
		EventsByTier: map[string]int{},
	}

	for _, event := range events {
		if event.IsTemplate {
			overview.Templates++
			continue
		}
		overview.Events++
		if event.Status == quest.StatusActive {
			overview.ActiveEvents++
		}
		overview.ResultsLogged += len(event.Results)
		if tier, ok := tierByUser[event.OwnerID]; ok {
			overview.EventsByTier[tier]++
		}
	}

	return overview, nil
}
