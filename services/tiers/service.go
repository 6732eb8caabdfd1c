package tiers

import (
	"context"
	"log"
	"sort"

	"github.com/gin-gonic/gin"

	quest "github.com/Flexibelstudio/quester-backend/repos/quest"
)

// TiersService exposes the tier quota table. The table is advisory:
// callers consult quotas before an action, nothing in here enforces them.
type TiersService struct {
	store quest.Store
}

func NewTiersService(store quest.Store) *TiersService {
	return &TiersService{store: store}
}

// Seed writes the default tier configs for any tier that has none yet.
// Runs once at startup; existing admin edits are left alone.
func (s *TiersService) Seed(ctx context.Context) error {
	for _, config := range Defaults() {
		_, err := s.store.GetTierConfig(ctx, config.Tier)
		if err == nil {
			continue
		}
		if err != quest.ErrNotFound {
			return err
		}
		if err := s.store.SaveTierConfig(ctx, config); err != nil {
			return err
		}
		log.Printf("Seeded tier config: %s\n", config.Tier)
	}
	return nil
}

func (s *TiersService) Get(c *gin.Context, tier string) (*quest.TierConfig, error) {
	return s.store.GetTierConfig(c, tier)
}

func (s *TiersService) List(c *gin.Context) ([]quest.TierConfig, error) {
	configs, err := s.store.ListTierConfigs(c)
	if err != nil {
		return nil, err
	}
	sort.Slice(configs, func(i, j int) bool {
		return configs[i].PricePerMonth < configs[j].PricePerMonth
	})
	return configs, nil
}

// TierPatch is a partial tier update; nil fields keep the stored value.
type TierPatch struct {
	DisplayName            *string  `json:"displayName"`
	PricePerMonth          *float64 `json:"pricePerMonth"`
	MaxActiveRaces         *int     `json:"maxActiveRaces"`
	MaxCheckpointsPerRace  *int     `json:"maxCheckpointsPerRace"`
	MaxParticipantsPerRace *int     `json:"maxParticipantsPerRace"`
	AllowCloudStorage      *bool    `json:"allowCloudStorage"`
	AllowWhiteLabel        *bool    `json:"allowWhiteLabel"`
	AllowLiveMonitoring    *bool    `json:"allowLiveMonitoring"`
	Features               []string `json:"features"`
}

// Update merges a patch into the stored tier config.
func (s *TiersService) Update(c *gin.Context, tier string, patch TierPatch) (*quest.TierConfig, error) {
	config, err := s.store.GetTierConfig(c, tier)
	if err != nil {
		return nil, err
	}

	if patch.DisplayName != nil {
		config.DisplayName = *patch.DisplayName
	}
	if patch.PricePerMonth != nil {
		config.PricePerMonth = *patch.PricePerMonth
	}
	if patch.MaxActiveRaces != nil {
		config.MaxActiveRaces = *patch.MaxActiveRaces
	}
	if patch.MaxCheckpointsPerRace != nil {
		config.MaxCheckpointsPerRace = *patch.MaxCheckpointsPerRace
	}
	if patch.MaxParticipantsPerRace != nil {
		config.MaxParticipantsPerRace = *patch.MaxParticipantsPerRace
	}
	if patch.AllowCloudStorage != nil {
		config.AllowCloudStorage = *patch.AllowCloudStorage
	}
	if patch.AllowWhiteLabel != nil {
		config.AllowWhiteLabel = *patch.AllowWhiteLabel
	}
	if patch.AllowLiveMonitoring != nil {
		config.AllowLiveMonitoring = *patch.AllowLiveMonitoring
	}
	if patch.Features != nil {
		config.Features = patch.Features
	}

	if err := s.store.SaveTierConfig(c, *config); err != nil {
		return nil, err
	}
	return config, nil
}
