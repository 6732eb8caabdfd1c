package tiers

import (
	quest "github.com/Flexibelstudio/quester-backend/repos/quest"
)

// Defaults returns the tier table seeded at system initialization. Only
// an administrator mutates these afterwards.
func Defaults() []quest.TierConfig {
	return []quest.TierConfig{
		{
			Tier:                   quest.TierScout,
			DisplayName:            "Scout",
			PricePerMonth:          0,
			MaxActiveRaces:         1,
			MaxCheckpointsPerRace:  10,
			MaxParticipantsPerRace: 20,
			AllowCloudStorage:      false,
			AllowWhiteLabel:        false,
			AllowLiveMonitoring:    false,
			Features: []string{
				"1 active event",
				"Up to 10 checkpoints",
				"Up to 20 participants",
			},
		},
		{
			Tier:                   quest.TierCreator,
			DisplayName:            "Creator",
			PricePerMonth:          99,
			MaxActiveRaces:         5,
			MaxCheckpointsPerRace:  30,
			MaxParticipantsPerRace: 100,
			AllowCloudStorage:      true,
			AllowWhiteLabel:        false,
			AllowLiveMonitoring:    true,
			Features: []string{
				"5 active events",
				"Up to 30 checkpoints",
				"Up to 100 participants",
				"Cloud storage",
				"Live monitoring",
			},
		},
		{
			Tier:                   quest.TierMaster,
			DisplayName:            "Master",
			PricePerMonth:          299,
			MaxActiveRaces:         50,
			MaxCheckpointsPerRace:  100,
			MaxParticipantsPerRace: 1000,
			AllowCloudStorage:      true,
			AllowWhiteLabel:        true,
			AllowLiveMonitoring:    true,
			Features: []string{
				"50 active events",
				"Up to 100 checkpoints",
				"Up to 1000 participants",
				"Cloud storage",
				"White label",
				"Live monitoring",
			},
		},
	}
}
