package events

import (
	quest "github.com/Flexibelstudio/quester-backend/repos/quest"
)

// Archetypes bundle the three correlated rule fields into one selectable
// concept.
const (
	ArchetypeClassic   = "classic"
	ArchetypeRogaining = "rogaining"
	ArchetypeAdventure = "adventure"
)

// ApplyArchetype sets the correlated rule triple on the event. Leftover
// rogaining fields (timeLimitMinutes, pointsPerMinute) intentionally
// survive a switch away from rogaining.
func ApplyArchetype(event *quest.EventConfiguration, archetype string) bool {
	switch archetype {
	case ArchetypeClassic:
		event.WinCondition = quest.WinFastestTime
		event.CheckpointOrder = quest.OrderSequential
		event.ScoreModel = quest.ScoreBasic
	case ArchetypeRogaining:
		event.WinCondition = quest.WinMostPoints
		event.CheckpointOrder = quest.OrderFree
		event.ScoreModel = quest.ScoreRogaining
	case ArchetypeAdventure:
		event.WinCondition = quest.WinMostPoints
		event.CheckpointOrder = quest.OrderFree
		event.ScoreModel = quest.ScoreBasic
	default:
		return false
	}
	return true
}

// ResolveArchetype infers the active archetype from the rule fields. The
// precedence matters: a hand-edited record with scoreModel=rogaining and
// winCondition=fastest_time still reads as rogaining. Do not reorder.
func ResolveArchetype(event quest.EventConfiguration) string {
	if event.ScoreModel == quest.ScoreRogaining {
		return ArchetypeRogaining
	}
	if event.WinCondition == quest.WinMostPoints {
		return ArchetypeAdventure
	}
	return ArchetypeClassic
}
