package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	quest "github.com/Flexibelstudio/quester-backend/repos/quest"
)

func TestApplyRogaining(t *testing.T) {
	event := quest.EventConfiguration{
		WinCondition:    quest.WinFastestTime,
		CheckpointOrder: quest.OrderSequential,
		ScoreModel:      quest.ScoreBasic,
	}

	ok := ApplyArchetype(&event, ArchetypeRogaining)

	assert.True(t, ok)
	assert.Equal(t, quest.WinMostPoints, event.WinCondition)
	assert.Equal(t, quest.OrderFree, event.CheckpointOrder)
	assert.Equal(t, quest.ScoreRogaining, event.ScoreModel)
}

func TestApplyUnknownArchetype(t *testing.T) {
	event := quest.EventConfiguration{WinCondition: quest.WinFastestTime}

	ok := ApplyArchetype(&event, "orienteering")

	assert.False(t, ok)
	assert.Equal(t, quest.WinFastestTime, event.WinCondition, "unknown archetype must not touch the record")
}

func TestForwardThenInverseIsFixedPoint(t *testing.T) {
	for _, archetype := range []string{ArchetypeClassic, ArchetypeRogaining, ArchetypeAdventure} {
		event := quest.EventConfiguration{}
		ApplyArchetype(&event, archetype)
		assert.Equal(t, archetype, ResolveArchetype(event))
	}
}

func TestRogainingLeftoversSurviveSwitch(t *testing.T) {
	event := quest.EventConfiguration{}
	ApplyArchetype(&event, ArchetypeRogaining)
	event.TimeLimitMin = 90
	event.PointsPerMinute = 2

	ApplyArchetype(&event, ArchetypeClassic)

	assert.Equal(t, 90, event.TimeLimitMin)
	assert.Equal(t, 2.0, event.PointsPerMinute)
}

// A record edited by hand into an "invalid" combination resolves by score
// model first, not win condition.
func TestResolvePrecedenceOnHandEditedRecord(t *testing.T) {
	event := quest.EventConfiguration{
		WinCondition: quest.WinFastestTime,
		ScoreModel:   quest.ScoreRogaining,
	}

	assert.Equal(t, ArchetypeRogaining, ResolveArchetype(event))
}

func TestResolveDefaultsToClassic(t *testing.T) {
	event := quest.EventConfiguration{
		WinCondition: quest.WinFastestTime,
		ScoreModel:   quest.ScoreBasic,
	}

	assert.Equal(t, ArchetypeClassic, ResolveArchetype(event))
}
