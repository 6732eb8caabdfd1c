package quickplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Flexibelstudio/quester-backend/pkg/geo"
	quest "github.com/Flexibelstudio/quester-backend/repos/quest"
)

func TestGenerateShape(t *testing.T) {
	event := Generate(59.3293, 18.0686)

	mandatory := 0
	optional := 0
	for _, checkpoint := range event.Checkpoints {
		if checkpoint.Mandatory {
			mandatory++
		} else {
			optional++
		}
	}

	assert.Equal(t, 4, mandatory)
	assert.Equal(t, 3, optional)
}

func TestGenerateDistances(t *testing.T) {
	// Random placement: run a batch to cover the range.
	for i := 0; i < 50; i++ {
		event := Generate(59.3293, 18.0686)

		for _, checkpoint := range event.Checkpoints {
			require.NotNil(t, checkpoint.Location)
			dist := geo.Distance(59.3293, 18.0686, checkpoint.Location.Lat, checkpoint.Location.Lng)

			if checkpoint.Mandatory {
				assert.GreaterOrEqual(t, dist, 99.9)
				assert.Less(t, dist, 300.1)
			} else {
				assert.GreaterOrEqual(t, dist, 49.9)
				assert.Less(t, dist, 150.1)
			}
		}
	}
}

func TestGenerateCheckpointAttributes(t *testing.T) {
	event := Generate(59.3293, 18.0686)

	names := map[string]bool{}
	for _, checkpoint := range event.Checkpoints {
		if checkpoint.Mandatory {
			assert.Equal(t, 25.0, checkpoint.RadiusMeters)
			assert.Equal(t, 50, checkpoint.Points)
			assert.Equal(t, mandatoryColor, checkpoint.Color)
			names[checkpoint.Name] = true
		} else {
			assert.Equal(t, 20.0, checkpoint.RadiusMeters)
			assert.Equal(t, 10, checkpoint.Points)
			assert.Equal(t, optionalColor, checkpoint.Color)
			assert.Equal(t, optionalName, checkpoint.Name)
		}
	}
	assert.Len(t, names, 4, "mandatory names come from the fixed label list")
}

func TestGenerateEventDefaults(t *testing.T) {
	event := Generate(59.3293, 18.0686)

	assert.Equal(t, quest.WinMostPoints, event.WinCondition)
	assert.Equal(t, quest.StartModeSelf, event.StartMode)
	assert.Equal(t, quest.StatusActive, event.Status)
	assert.NotEmpty(t, event.StartDateTime)

	assert.Equal(t, 59.3293, event.FinishLocation.Lat)
	assert.Equal(t, 18.0686, event.FinishLocation.Lng)
	assert.Equal(t, 50.0, event.FinishLocation.RadiusMeters)
}
