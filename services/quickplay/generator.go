package quickplay

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/samborkent/uuidv7"

	"github.com/Flexibelstudio/quester-backend/pkg/geo"
	timehelper "github.com/Flexibelstudio/quester-backend/pkg/timeHelper"
	quest "github.com/Flexibelstudio/quester-backend/repos/quest"
)

// Fixed shape of the extraction mini-game. Deliberately no AI call here:
// generation must be instant.
const (
	mandatoryMinDistance = 100.0
	mandatoryMaxDistance = 300.0
	mandatoryRadius      = 25.0
	mandatoryPoints      = 50
	mandatoryColor       = "#e53935"

	optionalMinDistance = 50.0
	optionalMaxDistance = 150.0
	optionalRadius      = 20.0
	optionalPoints      = 10
	optionalColor       = "#fbc02d"

	optionalName = "Bonus"

	finishRadius = 50.0
)

var mandatoryNames = [4]string{"Alfa", "Beta", "Gamma", "Delta"}

// Generate synthesizes an instant extraction game around the player's
// position: exactly four mandatory checkpoints at 100-300 m and three
// optional ones at 50-150 m, scattered at uniformly random bearings.
func Generate(lat, lng float64) quest.EventConfiguration {
	checkpoints := make([]quest.Checkpoint, 0, len(mandatoryNames)+3)

	for _, name := range mandatoryNames {
		cpLat, cpLng := randomOffset(lat, lng, mandatoryMinDistance, mandatoryMaxDistance)
		checkpoints = append(checkpoints, quest.Checkpoint{
			ID:           uuidv7.New().String(),
			Name:         name,
			Location:     &quest.LatLng{Lat: cpLat, Lng: cpLng},
			RadiusMeters: mandatoryRadius,
			Mandatory:    true,
			Points:       mandatoryPoints,
			Color:        mandatoryColor,
		})
	}

	for i := 0; i < 3; i++ {
		cpLat, cpLng := randomOffset(lat, lng, optionalMinDistance, optionalMaxDistance)
		checkpoints = append(checkpoints, quest.Checkpoint{
			ID:           uuidv7.New().String(),
			Name:         optionalName,
			Location:     &quest.LatLng{Lat: cpLat, Lng: cpLng},
			RadiusMeters: optionalRadius,
			Mandatory:    false,
			Points:       optionalPoints,
			Color:        optionalColor,
		})
	}

	return quest.EventConfiguration{
		ID:              uuidv7.New().String(),
		Name:            fmt.Sprintf("Extraction %s", timehelper.GetTodaysDateString()),
		Status:          quest.StatusActive,
		StartDateTime:   timehelper.NowString(),
		StartMode:       quest.StartModeSelf,
		WinCondition:    quest.WinMostPoints,
		CheckpointOrder: quest.OrderFree,
		ScoreModel:      quest.ScoreBasic,
		StartLocation:   quest.Location{Lat: lat, Lng: lng, RadiusMeters: finishRadius},
		// Placeholder: replaced once all mandatory checkpoints are
		// collected, outside this engine.
		FinishLocation: quest.Location{Lat: lat, Lng: lng, RadiusMeters: finishRadius},
		Checkpoints:    checkpoints,
	}
}

// randomOffset places a point at a uniformly random bearing and a
// uniformly random radial distance in [minDist, maxDist) meters.
func randomOffset(lat, lng, minDist, maxDist float64) (float64, float64) {
	bearing := rand.Float64() * 2 * math.Pi
	distance := minDist + rand.Float64()*(maxDist-minDist)

	latOffset := distance * math.Cos(bearing)
	lngOffset := distance * math.Sin(bearing)
	return geo.Offset(lat, lng, latOffset, lngOffset)
}
