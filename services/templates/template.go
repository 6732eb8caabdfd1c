package templates

import (
	"strings"

	"github.com/samborkent/uuidv7"

	timehelper "github.com/Flexibelstudio/quester-backend/pkg/timeHelper"
	quest "github.com/Flexibelstudio/quester-backend/repos/quest"
)

// Instantiation modes.
const (
	ModeFixed    = "fixed"
	ModeFlexible = "flexible"
)

// Name suffixes for derived records.
const (
	copySuffix      = " (kopia)"
	blueprintSuffix = " (mall)"
)

// Terrain hints assigned by the blueprint heuristic. One substring check,
// not a classifier.
const (
	hintForest          = "Forest"
	hintOpenArea        = "Open area"
	forestNameSubstring = "skog"
)

// Instantiate derives a reusable template from any event record. Fixed
// mode is an exact copy under a new identity; flexible mode additionally
// strips all geography so the blueprint can be replanted anywhere. The
// transformation is pure and total over well-formed input.
func Instantiate(source quest.EventConfiguration, mode string) quest.EventConfiguration {
	template := source

	template.ID = uuidv7.New().String()
	template.IsTemplate = true
	template.Status = quest.StatusDraft
	template.StartDateTime = timehelper.NowString()
	template.Results = []quest.Result{}
	template.Ratings = []quest.Rating{}
	template.ParticipantIDs = []string{}

	template.Checkpoints = make([]quest.Checkpoint, len(source.Checkpoints))
	copy(template.Checkpoints, source.Checkpoints)
	for i := range template.Checkpoints {
		if template.Checkpoints[i].Location != nil {
			loc := *template.Checkpoints[i].Location
			template.Checkpoints[i].Location = &loc
		}
	}

	if mode != ModeFlexible {
		template.Name = source.Name + copySuffix
		return template
	}

	template.Name = source.Name + blueprintSuffix
	template.StartCity = ""
	template.FinishCity = ""
	template.StartLocation.Lat = 0
	template.StartLocation.Lng = 0
	template.FinishLocation.Lat = 0
	template.FinishLocation.Lng = 0

	for i := range template.Checkpoints {
		template.Checkpoints[i].Location = nil
		if template.Checkpoints[i].TerrainHint == "" {
			template.Checkpoints[i].TerrainHint = inferTerrainHint(template.Checkpoints[i].Name)
		}
	}

	return template
}

func inferTerrainHint(name string) string {
	if strings.Contains(strings.ToLower(name), forestNameSubstring) {
		return hintForest
	}
	return hintOpenArea
}
