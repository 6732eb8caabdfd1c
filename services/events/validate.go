package events

import (
	quest "github.com/Flexibelstudio/quester-backend/repos/quest"
)

// IdentityComplete is the wizard progression gate: a record without these
// fields is not allowed past the identity step and is never persisted
// partially. A boolean, not an error.
func IdentityComplete(event quest.EventConfiguration) bool {
	return event.Name != "" && event.StartDateTime != "" && event.StartMode != ""
}

// ReadyForPlay reports whether a live event can be started: templates
// never are, and every checkpoint needs a placed location.
func ReadyForPlay(event quest.EventConfiguration) bool {
	if event.IsTemplate {
		return false
	}
	for _, checkpoint := range event.Checkpoints {
		if checkpoint.Location == nil {
			return false
		}
	}
	return true
}
