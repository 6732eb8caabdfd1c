package quest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockForcesPrivate(t *testing.T) {
	event := EventConfiguration{ID: "evt-1", IsPublic: true}

	event.LockByAdmin()

	assert.True(t, event.IsLockedByAdmin)
	assert.False(t, event.IsPublic, "a locked event is never public")
	assert.True(t, event.WasPublic)
}

func TestUnlockRestoresPriorVisibility(t *testing.T) {
	event := EventConfiguration{ID: "evt-1", IsPublic: true}

	event.LockByAdmin()
	event.UnlockByAdmin()

	assert.False(t, event.IsLockedByAdmin)
	assert.True(t, event.IsPublic)
}

func TestUnlockKeepsPrivateEventPrivate(t *testing.T) {
	event := EventConfiguration{ID: "evt-2", IsPublic: false}

	event.LockByAdmin()
	event.UnlockByAdmin()

	assert.False(t, event.IsPublic, "unlock restores the recorded visibility, not true")
}

func TestDoubleLockKeepsOriginalVisibility(t *testing.T) {
	event := EventConfiguration{ID: "evt-3", IsPublic: true}

	event.LockByAdmin()
	event.LockByAdmin()
	event.UnlockByAdmin()

	assert.True(t, event.IsPublic, "a repeated lock must not overwrite the recorded visibility")
}
