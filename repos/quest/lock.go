package quest

// LockByAdmin takes the event out of circulation: it is forced private and
// the visibility it had at this moment is recorded so an unlock can put it
// back. Locking an already locked event is a no-op.
func (e *EventConfiguration) LockByAdmin() {
	if e.IsLockedByAdmin {
		return
	}
	e.WasPublic = e.IsPublic
	e.IsPublic = false
	e.IsLockedByAdmin = true
}

// UnlockByAdmin restores the visibility recorded at lock time. A private
// event stays private after unlocking.
func (e *EventConfiguration) UnlockByAdmin() {
	if !e.IsLockedByAdmin {
		return
	}
	e.IsPublic = e.WasPublic
	e.IsLockedByAdmin = false
}
