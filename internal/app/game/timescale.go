package game

import (
	"time"

	"manorfall/internal/domain/manor"
)

// setTimeScale changes how fast real time consumes outstanding locks. Zero
// pauses; TimeScale keeps the last nonzero rate while PausedAt marks the
// freeze, so resuming knows what rate the locks were stamped at.
//
// The invariant across any sequence of pauses and rescales: the in-game work
// remaining on a lock is preserved exactly, only the real-time rate changes.
// Every change recomputes lockedUntil from the remaining duration rather
// than patching timestamps, so repeated cycles cannot drift.
func (e Engine) setTimeScale(state *manor.GameState, scale float64, now time.Time) {
	if scale == 0 {
		if state.PausedAt != nil {
			state.AppendLog("Time already stands still.")
			return
		}
		paused := now
		state.PausedAt = &paused
		state.AppendLog("Time stands still in the manor.")
		return
	}

	if scale < manor.MinTimeScale {
		scale = manor.MinTimeScale
	}
	oldScale := state.TimeScale
	if oldScale <= 0 {
		oldScale = 1
	}

	// Remaining lock time is measured at the moment the old rate stopped
	// applying: the pause instant if paused, otherwise right now.
	ref := now
	if state.PausedAt != nil {
		ref = *state.PausedAt
	}
	for _, slotID := range state.SortedSlotIDs() {
		slot := state.Slots[slotID]
		if slot.LockedUntil == nil {
			continue
		}
		remaining := slot.LockedUntil.Sub(ref)
		if remaining < 0 {
			remaining = 0
		}
		rescaled := time.Duration(float64(remaining) * oldScale / scale)
		lockedUntil := now.Add(rescaled)
		slot.LockedUntil = &lockedUntil
		state.Slots[slotID] = slot
	}

	resumed := state.PausedAt != nil
	state.PausedAt = nil
	state.TimeScale = scale
	switch {
	case resumed:
		state.Logf("Time moves again, at %.2gx.", scale)
	default:
		state.Logf("Time now passes at %.2gx.", scale)
	}
}
