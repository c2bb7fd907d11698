package game

import (
	"time"

	"manorfall/internal/domain/manor"
)

// minLockDuration floors the scaled lock so even extreme time scales leave a
// visible busy window.
const minLockDuration = 250 * time.Millisecond

func (e Engine) activateSlot(state *manor.GameState, slotID string, now time.Time) {
	// Locks are stamped against real time, and frozen lock math only holds
	// for locks that existed when the freeze began. No new work starts
	// while time stands still.
	if state.PausedAt != nil {
		state.AppendLog("Time stands still; nothing in the manor will act.")
		return
	}

	// Matured deferred outcomes settle before anything new begins.
	e.resolvePending(state, now)

	slot, ok := state.Slots[slotID]
	if !ok {
		state.AppendLog("There is no such place in the manor.")
		return
	}
	if !slot.Unlocked {
		state.Logf("The way to %s has not been found.", slot.Name)
		return
	}
	if remaining := slot.LockRemaining(now, state.PausedAt); remaining > 0 {
		state.Logf("%s is busy for another %s.", slot.Name, manor.FormatDuration(remaining))
		return
	}
	behavior, ok := e.Behaviors.Get(slot.Type)
	if !ok {
		state.Logf("Something is wrong with %s; the house does not know what to do with it.", slot.Name)
		return
	}

	args := ActivateArgs{
		State:   state,
		SlotID:  slotID,
		Content: e.Content,
		Now:     now,
		Rand:    e.Runtime.rand,
	}
	result := behavior.Activate(args)
	if result.Log != "" {
		state.AppendLog(result.Log)
	}
	if !result.Performed {
		return
	}

	duration := e.Content.LockDuration(state.Slots[slotID])
	if overrider, ok := behavior.(LockOverrider); ok {
		if override, has := overrider.LockDuration(args); has {
			duration = override
		}
	}
	scaled := scaleLock(duration, state.TimeScale)
	lockedUntil := now.Add(scaled)
	slot = state.Slots[slotID]
	slot.LockedUntil = &lockedUntil
	state.Slots[slotID] = slot
	state.Logf("%s will be ready again in ~%s.", slot.Name, manor.FormatDuration(scaled))
}

func scaleLock(d time.Duration, scale float64) time.Duration {
	if scale <= 0 {
		scale = 1
	}
	scaled := time.Duration(float64(d) / scale)
	if scaled < minLockDuration {
		scaled = minLockDuration
	}
	return scaled
}
