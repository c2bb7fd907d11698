package game

import (
	"testing"
	"time"

	"manorfall/internal/domain/manor"
)

func setScale(e Engine, state manor.GameState, scale float64) manor.GameState {
	return e.Reduce(state, Action{Type: ActionSetTimeScale, Scale: &scale})
}

func lockSlot(state *manor.GameState, slotID string, remaining time.Duration, from time.Time) {
	lockedUntil := from.Add(remaining)
	slot := state.Slots[slotID]
	slot.LockedUntil = &lockedUntil
	state.Slots[slotID] = slot
}

func TestSetTimeScaleRescalesOutstandingLocks(t *testing.T) {
	clock := newTestClock()
	e := newTestEngine(clock)
	state := newTestGame(t, e)
	hearth := slotIDByKey(t, state, "great-hearth")
	lockSlot(&state, hearth, 60*time.Second, testEpoch)

	next := setScale(e, state, 2)

	if next.TimeScale != 2 {
		t.Fatalf("time scale = %v, want 2", next.TimeScale)
	}
	if got := next.Slots[hearth].LockedUntil.Sub(testEpoch); got != 30*time.Second {
		t.Fatalf("rescaled lock = %v, want 30s", got)
	}
	requireLogContains(t, next, "Time now passes at 2x")
}

func TestSetTimeScaleClampsTinyValues(t *testing.T) {
	e := newTestEngine(newTestClock())
	state := newTestGame(t, e)

	next := setScale(e, state, 0.01)
	if next.TimeScale != manor.MinTimeScale {
		t.Fatalf("time scale = %v, want clamped to %v", next.TimeScale, manor.MinTimeScale)
	}
}

func TestPauseFreezesLocksAndKeepsScale(t *testing.T) {
	clock := newTestClock()
	e := newTestEngine(clock)
	state := newTestGame(t, e)
	hearth := slotIDByKey(t, state, "great-hearth")

	state = setScale(e, state, 2)
	lockSlot(&state, hearth, 10*time.Second, testEpoch)

	paused := setScale(e, state, 0)
	if paused.PausedAt == nil || !paused.PausedAt.Equal(testEpoch) {
		t.Fatalf("paused at = %v", paused.PausedAt)
	}
	if paused.TimeScale != 2 {
		t.Fatalf("pausing must keep the last rate, got %v", paused.TimeScale)
	}
	requireLogContains(t, paused, "Time stands still in the manor")

	// Wall time passing while paused never eats the lock.
	clock.Advance(time.Hour)
	slot := paused.Slots[hearth]
	if got := slot.LockRemaining(clock.Now(), paused.PausedAt); got != 10*time.Second {
		t.Fatalf("frozen remaining = %v, want 10s", got)
	}

	again := setScale(e, paused, 0)
	requireLogContains(t, again, "Time already stands still")
	if !again.PausedAt.Equal(testEpoch) {
		t.Fatal("a repeated pause must not move the freeze point")
	}
}

func TestResumeShiftsLockByPausedWallTime(t *testing.T) {
	clock := newTestClock()
	e := newTestEngine(clock)
	state := newTestGame(t, e)
	hearth := slotIDByKey(t, state, "great-hearth")
	lockSlot(&state, hearth, 10*time.Second, testEpoch)

	state = setScale(e, state, 0)
	clock.Advance(time.Hour)
	resumed := setScale(e, state, 1)

	if resumed.PausedAt != nil {
		t.Fatal("resume must clear the freeze point")
	}
	if got := resumed.Slots[hearth].LockedUntil.Sub(clock.Now()); got != 10*time.Second {
		t.Fatalf("resumed remaining = %v, want the frozen 10s", got)
	}
	requireLogContains(t, resumed, "Time moves again, at 1x")
}

func TestResumeAtNewScaleRescalesFrozenRemainder(t *testing.T) {
	clock := newTestClock()
	e := newTestEngine(clock)
	state := newTestGame(t, e)
	hearth := slotIDByKey(t, state, "great-hearth")
	lockSlot(&state, hearth, 10*time.Second, testEpoch)

	state = setScale(e, state, 0)
	clock.Advance(100 * time.Second)
	resumed := setScale(e, state, 2)

	if got := resumed.Slots[hearth].LockedUntil.Sub(clock.Now()); got != 5*time.Second {
		t.Fatalf("resumed remaining = %v, want 5s at 2x", got)
	}
}

func TestRepeatedPauseResumeDoesNotDrift(t *testing.T) {
	clock := newTestClock()
	e := newTestEngine(clock)
	state := newTestGame(t, e)
	hearth := slotIDByKey(t, state, "great-hearth")
	lockSlot(&state, hearth, 12*time.Second, testEpoch)

	for i := 0; i < 4; i++ {
		state = setScale(e, state, 0)
		clock.Advance(7 * time.Minute)
		state = setScale(e, state, 1)
	}
	if got := state.Slots[hearth].LockedUntil.Sub(clock.Now()); got != 12*time.Second {
		t.Fatalf("remaining after pause cycles = %v, want 12s", got)
	}
}

func TestActivateRefusedWhilePaused(t *testing.T) {
	clock := newTestClock()
	e := newTestEngine(clock)
	state := newTestGame(t, e)
	hearth := slotIDByKey(t, state, "great-hearth")
	state = move(e, state, state.HeroCardID, hearth)

	state = setScale(e, state, 0)
	clock.Advance(time.Hour)

	frozen := activate(e, state, hearth)
	if frozen.Slots[hearth].LockedUntil != nil {
		t.Fatal("no lock may be stamped while time stands still")
	}
	if frozen.Resources != state.Resources {
		t.Fatal("a refused activation must not yield")
	}
	requireLogContains(t, frozen, "Time stands still; nothing in the manor will act")

	// Resuming and activating locks from the resume instant; the hour spent
	// paused never enters the lock.
	resumed := setScale(e, frozen, 1)
	worked := activate(e, resumed, hearth)
	if got := worked.Slots[hearth].LockedUntil.Sub(clock.Now()); got != 8*time.Second {
		t.Fatalf("post-resume lock = %v, want 8s from now", got)
	}
}

func TestExpiredLockStaysExpiredThroughRescale(t *testing.T) {
	clock := newTestClock()
	e := newTestEngine(clock)
	state := newTestGame(t, e)
	hearth := slotIDByKey(t, state, "great-hearth")
	lockSlot(&state, hearth, 5*time.Second, testEpoch)

	clock.Advance(time.Minute)
	next := setScale(e, state, 4)
	if got := next.Slots[hearth].LockRemaining(clock.Now(), nil); got != 0 {
		t.Fatalf("an expired lock must not come back, got %v", got)
	}
}
