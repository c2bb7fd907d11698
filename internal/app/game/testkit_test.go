package game

import (
	"strings"
	"testing"
	"time"

	"manorfall/internal/domain/manor"
)

var testEpoch = time.Unix(1700000000, 0)

// testClock is a settable clock for driving lock expiry by hand.
type testClock struct {
	t time.Time
}

func newTestClock() *testClock {
	return &testClock{t: testEpoch}
}

func (c *testClock) Now() time.Time {
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// scriptedRand cycles through the given values. 0.99 everywhere keeps
// chance rolls from firing, so tests opt in to randomness explicitly.
func scriptedRand(values ...float64) func() float64 {
	if len(values) == 0 {
		values = []float64{0.99}
	}
	i := 0
	return func() float64 {
		v := values[i%len(values)]
		i++
		return v
	}
}

func newTestEngine(clock *testClock, randValues ...float64) Engine {
	return NewEngine(nil, nil, Runtime{
		Now:  clock.Now,
		Rand: scriptedRand(randValues...),
	})
}

func newTestGame(t *testing.T, e Engine) manor.GameState {
	t.Helper()
	state, err := e.NewGame("session-1")
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return state
}

func slotIDByKey(t *testing.T, state manor.GameState, key string) string {
	t.Helper()
	slot, ok := state.SlotByKey(key)
	if !ok {
		t.Fatalf("no slot with key %q", key)
	}
	return slot.ID
}

// giveCard instantiates a template straight into the hand, bypassing
// opportunity rolls.
func giveCard(t *testing.T, e Engine, state *manor.GameState, key string) string {
	t.Helper()
	card, err := e.Content.NewCard(key, e.Runtime.rand)
	if err != nil {
		t.Fatalf("NewCard(%q): %v", key, err)
	}
	for {
		if _, taken := state.Cards[card.ID]; !taken {
			break
		}
		card.ID = card.ID + "x"
	}
	state.Cards[card.ID] = card
	state.MoveToHand(card.ID)
	return card.ID
}

// giveSlot instantiates a slot template into the state, for rooms a fresh
// game has not charted yet.
func giveSlot(t *testing.T, e Engine, state *manor.GameState, key string) string {
	t.Helper()
	slot, err := e.Content.NewSlot(key, e.Runtime.rand)
	if err != nil {
		t.Fatalf("NewSlot(%q): %v", key, err)
	}
	for {
		if _, taken := state.Slots[slot.ID]; !taken {
			break
		}
		slot.ID = slot.ID + "x"
	}
	state.Slots[slot.ID] = slot
	return slot.ID
}

func move(e Engine, state manor.GameState, cardID, slotID string) manor.GameState {
	return e.Reduce(state, Action{Type: ActionMoveCardToSlot, CardID: cardID, SlotID: slotID})
}

func activate(e Engine, state manor.GameState, slotID string) manor.GameState {
	return e.Reduce(state, Action{Type: ActionActivateSlot, SlotID: slotID})
}

func requireLogContains(t *testing.T, state manor.GameState, want string) {
	t.Helper()
	for _, line := range state.Log {
		if strings.Contains(line, want) {
			return
		}
	}
	t.Fatalf("log does not contain %q; log: %v", want, state.Log)
}

func requireNoLogContains(t *testing.T, state manor.GameState, text string) {
	t.Helper()
	for _, line := range state.Log {
		if strings.Contains(line, text) {
			t.Fatalf("log unexpectedly contains %q: %q", text, line)
		}
	}
}

func inHand(state manor.GameState, cardID string) bool {
	for _, id := range state.Hand {
		if id == cardID {
			return true
		}
	}
	return false
}
