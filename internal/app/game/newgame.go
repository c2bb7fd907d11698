package game

import (
	"fmt"

	"manorfall/internal/domain/manor"
)

// startingSlots are instantiated for every fresh game; the rest of the
// manor is found by exploring.
var startingSlots = []string{
	"great-hearth",
	"scullery",
	"reading-room",
	"ritual-circle",
	"master-bedroom",
	"old-manor",
}

// NewGame builds the opening snapshot: the hero persona in hand, the
// starting rooms, seed resources, and the story-seed log. An unknown
// template here is a configuration error, not a player error, and fails
// fast.
func (e Engine) NewGame(sessionID string) (manor.GameState, error) {
	state := manor.GameState{
		SessionID: sessionID,
		Cards:     map[string]manor.CardInstance{},
		Slots:     map[string]manor.Slot{},
		Resources: manor.Resources{Coin: 2, Lore: 1},
		TimeScale: 1,
		Version:   1,
		UpdatedAt: e.Runtime.now(),
	}
	for _, line := range manor.OpeningLog() {
		state.AppendLog(line)
	}

	hero, err := e.Content.NewCard(manor.HeroKey, e.Runtime.rand)
	if err != nil {
		return manor.GameState{}, fmt.Errorf("seed hero: %w", err)
	}
	state.Cards[hero.ID] = hero
	state.MoveToHand(hero.ID)
	state.HeroCardID = hero.ID

	for _, key := range startingSlots {
		slot, err := e.Content.NewSlot(key, e.Runtime.rand)
		if err != nil {
			return manor.GameState{}, fmt.Errorf("seed slot %s: %w", key, err)
		}
		for {
			if _, taken := state.Slots[slot.ID]; !taken {
				break
			}
			slot.ID = slot.ID + "x"
		}
		state.Slots[slot.ID] = slot
	}
	return state, nil
}
