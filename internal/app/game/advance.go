package game

import (
	"time"

	"manorfall/internal/domain/manor"
)

const advanceOpportunityChance = 0.65

// advanceTime moves the world one cycle: countdowns tick, repairs progress,
// matured deferrals settle, and the day may bring an opportunity.
func (e Engine) advanceTime(state *manor.GameState, now time.Time) {
	state.Cycle++

	expireCards(state)
	progressRepairs(state, e.Content, e.Runtime.rand)
	e.resolvePending(state, now)
	maybeSpawnOpportunity(state, e.Content, e.Runtime.rand, advanceOpportunityChance)
}

// expireCards decrements every mortal card's countdown; at zero the card is
// removed from wherever it sits and deleted. Cards staged in the lost zone
// are outside time and do not tick.
func expireCards(state *manor.GameState) {
	for _, cardID := range state.SortedCardIDs() {
		card, ok := state.Cards[cardID]
		if !ok || card.Permanent || card.RemainingTurns == nil {
			continue
		}
		if card.Location.Area == manor.AreaLost {
			continue
		}
		turns := *card.RemainingTurns - 1
		if turns > 0 {
			card.RemainingTurns = &turns
			state.Cards[cardID] = card
			continue
		}
		state.RemoveCard(cardID)
		state.Logf("%s fades before it can be used.", card.Name)
	}
}

// progressRepairs advances every started repair that has a persona on site;
// a finished repair restores the slot in place.
func progressRepairs(state *manor.GameState, content *manor.Content, r func() float64) {
	for _, slotID := range state.SortedSlotIDs() {
		slot, ok := state.Slots[slotID]
		if !ok || slot.Condition != manor.SlotDamaged || !slot.RepairStarted || slot.Repair == nil {
			continue
		}
		occupant, ok := state.Cards[slot.OccupantID]
		if slot.OccupantID == "" || !ok {
			continue
		}
		if manor.ResolveAbilities(occupant).OnAssist != manor.AbilityAssistPersona {
			continue
		}
		slot.Repair.Remaining--
		if slot.Repair.Remaining > 0 {
			state.Slots[slotID] = slot
			continue
		}
		state.Slots[slotID] = slot
		name := slot.Name
		restoreSlot(state, content, r, slotID)
		state.Logf("The work on %s is done.", name)
	}
}
