package game

import (
	"time"

	"manorfall/internal/domain/manor"
)

// resolveTolerance lets a lock within a quarter second of maturing count as
// matured, so resolver and selector sweeps agree at the boundary.
const resolveTolerance = 250 * time.Millisecond

// resolvePending commits every matured deferred outcome. Only this function
// clears a slot's pending action, and running it with nothing matured is a
// no-op, so redundant invocation is always safe.
func (e Engine) resolvePending(state *manor.GameState, now time.Time) {
	for _, slotID := range state.SortedSlotIDs() {
		slot, ok := state.Slots[slotID]
		if !ok || slot.Pending == nil {
			continue
		}
		if slot.LockedUntil != nil && slot.LockRemaining(now, state.PausedAt) > resolveTolerance {
			continue
		}
		pending := *slot.Pending
		slot.Pending = nil
		state.Slots[slotID] = slot

		switch pending.Kind {
		case manor.PendingExploreManor, manor.PendingExploreLocation:
			e.resolveExploration(state, slotID)
		case manor.PendingDeliverCards:
			resolveDelivery(state, pending)
		}
	}
}

// resolveExploration reveals hidden slot templates tied to the origin
// location. The manor's policy reveals every missing room at once and
// removes the origin once nothing stays hidden; other locations chart one
// room per trip.
func (e Engine) resolveExploration(state *manor.GameState, originID string) {
	origin, ok := state.Slots[originID]
	if !ok {
		return
	}
	tpl, ok := e.Content.Slots[origin.Key]
	if !ok || len(tpl.Reveals) == 0 {
		state.Logf("%s holds no secrets after all.", origin.Name)
		return
	}

	missing := make([]string, 0, len(tpl.Reveals))
	for _, key := range tpl.Reveals {
		if _, exists := state.SlotByKey(key); !exists {
			missing = append(missing, key)
		}
	}

	batch := missing
	if tpl.RevealBatch > 0 && len(batch) > tpl.RevealBatch {
		batch = batch[:tpl.RevealBatch]
	}
	for _, key := range batch {
		revealed, err := e.Content.NewSlot(key, e.Runtime.rand)
		if err != nil {
			continue
		}
		for {
			if _, taken := state.Slots[revealed.ID]; !taken {
				break
			}
			revealed.ID = revealed.ID + "x"
		}
		state.Slots[revealed.ID] = revealed
		state.Logf("Exploration uncovers the %s.", revealed.Name)
	}
	if len(batch) == 0 {
		state.Logf("No further rooms remain behind %s.", origin.Name)
	}

	if tpl.RemoveWhenCharted && len(missing) == len(batch) {
		for _, id := range origin.SeatedCardIDs() {
			state.MoveToHand(id)
		}
		delete(state.Slots, originID)
		state.Logf("%s is fully charted.", origin.Name)
	}
}

// resolveDelivery moves staged cards out of the lost zone into the hand.
func resolveDelivery(state *manor.GameState, pending manor.PendingAction) {
	for _, cardID := range pending.CardIDs {
		card, ok := state.Cards[cardID]
		if !ok {
			continue
		}
		if card.Location.Area != manor.AreaLost {
			continue
		}
		state.MoveToHand(cardID)
		if pending.Reveal {
			state.PendingReveals = append(state.PendingReveals, cardID)
		}
		state.Logf("%s surfaces, waiting in hand.", card.Name)
	}
}
