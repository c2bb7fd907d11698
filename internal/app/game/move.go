package game

import (
	"time"

	"manorfall/internal/domain/manor"
)

// compositionRule is one multi-card placement pattern, tried top-down before
// the default displacement. match inspects the target slot and the arriving
// card; apply rewrites the slot's roles.
type compositionRule struct {
	match func(state *manor.GameState, slot manor.Slot, card manor.CardInstance) bool
	apply func(state *manor.GameState, slot manor.Slot, card manor.CardInstance) manor.Slot
}

func seatAbility(state *manor.GameState, id string) manor.CardAbility {
	card, ok := state.Cards[id]
	if !ok {
		return manor.CardAbility{}
	}
	return manor.ResolveAbilities(card)
}

func isDream(ab manor.CardAbility) bool   { return ab.OnActivate == manor.AbilityStudyDreamRecord }
func isJournal(ab manor.CardAbility) bool { return ab.OnAssist == manor.AbilityAssistJournal }
func isPersona(ab manor.CardAbility) bool { return ab.OnAssist == manor.AbilityAssistPersona }

var compositionRules = []compositionRule{
	// Persona seated, journal dropped: the journal assists.
	{
		match: func(s *manor.GameState, slot manor.Slot, card manor.CardInstance) bool {
			return slot.OccupantID != "" && slot.AssistantID == "" &&
				isPersona(seatAbility(s, slot.OccupantID)) && isJournal(manor.ResolveAbilities(card))
		},
		apply: func(s *manor.GameState, slot manor.Slot, card manor.CardInstance) manor.Slot {
			slot.AssistantID = card.ID
			return slot
		},
	},
	// Persona seated, dream dropped: the dream assists.
	{
		match: func(s *manor.GameState, slot manor.Slot, card manor.CardInstance) bool {
			return slot.OccupantID != "" && slot.AssistantID == "" &&
				isPersona(seatAbility(s, slot.OccupantID)) && isDream(manor.ResolveAbilities(card))
		},
		apply: func(s *manor.GameState, slot manor.Slot, card manor.CardInstance) manor.Slot {
			slot.AssistantID = card.ID
			return slot
		},
	},
	// Dream seated, persona dropped: the persona assists the dream.
	{
		match: func(s *manor.GameState, slot manor.Slot, card manor.CardInstance) bool {
			return slot.OccupantID != "" && slot.AssistantID == "" &&
				isDream(seatAbility(s, slot.OccupantID)) && isPersona(manor.ResolveAbilities(card))
		},
		apply: func(s *manor.GameState, slot manor.Slot, card manor.CardInstance) manor.Slot {
			slot.AssistantID = card.ID
			return slot
		},
	},
	// Dream seated with persona assisting, journal dropped: it attaches.
	{
		match: func(s *manor.GameState, slot manor.Slot, card manor.CardInstance) bool {
			return slot.OccupantID != "" && slot.AssistantID != "" &&
				isDream(seatAbility(s, slot.OccupantID)) && isPersona(seatAbility(s, slot.AssistantID)) &&
				isJournal(manor.ResolveAbilities(card))
		},
		apply: func(s *manor.GameState, slot manor.Slot, card manor.CardInstance) manor.Slot {
			slot.AttachedCardIDs = append(slot.AttachedCardIDs, card.ID)
			return slot
		},
	},
	// Journal seated with persona assisting, dream dropped: roles rotate so
	// the dream leads and the journal waits as an attachment.
	{
		match: func(s *manor.GameState, slot manor.Slot, card manor.CardInstance) bool {
			return slot.OccupantID != "" && slot.AssistantID != "" &&
				isJournal(seatAbility(s, slot.OccupantID)) && isPersona(seatAbility(s, slot.AssistantID)) &&
				isDream(manor.ResolveAbilities(card))
		},
		apply: func(s *manor.GameState, slot manor.Slot, card manor.CardInstance) manor.Slot {
			slot.AttachedCardIDs = append(slot.AttachedCardIDs, slot.OccupantID)
			slot.OccupantID = card.ID
			return slot
		},
	},
}

func (e Engine) moveCardToSlot(state *manor.GameState, cardID, slotID string, now time.Time) {
	card, ok := state.Cards[cardID]
	if !ok {
		state.AppendLog("That card is nowhere to be found.")
		return
	}
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
	if card.Location.Area == manor.AreaSlot && card.Location.SlotID == slotID {
		state.Logf("%s is already there.", card.Name)
		return
	}
	// A card committed to a timed action cannot be pulled out mid-cycle.
	if card.Location.Area == manor.AreaSlot {
		if origin, ok := state.Slots[card.Location.SlotID]; ok {
			if remaining := origin.LockRemaining(now, state.PausedAt); remaining > 0 {
				state.Logf("%s cannot leave %s for another %s.", card.Name, origin.Name, manor.FormatDuration(remaining))
				return
			}
		}
	}
	if !e.slotAccepts(slot, card) {
		state.Logf("%s has no place in %s.", card.Name, slot.Name)
		return
	}

	detachEverywhere(state, card)

	slot = state.Slots[slotID]
	for _, rule := range compositionRules {
		if rule.match(state, slot, card) {
			slot = rule.apply(state, slot, card)
			state.Slots[slotID] = slot
			seatCard(state, cardID, slotID)
			state.Logf("%s joins %s.", card.Name, slot.Name)
			return
		}
	}

	// Default placement: any prior company is displaced back to hand, never
	// lost.
	if slot.OccupantID != "" && slot.OccupantID != cardID {
		for _, id := range slot.SeatedCardIDs() {
			state.MoveToHand(id)
		}
		state.Logf("%s makes way in %s.", state.Cards[slot.OccupantID].Name, slot.Name)
	}
	slot = state.Slots[slotID]
	slot.OccupantID = cardID
	slot.AssistantID = ""
	slot.AttachedCardIDs = nil
	state.Slots[slotID] = slot
	seatCard(state, cardID, slotID)
	state.Logf("%s settles into %s.", card.Name, slot.Name)
}

func (e Engine) recallCard(state *manor.GameState, cardID string, now time.Time) {
	card, ok := state.Cards[cardID]
	if !ok {
		state.AppendLog("That card is nowhere to be found.")
		return
	}
	if card.Location.Area != manor.AreaSlot {
		state.Logf("%s is already in hand.", card.Name)
		return
	}
	slot, ok := state.Slots[card.Location.SlotID]
	if ok {
		if remaining := slot.LockRemaining(now, state.PausedAt); remaining > 0 {
			state.Logf("%s cannot leave %s for another %s.", card.Name, slot.Name, manor.FormatDuration(remaining))
			return
		}
		state.DetachFromSlot(slot.ID, cardID)
	}
	state.MoveToHand(cardID)
	state.Logf("%s returns to hand.", card.Name)
}

// slotAccepts runs the slot's occupant filter, delegating to the behavior's
// predicate when the rule says so.
func (e Engine) slotAccepts(slot manor.Slot, card manor.CardInstance) bool {
	switch slot.Accepted {
	case manor.AcceptPersona:
		return card.Type == manor.CardPersona
	case manor.AcceptNonPersona:
		return card.Type != manor.CardPersona
	case manor.AcceptAny:
		return true
	case manor.AcceptDelegate:
		if behavior, ok := e.Behaviors.Get(slot.Type); ok {
			if acceptor, ok := behavior.(CardAcceptor); ok {
				return acceptor.AcceptsCard(slot, card)
			}
		}
		return true
	default:
		return true
	}
}

func detachEverywhere(state *manor.GameState, card manor.CardInstance) {
	switch card.Location.Area {
	case manor.AreaHand:
		state.RemoveFromHand(card.ID)
	case manor.AreaSlot:
		state.DetachFromSlot(card.Location.SlotID, card.ID)
	}
}

func seatCard(state *manor.GameState, cardID, slotID string) {
	card := state.Cards[cardID]
	card.Location = manor.CardLocation{Area: manor.AreaSlot, SlotID: slotID}
	state.Cards[cardID] = card
}
