package game

import (
	"fmt"
	"strings"

	"manorfall/internal/domain/manor"
)

// studyBehavior dispatches on the occupant's resolved abilities rather than
// its concrete type: dreams get recorded, personas reflect, reward cards are
// consumed, and permanent cards with no applicable branch refuse outright.
type studyBehavior struct{}

func (studyBehavior) Activate(args ActivateArgs) ActivateResult {
	slot := args.Slot()
	if slot.OccupantID == "" {
		return refused("There is nothing on the desk to study.")
	}
	occupant, ok := args.State.Cards[slot.OccupantID]
	if !ok {
		return refused("Whatever lay on the desk is gone.")
	}

	switch manor.ResolveAbilities(occupant).OnActivate {
	case manor.AbilityStudyDreamRecord:
		return recordDream(args, slot, occupant)
	case manor.AbilityStudyPersonaReflection:
		args.State.Resources = args.State.Resources.Apply(manor.ResourceDelta{Lore: 1})
		return performed(occupant.Name + " reflects quietly, gaining 1 lore.")
	case manor.AbilityStudyReward:
		if occupant.Rewards != nil {
			return consumeReward(args, slot, occupant)
		}
	}

	if occupant.Permanent {
		return refused(occupant.Name + " resists being consumed by study.")
	}
	return refused("Study of " + occupant.Name + " yields nothing.")
}

// recordDream needs a persona assisting. The dream's title is written into
// an attached journal, or a fresh one, and the journal is staged for
// delivery once the slot's lock matures.
func recordDream(args ActivateArgs, slot manor.Slot, dream manor.CardInstance) ActivateResult {
	if slot.AssistantID == "" {
		return refused("The dream slips away with no one to write it down.")
	}
	assistant, ok := args.State.Cards[slot.AssistantID]
	if !ok || manor.ResolveAbilities(assistant).OnAssist != manor.AbilityAssistPersona {
		return refused("The dream slips away with no one to write it down.")
	}

	journal, found := attachedJournal(args.State, slot)
	if found {
		journal.Entries = appendEntry(journal.Entries, dream.Name)
		journal.Description = describeEntries(journal.Entries)
		args.State.DetachFromSlot(slot.ID, journal.ID)
	} else {
		fresh, err := args.Content.NewCard(manor.JournalKey, args.Rand)
		if err != nil {
			return refused("There is nothing to write in.")
		}
		for {
			if _, taken := args.State.Cards[fresh.ID]; !taken {
				break
			}
			fresh.ID = fresh.ID + "x"
		}
		fresh.Entries = []string{dream.Name}
		fresh.Description = describeEntries(fresh.Entries)
		journal = fresh
	}
	journal.Location = manor.CardLocation{Area: manor.AreaLost}
	args.State.Cards[journal.ID] = journal

	// Removing the occupant promotes the assisting persona to sole occupant.
	args.State.RemoveCard(dream.ID)

	slot = args.Slot()
	slot.Pending = &manor.PendingAction{
		Kind:    manor.PendingDeliverCards,
		CardIDs: []string{journal.ID},
		Reveal:  true,
	}
	args.SaveSlot(slot)
	return performed(fmt.Sprintf("%s records the dream \"%s\" before it fades.", assistant.Name, dream.Name))
}

func consumeReward(args ActivateArgs, slot manor.Slot, card manor.CardInstance) ActivateResult {
	var yield string
	if card.Rewards.Resources != nil {
		args.State.Resources = args.State.Resources.Apply(*card.Rewards.Resources)
		yield = ", yielding " + card.Rewards.Resources.Describe()
	}
	if card.Rewards.Discovery != nil {
		unlockDiscovery(args.State, args.Content, args.Rand, *card.Rewards.Discovery)
	}

	// Empty the seat wholesale: the reward card is destroyed, anything else
	// seated returns to hand.
	displaced := make([]string, 0, 1+len(slot.AttachedCardIDs))
	if slot.AssistantID != "" {
		displaced = append(displaced, slot.AssistantID)
	}
	displaced = append(displaced, slot.AttachedCardIDs...)
	slot.OccupantID = ""
	slot.AssistantID = ""
	slot.AttachedCardIDs = nil
	args.SaveSlot(slot)
	args.State.RemoveCard(card.ID)
	for _, id := range displaced {
		args.State.MoveToHand(id)
	}
	return performed(card.Name + " gives up its secrets" + yield + ".")
}

func attachedJournal(state *manor.GameState, slot manor.Slot) (manor.CardInstance, bool) {
	for _, id := range slot.AttachedCardIDs {
		card, ok := state.Cards[id]
		if !ok {
			continue
		}
		if manor.ResolveAbilities(card).OnAssist == manor.AbilityAssistJournal {
			return card, true
		}
	}
	return manor.CardInstance{}, false
}

func appendEntry(entries []string, title string) []string {
	for _, e := range entries {
		if e == title {
			return entries
		}
	}
	return append(entries, title)
}

func describeEntries(entries []string) string {
	if len(entries) == 1 {
		return "A single entry, written in haste: " + entries[0] + "."
	}
	return fmt.Sprintf("%d entries, in the same hand: %s.", len(entries), strings.Join(entries, "; "))
}
