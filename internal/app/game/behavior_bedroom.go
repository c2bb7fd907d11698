package game

import "manorfall/internal/domain/manor"

// bedroomBehavior stages a dream card for delivery once the night passes.
type bedroomBehavior struct{}

func (bedroomBehavior) Activate(args ActivateArgs) ActivateResult {
	occupant, ok := personaOccupant(args)
	if !ok {
		return refused("An empty bed dreams of nothing.")
	}
	slot := args.Slot()
	if slot.Pending != nil {
		return refused(occupant.Name + " is already asleep here.")
	}
	dream, err := args.Content.NewCard(manor.DreamKey, args.Rand)
	if err != nil {
		return refused("Sleep will not come tonight.")
	}
	for {
		if _, taken := args.State.Cards[dream.ID]; !taken {
			break
		}
		dream.ID = dream.ID + "x"
	}
	dream.Location = manor.CardLocation{Area: manor.AreaLost}
	args.State.Cards[dream.ID] = dream
	slot.Pending = &manor.PendingAction{
		Kind:    manor.PendingDeliverCards,
		CardIDs: []string{dream.ID},
		Reveal:  true,
	}
	args.SaveSlot(slot)
	return performed(occupant.Name + " sleeps, and something begins to surface.")
}
