package game

import (
	"fmt"
	"time"

	"manorfall/internal/domain/manor"
)

// manorBehavior covers location slots: charting hidden rooms through a
// deferred exploration, and working repairs while the slot is damaged.
type manorBehavior struct{}

func (manorBehavior) Activate(args ActivateArgs) ActivateResult {
	occupant, ok := personaOccupant(args)
	if !ok {
		return refused("These halls are not explored by wishing.")
	}
	slot := args.Slot()

	if slot.Condition == manor.SlotDamaged {
		return progressRepair(args, slot, occupant)
	}

	if slot.Pending != nil {
		return refused(fmt.Sprintf("%s is already being charted.", slot.Name))
	}

	kind := manor.PendingExploreLocation
	if tpl, ok := args.Content.Slots[slot.Key]; ok && tpl.RemoveWhenCharted {
		kind = manor.PendingExploreManor
	}
	slot.Pending = &manor.PendingAction{Kind: kind}
	args.SaveSlot(slot)
	return performed(occupant.Name + " sets out to chart " + slot.Name + ".")
}

func progressRepair(args ActivateArgs, slot manor.Slot, occupant manor.CardInstance) ActivateResult {
	if slot.Repair == nil {
		return refused(slot.Name + " is ruined beyond any plan of repair.")
	}
	if !slot.RepairStarted {
		slot.RepairStarted = true
		args.SaveSlot(slot)
		return performed(occupant.Name + " clears rubble and begins repairs on " + slot.Name + ".")
	}
	slot.Repair.Remaining--
	if slot.Repair.Remaining > 0 {
		args.SaveSlot(slot)
		return performed(fmt.Sprintf("%s works on %s; %d cycles of labor remain.", occupant.Name, slot.Name, slot.Repair.Remaining))
	}
	args.SaveSlot(slot)
	restoreSlot(args.State, args.Content, args.Rand, args.SlotID)
	restored := args.Slot()
	return performed(fmt.Sprintf("%s is restored; the %s is whole again.", slot.Name, restored.Name))
}

// Damaged rooms take twice as long to lock out after a work cycle.
func (manorBehavior) LockDuration(args ActivateArgs) (time.Duration, bool) {
	slot := args.Slot()
	if slot.Condition == manor.SlotDamaged {
		return 2 * args.Content.LockDuration(slot), true
	}
	return 0, false
}

// restoreSlot swaps a repaired slot for its target template in place,
// preserving id and occupant. A restored study hands out an empty journal.
func restoreSlot(state *manor.GameState, content *manor.Content, r func() float64, slotID string) {
	slot, ok := state.Slots[slotID]
	if !ok || slot.Repair == nil {
		return
	}
	restored, err := content.NewSlot(slot.Repair.TargetKey, r)
	if err != nil {
		state.Logf("The plans for %s are lost; the ruin stays a ruin.", slot.Name)
		return
	}
	restored.ID = slot.ID
	restored.OccupantID = slot.OccupantID
	if slot.AssistantID != "" {
		state.MoveToHand(slot.AssistantID)
	}
	for _, id := range slot.AttachedCardIDs {
		state.MoveToHand(id)
	}
	state.Slots[slotID] = restored

	if restored.Type == manor.SlotStudy {
		journal, err := content.NewCard(manor.JournalKey, r)
		if err == nil {
			for {
				if _, taken := state.Cards[journal.ID]; !taken {
					break
				}
				journal.ID = journal.ID + "x"
			}
			state.Cards[journal.ID] = journal
			state.MoveToHand(journal.ID)
			state.Logf("Among the shelves of the %s, a blank journal survives.", restored.Name)
		}
	}
}
