package game

import "manorfall/internal/domain/manor"

const workOpportunityChance = 0.40

type workBehavior struct{}

func (workBehavior) Activate(args ActivateArgs) ActivateResult {
	occupant, ok := personaOccupant(args)
	if !ok {
		return refused("Work sites need working hands.")
	}
	slot := args.Slot()
	delta := manor.ResourceDelta{Coin: 2 + slot.Level}
	if slot.Level >= 2 {
		delta.Lore = 1
	}
	args.State.Resources = args.State.Resources.Apply(delta)
	maybeSpawnOpportunity(args.State, args.Content, args.Rand, workOpportunityChance)
	return performed(occupant.Name + " puts in a shift at the " + slot.Name + ", earning " + delta.Describe() + ".")
}
