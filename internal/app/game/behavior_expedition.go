package game

import "manorfall/internal/domain/manor"

const expeditionOpportunityChance = 0.50

type expeditionBehavior struct{}

func (expeditionBehavior) Activate(args ActivateArgs) ActivateResult {
	occupant, ok := personaOccupant(args)
	if !ok {
		return refused("No one steps through the gate alone, because no one is there to step.")
	}
	if args.State.Resources.Glimmer < 1 {
		return refused("The gate takes glimmer as a toll, and there is none to give.")
	}
	slot := args.Slot()
	delta := manor.ResourceDelta{Glimmer: -1, Coin: 1 + slot.Level, Lore: 2 + slot.Level}
	args.State.Resources = args.State.Resources.Apply(delta)
	maybeSpawnOpportunity(args.State, args.Content, args.Rand, expeditionOpportunityChance)
	return performed(occupant.Name + " returns from beyond the gate with " + manor.ResourceDelta{Coin: delta.Coin, Lore: delta.Lore}.Describe() + ".")
}
