package game

import "manorfall/internal/domain/manor"

type hearthBehavior struct{}

func (hearthBehavior) Activate(args ActivateArgs) ActivateResult {
	occupant, ok := personaOccupant(args)
	if !ok {
		return refused("The hearth will not light itself; someone must tend it.")
	}
	slot := args.Slot()
	delta := manor.ResourceDelta{Lore: 1 + slot.Level/2}
	if slot.Level >= 3 {
		delta.Glimmer = 1
	}
	args.State.Resources = args.State.Resources.Apply(delta)
	return performed(occupant.Name + " tends the fire and listens, gaining " + delta.Describe() + ".")
}
