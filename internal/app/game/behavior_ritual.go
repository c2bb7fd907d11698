package game

import (
	"fmt"

	"manorfall/internal/domain/manor"
)

const ritualOpportunityChance = 0.35

type ritualBehavior struct{}

func ritualLoreCost(level int) int {
	cost := level + 1
	if cost < 2 {
		cost = 2
	}
	return cost
}

func (ritualBehavior) Activate(args ActivateArgs) ActivateResult {
	occupant, ok := personaOccupant(args)
	if !ok {
		return refused("The circle stays cold without a celebrant.")
	}
	slot := args.Slot()
	cost := ritualLoreCost(slot.Level)
	if args.State.Resources.Lore < cost {
		return refused(fmt.Sprintf("The rite demands %d lore; the house holds less.", cost))
	}
	gain := 1 + slot.Level/2
	args.State.Resources = args.State.Resources.Apply(manor.ResourceDelta{Lore: -cost, Glimmer: gain})
	maybeSpawnOpportunity(args.State, args.Content, args.Rand, ritualOpportunityChance)
	return performed(fmt.Sprintf("%s completes the rite, trading %d lore for %d glimmer.", occupant.Name, cost, gain))
}
