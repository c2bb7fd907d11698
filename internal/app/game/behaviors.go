package game

import (
	"time"

	"manorfall/internal/domain/manor"
)

// ActivateArgs is handed to a slot behavior. State is the working copy for
// this dispatch; behaviors mutate it directly and report the outcome.
type ActivateArgs struct {
	State   *manor.GameState
	SlotID  string
	Content *manor.Content
	Now     time.Time
	Rand    func() float64
}

func (a ActivateArgs) Slot() manor.Slot {
	return a.State.Slots[a.SlotID]
}

func (a ActivateArgs) SaveSlot(slot manor.Slot) {
	a.State.Slots[a.SlotID] = slot
}

// ActivateResult reports whether the strategy performed. A refusal carries
// the explanatory log line and must leave the state untouched.
type ActivateResult struct {
	Performed bool
	Log       string
}

func refused(log string) ActivateResult {
	return ActivateResult{Performed: false, Log: log}
}

func performed(log string) ActivateResult {
	return ActivateResult{Performed: true, Log: log}
}

// SlotBehavior is the per-type activation strategy.
type SlotBehavior interface {
	Activate(args ActivateArgs) ActivateResult
}

// LockOverrider lets a behavior replace the default lock duration, e.g.
// damaged manor rooms take twice as long.
type LockOverrider interface {
	LockDuration(args ActivateArgs) (time.Duration, bool)
}

// CardAcceptor lets a behavior decide occupant eligibility when the slot's
// accepted rule is AcceptDelegate.
type CardAcceptor interface {
	AcceptsCard(slot manor.Slot, card manor.CardInstance) bool
}

// BehaviorSet is the slot-type capability table. It is a plain value handed
// to the engine, not package state, so tests and extensions swap strategies
// without touching a global.
type BehaviorSet struct {
	byType map[manor.SlotType]SlotBehavior
}

func DefaultBehaviors() *BehaviorSet {
	b := &BehaviorSet{}
	b.Reset()
	return b
}

func (b *BehaviorSet) Register(t manor.SlotType, behavior SlotBehavior) {
	if b.byType == nil {
		b.byType = map[manor.SlotType]SlotBehavior{}
	}
	b.byType[t] = behavior
}

func (b *BehaviorSet) Unregister(t manor.SlotType) {
	delete(b.byType, t)
}

// Reset restores the built-in strategies.
func (b *BehaviorSet) Reset() {
	b.byType = map[manor.SlotType]SlotBehavior{
		manor.SlotHearth:     hearthBehavior{},
		manor.SlotWork:       workBehavior{},
		manor.SlotStudy:      studyBehavior{},
		manor.SlotRitual:     ritualBehavior{},
		manor.SlotExpedition: expeditionBehavior{},
		manor.SlotManor:      manorBehavior{},
		manor.SlotBedroom:    bedroomBehavior{},
	}
}

func (b *BehaviorSet) Get(t manor.SlotType) (SlotBehavior, bool) {
	behavior, ok := b.byType[t]
	return behavior, ok
}

// personaOccupant fetches the slot's occupant when it resolves to a persona
// assist hook; behaviors gate on resolved abilities, not hard-coded types.
func personaOccupant(args ActivateArgs) (manor.CardInstance, bool) {
	slot := args.Slot()
	if slot.OccupantID == "" {
		return manor.CardInstance{}, false
	}
	card, ok := args.State.Cards[slot.OccupantID]
	if !ok {
		return manor.CardInstance{}, false
	}
	if manor.ResolveAbilities(card).OnAssist != manor.AbilityAssistPersona {
		return manor.CardInstance{}, false
	}
	return card, true
}

// maybeSpawnOpportunity rolls once against chance and, on success, draws a
// uniform opportunity template into the hand face-up.
func maybeSpawnOpportunity(state *manor.GameState, content *manor.Content, r func() float64, chance float64) {
	if len(content.Opportunities) == 0 || r() >= chance {
		return
	}
	key := content.Opportunities[int(r()*float64(len(content.Opportunities)))%len(content.Opportunities)]
	card, err := content.NewCard(key, r)
	if err != nil {
		return
	}
	for {
		if _, taken := state.Cards[card.ID]; !taken {
			break
		}
		card.ID = card.ID + "x"
	}
	state.Cards[card.ID] = card
	state.MoveToHand(card.ID)
	state.Logf("An opportunity presents itself: %s.", card.Name)
}

// unlockDiscovery records a discovery and handles its side effects; the
// umbral gate lazily instantiates an expedition slot the first time.
func unlockDiscovery(state *manor.GameState, content *manor.Content, r func() float64, spec manor.DiscoverySpec) {
	if !state.Unlock(spec) {
		return
	}
	state.Logf("Discovery: %s.", spec.Name)
	if spec.Key != manor.UmbralGateKey {
		return
	}
	if _, exists := state.SlotByKey(manor.UmbralGateKey); exists {
		return
	}
	slot, err := content.NewSlot(manor.UmbralGateKey, r)
	if err != nil {
		return
	}
	state.Slots[slot.ID] = slot
	state.Logf("%s stands open at the garden wall.", slot.Name)
}
