package game

import "manorfall/internal/domain/manor"

type ActionType string

const (
	ActionMoveCardToSlot    ActionType = "move_card_to_slot"
	ActionRecallCard        ActionType = "recall_card"
	ActionActivateSlot      ActionType = "activate_slot"
	ActionUpgradeSlot       ActionType = "upgrade_slot"
	ActionAdvanceTime       ActionType = "advance_time"
	ActionResolvePending    ActionType = "resolve_pending_slot_actions"
	ActionSetTimeScale      ActionType = "set_time_scale"
	ActionAcknowledgeReveal ActionType = "acknowledge_card_reveal"
)

// Action is the closed intake of the reducer: one tagged value per dispatch.
type Action struct {
	Type   ActionType `json:"type"`
	CardID string     `json:"card_id,omitempty"`
	SlotID string     `json:"slot_id,omitempty"`
	Scale  *float64   `json:"scale,omitempty"`
}

// Engine is the game-state reducer with its capabilities injected: template
// content, the slot-behavior table, and the clock/random runtime. Reduce is
// a pure function over snapshots; invalid player input settles into the
// state log, never an error.
type Engine struct {
	Content   *manor.Content
	Behaviors *BehaviorSet
	Runtime   Runtime
}

func NewEngine(content *manor.Content, behaviors *BehaviorSet, runtime Runtime) Engine {
	if content == nil {
		content = manor.DefaultContent()
	}
	if behaviors == nil {
		behaviors = DefaultBehaviors()
	}
	return Engine{Content: content, Behaviors: behaviors, Runtime: runtime}
}

// Reduce applies one action to a snapshot and returns the next snapshot. The
// input is never mutated.
func (e Engine) Reduce(state manor.GameState, action Action) manor.GameState {
	next := state.Clone()
	now := e.Runtime.now()
	next.UpdatedAt = now

	switch action.Type {
	case ActionMoveCardToSlot:
		e.moveCardToSlot(&next, action.CardID, action.SlotID, now)
	case ActionRecallCard:
		e.recallCard(&next, action.CardID, now)
	case ActionActivateSlot:
		e.activateSlot(&next, action.SlotID, now)
	case ActionUpgradeSlot:
		e.upgradeSlot(&next, action.SlotID)
	case ActionAdvanceTime:
		e.advanceTime(&next, now)
	case ActionResolvePending:
		e.resolvePending(&next, now)
	case ActionSetTimeScale:
		scale := 1.0
		if action.Scale != nil {
			scale = *action.Scale
		}
		e.setTimeScale(&next, scale, now)
	case ActionAcknowledgeReveal:
		acknowledgeReveal(&next, action.CardID)
	default:
		next.Logf("The house does not understand %q.", string(action.Type))
	}
	return next
}

func (e Engine) upgradeSlot(state *manor.GameState, slotID string) {
	slot, ok := state.Slots[slotID]
	if !ok {
		state.AppendLog("No such place to improve.")
		return
	}
	cost := slot.UpgradeCost + (slot.Level-1)*2
	if state.Resources.Glimmer < cost {
		state.Logf("Improving the %s calls for %d glimmer.", slot.Name, cost)
		return
	}
	slot.Level++
	state.Slots[slotID] = slot
	state.Resources = state.Resources.Apply(manor.ResourceDelta{Glimmer: -cost})
	state.Logf("The %s is improved to level %d.", slot.Name, slot.Level)
}

func acknowledgeReveal(state *manor.GameState, cardID string) {
	for i, id := range state.PendingReveals {
		if id == cardID {
			state.PendingReveals = append(state.PendingReveals[:i], state.PendingReveals[i+1:]...)
			return
		}
	}
}
