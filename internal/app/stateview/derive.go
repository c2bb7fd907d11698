package stateview

import (
	"sort"
	"time"

	"manorfall/internal/domain/manor"
)

// SlotSummary is the UI-ready projection of one slot: interactivity, lock
// countdown, and an availability note. Pure data derived from a snapshot and
// an explicit now.
type SlotSummary struct {
	ID              string         `json:"id"`
	Key             string         `json:"key"`
	Name            string         `json:"name"`
	Type            manor.SlotType `json:"type"`
	Level           int            `json:"level"`
	OccupantID      string         `json:"occupant_id,omitempty"`
	AssistantID     string         `json:"assistant_id,omitempty"`
	AttachedCardIDs []string       `json:"attached_card_ids,omitempty"`
	Damaged         bool           `json:"damaged,omitempty"`
	RepairRemaining int            `json:"repair_remaining,omitempty"`
	Locked          bool           `json:"locked"`
	RemainingMs     int64          `json:"remaining_ms,omitempty"`
	Remaining       string         `json:"remaining,omitempty"`
	HasPending      bool           `json:"has_pending,omitempty"`
	Activatable     bool           `json:"activatable"`
	Note            string         `json:"note,omitempty"`
}

// SlotSummaries projects every unlocked slot, sorted by name for a stable
// presentation order. Lock countdowns honor pause compensation.
func SlotSummaries(state manor.GameState, now time.Time) []SlotSummary {
	out := make([]SlotSummary, 0, len(state.Slots))
	for _, slot := range state.Slots {
		if !slot.Unlocked {
			continue
		}
		s := SlotSummary{
			ID:              slot.ID,
			Key:             slot.Key,
			Name:            slot.Name,
			Type:            slot.Type,
			Level:           slot.Level,
			OccupantID:      slot.OccupantID,
			AssistantID:     slot.AssistantID,
			AttachedCardIDs: append([]string(nil), slot.AttachedCardIDs...),
			Damaged:         slot.Condition == manor.SlotDamaged,
			HasPending:      slot.Pending != nil,
		}
		if slot.Repair != nil {
			s.RepairRemaining = slot.Repair.Remaining
		}
		remaining := slot.LockRemaining(now, state.PausedAt)
		if remaining > 0 {
			s.Locked = true
			s.RemainingMs = remaining.Milliseconds()
			s.Remaining = manor.FormatDuration(remaining)
			s.Note = "Busy for another " + s.Remaining + "."
		} else if slot.Pending != nil {
			s.Note = "Something here is about to resolve."
		} else if slot.OccupantID == "" {
			s.Note = "Waiting for a card."
		}
		s.Activatable = !s.Locked && state.PausedAt == nil
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ExplorationNote reports how much of a location remains uncharted.
type ExplorationNote struct {
	SlotID    string `json:"slot_id"`
	Name      string `json:"name"`
	Hidden    int    `json:"hidden"`
	Exploring bool   `json:"exploring"`
}

// ExplorationAvailability lists location slots and how many hidden rooms
// each still guards.
func ExplorationAvailability(state manor.GameState, content *manor.Content) []ExplorationNote {
	out := []ExplorationNote{}
	for _, slotID := range sortedSlotIDs(state) {
		slot := state.Slots[slotID]
		if slot.Type != manor.SlotManor || slot.Condition == manor.SlotDamaged {
			continue
		}
		tpl, ok := content.Slots[slot.Key]
		if !ok || len(tpl.Reveals) == 0 {
			continue
		}
		hidden := 0
		for _, key := range tpl.Reveals {
			if _, exists := state.SlotByKey(key); !exists {
				hidden++
			}
		}
		out = append(out, ExplorationNote{
			SlotID:    slot.ID,
			Name:      slot.Name,
			Hidden:    hidden,
			Exploring: slot.Pending != nil,
		})
	}
	return out
}

// HandCards resolves the hand's card ids in hand order.
func HandCards(state manor.GameState) []manor.CardInstance {
	out := make([]manor.CardInstance, 0, len(state.Hand))
	for _, id := range state.Hand {
		if card, ok := state.Cards[id]; ok {
			out = append(out, card)
		}
	}
	return out
}

func sortedSlotIDs(state manor.GameState) []string {
	ids := make([]string, 0, len(state.Slots))
	for id := range state.Slots {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
