package manor

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Apply adds a delta to each counter, clamping every result at zero. Deltas
// never drive a counter negative.
func (r Resources) Apply(d ResourceDelta) Resources {
	return Resources{
		Coin:    clampZero(r.Coin + d.Coin),
		Lore:    clampZero(r.Lore + d.Lore),
		Glimmer: clampZero(r.Glimmer + d.Glimmer),
	}
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// Describe renders a delta for the narrative log, e.g. "2 lore and 1 glimmer".
func (d ResourceDelta) Describe() string {
	parts := make([]string, 0, 3)
	for _, p := range []struct {
		n    int
		name string
	}{{d.Coin, "coin"}, {d.Lore, "lore"}, {d.Glimmer, "glimmer"}} {
		if p.n == 0 {
			continue
		}
		n := p.n
		if n < 0 {
			n = -n
		}
		parts = append(parts, fmt.Sprintf("%d %s", n, p.name))
	}
	switch len(parts) {
	case 0:
		return "nothing"
	case 1:
		return parts[0]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
	}
}

func (c CardInstance) HasTrait(trait string) bool {
	for _, t := range c.Traits {
		if t == trait {
			return true
		}
	}
	return false
}

// LockRemaining reports how much real time is left on the slot's lock. While
// paused the remainder is measured against pausedAt, so elapsed wall time
// during a pause never counts against the lock.
func (s Slot) LockRemaining(now time.Time, pausedAt *time.Time) time.Duration {
	if s.LockedUntil == nil {
		return 0
	}
	ref := now
	if pausedAt != nil && pausedAt.Before(now) {
		ref = *pausedAt
	}
	remaining := s.LockedUntil.Sub(ref)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// SeatedCardIDs lists every card id the slot references, occupant first.
func (s Slot) SeatedCardIDs() []string {
	ids := make([]string, 0, 2+len(s.AttachedCardIDs))
	if s.OccupantID != "" {
		ids = append(ids, s.OccupantID)
	}
	if s.AssistantID != "" {
		ids = append(ids, s.AssistantID)
	}
	ids = append(ids, s.AttachedCardIDs...)
	return ids
}

// AppendLog prepends a line to the bounded narrative log, discarding the
// oldest entry past capacity.
func (g *GameState) AppendLog(line string) {
	g.Log = append([]string{line}, g.Log...)
	if len(g.Log) > LogCapacity {
		g.Log = g.Log[:LogCapacity]
	}
}

func (g *GameState) Logf(format string, args ...any) {
	g.AppendLog(fmt.Sprintf(format, args...))
}

// HasDiscovery reports whether a discovery key was already unlocked.
func (g *GameState) HasDiscovery(key string) bool {
	for _, d := range g.Discoveries {
		if d.Key == key {
			return true
		}
	}
	return false
}

// Unlock records a discovery, newest first. Unlocking a known key again is a
// no-op and returns false.
func (g *GameState) Unlock(spec DiscoverySpec) bool {
	if g.HasDiscovery(spec.Key) {
		return false
	}
	g.Discoveries = append([]Discovery{{
		ID:          "discovery-" + spec.Key,
		Key:         spec.Key,
		Name:        spec.Name,
		Description: spec.Description,
		Cycle:       g.Cycle,
	}}, g.Discoveries...)
	return true
}

func (g *GameState) SlotByKey(key string) (Slot, bool) {
	for _, s := range g.Slots {
		if s.Key == key {
			return s, true
		}
	}
	return Slot{}, false
}

// SortedSlotIDs returns slot ids in a stable order so reducer passes over the
// slot map stay deterministic.
func (g *GameState) SortedSlotIDs() []string {
	ids := make([]string, 0, len(g.Slots))
	for id := range g.Slots {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (g *GameState) SortedCardIDs() []string {
	ids := make([]string, 0, len(g.Cards))
	for id := range g.Cards {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// MoveToHand appends the card to the hand and rewrites its location. No-op
// for unknown ids.
func (g *GameState) MoveToHand(cardID string) {
	card, ok := g.Cards[cardID]
	if !ok {
		return
	}
	for _, id := range g.Hand {
		if id == cardID {
			return
		}
	}
	card.Location = CardLocation{Area: AreaHand}
	g.Cards[cardID] = card
	g.Hand = append(g.Hand, cardID)
}

func (g *GameState) RemoveFromHand(cardID string) {
	for i, id := range g.Hand {
		if id == cardID {
			g.Hand = append(g.Hand[:i], g.Hand[i+1:]...)
			return
		}
	}
}

// DetachFromSlot clears the card's role on the slot. Recalling the occupant
// promotes the assistant to sole occupant.
func (g *GameState) DetachFromSlot(slotID, cardID string) {
	slot, ok := g.Slots[slotID]
	if !ok {
		return
	}
	switch cardID {
	case slot.OccupantID:
		slot.OccupantID = slot.AssistantID
		slot.AssistantID = ""
	case slot.AssistantID:
		slot.AssistantID = ""
	default:
		for i, id := range slot.AttachedCardIDs {
			if id == cardID {
				slot.AttachedCardIDs = append(slot.AttachedCardIDs[:i], slot.AttachedCardIDs[i+1:]...)
				break
			}
		}
	}
	g.Slots[slotID] = slot
}

// RemoveCard deletes a card entirely: out of its slot or hand, out of the
// card map, and out of any pending reveal queue.
func (g *GameState) RemoveCard(cardID string) {
	card, ok := g.Cards[cardID]
	if !ok {
		return
	}
	switch card.Location.Area {
	case AreaHand:
		g.RemoveFromHand(cardID)
	case AreaSlot:
		g.DetachFromSlot(card.Location.SlotID, cardID)
	}
	for i, id := range g.PendingReveals {
		if id == cardID {
			g.PendingReveals = append(g.PendingReveals[:i], g.PendingReveals[i+1:]...)
			break
		}
	}
	delete(g.Cards, cardID)
}

// Clone deep-copies the aggregate so a reducer pass can mutate freely while
// the caller's snapshot stays intact.
func (g GameState) Clone() GameState {
	next := g
	next.Cards = make(map[string]CardInstance, len(g.Cards))
	for id, card := range g.Cards {
		next.Cards[id] = cloneCard(card)
	}
	next.Slots = make(map[string]Slot, len(g.Slots))
	for id, slot := range g.Slots {
		next.Slots[id] = cloneSlot(slot)
	}
	next.Hand = append([]string(nil), g.Hand...)
	next.Log = append([]string(nil), g.Log...)
	next.Discoveries = append([]Discovery(nil), g.Discoveries...)
	next.PendingReveals = append([]string(nil), g.PendingReveals...)
	if g.PausedAt != nil {
		paused := *g.PausedAt
		next.PausedAt = &paused
	}
	return next
}

func cloneCard(c CardInstance) CardInstance {
	next := c
	next.Traits = append([]string(nil), c.Traits...)
	next.Entries = append([]string(nil), c.Entries...)
	if c.RemainingTurns != nil {
		turns := *c.RemainingTurns
		next.RemainingTurns = &turns
	}
	if c.Rewards != nil {
		rewards := *c.Rewards
		if c.Rewards.Resources != nil {
			res := *c.Rewards.Resources
			rewards.Resources = &res
		}
		if c.Rewards.Discovery != nil {
			disc := *c.Rewards.Discovery
			rewards.Discovery = &disc
		}
		next.Rewards = &rewards
	}
	if c.Ability != nil {
		ability := *c.Ability
		next.Ability = &ability
	}
	return next
}

func cloneSlot(s Slot) Slot {
	next := s
	next.Traits = append([]string(nil), s.Traits...)
	next.AttachedCardIDs = append([]string(nil), s.AttachedCardIDs...)
	if s.Repair != nil {
		repair := *s.Repair
		next.Repair = &repair
	}
	if s.LockedUntil != nil {
		locked := *s.LockedUntil
		next.LockedUntil = &locked
	}
	if s.Pending != nil {
		pending := *s.Pending
		pending.CardIDs = append([]string(nil), s.Pending.CardIDs...)
		next.Pending = &pending
	}
	return next
}
