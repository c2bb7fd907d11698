package manor

import (
	"fmt"
	"time"
)

type CardTemplate struct {
	Key         string
	Name        string
	Type        CardType
	Description string
	Traits      []string
	Permanent   bool
	Turns       int
	Rewards     *CardRewards
	Ability     *CardAbility
}

type SlotTemplate struct {
	Key          string
	Name         string
	Type         SlotType
	Traits       []string
	Accepted     OccupantRule
	UpgradeCost  int
	LockDuration time.Duration
	Unlocked     bool
	Damaged      bool
	RepairTarget string
	RepairCycles int

	// Exploration policy for location slots. Reveals lists the hidden slot
	// templates chartable from here; RevealBatch 0 means all remaining at
	// once; RemoveWhenCharted drops the origin slot once nothing is hidden.
	Reveals           []string
	RevealBatch       int
	RemoveWhenCharted bool
}

// Content is the static template registry: pure data, no behavior.
type Content struct {
	Cards         map[string]CardTemplate
	Slots         map[string]SlotTemplate
	Opportunities []string
}

// HeroKey is the persona instantiated once at game start.
const HeroKey = "hero"

const (
	DreamKey   = "fleeting-dream"
	JournalKey = "private-journal"
)

// UmbralGateKey doubles as the discovery key and the expedition slot the
// discovery lazily instantiates.
const UmbralGateKey = "umbral-gate"

var defaultLockDurations = map[SlotType]time.Duration{
	SlotHearth:     8 * time.Second,
	SlotWork:       12 * time.Second,
	SlotStudy:      10 * time.Second,
	SlotRitual:     15 * time.Second,
	SlotExpedition: 30 * time.Second,
	SlotManor:      20 * time.Second,
	SlotBedroom:    25 * time.Second,
}

// LockDuration is the unscaled busy time stamped after a successful
// activation: the slot template's own duration, else the per-type default.
func (c *Content) LockDuration(slot Slot) time.Duration {
	if tpl, ok := c.Slots[slot.Key]; ok && tpl.LockDuration > 0 {
		return tpl.LockDuration
	}
	if d, ok := defaultLockDurations[slot.Type]; ok {
		return d
	}
	return 10 * time.Second
}

// NewCard instantiates a template. The id is the template key plus a random
// suffix drawn from the injected source, so fixed-rand runs stay
// reproducible.
func (c *Content) NewCard(key string, r func() float64) (CardInstance, error) {
	tpl, ok := c.Cards[key]
	if !ok {
		return CardInstance{}, fmt.Errorf("unknown card template %q", key)
	}
	card := CardInstance{
		ID:          instanceID(key, r),
		Key:         tpl.Key,
		Name:        tpl.Name,
		Type:        tpl.Type,
		Description: tpl.Description,
		Traits:      append([]string(nil), tpl.Traits...),
		Permanent:   tpl.Permanent,
		Location:    CardLocation{Area: AreaHand},
	}
	if !tpl.Permanent && tpl.Turns > 0 {
		turns := tpl.Turns
		card.RemainingTurns = &turns
	}
	if tpl.Rewards != nil {
		rewards := *tpl.Rewards
		card.Rewards = &rewards
	}
	if tpl.Ability != nil {
		ability := *tpl.Ability
		card.Ability = &ability
	}
	return card, nil
}

// NewSlot instantiates a slot template at level 1.
func (c *Content) NewSlot(key string, r func() float64) (Slot, error) {
	tpl, ok := c.Slots[key]
	if !ok {
		return Slot{}, fmt.Errorf("unknown slot template %q", key)
	}
	slot := Slot{
		ID:          instanceID(key, r),
		Key:         tpl.Key,
		Name:        tpl.Name,
		Type:        tpl.Type,
		Level:       1,
		UpgradeCost: tpl.UpgradeCost,
		Traits:      append([]string(nil), tpl.Traits...),
		Accepted:    tpl.Accepted,
		Unlocked:    tpl.Unlocked,
		Condition:   SlotActive,
	}
	if tpl.Damaged {
		slot.Condition = SlotDamaged
		slot.Repair = &RepairPlan{
			TargetKey: tpl.RepairTarget,
			Remaining: tpl.RepairCycles,
			Total:     tpl.RepairCycles,
		}
	}
	return slot, nil
}

func instanceID(key string, r func() float64) string {
	return fmt.Sprintf("%s-%04x", key, int(r()*0x10000))
}

// OpeningLog seeds the narrative log for a fresh game, oldest line first.
func OpeningLog() []string {
	return []string{
		"The coach leaves you at the gates; it does not wait.",
		"The manor is colder inside than out. Something in it remembers you.",
		"A hearth, a desk, a bed. Begin where the living begin.",
	}
}

// DefaultContent is the built-in template set.
func DefaultContent() *Content {
	return &Content{
		Cards: map[string]CardTemplate{
			HeroKey: {
				Key:         HeroKey,
				Name:        "Elowen March",
				Type:        CardPersona,
				Description: "The last of the Marches, returned to claim what is left.",
				Traits:      []string{"hero"},
				Permanent:   true,
			},
			DreamKey: {
				Key:         DreamKey,
				Name:        "Fleeting Dream",
				Type:        CardInspiration,
				Description: "A dream already unravelling at the edges.",
				Traits:      []string{"dream"},
				Turns:       3,
			},
			JournalKey: {
				Key:         JournalKey,
				Name:        "Private Journal",
				Type:        CardRelic,
				Description: "Blank pages, waiting.",
				Traits:      []string{"journal"},
				Permanent:   true,
			},
			"faded-letter": {
				Key:         "faded-letter",
				Name:        "Faded Letter",
				Type:        CardInspiration,
				Description: "Half the words are gone. The other half matter.",
				Turns:       4,
				Rewards:     &CardRewards{Resources: &ResourceDelta{Lore: 2}},
			},
			"tarnished-locket": {
				Key:         "tarnished-locket",
				Name:        "Tarnished Locket",
				Type:        CardRelic,
				Description: "It opens on a portrait you almost recognize.",
				Turns:       6,
				Rewards:     &CardRewards{Resources: &ResourceDelta{Coin: 1, Glimmer: 1}},
			},
			"merchants-ledger": {
				Key:         "merchants-ledger",
				Name:        "Merchant's Ledger",
				Type:        CardInspiration,
				Description: "Debts owed to the house, in a careful hand.",
				Turns:       5,
				Rewards:     &CardRewards{Resources: &ResourceDelta{Coin: 3}},
			},
			"moth-eaten-map": {
				Key:         "moth-eaten-map",
				Name:        "Moth-Eaten Map",
				Type:        CardInspiration,
				Description: "The grounds, drawn by someone who feared them.",
				Turns:       4,
				Rewards:     &CardRewards{Resources: &ResourceDelta{Lore: 1, Glimmer: 1}},
			},
			"umbral-key": {
				Key:         "umbral-key",
				Name:        "Umbral Key",
				Type:        CardRelic,
				Description: "Cold iron, colder shadow. It fits no door you have found.",
				Turns:       8,
				Rewards: &CardRewards{
					Resources: &ResourceDelta{Lore: 1},
					Discovery: &DiscoverySpec{
						Key:         UmbralGateKey,
						Name:        "The Umbral Gate",
						Description: "A gate in the garden wall that was never on any plan.",
					},
				},
			},
		},
		Slots: map[string]SlotTemplate{
			"great-hearth": {
				Key: "great-hearth", Name: "Great Hearth", Type: SlotHearth,
				Accepted: AcceptPersona, UpgradeCost: 2, Unlocked: true,
			},
			"scullery": {
				Key: "scullery", Name: "Scullery", Type: SlotWork,
				Accepted: AcceptPersona, UpgradeCost: 2, Unlocked: true,
			},
			"reading-room": {
				Key: "reading-room", Name: "Reading Room", Type: SlotStudy,
				Accepted: AcceptAny, UpgradeCost: 3, Unlocked: true,
			},
			"ritual-circle": {
				Key: "ritual-circle", Name: "Ritual Circle", Type: SlotRitual,
				Accepted: AcceptPersona, UpgradeCost: 3, Unlocked: true,
			},
			"master-bedroom": {
				Key: "master-bedroom", Name: "Master Bedroom", Type: SlotBedroom,
				Accepted: AcceptPersona, UpgradeCost: 2, Unlocked: true,
			},
			"old-manor": {
				Key: "old-manor", Name: "The Old Manor", Type: SlotManor,
				Accepted: AcceptPersona, UpgradeCost: 3, Unlocked: true,
				Reveals: []string{
					"collapsed-library",
					"ruined-workshop",
					"scorched-chapel",
					"flooded-cellar",
					"dust-choked-nursery",
				},
				RemoveWhenCharted: true,
			},
			UmbralGateKey: {
				Key: UmbralGateKey, Name: "The Umbral Gate", Type: SlotExpedition,
				Accepted: AcceptPersona, UpgradeCost: 4, Unlocked: true,
			},

			"collapsed-library": {
				Key: "collapsed-library", Name: "Collapsed Library", Type: SlotManor,
				Accepted: AcceptPersona, UpgradeCost: 3, Unlocked: true,
				Damaged: true, RepairTarget: "library", RepairCycles: 3,
			},
			"ruined-workshop": {
				Key: "ruined-workshop", Name: "Ruined Workshop", Type: SlotManor,
				Accepted: AcceptPersona, UpgradeCost: 2, Unlocked: true,
				Damaged: true, RepairTarget: "workshop", RepairCycles: 3,
			},
			"scorched-chapel": {
				Key: "scorched-chapel", Name: "Scorched Chapel", Type: SlotManor,
				Accepted: AcceptPersona, UpgradeCost: 3, Unlocked: true,
				Damaged: true, RepairTarget: "chapel", RepairCycles: 4,
			},
			"flooded-cellar": {
				Key: "flooded-cellar", Name: "Flooded Cellar", Type: SlotManor,
				Accepted: AcceptPersona, UpgradeCost: 2, Unlocked: true,
				Damaged: true, RepairTarget: "stillroom", RepairCycles: 2,
			},
			"dust-choked-nursery": {
				Key: "dust-choked-nursery", Name: "Dust-Choked Nursery", Type: SlotManor,
				Accepted: AcceptPersona, UpgradeCost: 2, Unlocked: true,
				Damaged: true, RepairTarget: "nursery", RepairCycles: 3,
			},

			"library": {
				Key: "library", Name: "Library", Type: SlotStudy,
				Accepted: AcceptAny, UpgradeCost: 3, Unlocked: true,
			},
			"workshop": {
				Key: "workshop", Name: "Workshop", Type: SlotWork,
				Accepted: AcceptPersona, UpgradeCost: 2, Unlocked: true,
			},
			"chapel": {
				Key: "chapel", Name: "Chapel", Type: SlotRitual,
				Accepted: AcceptPersona, UpgradeCost: 3, Unlocked: true,
			},
			"stillroom": {
				Key: "stillroom", Name: "Stillroom", Type: SlotHearth,
				Accepted: AcceptPersona, UpgradeCost: 2, Unlocked: true,
			},
			"nursery": {
				Key: "nursery", Name: "Nursery", Type: SlotBedroom,
				Accepted: AcceptPersona, UpgradeCost: 2, Unlocked: true,
			},
		},
		Opportunities: []string{
			"faded-letter",
			"tarnished-locket",
			"merchants-ledger",
			"moth-eaten-map",
			"umbral-key",
		},
	}
}
