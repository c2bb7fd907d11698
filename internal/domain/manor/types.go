package manor

import "time"

type Resources struct {
	Coin    int `json:"coin"`
	Lore    int `json:"lore"`
	Glimmer int `json:"glimmer"`
}

type ResourceDelta struct {
	Coin    int `json:"coin,omitempty"`
	Lore    int `json:"lore,omitempty"`
	Glimmer int `json:"glimmer,omitempty"`
}

type CardType string

const (
	CardPersona     CardType = "persona"
	CardInspiration CardType = "inspiration"
	CardRelic       CardType = "relic"
)

type CardArea string

const (
	AreaHand CardArea = "hand"
	AreaSlot CardArea = "slot"
	AreaLost CardArea = "lost"
)

type CardLocation struct {
	Area   CardArea `json:"area"`
	SlotID string   `json:"slot_id,omitempty"`
}

type AbilityID string

const (
	AbilityStudyDreamRecord       AbilityID = "study:dream-record"
	AbilityStudyPersonaReflection AbilityID = "study:persona-reflection"
	AbilityStudyReward            AbilityID = "study:reward"
	AbilityAssistJournal          AbilityID = "assist:journal"
	AbilityAssistPersona          AbilityID = "assist:persona"
	AbilityExpireFading           AbilityID = "expire:fading"
)

// CardAbility names the behavior hooks a card resolves to. Empty fields mean
// "fall back to the rule table".
type CardAbility struct {
	OnActivate AbilityID `json:"on_activate,omitempty"`
	OnAssist   AbilityID `json:"on_assist,omitempty"`
	OnExpire   AbilityID `json:"on_expire,omitempty"`
}

type DiscoverySpec struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CardRewards struct {
	Resources *ResourceDelta `json:"resources,omitempty"`
	Discovery *DiscoverySpec `json:"discovery,omitempty"`
}

type CardInstance struct {
	ID             string       `json:"id"`
	Key            string       `json:"key"`
	Name           string       `json:"name"`
	Type           CardType     `json:"type"`
	Description    string       `json:"description,omitempty"`
	Traits         []string     `json:"traits,omitempty"`
	Permanent      bool         `json:"permanent,omitempty"`
	RemainingTurns *int         `json:"remaining_turns,omitempty"`
	Rewards        *CardRewards `json:"rewards,omitempty"`
	Ability        *CardAbility `json:"ability,omitempty"`
	Entries        []string     `json:"entries,omitempty"`
	Location       CardLocation `json:"location"`
}

type SlotType string

const (
	SlotHearth     SlotType = "hearth"
	SlotWork       SlotType = "work"
	SlotStudy      SlotType = "study"
	SlotRitual     SlotType = "ritual"
	SlotExpedition SlotType = "expedition"
	SlotManor      SlotType = "manor"
	SlotBedroom    SlotType = "bedroom"
)

type OccupantRule string

const (
	AcceptPersona    OccupantRule = "persona"
	AcceptNonPersona OccupantRule = "non-persona"
	AcceptAny        OccupantRule = "any"
	AcceptDelegate   OccupantRule = "delegate"
)

type SlotCondition string

const (
	SlotActive  SlotCondition = "active"
	SlotDamaged SlotCondition = "damaged"
)

// RepairPlan tracks a damaged slot's restoration: the template it becomes on
// completion and how many work cycles remain.
type RepairPlan struct {
	TargetKey string `json:"target_key"`
	Remaining int    `json:"remaining"`
	Total     int    `json:"total"`
}

type PendingKind string

const (
	PendingExploreManor    PendingKind = "explore-manor"
	PendingExploreLocation PendingKind = "explore-location"
	PendingDeliverCards    PendingKind = "deliver-cards"
)

// PendingAction is a staged outcome stamped onto a slot at activation time
// and committed by the pending-action resolver once the slot's lock matures.
type PendingAction struct {
	Kind    PendingKind `json:"kind"`
	CardIDs []string    `json:"card_ids,omitempty"`
	Reveal  bool        `json:"reveal,omitempty"`
}

type Slot struct {
	ID              string         `json:"id"`
	Key             string         `json:"key"`
	Name            string         `json:"name"`
	Type            SlotType       `json:"type"`
	Level           int            `json:"level"`
	UpgradeCost     int            `json:"upgrade_cost"`
	Traits          []string       `json:"traits,omitempty"`
	Accepted        OccupantRule   `json:"accepted"`
	OccupantID      string         `json:"occupant_id,omitempty"`
	AssistantID     string         `json:"assistant_id,omitempty"`
	AttachedCardIDs []string       `json:"attached_card_ids,omitempty"`
	Unlocked        bool           `json:"unlocked"`
	Condition       SlotCondition  `json:"condition"`
	Repair          *RepairPlan    `json:"repair,omitempty"`
	RepairStarted   bool           `json:"repair_started,omitempty"`
	LockedUntil     *time.Time     `json:"locked_until,omitempty"`
	Pending         *PendingAction `json:"pending,omitempty"`
}

type Discovery struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Cycle       int    `json:"cycle"`
}

// LogCapacity bounds the narrative log ring; the oldest line is discarded
// silently once full.
const LogCapacity = 14

// MinTimeScale is the slowest nonzero rate the reducer accepts.
const MinTimeScale = 0.25

type GameState struct {
	SessionID      string                  `json:"session_id"`
	Cycle          int                     `json:"cycle"`
	HeroCardID     string                  `json:"hero_card_id"`
	Cards          map[string]CardInstance `json:"cards"`
	Hand           []string                `json:"hand"`
	Slots          map[string]Slot         `json:"slots"`
	Resources      Resources               `json:"resources"`
	Log            []string                `json:"log"`
	Discoveries    []Discovery             `json:"discoveries"`
	TimeScale      float64                 `json:"time_scale"`
	PausedAt       *time.Time              `json:"paused_at,omitempty"`
	PendingReveals []string                `json:"pending_reveals,omitempty"`
	Version        int64                   `json:"version"`
	UpdatedAt      time.Time               `json:"updated_at"`
}
