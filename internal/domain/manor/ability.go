package manor

// abilityRule pairs a predicate with the hooks it grants. Rules are evaluated
// top-down per hook; the first match wins. New card archetypes get a row
// here, not a branch in the dispatch code.
type abilityRule struct {
	when     func(CardInstance) bool
	activate AbilityID
	assist   AbilityID
	expire   AbilityID
}

func hasTrait(trait string) func(CardInstance) bool {
	return func(c CardInstance) bool { return c.HasTrait(trait) }
}

var abilityRules = []abilityRule{
	{when: hasTrait("dream"), activate: AbilityStudyDreamRecord},
	{when: hasTrait("journal"), assist: AbilityAssistJournal},
	{
		when:     func(c CardInstance) bool { return c.Type == CardPersona },
		activate: AbilityStudyPersonaReflection,
		assist:   AbilityAssistPersona,
	},
	{
		when:     func(c CardInstance) bool { return c.Rewards != nil },
		activate: AbilityStudyReward,
	},
	{
		when:   func(c CardInstance) bool { return !c.Permanent },
		expire: AbilityExpireFading,
	},
}

// ResolveAbilities maps a card to its effective hooks: explicit per-instance
// overrides first, then the ordered rule table. Pure function of the card.
func ResolveAbilities(card CardInstance) CardAbility {
	var out CardAbility
	if card.Ability != nil {
		out = *card.Ability
	}
	for _, rule := range abilityRules {
		if out.OnActivate != "" && out.OnAssist != "" && out.OnExpire != "" {
			break
		}
		if !rule.when(card) {
			continue
		}
		if out.OnActivate == "" && rule.activate != "" {
			out.OnActivate = rule.activate
		}
		if out.OnAssist == "" && rule.assist != "" {
			out.OnAssist = rule.assist
		}
		if out.OnExpire == "" && rule.expire != "" {
			out.OnExpire = rule.expire
		}
	}
	return out
}
