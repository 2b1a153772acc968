package validator

import "github.com/okazmarkt/core/internal/catalog/schema"

func defaultRulesets() map[schema.CategoryType]*Ruleset {
	sets := []*Ruleset{
		propertyRuleset(),
		jobRuleset(),
		electronicsRuleset(),
		fashionRuleset(),
		homeRuleset(),
		petsRuleset(),
		sportsRuleset(),
		servicesRuleset(),
		babyKidsRuleset(),
		vehicleRuleset(),
	}
	out := make(map[schema.CategoryType]*Ruleset, len(sets))
	for _, rs := range sets {
		out[rs.Type] = rs
	}
	return out
}
