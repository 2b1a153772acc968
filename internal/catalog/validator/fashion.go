package validator

import "github.com/okazmarkt/core/internal/catalog/schema"

var fashionSizeFields = []string{
	"size_label", "size_eu", "size_be", "size_uk", "size_us",
	"chest_bust_cm", "waist_cm", "hips_cm", "inseam_cm",
}

func fashionRuleset() *Ruleset {
	return &Ruleset{
		Type: schema.TypeFashion,
		Required: []string{
			"clothing_type", "color", "condition",
		},
		Optional: append([]string{
			"gender", "age_category", "brand", "material", "pattern", "season",
			"defects", "original_tags", "designer", "vintage", "vintage_decade",
			"delivery_options",
		}, fashionSizeFields...),
		Invariants: []Invariant{
			{
				Path: "size_label",
				Code: CodeRequired,
				Check: func(rec Record) (bool, string) {
					for _, key := range fashionSizeFields {
						if rec.Has(key) {
							return true, ""
						}
					}
					return false, "at least one size or measurement is required"
				},
			},
			{
				Path: "vintage_decade",
				Code: CodeRequired,
				Check: func(rec Record) (bool, string) {
					vintage, _ := rec.Bool("vintage")
					if vintage && !rec.Has("vintage_decade") {
						return false, "state the decade for vintage items"
					}
					return true, ""
				},
			},
		},
	}
}
