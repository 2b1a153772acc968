package validator

import "github.com/okazmarkt/core/internal/catalog/schema"

// item types regulated by child-safety standards.
var safetyCriticalItemTypes = map[string]bool{
	"car_seat": true, "crib": true, "high_chair": true,
	"baby_carrier": true, "playpen": true,
}

func babyKidsRuleset() *Ruleset {
	return &Ruleset{
		Type: schema.TypeBabyKids,
		Required: []string{
			"item_type", "condition", "recall_status",
		},
		Optional: []string{
			"age_range", "brand", "safety_standards", "safety_cert_url",
			"cleanable", "washable", "delivery_options",
		},
		Invariants: []Invariant{
			{
				Path: "safety_standards",
				Code: CodeRequired,
				Check: func(rec Record) (bool, string) {
					it, _ := rec.Str("item_type")
					if !safetyCriticalItemTypes[it] {
						return true, ""
					}
					standards, ok := rec.Strs("safety_standards")
					if !ok || len(standards) == 0 {
						return false, "safety-critical items must state their certification standards"
					}
					return true, ""
				},
			},
			{
				// Not a warning: recalled items may not be listed at all.
				Path: "recall_status",
				Code: CodeForbidden,
				Check: func(rec Record) (bool, string) {
					status, _ := rec.Str("recall_status")
					if status == "recalled" {
						return false, "recalled items cannot be listed"
					}
					return true, ""
				},
			},
		},
	}
}
