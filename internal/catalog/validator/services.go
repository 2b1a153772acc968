package validator

import "github.com/okazmarkt/core/internal/catalog/schema"

func servicesRuleset() *Ruleset {
	return &Ruleset{
		Type: schema.TypeServices,
		Required: []string{
			"service_category", "service_type",
		},
		Optional: []string{
			"price_per_hour", "price_per_session", "price_negotiable",
			"provider_certified", "experience_years", "vat_registered",
			"vat_number", "insurance", "available_days", "available_hours",
			"location_service",
		},
		Invariants: []Invariant{
			{
				Path: "price_per_hour",
				Code: CodeRequired,
				Check: func(rec Record) (bool, string) {
					negotiable, _ := rec.Bool("price_negotiable")
					if rec.Has("price_per_hour") || rec.Has("price_per_session") || negotiable {
						return true, ""
					}
					return false, "set an hourly rate, a session rate, or mark the price negotiable"
				},
			},
			{
				Path: "vat_number",
				Code: CodeRequired,
				Check: func(rec Record) (bool, string) {
					registered, _ := rec.Bool("vat_registered")
					if registered && !rec.Has("vat_number") {
						return false, "a VAT number is required for VAT-registered providers"
					}
					return true, ""
				},
			},
			{
				Path: "insurance",
				Check: func(rec Record) (bool, string) {
					cat, _ := rec.Str("service_category")
					if cat == "professional" {
						insured, ok := rec.Bool("insurance")
						if !ok || !insured {
							return false, "professional services must carry liability insurance"
						}
					}
					return true, ""
				},
			},
		},
	}
}
