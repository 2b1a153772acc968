package validator

import "github.com/okazmarkt/core/internal/catalog/schema"

func petsRuleset() *Ruleset {
	return &Ruleset{
		Type: schema.TypePets,
		Required: []string{
			"pet_category", "pet_listing_type",
		},
		Optional: []string{
			"species", "breed", "age_years", "age_months", "pet_gender",
			"microchipped", "microchip_number", "vaccinated", "pet_passport",
			"neutered_spayed", "health_issues", "temperament", "adoption_fee",
			"good_with_kids", "last_seen_date", "last_seen_location",
			"distinctive_marks",
		},
		// The posting form submits the bare keys; storage uses the prefixed
		// ones to keep field keys globally unique across verticals.
		Aliases: map[string]string{
			"category":     "pet_category",
			"listing_type": "pet_listing_type",
			"gender":       "pet_gender",
		},
		Invariants: []Invariant{
			{
				// Belgian law requires dogs and cats to be chipped before they
				// change hands.
				Path: "microchipped",
				Check: func(rec Record) (bool, string) {
					cat, _ := rec.Str("pet_category")
					lt, _ := rec.Str("pet_listing_type")
					if (cat == "dog" || cat == "cat") && (lt == "sale" || lt == "adoption") {
						chipped, ok := rec.Bool("microchipped")
						if !ok || !chipped {
							return false, "dogs and cats must be microchipped before sale or adoption"
						}
					}
					return true, ""
				},
			},
			{
				Path: "last_seen_date",
				Code: CodeRequired,
				Check: func(rec Record) (bool, string) {
					lt, _ := rec.Str("pet_listing_type")
					if (lt == "lost" || lt == "found") && !rec.Has("last_seen_date") {
						return false, "the last-seen date is required for lost and found reports"
					}
					return true, ""
				},
			},
			{
				Path: "last_seen_location",
				Code: CodeRequired,
				Check: func(rec Record) (bool, string) {
					lt, _ := rec.Str("pet_listing_type")
					if (lt == "lost" || lt == "found") && !rec.Has("last_seen_location") {
						return false, "the last-seen location is required for lost and found reports"
					}
					return true, ""
				},
			},
			{
				Path: "temperament",
				Code: CodeRequired,
				Check: func(rec Record) (bool, string) {
					lt, _ := rec.Str("pet_listing_type")
					if lt == "adoption" && !rec.Has("temperament") {
						return false, "describe the animal's temperament for adoption listings"
					}
					return true, ""
				},
			},
			{
				Path: "microchip_number",
				Code: CodeRequired,
				Check: func(rec Record) (bool, string) {
					chipped, _ := rec.Bool("microchipped")
					if chipped && !rec.Has("microchip_number") {
						return false, "provide the microchip number"
					}
					return true, ""
				},
			},
			{
				Path: "adoption_fee",
				Code: CodeForbidden,
				Check: func(rec Record) (bool, string) {
					lt, _ := rec.Str("pet_listing_type")
					if lt != "adoption" && rec.Has("adoption_fee") {
						return false, "an adoption fee only applies to adoption listings"
					}
					return true, ""
				},
			},
		},
	}
}
