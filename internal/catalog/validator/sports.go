package validator

import (
	"strings"

	"github.com/okazmarkt/core/internal/catalog/schema"
)

func sportsRuleset() *Ruleset {
	return &Ruleset{
		Type: schema.TypeSports,
		Required: []string{
			"sport_type", "sport_item_type", "condition",
		},
		Optional: []string{
			"brand", "size", "frame_size_cm", "wheel_size_inch", "gears",
			"delivery_options",
		},
		Invariants: []Invariant{
			{
				Path: "frame_size_cm",
				Code: CodeRequired,
				Check: func(rec Record) (bool, string) {
					st, _ := rec.Str("sport_type")
					it, _ := rec.Str("sport_item_type")
					if st == "cycling" && strings.Contains(strings.ToLower(it), "bicy") && !rec.Has("frame_size_cm") {
						return false, "frame size is required for bicycles"
					}
					return true, ""
				},
			},
			{
				Path: "frame_size_cm",
				Code: CodeForbidden,
				Check: func(rec Record) (bool, string) {
					st, _ := rec.Str("sport_type")
					if st != "cycling" && (rec.Has("frame_size_cm") || rec.Has("wheel_size_inch") || rec.Has("gears")) {
						return false, "bicycle measurements only apply to cycling equipment"
					}
					return true, ""
				},
			},
		},
	}
}
