package validator

import "github.com/okazmarkt/core/internal/catalog/schema"

func homeRuleset() *Ruleset {
	return &Ruleset{
		Type: schema.TypeHome,
		Required: []string{
			"furniture_type", "condition",
		},
		Optional: []string{
			"brand", "material", "color", "width_cm", "height_cm", "depth_cm",
			"assembly_required", "delivery_options",
		},
		Invariants: []Invariant{
			{
				Path: "width_cm",
				Code: CodeRequired,
				Check: func(rec Record) (bool, string) {
					if !furnitureClass(rec) {
						return true, ""
					}
					if rec.Has("width_cm") || rec.Has("height_cm") || rec.Has("depth_cm") {
						return true, ""
					}
					return false, "furniture needs at least one dimension"
				},
			},
		},
	}
}

// furnitureClass covers the furniture_type values that are physical
// furniture; decorative and appliance listings skip the dimension rule.
func furnitureClass(rec Record) bool {
	ft, _ := rec.Str("furniture_type")
	switch ft {
	case "sofa", "chair", "table", "bed", "wardrobe", "shelf", "desk", "cabinet":
		return true
	}
	return false
}
