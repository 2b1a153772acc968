package validator

import "github.com/okazmarkt/core/internal/catalog/schema"

// device types that carry a battery and must disclose its condition.
var batteryDeviceTypes = map[string]bool{
	"phone": true, "tablet": true, "laptop": true, "watch": true,
}

func electronicsRuleset() *Ruleset {
	return &Ruleset{
		Type: schema.TypeElectronics,
		Required: []string{
			"device_type", "brand", "model", "condition",
		},
		Optional: []string{
			"release_year", "memory_gb", "storage_gb", "screen_size_inch",
			"battery_condition", "hours_of_use", "sim_lock_carrier",
			"original_box", "original_charger", "warranty_until", "imei",
			"serial_number", "color", "delivery_options",
		},
		Invariants: []Invariant{
			{
				Path: "battery_condition",
				Code: CodeRequired,
				Check: func(rec Record) (bool, string) {
					dt, _ := rec.Str("device_type")
					cond, _ := rec.Str("condition")
					if batteryDeviceTypes[dt] && cond != "for_parts" && !rec.Has("battery_condition") {
						return false, "battery condition is required for this device type"
					}
					return true, ""
				},
			},
			{
				Path: "imei",
				Code: CodeForbidden,
				Check: func(rec Record) (bool, string) {
					dt, _ := rec.Str("device_type")
					if rec.Has("imei") && dt != "phone" && dt != "tablet" {
						return false, "an IMEI only applies to phones and tablets"
					}
					return true, ""
				},
			},
		},
	}
}
