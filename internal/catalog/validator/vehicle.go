package validator

import (
	"fmt"
	"math"

	"github.com/okazmarkt/core/internal/catalog/schema"
)

func vehicleRuleset() *Ruleset {
	return &Ruleset{
		Type: schema.TypeVehicle,
		Required: []string{
			"vehicle_make", "vehicle_model", "vehicle_year",
			"vehicle_mileage_km", "vehicle_condition",
		},
		// body type and country are derived from the reference catalog. They
		// are accepted on input so a stored record re-validates cleanly, but
		// Finalize always overwrites them from the matched model.
		Optional: []string{
			"vehicle_body_type", "vehicle_country",
		},
		Aliases: map[string]string{
			"make":      "vehicle_make",
			"model":     "vehicle_model",
			"year":      "vehicle_year",
			"mileage":   "vehicle_mileage_km",
			"condition": "vehicle_condition",
		},
		Finalize: vehicleFinalize,
	}
}

// vehicleFinalize resolves make and model against the reference catalog,
// bounds the year by the matched model's production run, and writes the
// derived display fields. Skipped per field once the structural pass already
// rejected it.
func vehicleFinalize(env *Env, rec Record, errs *FieldErrors, path func(string) string) {
	if errs.Has(path("vehicle_make")) || errs.Has(path("vehicle_model")) {
		return
	}
	makeName, okMake := rec.Str("vehicle_make")
	modelName, okModel := rec.Str("vehicle_model")
	if !okMake || !okModel {
		return
	}

	if !env.Vehicles.HasMake(makeName) {
		errs.Add(path("vehicle_make"), CodeUnknown, "unknown make")
		return
	}
	canonical, _ := env.Vehicles.CanonicalMake(makeName)
	rec["vehicle_make"] = canonical

	model, ok := env.Vehicles.FindModel(makeName, modelName)
	if !ok {
		errs.Add(path("vehicle_model"), CodeUnknown, "unknown model for make "+canonical)
		return
	}
	rec["vehicle_model"] = model.Name

	if !errs.Has(path("vehicle_year")) {
		if year, ok := rec.Int("vehicle_year"); ok {
			yearEnd := env.Now().Year()
			if model.YearEnd != nil {
				yearEnd = *model.YearEnd
			}
			if year < model.YearStart || year > yearEnd {
				errs.Add(path("vehicle_year"), CodeOutOfRange,
					fmt.Sprintf("allowed range %d-%d", model.YearStart, yearEnd))
			} else {
				rec["vehicle_year"] = float64(year)
			}
		}
	}

	if !errs.Has(path("vehicle_mileage_km")) {
		if mileage, ok := rec.Num("vehicle_mileage_km"); ok {
			rec["vehicle_mileage_km"] = math.Round(mileage)
		}
	}

	// Derived, never trusted from the client.
	delete(rec, "vehicle_body_type")
	delete(rec, "vehicle_country")
	if model.BodyType != "" {
		rec["vehicle_body_type"] = model.BodyType
	}
	if model.Country != "" {
		rec["vehicle_country"] = model.Country
	}
}
