package validator

import (
	"fmt"

	"github.com/okazmarkt/core/internal/catalog/schema"
)

func propertyRuleset() *Ruleset {
	return &Ruleset{
		Type: schema.TypeProperty,
		Required: []string{
			"property_type", "listing_type", "area_sqm", "postcode", "municipality",
		},
		Optional: []string{
			"land_area_sqm", "rooms", "bedrooms", "bathrooms", "year_built",
			"renovation_year", "floor", "total_floors", "epc_rating",
			"epc_cert_number", "epc_kwh_per_sqm_year", "heating_type",
			"double_glazing", "rent_monthly", "rent_charges_monthly",
			"deposit_months", "lease_duration_months", "available_from",
			"furnished", "neighborhood", "parking_spaces", "parking_type",
			"terrace_sqm", "garden_sqm", "garden_orientation", "elevator",
			"cellar", "pet_friendly", "smoking_allowed",
		},
		Invariants: []Invariant{
			{
				Path: "rent_monthly",
				Code: CodeRequired,
				Check: func(rec Record) (bool, string) {
					lt, _ := rec.Str("listing_type")
					if lt == "rent" && !rec.Has("rent_monthly") {
						return false, "monthly rent is required for rental listings"
					}
					return true, ""
				},
			},
			{
				Path: "rent_monthly",
				Code: CodeForbidden,
				Check: func(rec Record) (bool, string) {
					lt, _ := rec.Str("listing_type")
					if lt == "sale" && rec.Has("rent_monthly") {
						return false, "monthly rent is not allowed on sale listings"
					}
					return true, ""
				},
			},
			{
				Path: "bedrooms",
				Check: func(rec Record) (bool, string) {
					bedrooms, okB := rec.Num("bedrooms")
					rooms, okR := rec.Num("rooms")
					if okB && okR && bedrooms > rooms {
						return false, "bedroom count cannot exceed total room count"
					}
					return true, ""
				},
			},
			{
				Path: "renovation_year",
				Check: func(rec Record) (bool, string) {
					reno, okReno := rec.Num("renovation_year")
					built, okBuilt := rec.Num("year_built")
					if okReno && okBuilt && reno < built {
						return false, "renovation year cannot predate construction year"
					}
					return true, ""
				},
			},
			{
				// Belgian residential lease law caps the deposit at three
				// months of rent. Also bounded structurally; the invariant
				// catches payloads where deposit arrives without the bound
				// applying (e.g. a schema override widened it).
				Path: "deposit_months",
				Check: func(rec Record) (bool, string) {
					deposit, ok := rec.Num("deposit_months")
					if ok && deposit > 3 {
						return false, "deposit cannot exceed 3 months of rent"
					}
					return true, ""
				},
			},
			{
				Path: "deposit_months",
				Code: CodeForbidden,
				Check: func(rec Record) (bool, string) {
					lt, _ := rec.Str("listing_type")
					if lt == "sale" && rec.Has("deposit_months") {
						return false, "a rental deposit is not allowed on sale listings"
					}
					return true, ""
				},
			},
			{
				Path: "total_floors",
				Check: func(rec Record) (bool, string) {
					floor, okF := rec.Num("floor")
					total, okT := rec.Num("total_floors")
					if okF && okT && floor > total {
						return false, fmt.Sprintf("floor %s exceeds the building's %s floors", formatNum(floor), formatNum(total))
					}
					return true, ""
				},
			},
			{
				Path: "epc_cert_number",
				Code: CodeRequired,
				Check: func(rec Record) (bool, string) {
					if rec.Has("epc_rating") && !rec.Has("epc_cert_number") {
						return false, "an EPC certificate number is required when an EPC rating is given"
					}
					return true, ""
				},
			},
		},
	}
}
