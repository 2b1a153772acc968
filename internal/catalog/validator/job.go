package validator

import "github.com/okazmarkt/core/internal/catalog/schema"

func jobRuleset() *Ruleset {
	return &Ruleset{
		Type: schema.TypeJob,
		Required: []string{
			"job_category", "contract_type", "employment_type",
		},
		Optional: []string{
			"cp_code", "hours_per_week", "shift_work", "weekend_work",
			"night_shifts", "flexible_hours", "remote_option", "salary_min",
			"salary_max", "salary_currency", "salary_period", "salary_type",
			"salary_negotiable", "benefits", "experience_years_min",
			"education_level", "languages_required", "languages_preferred",
			"driving_license_required", "license_types", "work_permit_required",
			"company_name", "company_size", "industry", "application_deadline",
			"start_date", "contact_email", "contact_phone", "application_url",
		},
		Invariants: []Invariant{
			{
				Path: "salary_max",
				Check: func(rec Record) (bool, string) {
					min, okMin := rec.Num("salary_min")
					max, okMax := rec.Num("salary_max")
					if okMin && okMax && max < min {
						return false, "maximum salary cannot be below minimum salary"
					}
					return true, ""
				},
			},
			{
				Path: "hours_per_week",
				Check: func(rec Record) (bool, string) {
					et, _ := rec.Str("employment_type")
					hours, ok := rec.Num("hours_per_week")
					if !ok {
						return true, ""
					}
					switch et {
					case "full_time":
						if hours < 35 || hours > 45 {
							return false, "full-time positions must be between 35 and 45 hours per week"
						}
					case "part_time":
						if hours >= 35 {
							return false, "part-time positions must be under 35 hours per week"
						}
					}
					return true, ""
				},
			},
			{
				Path: "contact_email",
				Code: CodeRequired,
				Check: func(rec Record) (bool, string) {
					if rec.Has("contact_email") || rec.Has("contact_phone") || rec.Has("application_url") {
						return true, ""
					}
					return false, "provide a contact email, phone number, or application URL"
				},
			},
			{
				Path: "license_types",
				Code: CodeRequired,
				Check: func(rec Record) (bool, string) {
					required, _ := rec.Bool("driving_license_required")
					if required && !rec.Has("license_types") {
						return false, "specify the required licence categories"
					}
					return true, ""
				},
			},
		},
	}
}
