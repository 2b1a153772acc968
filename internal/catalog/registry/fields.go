package registry

// Builder helpers for the seed catalog. Definitions are value-copied, so the
// chained modifiers below never mutate shared state.

func def(key, domain string, ft FieldType) FieldDefinition {
	return FieldDefinition{
		FieldKey:  key,
		FieldType: ft,
		Domain:    domain,
		LabelKey:  "catalog.field." + key + ".label",
	}
}

func (d FieldDefinition) req() FieldDefinition { d.IsRequired = true; return d }

func (d FieldDefinition) bounds(min, max float64) FieldDefinition {
	d.MinValue = &min
	d.MaxValue = &max
	return d
}

func (d FieldDefinition) atLeast(min float64) FieldDefinition { d.MinValue = &min; return d }

func (d FieldDefinition) integer() FieldDefinition { d.Integer = true; return d }

func (d FieldDefinition) unit(u string) FieldDefinition { d.Unit = u; return d }

func (d FieldDefinition) pat(p string) FieldDefinition { d.Pattern = p; return d }

func (d FieldDefinition) group(g string) FieldDefinition { d.GroupKey = g; return d }

func (d FieldDefinition) opts(codes ...string) FieldDefinition {
	d.Options = make([]FieldOption, len(codes))
	for i, code := range codes {
		d.Options[i] = FieldOption{
			Code:    code,
			NameKey: "catalog.option." + d.FieldKey + "." + code,
			Sort:    i,
		}
	}
	return d
}

// Patterns carried over from the Belgian compliance rules.
const (
	belgianPostcodePattern = `^[1-9][0-9]{3}$`
	epcCertPattern         = `^[0-9]{8}-[0-9]{7}-[0-9]{2}$`
	belgianVATPattern      = `^(BE)?0?[0-9]{10}$`
	imeiPattern            = `^[0-9]{15}$`
	emailPattern           = `^[^@\s]+@[^@\s]+\.[^@\s]+$`
	urlPattern             = `^https?://\S+$`
	currencyPattern        = `^[A-Z]{3}$`
)

var conditionCodes = []string{"new", "like_new", "good", "fair", "for_parts"}

var deliveryCodes = []string{"pickup_only", "delivery_available", "shipping_national", "shipping_international"}

// seedFields is the built-in field catalog. Catalog administrators extend it
// out-of-band through the YAML overlay (see LoadFile).
func seedFields() []FieldDefinition {
	defs := []FieldDefinition{
		// Shared goods fields.
		def("condition", "", FieldSelect).req().opts(conditionCodes...),
		def("delivery_options", "", FieldMultiSelect).opts(deliveryCodes...),
		def("brand", "", FieldText).bounds(1, 100),
		def("color", "", FieldText).bounds(1, 100),
		def("material", "", FieldText).bounds(1, 200),

		// Property (real estate).
		def("property_type", "property", FieldSelect).req().opts(
			"apartment", "house", "villa", "townhouse", "studio", "loft", "duplex",
			"penthouse", "land", "commercial", "office", "garage", "parking_space", "storage"),
		def("listing_type", "property", FieldSelect).req().opts("sale", "rent"),
		def("area_sqm", "property", FieldNumber).req().bounds(1, 10000).unit("m²"),
		def("land_area_sqm", "property", FieldNumber).atLeast(0).unit("m²"),
		def("rooms", "property", FieldNumber).integer().bounds(0, 20),
		def("bedrooms", "property", FieldNumber).integer().bounds(0, 15),
		def("bathrooms", "property", FieldNumber).bounds(0, 10),
		def("year_built", "property", FieldNumber).integer().atLeast(1800),
		def("renovation_year", "property", FieldNumber).integer().atLeast(1800),
		def("floor", "property", FieldNumber).integer().bounds(-3, 150),
		def("total_floors", "property", FieldNumber).integer().bounds(1, 200),
		def("epc_rating", "property", FieldSelect).opts("A++", "A+", "A", "B", "C", "D", "E", "F", "G"),
		def("epc_cert_number", "property", FieldText).pat(epcCertPattern),
		def("epc_kwh_per_sqm_year", "property", FieldNumber).integer().atLeast(1).unit("kWh/m²"),
		def("heating_type", "property", FieldMultiSelect).opts(
			"gas", "electric", "oil", "heat_pump", "solar", "wood", "district", "none"),
		def("double_glazing", "property", FieldBoolean),
		def("rent_monthly", "property", FieldNumber).atLeast(1).unit("EUR"),
		def("rent_charges_monthly", "property", FieldNumber).atLeast(0).unit("EUR"),
		def("deposit_months", "property", FieldNumber).bounds(0, 3),
		def("lease_duration_months", "property", FieldNumber).integer().bounds(1, 120),
		def("available_from", "property", FieldDate),
		def("furnished", "property", FieldSelect).opts("unfurnished", "semi_furnished", "fully_furnished"),
		def("postcode", "property", FieldText).req().pat(belgianPostcodePattern),
		def("municipality", "property", FieldText).req().bounds(1, 100),
		def("neighborhood", "property", FieldText).bounds(1, 100),
		def("parking_spaces", "property", FieldNumber).integer().bounds(0, 10),
		def("parking_type", "property", FieldMultiSelect).opts("garage", "carport", "street", "underground"),
		def("terrace_sqm", "property", FieldNumber).atLeast(0).unit("m²"),
		def("garden_sqm", "property", FieldNumber).atLeast(0).unit("m²"),
		def("garden_orientation", "property", FieldSelect).opts("north", "south", "east", "west"),
		def("elevator", "property", FieldBoolean),
		def("cellar", "property", FieldBoolean),
		def("pet_friendly", "property", FieldBoolean),
		def("smoking_allowed", "property", FieldBoolean),

		// Jobs.
		def("job_category", "job", FieldText).req().bounds(1, 100),
		def("cp_code", "job", FieldText).bounds(1, 20),
		def("contract_type", "job", FieldText).req().bounds(1, 100),
		def("employment_type", "job", FieldSelect).req().opts("full_time", "part_time", "freelance", "internship"),
		def("hours_per_week", "job", FieldNumber).bounds(1, 80).unit("h"),
		def("shift_work", "job", FieldBoolean),
		def("weekend_work", "job", FieldBoolean),
		def("night_shifts", "job", FieldBoolean),
		def("flexible_hours", "job", FieldBoolean),
		def("remote_option", "job", FieldSelect).opts("none", "hybrid", "full_remote"),
		def("salary_min", "job", FieldNumber).atLeast(0).unit("EUR"),
		def("salary_max", "job", FieldNumber).atLeast(0).unit("EUR"),
		def("salary_currency", "job", FieldText).pat(currencyPattern),
		def("salary_period", "job", FieldSelect).opts("hour", "month", "year"),
		def("salary_type", "job", FieldSelect).opts("gross", "net"),
		def("salary_negotiable", "job", FieldBoolean),
		def("benefits", "job", FieldMultiSelect).opts(
			"meal_vouchers", "eco_vouchers", "company_car", "insurance", "bonus", "remote_budget"),
		def("experience_years_min", "job", FieldNumber).integer().bounds(0, 60),
		def("education_level", "job", FieldSelect).opts("none", "high_school", "bachelor", "master", "phd"),
		def("languages_required", "job", FieldMultiSelect).opts(
			"nl", "fr", "en", "de", "es", "it", "pt", "ru", "ar", "zh"),
		def("languages_preferred", "job", FieldMultiSelect).opts(
			"nl", "fr", "en", "de", "es", "it", "pt", "ru", "ar", "zh"),
		def("driving_license_required", "job", FieldBoolean),
		def("license_types", "job", FieldMultiSelect).opts(
			"AM", "A1", "A2", "A", "B", "BE", "C", "CE", "D", "DE", "G"),
		def("work_permit_required", "job", FieldBoolean),
		def("company_name", "job", FieldText).bounds(1, 200),
		def("company_size", "job", FieldSelect).opts("startup", "small", "medium", "large", "enterprise"),
		def("industry", "job", FieldText).bounds(1, 100),
		def("application_deadline", "job", FieldDate),
		def("start_date", "job", FieldDate),
		def("contact_email", "job", FieldText).pat(emailPattern),
		def("contact_phone", "job", FieldText).bounds(1, 30),
		def("application_url", "job", FieldText).pat(urlPattern),

		// Electronics.
		def("device_type", "electronics", FieldSelect).req().opts(
			"phone", "tablet", "laptop", "desktop", "camera", "tv", "audio",
			"console", "watch", "monitor", "printer", "other"),
		def("model", "electronics", FieldText).req().bounds(1, 200),
		def("release_year", "electronics", FieldNumber).integer().atLeast(2000),
		def("memory_gb", "electronics", FieldNumber).bounds(1, 1024).unit("GB"),
		def("storage_gb", "electronics", FieldNumber).bounds(1, 16384).unit("GB"),
		def("screen_size_inch", "electronics", FieldNumber).bounds(1, 150).unit("\""),
		def("battery_condition", "electronics", FieldSelect).opts(
			"excellent", "good", "average", "poor", "needs_replacement"),
		def("hours_of_use", "electronics", FieldNumber).integer().atLeast(0).unit("h"),
		def("sim_lock_carrier", "electronics", FieldText).bounds(1, 100),
		def("original_box", "electronics", FieldBoolean),
		def("original_charger", "electronics", FieldBoolean),
		def("warranty_until", "electronics", FieldDate),
		def("imei", "electronics", FieldText).pat(imeiPattern),
		def("serial_number", "electronics", FieldText).bounds(1, 100),

		// Fashion.
		def("gender", "fashion", FieldSelect).opts("women", "men", "unisex"),
		def("age_category", "fashion", FieldSelect).opts("baby", "toddler", "kids", "teens", "adults"),
		def("clothing_type", "fashion", FieldSelect).req().opts(
			"dress", "shirt", "blouse", "t_shirt", "sweater", "jacket", "coat", "pants",
			"jeans", "skirt", "shorts", "suit", "shoes", "boots", "sneakers", "bag",
			"accessory", "underwear", "swimwear", "sportswear"),
		def("size_eu", "fashion", FieldText).bounds(1, 20),
		def("size_be", "fashion", FieldText).bounds(1, 20),
		def("size_uk", "fashion", FieldText).bounds(1, 20),
		def("size_us", "fashion", FieldText).bounds(1, 20),
		def("size_label", "fashion", FieldText).bounds(1, 20),
		def("chest_bust_cm", "fashion", FieldNumber).bounds(1, 200).unit("cm"),
		def("waist_cm", "fashion", FieldNumber).bounds(1, 200).unit("cm"),
		def("hips_cm", "fashion", FieldNumber).bounds(1, 200).unit("cm"),
		def("inseam_cm", "fashion", FieldNumber).bounds(1, 150).unit("cm"),
		def("pattern", "fashion", FieldText).bounds(1, 100),
		def("season", "fashion", FieldSelect).opts("spring_summer", "autumn_winter", "all_season"),
		def("defects", "fashion", FieldTextarea).bounds(1, 500),
		def("original_tags", "fashion", FieldBoolean),
		def("designer", "fashion", FieldBoolean),
		def("vintage", "fashion", FieldBoolean),
		def("vintage_decade", "fashion", FieldText).bounds(1, 20),

		// Home & living.
		def("furniture_type", "home", FieldSelect).req().opts(
			"sofa", "chair", "table", "bed", "wardrobe", "shelf", "desk", "cabinet",
			"decoration", "lighting", "kitchen", "appliance"),
		def("width_cm", "home", FieldNumber).bounds(1, 1000).unit("cm"),
		def("height_cm", "home", FieldNumber).bounds(1, 1000).unit("cm"),
		def("depth_cm", "home", FieldNumber).bounds(1, 1000).unit("cm"),
		def("assembly_required", "home", FieldBoolean),

		// Pets.
		def("pet_category", "pets", FieldSelect).req().opts(
			"dog", "cat", "bird", "fish", "rodent", "reptile", "other"),
		def("pet_listing_type", "pets", FieldSelect).req().opts("sale", "adoption", "lost", "found"),
		def("species", "pets", FieldText).bounds(1, 100),
		def("breed", "pets", FieldText).bounds(1, 100),
		def("age_years", "pets", FieldNumber).integer().bounds(0, 50),
		def("age_months", "pets", FieldNumber).integer().bounds(0, 11),
		def("pet_gender", "pets", FieldSelect).opts("male", "female", "unknown"),
		def("microchipped", "pets", FieldBoolean),
		def("microchip_number", "pets", FieldText).bounds(1, 20),
		def("vaccinated", "pets", FieldBoolean),
		def("pet_passport", "pets", FieldBoolean),
		def("neutered_spayed", "pets", FieldBoolean),
		def("health_issues", "pets", FieldTextarea).bounds(1, 1000),
		def("temperament", "pets", FieldTextarea).bounds(1, 1000),
		def("adoption_fee", "pets", FieldNumber).atLeast(0).unit("EUR"),
		def("good_with_kids", "pets", FieldBoolean),
		def("last_seen_date", "pets", FieldDate),
		def("last_seen_location", "pets", FieldText).bounds(1, 500),
		def("distinctive_marks", "pets", FieldTextarea).bounds(1, 500),

		// Sports & hobbies.
		def("sport_type", "sports", FieldSelect).req().opts(
			"cycling", "fitness", "running", "swimming", "team_sports", "winter_sports",
			"water_sports", "outdoor", "combat_sports", "racket_sports", "other"),
		def("sport_item_type", "sports", FieldText).req().bounds(1, 100),
		def("size", "sports", FieldText).bounds(1, 50),
		def("frame_size_cm", "sports", FieldNumber).integer().bounds(1, 100).unit("cm"),
		def("wheel_size_inch", "sports", FieldNumber).bounds(1, 36).unit("\""),
		def("gears", "sports", FieldNumber).integer().bounds(0, 30),

		// Services.
		def("service_category", "services", FieldSelect).req().opts(
			"home_services", "beauty_wellness", "education_tutoring", "it_tech",
			"events", "transport_moving", "professional", "other"),
		def("service_type", "services", FieldText).req().bounds(1, 200),
		def("price_per_hour", "services", FieldNumber).atLeast(1).unit("EUR"),
		def("price_per_session", "services", FieldNumber).atLeast(1).unit("EUR"),
		def("price_negotiable", "services", FieldBoolean),
		def("provider_certified", "services", FieldBoolean),
		def("experience_years", "services", FieldNumber).integer().bounds(0, 70),
		def("vat_registered", "services", FieldBoolean),
		def("vat_number", "services", FieldText).pat(belgianVATPattern),
		def("insurance", "services", FieldBoolean),
		def("available_days", "services", FieldMultiSelect).opts(
			"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"),
		def("available_hours", "services", FieldText).bounds(1, 100),
		def("location_service", "services", FieldSelect).opts(
			"client_location", "provider_location", "remote", "flexible"),

		// Baby & kids.
		def("item_type", "baby_kids", FieldSelect).req().opts(
			"stroller", "car_seat", "crib", "high_chair", "baby_carrier", "playpen",
			"toy", "clothing", "books", "gear"),
		def("age_range", "baby_kids", FieldText).bounds(1, 100),
		def("safety_standards", "baby_kids", FieldMultiSelect).opts(
			"EN71", "CE", "EN1888", "ECE_R44", "ECE_R129", "EN716", "EN14988"),
		def("safety_cert_url", "baby_kids", FieldText).pat(urlPattern),
		def("recall_status", "baby_kids", FieldSelect).opts("safe", "recalled", "unknown"),
		def("cleanable", "baby_kids", FieldBoolean),
		def("washable", "baby_kids", FieldBoolean),

		// Vehicles. Canonical storage keys are prefixed; the validator also
		// accepts the bare submission aliases (make, model, year, mileage,
		// condition) used by the posting form's first-draft payloads.
		def("vehicle_make", "vehicle", FieldText).req().bounds(1, 100),
		def("vehicle_model", "vehicle", FieldText).req().bounds(1, 200),
		def("vehicle_year", "vehicle", FieldNumber).req().integer().atLeast(1900),
		def("vehicle_mileage_km", "vehicle", FieldNumber).req().bounds(0, 2_000_000).unit("km"),
		// The vehicle condition scale is coarser than the shared goods scale.
		def("vehicle_condition", "vehicle", FieldSelect).req().opts(
			"new", "excellent", "good", "needs_repair"),
		def("vehicle_body_type", "vehicle", FieldText).bounds(1, 100),
		def("vehicle_country", "vehicle", FieldText).bounds(1, 100),
	}

	for i := range defs {
		defs[i].Sort = i * 10
	}
	return defs
}
