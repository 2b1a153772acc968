package schema

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var structValidator = validator.New()

// Store holds the active schema per category type. It is an immutable
// snapshot, safe to share across concurrent requests.
type Store struct {
	schemas map[CategoryType]CategorySchema
}

// NewStore validates and indexes the given schemas.
func NewStore(schemas map[CategoryType]CategorySchema) (*Store, error) {
	for ctype, cs := range schemas {
		cs := cs
		if err := structValidator.Struct(&cs); err != nil {
			return nil, fmt.Errorf("schema %s: %w", ctype, err)
		}
	}
	return &Store{schemas: schemas}, nil
}

// DefaultStore builds the store from the built-in schema seed.
func DefaultStore() (*Store, error) {
	return NewStore(seedSchemas())
}

// LoadFile merges a YAML overlay (map of category type to schema) over the
// seed. A schema in the overlay replaces the seed schema for that type when
// its version is higher; stale overlay versions are ignored.
func LoadFile(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema overlay: %w", err)
	}
	var overlay map[CategoryType]CategorySchema
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return nil, fmt.Errorf("parse schema overlay: %w", err)
	}
	merged := seedSchemas()
	for ctype, cs := range overlay {
		if base, ok := merged[ctype]; ok && base.Version >= cs.Version {
			continue
		}
		merged[ctype] = cs
	}
	return NewStore(merged)
}

// ForType returns the active schema for a category type.
func (s *Store) ForType(t CategoryType) (*CategorySchema, bool) {
	cs, ok := s.schemas[t]
	if !ok {
		return nil, false
	}
	return &cs, true
}

// ForCategory resolves a taxonomy slug through the classifier and returns the
// matching schema. Generic categories have no schema.
func (s *Store) ForCategory(categorySlug string) (*CategorySchema, CategoryType, bool) {
	ctype := GetCategoryType(categorySlug)
	if !ctype.Specialized() {
		return nil, ctype, false
	}
	cs, ok := s.ForType(ctype)
	return cs, ctype, ok
}

// Types returns the category types that have an active schema.
func (s *Store) Types() []CategoryType {
	types := make([]CategoryType, 0, len(s.schemas))
	for t := range s.schemas {
		types = append(types, t)
	}
	return types
}

// Schema seed builders.

func step(key string, groups ...Group) Step {
	return Step{Key: key, TitleKey: "catalog.step." + key + ".title", Groups: groups}
}

func grp(key string, layout Layout, fields ...FieldRef) Group {
	return Group{Key: key, TitleKey: "catalog.group." + key + ".title", Layout: layout, Fields: fields}
}

func f(key string) FieldRef { return FieldRef{FieldKey: key} }

func opt(key string) FieldRef {
	o := true
	return FieldRef{FieldKey: key, Optional: &o}
}

func (r FieldRef) when(field string, value interface{}) FieldRef {
	r.Conditional = &Condition{FieldKey: field, Value: value}
	return r
}

func (r FieldRef) whenIn(field string, values ...interface{}) FieldRef {
	r.Conditional = &Condition{FieldKey: field, Values: values}
	return r
}

func (r FieldRef) step(v float64) FieldRef { r.Step = &v; return r }

func (r FieldRef) max(v float64) FieldRef { r.Max = &v; return r }

func (r FieldRef) placeholder(key string) FieldRef { r.PlaceholderKey = key; return r }

// seedSchemas is the built-in per-category form composition, distilled from
// the catalog team's production schema rows.
func seedSchemas() map[CategoryType]CategorySchema {
	return map[CategoryType]CategorySchema{
		TypeProperty: {Version: 3, Steps: []Step{
			step("property_basics",
				grp("classification", LayoutDouble, f("property_type"), f("listing_type")),
				grp("dimensions", LayoutGrid,
					f("area_sqm").step(0.1),
					opt("land_area_sqm").step(0.1),
					opt("rooms"), opt("bedrooms"), opt("bathrooms").step(0.5)),
				grp("location", LayoutDouble,
					f("postcode").placeholder("catalog.placeholder.postcode"),
					f("municipality"), opt("neighborhood")),
			),
			step("property_building",
				grp("building", LayoutGrid,
					opt("year_built"), opt("renovation_year"), opt("floor"), opt("total_floors")),
				grp("energy", LayoutDouble,
					opt("epc_rating"), opt("epc_cert_number"), opt("epc_kwh_per_sqm_year"),
					opt("heating_type"), opt("double_glazing")),
				grp("outdoor", LayoutGrid,
					opt("terrace_sqm"), opt("garden_sqm"),
					opt("garden_orientation").when("listing_type", "sale"),
					opt("parking_spaces"), opt("parking_type"),
					opt("elevator"), opt("cellar")),
			),
			step("property_rental",
				grp("rental_terms", LayoutDouble,
					f("rent_monthly").when("listing_type", "rent"),
					opt("rent_charges_monthly").when("listing_type", "rent"),
					opt("deposit_months").when("listing_type", "rent"),
					opt("lease_duration_months").when("listing_type", "rent"),
					opt("available_from").when("listing_type", "rent"),
					opt("furnished").when("listing_type", "rent"),
					opt("pet_friendly").when("listing_type", "rent"),
					opt("smoking_allowed").when("listing_type", "rent")),
			),
		}},

		TypeJob: {Version: 2, Steps: []Step{
			step("job_basics",
				grp("classification", LayoutDouble,
					f("job_category"), f("contract_type"), f("employment_type"),
					opt("cp_code"), opt("remote_option")),
				grp("schedule", LayoutGrid,
					opt("hours_per_week"), opt("shift_work"), opt("weekend_work"),
					opt("night_shifts"), opt("flexible_hours")),
			),
			step("job_compensation",
				grp("salary", LayoutGrid,
					opt("salary_min"), opt("salary_max"), opt("salary_currency"),
					opt("salary_period"), opt("salary_type"), opt("salary_negotiable"),
					opt("benefits")),
				grp("requirements", LayoutDouble,
					opt("experience_years_min"), opt("education_level"),
					opt("languages_required"), opt("languages_preferred"),
					opt("driving_license_required"),
					opt("license_types").when("driving_license_required", true),
					opt("work_permit_required")),
			),
			step("job_application",
				grp("company", LayoutDouble, opt("company_name"), opt("company_size"), opt("industry")),
				grp("apply", LayoutDouble,
					opt("application_deadline"), opt("start_date"),
					opt("contact_email"), opt("contact_phone"), opt("application_url")),
			),
		}},

		TypeElectronics: {Version: 2, Steps: []Step{
			step("device",
				grp("device_info", LayoutDouble,
					f("device_type"), f("brand"), f("model"), opt("release_year")),
				grp("specs", LayoutGrid,
					opt("memory_gb"), opt("storage_gb"), opt("screen_size_inch")),
			),
			step("device_condition",
				grp("condition_info", LayoutDouble,
					f("condition"),
					f("battery_condition").whenIn("device_type", "phone", "tablet", "laptop", "watch"),
					opt("hours_of_use").whenIn("device_type", "tv", "monitor"),
					opt("sim_lock_carrier").when("device_type", "phone"),
					opt("imei").whenIn("device_type", "phone", "tablet"),
					opt("serial_number")),
				grp("completeness", LayoutGrid,
					opt("original_box"), opt("original_charger"),
					opt("warranty_until"), opt("delivery_options")),
			),
		}},

		TypeFashion: {Version: 1, Steps: []Step{
			step("garment",
				grp("classification", LayoutDouble,
					f("clothing_type"), opt("gender"), opt("age_category"), f("color"),
					opt("brand"), opt("material"), opt("pattern"), opt("season")),
				grp("sizing", LayoutGrid,
					opt("size_label"), opt("size_eu"), opt("size_be"), opt("size_uk"), opt("size_us"),
					opt("chest_bust_cm"), opt("waist_cm"), opt("hips_cm"), opt("inseam_cm")),
			),
			step("garment_condition",
				grp("condition_info", LayoutDouble,
					f("condition"), opt("defects"), opt("original_tags"), opt("designer"),
					opt("vintage"),
					f("vintage_decade").when("vintage", true),
					opt("delivery_options")),
			),
		}},

		TypeHome: {Version: 1, Steps: []Step{
			step("furniture",
				grp("item", LayoutDouble,
					f("furniture_type"), opt("brand"), opt("material"), opt("color")),
				grp("dimensions", LayoutGrid, opt("width_cm"), opt("height_cm"), opt("depth_cm")),
				grp("condition_info", LayoutDouble,
					f("condition"), opt("assembly_required"), opt("delivery_options")),
			),
		}},

		TypePets: {Version: 2, Steps: []Step{
			step("animal",
				grp("classification", LayoutDouble,
					f("pet_category"), f("pet_listing_type"), opt("species"), opt("breed"),
					opt("age_years"), opt("age_months"), opt("pet_gender")),
				grp("legal", LayoutDouble,
					f("microchipped").whenIn("pet_listing_type", "sale", "adoption"),
					opt("microchip_number").when("microchipped", true),
					opt("vaccinated"), opt("pet_passport"), opt("neutered_spayed")),
			),
			step("animal_details",
				grp("health", LayoutSingle, opt("health_issues"),
					f("temperament").when("pet_listing_type", "adoption")),
				grp("adoption", LayoutDouble,
					opt("adoption_fee").when("pet_listing_type", "adoption"),
					opt("good_with_kids").when("pet_listing_type", "adoption")),
				grp("lost_found", LayoutDouble,
					f("last_seen_date").whenIn("pet_listing_type", "lost", "found"),
					f("last_seen_location").whenIn("pet_listing_type", "lost", "found"),
					opt("distinctive_marks").whenIn("pet_listing_type", "lost", "found")),
			),
		}},

		TypeSports: {Version: 1, Steps: []Step{
			step("equipment",
				grp("item", LayoutDouble,
					f("sport_type"), f("sport_item_type"), opt("brand"), opt("size")),
				grp("bike", LayoutGrid,
					opt("frame_size_cm").when("sport_type", "cycling"),
					opt("wheel_size_inch").when("sport_type", "cycling"),
					opt("gears").when("sport_type", "cycling")),
				grp("condition_info", LayoutDouble, f("condition"), opt("delivery_options")),
			),
		}},

		TypeServices: {Version: 1, Steps: []Step{
			step("service",
				grp("classification", LayoutDouble, f("service_category"), f("service_type")),
				grp("pricing", LayoutGrid,
					opt("price_per_hour"), opt("price_per_session"), opt("price_negotiable")),
				grp("provider", LayoutDouble,
					opt("provider_certified"), opt("experience_years"),
					opt("vat_registered"),
					f("vat_number").when("vat_registered", true),
					opt("insurance")),
				grp("availability", LayoutDouble,
					opt("available_days"), opt("available_hours"), opt("location_service")),
			),
		}},

		TypeBabyKids: {Version: 2, Steps: []Step{
			step("baby_item",
				grp("item", LayoutDouble,
					f("item_type"), opt("age_range"), opt("brand")),
				grp("safety", LayoutDouble,
					f("safety_standards").whenIn("item_type",
						"car_seat", "crib", "high_chair", "baby_carrier", "playpen"),
					opt("safety_cert_url"), f("recall_status")),
				grp("condition_info", LayoutGrid,
					f("condition"), opt("cleanable"), opt("washable"), opt("delivery_options")),
			),
		}},

		TypeVehicle: {Version: 4, Steps: []Step{
			step("vehicle_identity",
				grp("identity", LayoutDouble,
					f("vehicle_make"), f("vehicle_model"), f("vehicle_year")),
				grp("usage", LayoutDouble,
					f("vehicle_mileage_km").max(2_000_000), f("vehicle_condition")),
			),
		}},
	}
}
