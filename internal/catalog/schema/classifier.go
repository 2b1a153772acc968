package schema

import "strings"

// CategoryType is the closed classification that selects validator, codec and
// storage logic for a category. Adding a value here requires a matching
// validator ruleset; the validator engine fails startup otherwise.
type CategoryType string

const (
	TypeProperty    CategoryType = "property"
	TypeJob         CategoryType = "job"
	TypeElectronics CategoryType = "electronics"
	TypeFashion     CategoryType = "fashion"
	TypeHome        CategoryType = "home"
	TypePets        CategoryType = "pets"
	TypeSports      CategoryType = "sports"
	TypeServices    CategoryType = "services"
	TypeBabyKids    CategoryType = "baby_kids"
	TypeVehicle     CategoryType = "vehicle"
	TypeGeneric     CategoryType = "generic"
)

// AllCategoryTypes lists every specialized type (generic excluded).
func AllCategoryTypes() []CategoryType {
	return []CategoryType{
		TypeProperty, TypeJob, TypeElectronics, TypeFashion, TypeHome,
		TypePets, TypeSports, TypeServices, TypeBabyKids, TypeVehicle,
	}
}

// categoryTypeMap maps concrete taxonomy slugs to category types. This table
// and the keyword fallback below are the single dispatch point for validator,
// renderer and codec; type-specific logic must never re-derive types from
// slugs elsewhere, or rendering and validation drift apart.
var categoryTypeMap = map[string]CategoryType{
	"real-estate":            TypeProperty,
	"real-estate-sale":       TypeProperty,
	"real-estate-rent":       TypeProperty,
	"real-estate-apartments": TypeProperty,
	"real-estate-houses":     TypeProperty,
	"real-estate-land":       TypeProperty,
	"real-estate-commercial": TypeProperty,
	"real-estate-garages":    TypeProperty,

	"jobs":                      TypeJob,
	"jobs-vacancies":            TypeJob,
	"jobs-vacancies-full-time":  TypeJob,
	"jobs-vacancies-part-time":  TypeJob,
	"jobs-vacancies-temporary":  TypeJob,
	"jobs-resumes":              TypeJob,

	"electronics":                TypeElectronics,
	"electronics-phones-tablets": TypeElectronics,
	"electronics-computers":      TypeElectronics,
	"electronics-photo-video":    TypeElectronics,
	"electronics-tv-audio":       TypeElectronics,
	"electronics-appliances":     TypeElectronics,

	"fashion":       TypeFashion,
	"fashion-women": TypeFashion,
	"fashion-men":   TypeFashion,
	"fashion-kids":  TypeFashion,

	"home":            TypeHome,
	"home-furniture":  TypeHome,
	"home-decoration": TypeHome,
	"home-appliances": TypeHome,

	"baby-kids":          TypeBabyKids,
	"baby-kids-clothing": TypeBabyKids,
	"baby-kids-toys":     TypeBabyKids,
	"baby-kids-gear":     TypeBabyKids,

	"pets":             TypePets,
	"pets-dogs":        TypePets,
	"pets-cats":        TypePets,
	"pets-accessories": TypePets,

	"sports":             TypeSports,
	"sports-cycling":     TypeSports,
	"sports-fitness":     TypeSports,
	"sports-team-sports": TypeSports,

	"services":          TypeServices,
	"services-home":     TypeServices,
	"services-beauty":   TypeServices,
	"services-tutoring": TypeServices,

	"transport":                   TypeVehicle,
	"transport-cars":              TypeVehicle,
	"transport-cars-new":          TypeVehicle,
	"transport-cars-used":         TypeVehicle,
	"transport-motorcycles":       TypeVehicle,
	"transport-trucks":            TypeVehicle,
	"transport-special-equipment": TypeVehicle,
	"transport-water":             TypeVehicle,
}

// keyword fallback for taxonomy slugs that are not in the exact map, e.g.
// freshly added subcategories. Order matters: first hit wins.
var keywordTypes = []struct {
	keyword string
	ctype   CategoryType
}{
	{"transport", TypeVehicle},
	{"vehicle", TypeVehicle},
	{"motorcycle", TypeVehicle},
	{"real-estate", TypeProperty},
	{"apartment", TypeProperty},
	{"jobs", TypeJob},
	{"vacanc", TypeJob},
	{"electronics", TypeElectronics},
	{"phone", TypeElectronics},
	{"computer", TypeElectronics},
	{"fashion", TypeFashion},
	{"clothing", TypeFashion},
	{"shoes", TypeFashion},
	{"baby", TypeBabyKids},
	{"kids", TypeBabyKids},
	{"pets", TypePets},
	{"animals", TypePets},
	{"sport", TypeSports},
	{"hobby", TypeSports},
	{"services", TypeServices},
	{"home", TypeHome},
	{"furniture", TypeHome},
	{"garden", TypeHome},
}

// GetCategoryType maps a taxonomy slug to its category type. Unknown slugs
// classify as generic: the listing keeps only its non-specialized fields and
// an optional free-form attribute bag.
func GetCategoryType(categorySlug string) CategoryType {
	slug := strings.ToLower(strings.TrimSpace(categorySlug))
	if slug == "" {
		return TypeGeneric
	}
	if t, ok := categoryTypeMap[slug]; ok {
		return t
	}
	for _, kw := range keywordTypes {
		if strings.Contains(slug, kw.keyword) {
			return kw.ctype
		}
	}
	return TypeGeneric
}

// UsesSpecializedTable reports whether validated specifics for this category
// are persisted into a dedicated normalized table (one row per listing,
// upsert semantics) rather than embedded as a JSON attribute bag.
func UsesSpecializedTable(categorySlug string) bool {
	switch GetCategoryType(categorySlug) {
	case TypeProperty, TypeJob, TypeVehicle:
		return true
	default:
		return false
	}
}

// Domain returns the registry domain scope for a category type.
func (t CategoryType) Domain() string { return string(t) }

// Specialized reports whether the type carries category-specific attributes.
func (t CategoryType) Specialized() bool { return t != TypeGeneric && t != "" }
