package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCategoryTypeExactSlugs(t *testing.T) {
	cases := map[string]CategoryType{
		"real-estate-apartments": TypeProperty,
		"transport-cars":         TypeVehicle,
		"jobs-vacancies":         TypeJob,
		"electronics-computers":  TypeElectronics,
		"fashion-kids":           TypeFashion,
		"home-decoration":        TypeHome,
		"baby-kids-gear":         TypeBabyKids,
		"pets-accessories":       TypePets,
		"sports-team-sports":     TypeSports,
		"services-beauty":        TypeServices,
	}
	for slug, want := range cases {
		assert.Equalf(t, want, GetCategoryType(slug), "slug %s", slug)
	}
}

func TestGetCategoryTypeKeywordFallback(t *testing.T) {
	assert.Equal(t, TypeVehicle, GetCategoryType("transport-campers"))
	assert.Equal(t, TypeProperty, GetCategoryType("real-estate-new-builds"))
	assert.Equal(t, TypeElectronics, GetCategoryType("second-hand-phones"))
	assert.Equal(t, TypePets, GetCategoryType("pets-exotic"))
}

func TestGetCategoryTypeNormalizesInput(t *testing.T) {
	assert.Equal(t, TypeVehicle, GetCategoryType("  Transport-Cars  "))
}

func TestGetCategoryTypeUnknownIsGeneric(t *testing.T) {
	assert.Equal(t, TypeGeneric, GetCategoryType("collectibles-stamps"))
	assert.Equal(t, TypeGeneric, GetCategoryType(""))
}

func TestKeywordOrderPrefersTransportOverHome(t *testing.T) {
	// "motorhome" contains both "home" and no transport keyword besides the
	// explicit ordering; the transport keyword list is checked first.
	assert.Equal(t, TypeVehicle, GetCategoryType("transport-motorhomes"))
}

func TestUsesSpecializedTable(t *testing.T) {
	assert.True(t, UsesSpecializedTable("real-estate-houses"))
	assert.True(t, UsesSpecializedTable("jobs-vacancies"))
	assert.True(t, UsesSpecializedTable("transport-cars"))

	assert.False(t, UsesSpecializedTable("electronics-computers"))
	assert.False(t, UsesSpecializedTable("pets-dogs"))
	assert.False(t, UsesSpecializedTable("collectibles-stamps"))
}

func TestSpecialized(t *testing.T) {
	assert.True(t, TypeVehicle.Specialized())
	assert.False(t, TypeGeneric.Specialized())
	assert.False(t, CategoryType("").Specialized())
}
