package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okazmarkt/core/internal/catalog/registry"
	"github.com/okazmarkt/core/internal/catalog/schema"
	"github.com/okazmarkt/core/internal/catalog/vehicleref"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	reg, err := registry.Default()
	require.NoError(t, err)
	engine, err := New(reg, vehicleref.Default(), WithClock(func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}))
	require.NoError(t, err)
	return engine
}

func errorFor(t *testing.T, result *Result, path string) *FieldError {
	t.Helper()
	for i := range result.Errors {
		if result.Errors[i].FieldPath == path {
			return &result.Errors[i]
		}
	}
	return nil
}

func TestVehicleAcceptsKnownModel(t *testing.T) {
	engine := newTestEngine(t)

	result, err := engine.Validate("transport-cars", map[string]interface{}{
		"make":      "Toyota",
		"model":     "Corolla",
		"year":      float64(2005),
		"mileage":   float64(120000),
		"condition": "good",
	})
	require.NoError(t, err)
	require.True(t, result.Ok(), "expected no errors, got %v", result.Errors)

	assert.Equal(t, schema.TypeVehicle, result.CategoryType)
	assert.Equal(t, "Toyota", result.Specifics["vehicle_make"])
	assert.Equal(t, "Corolla", result.Specifics["vehicle_model"])
	assert.Equal(t, float64(120000), result.Specifics["vehicle_mileage_km"])
	assert.Equal(t, "hatchback", result.Specifics["vehicle_body_type"])
	assert.Equal(t, "JP", result.Specifics["vehicle_country"])
}

func TestVehicleRejectsYearOutsideProductionRun(t *testing.T) {
	engine := newTestEngine(t)

	result, err := engine.Validate("transport-cars", map[string]interface{}{
		"make":      "Toyota",
		"model":     "Corolla",
		"year":      float64(1998),
		"mileage":   float64(120000),
		"condition": "good",
	})
	require.NoError(t, err)
	require.False(t, result.Ok())

	ferr := errorFor(t, result, "year")
	require.NotNil(t, ferr)
	assert.Equal(t, CodeOutOfRange, ferr.ErrorCode)
	assert.Equal(t, "allowed range 2000-2013", ferr.Detail)
}

func TestVehicleRejectsUnknownMakeAndModel(t *testing.T) {
	engine := newTestEngine(t)

	result, err := engine.Validate("transport-cars", map[string]interface{}{
		"make": "Zorblax", "model": "Quux", "year": float64(2010),
		"mileage": float64(50000), "condition": "good",
	})
	require.NoError(t, err)
	require.False(t, result.Ok())
	ferr := errorFor(t, result, "make")
	require.NotNil(t, ferr)
	assert.Equal(t, CodeUnknown, ferr.ErrorCode)

	result, err = engine.Validate("transport-cars", map[string]interface{}{
		"make": "Toyota", "model": "Quux", "year": float64(2010),
		"mileage": float64(50000), "condition": "good",
	})
	require.NoError(t, err)
	require.False(t, result.Ok())
	ferr = errorFor(t, result, "model")
	require.NotNil(t, ferr)
	assert.Equal(t, CodeUnknown, ferr.ErrorCode)
}

func TestVehicleOpenEndedModelUsesCurrentYear(t *testing.T) {
	engine := newTestEngine(t)

	// Golf has no production end; the injected clock says 2025.
	result, err := engine.Validate("transport-cars", map[string]interface{}{
		"make": "Volkswagen", "model": "Golf", "year": float64(2026),
		"mileage": float64(10), "condition": "new",
	})
	require.NoError(t, err)
	require.False(t, result.Ok())
	ferr := errorFor(t, result, "year")
	require.NotNil(t, ferr)
	assert.Equal(t, "allowed range 1974-2025", ferr.Detail)
}

func TestVehicleDerivedFieldsNeverTrusted(t *testing.T) {
	engine := newTestEngine(t)

	result, err := engine.Validate("transport-cars", map[string]interface{}{
		"make": "Toyota", "model": "Corolla", "year": float64(2005),
		"mileage": float64(1000), "condition": "good",
		"vehicle_body_type": "spaceship",
		"vehicle_country":   "XX",
	})
	require.NoError(t, err)
	require.True(t, result.Ok())
	assert.Equal(t, "hatchback", result.Specifics["vehicle_body_type"])
	assert.Equal(t, "JP", result.Specifics["vehicle_country"])
}

func TestVehicleMileageRounded(t *testing.T) {
	engine := newTestEngine(t)

	result, err := engine.Validate("transport-cars", map[string]interface{}{
		"make": "Toyota", "model": "Yaris", "year": float64(2015),
		"mileage": 120000.6, "condition": "good",
	})
	require.NoError(t, err)
	require.True(t, result.Ok())
	assert.Equal(t, float64(120001), result.Specifics["vehicle_mileage_km"])
}

func TestCollectsAllStructuralViolations(t *testing.T) {
	engine := newTestEngine(t)

	// Every required field missing or broken: all of them must be reported.
	result, err := engine.Validate("transport-cars", map[string]interface{}{
		"condition": "mint", // not in the enum
		"mileage":   float64(-5),
	})
	require.NoError(t, err)
	require.False(t, result.Ok())

	// Absent fields report under their canonical key; the ones submitted via
	// their short alias report under the alias.
	for _, path := range []string{"vehicle_make", "vehicle_model", "vehicle_year", "mileage", "condition"} {
		assert.NotNilf(t, errorFor(t, result, path), "missing error for %s", path)
	}
	assert.Equal(t, CodeUnknownOption, errorFor(t, result, "condition").ErrorCode)
	assert.Equal(t, CodeOutOfRange, errorFor(t, result, "mileage").ErrorCode)
	assert.Equal(t, "vehicle_make", result.Errors[0].FieldPath)
}

func TestRevalidationOfNormalizedOutputIsIdempotent(t *testing.T) {
	engine := newTestEngine(t)

	input := map[string]interface{}{
		"make": "toyota", "model": "corolla", "year": float64(2005),
		"mileage": float64(120000), "condition": "good",
	}
	first, err := engine.Validate("transport-cars", input)
	require.NoError(t, err)
	require.True(t, first.Ok())

	second, err := engine.Validate("transport-cars", map[string]interface{}(first.Specifics))
	require.NoError(t, err)
	require.True(t, second.Ok(), "normalized output must re-validate cleanly, got %v", second.Errors)
	assert.Equal(t, first.Specifics, second.Specifics)
}

func TestCanonicalKeyWinsOverAlias(t *testing.T) {
	engine := newTestEngine(t)

	result, err := engine.Validate("transport-cars", map[string]interface{}{
		"vehicle_make": "Toyota", "make": "Volkswagen",
		"vehicle_model": "Corolla", "model": "Golf",
		"year": float64(2005), "mileage": float64(1), "condition": "good",
	})
	require.NoError(t, err)
	require.True(t, result.Ok())
	assert.Equal(t, "Toyota", result.Specifics["vehicle_make"])
	assert.Equal(t, "Corolla", result.Specifics["vehicle_model"])
}

func TestEmptyStringsAreAbsent(t *testing.T) {
	engine := newTestEngine(t)

	result, err := engine.Validate("transport-cars", map[string]interface{}{
		"make": "   ", "model": "Corolla", "year": float64(2005),
		"mileage": float64(1000), "condition": "good",
	})
	require.NoError(t, err)
	require.False(t, result.Ok())
	ferr := errorFor(t, result, "make")
	require.NotNil(t, ferr)
	assert.Equal(t, CodeRequired, ferr.ErrorCode)
}

func TestUnknownKeysAreDropped(t *testing.T) {
	engine := newTestEngine(t)

	result, err := engine.Validate("transport-cars", map[string]interface{}{
		"make": "Toyota", "model": "Corolla", "year": float64(2005),
		"mileage": float64(1000), "condition": "good",
		"hacker_field": "x", "rooms": float64(3),
	})
	require.NoError(t, err)
	require.True(t, result.Ok())
	assert.NotContains(t, result.Specifics, "hacker_field")
	assert.NotContains(t, result.Specifics, "rooms")
}

func TestGenericCategoryValidatesTrivially(t *testing.T) {
	engine := newTestEngine(t)

	result, err := engine.Validate("weird-unknown-slug-xyz", map[string]interface{}{
		"anything": "goes",
	})
	require.NoError(t, err)
	assert.True(t, result.Ok())
	assert.Equal(t, schema.TypeGeneric, result.CategoryType)
	assert.Empty(t, result.Specifics)
}

func TestDeterministicAcrossRuns(t *testing.T) {
	engine := newTestEngine(t)

	input := map[string]interface{}{
		"make": "BMW", "model": "X1", "year": float64(2015),
		"mileage": float64(90000), "condition": "excellent",
	}
	first, err := engine.Validate("transport-cars", input)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := engine.Validate("transport-cars", input)
		require.NoError(t, err)
		assert.Equal(t, first.Ok(), again.Ok())
		assert.Equal(t, first.Specifics, again.Specifics)
	}
}
