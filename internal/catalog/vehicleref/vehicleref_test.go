package vehicleref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSnapshot(t *testing.T) {
	snap := Default()
	assert.Equal(t, "2025-07", snap.Version())
	assert.NotEmpty(t, snap.Makes())
}

func TestMakeLookupIsCaseAndSpaceInsensitive(t *testing.T) {
	snap := Default()

	assert.True(t, snap.HasMake("Toyota"))
	assert.True(t, snap.HasMake("toyota"))
	assert.True(t, snap.HasMake("  TOYOTA  "))
	assert.True(t, snap.HasMake("mercedes-benz"))
	assert.False(t, snap.HasMake("Lada"))

	canonical, ok := snap.CanonicalMake("volkswagen")
	require.True(t, ok)
	assert.Equal(t, "Volkswagen", canonical)
}

func TestFindModel(t *testing.T) {
	snap := Default()

	model, ok := snap.FindModel("toyota", "corolla")
	require.True(t, ok)
	assert.Equal(t, "Corolla", model.Name)
	assert.Equal(t, 2000, model.YearStart)
	require.NotNil(t, model.YearEnd)
	assert.Equal(t, 2013, *model.YearEnd)
	assert.Equal(t, "hatchback", model.BodyType)
	assert.Equal(t, "JP", model.Country)

	_, ok = snap.FindModel("toyota", "golf")
	assert.False(t, ok)
	_, ok = snap.FindModel("nope", "corolla")
	assert.False(t, ok)
}

func TestModelNamesWithSpaces(t *testing.T) {
	snap := Default()

	model, ok := snap.FindModel("tesla", "model   3")
	require.True(t, ok)
	assert.Equal(t, "Model 3", model.Name)
}

func TestInProduction(t *testing.T) {
	snap := Default()

	golf, ok := snap.FindModel("Volkswagen", "Golf")
	require.True(t, ok)
	assert.True(t, golf.InProduction(2024), "open-ended production run")
	assert.False(t, golf.InProduction(1970))

	corolla, ok := snap.FindModel("Toyota", "Corolla")
	require.True(t, ok)
	assert.True(t, corolla.InProduction(2005))
	assert.False(t, corolla.InProduction(1999))
	assert.False(t, corolla.InProduction(2015))
}

func TestModels(t *testing.T) {
	snap := Default()

	assert.NotEmpty(t, snap.Models("toyota"))
	assert.Empty(t, snap.Models("unknown make"))
}
