package listing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/okazmarkt/core/internal/catalog/codec"
	"github.com/okazmarkt/core/internal/catalog/registry"
	"github.com/okazmarkt/core/internal/catalog/validator"
	"github.com/okazmarkt/core/internal/catalog/vehicleref"
	"github.com/okazmarkt/core/internal/database"
	"github.com/okazmarkt/core/internal/models"
	"github.com/okazmarkt/core/internal/modules/media"
)

const (
	testOwner    = "11111111-1111-1111-1111-111111111111"
	testStranger = "99999999-9999-9999-9999-999999999999"
)

func setupListingTest(t *testing.T) (*gorm.DB, *Service) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	for _, slug := range []string{"transport-cars", "electronics-phones-tablets", "other"} {
		cat := models.MarketCategoryModel{Slug: slug, NameKey: "category." + slug + ".name", Active: true}
		if err := db.Create(&cat).Error; err != nil {
			t.Fatalf("failed to seed category %s: %v", slug, err)
		}
	}

	reg, err := registry.Default()
	require.NoError(t, err)
	engine, err := validator.New(reg, vehicleref.Default())
	require.NoError(t, err)

	svc := NewService(db, engine, codec.New(reg), media.NewDBCounter(db), zap.NewNop())
	return db, svc
}

func createVehicleListing(t *testing.T, svc *Service) *models.ListingModel {
	t.Helper()
	l, err := svc.Create(context.Background(), testOwner, &CreateListingDTO{
		Title:        "Toyota Corolla 2005",
		Price:        4500,
		CategorySlug: "transport-cars",
		City:         "Gent",
		Postcode:     "9000",
		Specifics: map[string]interface{}{
			"make": "Toyota", "model": "Corolla", "year": float64(2005),
			"mileage": float64(120000), "condition": "good",
		},
	})
	require.NoError(t, err)
	return l
}

func auditActions(t *testing.T, db *gorm.DB, targetID string) []string {
	t.Helper()
	var entries []models.AuditLogModel
	require.NoError(t, db.Where("target_id = ?", targetID).Order("created_at").Find(&entries).Error)
	actions := make([]string, len(entries))
	for i, e := range entries {
		actions[i] = e.Action
	}
	return actions
}

func TestCreateListingWithSpecifics(t *testing.T) {
	db, svc := setupListingTest(t)

	l := createVehicleListing(t, svc)
	assert.Equal(t, models.StatusDraft, l.Status)
	assert.Equal(t, "EUR", l.Currency)

	var fresh models.ListingModel
	require.NoError(t, db.First(&fresh, "id = ?", l.ID).Error)
	assert.Equal(t, 1, fresh.SpecificsVersion)

	var row models.VehicleSpecificsModel
	require.NoError(t, db.Where("listing_id = ?", l.ID).First(&row).Error)
	assert.Equal(t, "Toyota", row.Make)
	assert.Equal(t, "hatchback", row.BodyType)

	assert.Contains(t, auditActions(t, db, l.ID), models.AuditListingCreated)
}

func TestCreateListingRejectsInvalidSpecifics(t *testing.T) {
	_, svc := setupListingTest(t)

	_, err := svc.Create(context.Background(), testOwner, &CreateListingDTO{
		Title:        "mystery car",
		CategorySlug: "transport-cars",
		Specifics: map[string]interface{}{
			"make": "Zorblax", "model": "Quux", "year": float64(2010),
			"mileage": float64(1), "condition": "good",
		},
	})
	var sErr *SpecificsInvalidError
	require.ErrorAs(t, err, &sErr)
	require.NotEmpty(t, sErr.Errors)
	assert.Equal(t, "make", sErr.Errors[0].FieldPath)
}

func TestCreateListingUnknownCategory(t *testing.T) {
	_, svc := setupListingTest(t)

	_, err := svc.Create(context.Background(), testOwner, &CreateListingDTO{
		Title:        "thing",
		CategorySlug: "no-such-category",
	})
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestUpdateBasicFields(t *testing.T) {
	_, svc := setupListingTest(t)
	l := createVehicleListing(t, svc)

	title := "Toyota Corolla, fresh inspection"
	price := 4200.0
	updated, err := svc.Update(context.Background(), testOwner, l.ID, &UpdateListingDTO{
		Title: &title,
		Price: &price,
	})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.Equal(t, price, updated.Price)
	assert.Equal(t, 1, updated.SpecificsVersion, "basic edits must not bump the specifics version")
}

func TestUpdateRejectsNonOwner(t *testing.T) {
	_, svc := setupListingTest(t)
	l := createVehicleListing(t, svc)

	title := "hijacked"
	_, err := svc.Update(context.Background(), testStranger, l.ID, &UpdateListingDTO{Title: &title})
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestPublishRequiresMedia(t *testing.T) {
	db, svc := setupListingTest(t)
	l := createVehicleListing(t, svc)

	active := models.StatusActive
	_, err := svc.Update(context.Background(), testOwner, l.ID, &UpdateListingDTO{Status: &active})
	var terr *TransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, TransitionMediaRequired, terr.Code)

	require.NoError(t, db.Create(&models.MediaModel{
		ListingID: l.ID, URL: "https://cdn.example.be/1.jpg", IsCover: true,
	}).Error)

	updated, err := svc.Update(context.Background(), testOwner, l.ID, &UpdateListingDTO{Status: &active})
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, updated.Status)
	assert.Contains(t, auditActions(t, db, l.ID), models.AuditStatusChanged)
}

func TestActiveListingCannotReturnToDraft(t *testing.T) {
	db, svc := setupListingTest(t)
	l := createVehicleListing(t, svc)

	require.NoError(t, db.Create(&models.MediaModel{ListingID: l.ID, URL: "https://cdn.example.be/1.jpg"}).Error)
	active := models.StatusActive
	_, err := svc.Update(context.Background(), testOwner, l.ID, &UpdateListingDTO{Status: &active})
	require.NoError(t, err)

	draft := models.StatusDraft
	_, err = svc.Update(context.Background(), testOwner, l.ID, &UpdateListingDTO{Status: &draft})
	var terr *TransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, TransitionInvalid, terr.Code)
}

func TestArchivedListingRelists(t *testing.T) {
	db, svc := setupListingTest(t)
	l := createVehicleListing(t, svc)
	require.NoError(t, db.Create(&models.MediaModel{ListingID: l.ID, URL: "https://cdn.example.be/1.jpg"}).Error)

	ctx := context.Background()
	active, archived := models.StatusActive, models.StatusArchived

	_, err := svc.Update(ctx, testOwner, l.ID, &UpdateListingDTO{Status: &active})
	require.NoError(t, err)
	_, err = svc.Update(ctx, testOwner, l.ID, &UpdateListingDTO{Status: &archived})
	require.NoError(t, err)

	// Relisting goes through the media gate again.
	require.NoError(t, db.Where("listing_id = ?", l.ID).Delete(&models.MediaModel{}).Error)
	_, err = svc.Update(ctx, testOwner, l.ID, &UpdateListingDTO{Status: &active})
	var terr *TransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, TransitionMediaRequired, terr.Code)
}

func TestBlockedListingRejectsAllUpdatesOfStatus(t *testing.T) {
	db, svc := setupListingTest(t)
	l := createVehicleListing(t, svc)
	require.NoError(t, db.Model(&models.ListingModel{}).Where("id = ?", l.ID).Update("status", models.StatusBlocked).Error)

	draft := models.StatusDraft
	_, err := svc.Update(context.Background(), testOwner, l.ID, &UpdateListingDTO{Status: &draft})
	var terr *TransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, TransitionFromBlocked, terr.Code)
}

func TestUpdateSpecificsBumpsVersion(t *testing.T) {
	db, svc := setupListingTest(t)
	l := createVehicleListing(t, svc)

	updated, err := svc.Update(context.Background(), testOwner, l.ID, &UpdateListingDTO{
		Specifics: map[string]interface{}{
			"make": "Toyota", "model": "Corolla", "year": float64(2005),
			"mileage": float64(121500), "condition": "good",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.SpecificsVersion)

	var row models.VehicleSpecificsModel
	require.NoError(t, db.Where("listing_id = ?", l.ID).First(&row).Error)
	assert.Equal(t, float64(121500), row.MileageKm)

	assert.Contains(t, auditActions(t, db, l.ID), models.AuditSpecificsWritten)
}

func TestUpdateSpecificsStaleVersionConflicts(t *testing.T) {
	_, svc := setupListingTest(t)
	l := createVehicleListing(t, svc)

	stale := 0 // the create already moved the version to 1
	_, err := svc.Update(context.Background(), testOwner, l.ID, &UpdateListingDTO{
		Specifics: map[string]interface{}{
			"make": "Toyota", "model": "Corolla", "year": float64(2005),
			"mileage": float64(130000), "condition": "good",
		},
		SpecificsVersion: &stale,
	})
	assert.ErrorIs(t, err, ErrVersionConflict)
}

func TestUpdateEmptySpecificsClearsStorage(t *testing.T) {
	db, svc := setupListingTest(t)
	l := createVehicleListing(t, svc)

	_, err := svc.Update(context.Background(), testOwner, l.ID, &UpdateListingDTO{
		Specifics: map[string]interface{}{},
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.VehicleSpecificsModel{}).Where("listing_id = ?", l.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestHydratedReturnsEditValues(t *testing.T) {
	_, svc := setupListingTest(t)
	l := createVehicleListing(t, svc)

	full, err := svc.GetByID(l.ID)
	require.NoError(t, err)
	out, err := svc.Hydrated(full)
	require.NoError(t, err)

	assert.Equal(t, "transport-cars", out.CategorySlug)
	assert.Equal(t, "Toyota", out.SpecificsMap["vehicle_make"])
	assert.Equal(t, float64(120000), out.SpecificsMap["vehicle_mileage_km"])
}

func TestDeleteRemovesListingAndSpecifics(t *testing.T) {
	db, svc := setupListingTest(t)
	l := createVehicleListing(t, svc)

	require.NoError(t, svc.Delete(context.Background(), testOwner, l.ID))

	got, err := svc.GetByID(l.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	var count int64
	require.NoError(t, db.Model(&models.VehicleSpecificsModel{}).Where("listing_id = ?", l.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	assert.Contains(t, auditActions(t, db, l.ID), models.AuditListingDeleted)
}

func TestDeleteRejectsNonOwner(t *testing.T) {
	_, svc := setupListingTest(t)
	l := createVehicleListing(t, svc)

	assert.ErrorIs(t, svc.Delete(context.Background(), testStranger, l.ID), ErrNotOwner)
}
