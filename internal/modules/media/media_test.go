package media

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/okazmarkt/core/internal/database"
	"github.com/okazmarkt/core/internal/models"
)

func setupMediaTest(t *testing.T) (*gorm.DB, *Service, *models.ListingModel) {
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
	l := &models.ListingModel{
		UserID:     "11111111-1111-1111-1111-111111111111",
		CategoryID: "22222222-2222-2222-2222-222222222222",
		Title:      "test listing",
	}
	require.NoError(t, db.Create(l).Error)
	return db, NewService(db), l
}

func TestAttachListDetach(t *testing.T) {
	_, svc, l := setupMediaTest(t)

	first, err := svc.Attach(l.ID, &AttachMediaDTO{URL: "https://cdn.example.be/a.jpg", Sort: 1})
	require.NoError(t, err)
	cover, err := svc.Attach(l.ID, &AttachMediaDTO{URL: "https://cdn.example.be/cover.jpg", Sort: 0, IsCover: true})
	require.NoError(t, err)

	items, err := svc.ListForListing(l.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, cover.ID, items[0].ID, "listing order follows sort")
	assert.True(t, items[0].IsCover)

	require.NoError(t, svc.Detach(l.ID, first.ID))
	items, err = svc.ListForListing(l.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestDBCounterSeesCurrentState(t *testing.T) {
	db, svc, l := setupMediaTest(t)
	counter := NewDBCounter(db)
	ctx := context.Background()

	n, err := counter.Count(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	m, err := svc.Attach(l.ID, &AttachMediaDTO{URL: "https://cdn.example.be/a.jpg"})
	require.NoError(t, err)
	n, err = counter.Count(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// A deletion between render and publish must be visible immediately.
	require.NoError(t, svc.Detach(l.ID, m.ID))
	n, err = counter.Count(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestOwnerOf(t *testing.T) {
	_, svc, l := setupMediaTest(t)

	owner, err := svc.ownerOf(l.ID)
	require.NoError(t, err)
	assert.Equal(t, l.UserID, owner)

	owner, err = svc.ownerOf("00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)
	assert.Empty(t, owner)
}
