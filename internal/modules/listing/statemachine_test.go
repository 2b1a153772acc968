package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okazmarkt/core/internal/models"
)

func TestCheckTransitionGraph(t *testing.T) {
	allowed := [][2]string{
		{models.StatusDraft, models.StatusDraft},
		{models.StatusDraft, models.StatusActive},
		{models.StatusDraft, models.StatusArchived},
		{models.StatusActive, models.StatusActive},
		{models.StatusActive, models.StatusArchived},
		{models.StatusArchived, models.StatusArchived},
		{models.StatusArchived, models.StatusActive},
	}
	for _, pair := range allowed {
		assert.Nilf(t, CheckTransition(pair[0], pair[1]), "%s -> %s should be allowed", pair[0], pair[1])
	}

	rejected := [][2]string{
		{models.StatusActive, models.StatusDraft},
		{models.StatusArchived, models.StatusDraft},
	}
	for _, pair := range rejected {
		terr := CheckTransition(pair[0], pair[1])
		require.NotNilf(t, terr, "%s -> %s should be rejected", pair[0], pair[1])
		assert.Equal(t, TransitionInvalid, terr.Code)
	}
}

func TestCheckTransitionBlockedIsTerminal(t *testing.T) {
	for _, to := range []string{models.StatusDraft, models.StatusActive, models.StatusArchived} {
		terr := CheckTransition(models.StatusBlocked, to)
		require.NotNil(t, terr)
		assert.Equal(t, TransitionFromBlocked, terr.Code)
	}
}

func TestCheckTransitionBlockedNotRequestable(t *testing.T) {
	terr := CheckTransition(models.StatusDraft, models.StatusBlocked)
	require.NotNil(t, terr)
	assert.Equal(t, TransitionBlockedTarget, terr.Code)

	// Target check wins even from blocked.
	terr = CheckTransition(models.StatusBlocked, models.StatusBlocked)
	require.NotNil(t, terr)
	assert.Equal(t, TransitionBlockedTarget, terr.Code)
}

func TestCheckTransitionUnknownStatus(t *testing.T) {
	terr := CheckTransition(models.StatusDraft, "published")
	require.NotNil(t, terr)
	assert.Equal(t, TransitionUnknownStatus, terr.Code)
}

func TestRequiresMedia(t *testing.T) {
	assert.True(t, RequiresMedia(models.StatusDraft, models.StatusActive))
	assert.True(t, RequiresMedia(models.StatusArchived, models.StatusActive))

	assert.False(t, RequiresMedia(models.StatusActive, models.StatusActive), "already-active listings are not re-gated")
	assert.False(t, RequiresMedia(models.StatusDraft, models.StatusArchived))
	assert.False(t, RequiresMedia(models.StatusActive, models.StatusArchived))
}
