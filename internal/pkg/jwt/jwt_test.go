package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignParseRoundTrip(t *testing.T) {
	token, err := Sign("user-42", time.Minute)
	require.NoError(t, err)

	claims, err := Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, "okazmarkt", claims.Issuer)
}

func TestParseRejectsTamperedToken(t *testing.T) {
	token, err := Sign("user-42", time.Minute)
	require.NoError(t, err)

	_, err = Parse(token + "x")
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	// Past the 30s leeway.
	token, err := Sign("user-42", -2*time.Minute)
	require.NoError(t, err)

	_, err = Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsMissingUserID(t *testing.T) {
	token, err := Sign("", time.Minute)
	require.NoError(t, err)

	_, err = Parse(token)
	assert.ErrorIs(t, err, ErrNoUser)
}
