package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMinorUnits(t *testing.T) {
	assert.Equal(t, "123.45", FormatMinorUnits(12345, 2))
	assert.Equal(t, "-0.05", FormatMinorUnits(-5, 2))
	assert.Equal(t, "0.00", FormatMinorUnits(0, 2))
	assert.Equal(t, "700", FormatMinorUnits(700, 0))
}

func TestGenerateEventCode(t *testing.T) {
	code, err := GenerateEventCode(8)
	require.NoError(t, err)
	assert.Len(t, code, 8)
	assert.Regexp(t, "^[A-Z]{8}$", code)

	_, err = GenerateEventCode(0)
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("hunter2", hash))
	assert.False(t, CheckPasswordHash("hunter3", hash))
	assert.False(t, CheckPasswordHash("", ""))
}

func TestJWTRoundTrip(t *testing.T) {
	token, expiresAt, err := GenerateJWT("organizer", "secret", time.Hour, "event-split")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "organizer", claims.Subject)
	assert.Equal(t, OrganizerRole, claims.Role)

	_, err = ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)

	expired, _, err := GenerateJWT("organizer", "secret", -time.Minute, "event-split")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(expired, "secret")
	assert.Error(t, err)
}
