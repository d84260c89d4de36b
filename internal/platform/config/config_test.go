package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// Empty values count as unset.
	t.Setenv("PORT", "")
	t.Setenv("STATE_BACKEND", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_EXPIRY_DURATION", "")
	t.Setenv("PERSISTENCE_TIMEOUT", "")
	t.Setenv("JOIN_RATE_LIMIT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("IS_PRODUCTION", "")
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackendMemory, cfg.StateBackend)
	assert.Equal(t, 12*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, 5*time.Second, cfg.PersistenceTimeout)
	assert.Equal(t, "10-M", cfg.JoinRateLimit)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("STATE_BACKEND", "Redis")
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("PERSISTENCE_TIMEOUT", "250ms")
	t.Setenv("JWT_EXPIRY_DURATION", "not-a-duration")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("BREAKER_FAIL_THRESHOLD", "2")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, cfg.StateBackend)
	assert.Equal(t, "cache:6380", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 250*time.Millisecond, cfg.PersistenceTimeout)
	assert.Equal(t, 12*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, uint32(2), cfg.BreakerFailThreshold)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("STATE_BACKEND", "sqlite")
	_, err := LoadConfig()
	assert.ErrorContains(t, err, "unknown STATE_BACKEND")

	t.Setenv("STATE_BACKEND", "postgres")
	t.Setenv("PGSQL_URL", "")
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "PGSQL_URL is required")

	t.Setenv("STATE_BACKEND", "memory")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "")
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "JWT_SECRET must be set")
}
