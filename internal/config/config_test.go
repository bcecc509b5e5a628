package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_PORT", "APP_ENV", "SESSION_TTL", "REDIS_ADDR", "SEED_DEMO_DATA", "PLAY_RATE_LIMIT", "LOG_FORMAT", "JWT_SECRET"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "5000", cfg.AppPort)
	assert.Equal(t, DefaultSessionTTL, cfg.SessionTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	assert.Empty(t, cfg.RedisAddr)
	assert.True(t, cfg.SeedDemoData)
	assert.Equal(t, 0, cfg.PlayRateLimit)
	assert.False(t, cfg.LogJSON)
	assert.False(t, cfg.IsProduction())
	assert.True(t, cfg.IsDevelopment())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "8081")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("SEED_DEMO_DATA", "false")
	t.Setenv("PLAY_RATE_LIMIT", "30")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("JWT_SECRET", "d41d8cd98f00b204e9800998ecf8427e")

	cfg := Load()
	assert.Equal(t, "8081", cfg.AppPort)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.False(t, cfg.SeedDemoData)
	assert.Equal(t, 30, cfg.PlayRateLimit)
	assert.True(t, cfg.LogJSON)
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", cfg.JWTSecret)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_JWTSecret(t *testing.T) {
	t.Run("development generates per-process secret", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		t.Setenv("JWT_SECRET", "")

		a, b := Load(), Load()
		assert.Len(t, a.JWTSecret, 64)
		assert.NotEqual(t, a.JWTSecret, b.JWTSecret)
		assert.NotEqual(t, insecureJWTSecret, a.JWTSecret)
		assert.NoError(t, a.Validate())
	})

	t.Run("production without secret refuses to start", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("JWT_SECRET", "")

		cfg := Load()
		assert.Empty(t, cfg.JWTSecret)
		assert.ErrorIs(t, cfg.Validate(), ErrWeakJWTSecret)
	})

	t.Run("production with known secret refuses to start", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("JWT_SECRET", "casino-secret-key")

		assert.ErrorIs(t, Load().Validate(), ErrWeakJWTSecret)
	})
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")
	t.Setenv("REDIS_DB", "x")
	t.Setenv("COOKIE_SECURE", "maybe")

	cfg := Load()
	assert.Equal(t, DefaultSessionTTL, cfg.SessionTTL)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.False(t, cfg.CookieSecure)
}
