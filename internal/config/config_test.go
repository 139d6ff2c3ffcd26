package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "STRIPE_SECRET_KEY", "REDIS_HOST", "TOKEN_RATE_LIMIT", "TOKEN_RATE_WINDOW"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.IsProduction())
	assert.True(t, cfg.TestMode())
	assert.False(t, cfg.RedisEnabled())
	assert.Equal(t, 10, cfg.TokenRateLimit)
	assert.Equal(t, time.Minute, cfg.TokenRateWindow)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("TOKEN_RATE_LIMIT", "3")
	t.Setenv("TOKEN_RATE_WINDOW", "30s")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.TestMode())
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 3, cfg.TokenRateLimit)
	assert.Equal(t, 30*time.Second, cfg.TokenRateWindow)
}

func TestGetIntEnv_InvalidFallsBack(t *testing.T) {
	t.Setenv("REDIS_DB", "two")
	assert.Equal(t, 7, GetIntEnv("REDIS_DB", 7))

	t.Setenv("TOKEN_RATE_WINDOW", "soon")
	assert.Equal(t, time.Hour, GetDurationEnv("TOKEN_RATE_WINDOW", time.Hour))
}
