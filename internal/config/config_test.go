package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, "cnpj:", cfg.Cache.KeyPrefix)
	assert.Equal(t, 4, cfg.Workers.Count)
	assert.Equal(t, 100, cfg.Batch.MaxItems)
	assert.Equal(t, []string{"*"}, cfg.Security.CORS.AllowedOrigins)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("READ_TIMEOUT", "12")
	t.Setenv("WORKER_COUNT", "8")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
	assert.Equal(t, 12*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 8, cfg.Workers.Count)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Security.CORS.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("CACHE_TTL", "soon")
	t.Setenv("REDIS_ENABLED", "maybe")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.True(t, cfg.Redis.Enabled)
}

func TestLoad_RejectsUnusableValues(t *testing.T) {
	t.Setenv("WORKER_COUNT", "0")
	t.Setenv("BATCH_MAX_ITEMS", "-1")

	cfg, err := Load()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WORKER_COUNT")
	assert.Contains(t, err.Error(), "BATCH_MAX_ITEMS")
}
