package config_test

import (
	"testing"
	"time"

	"github.com/SscSPs/charity_box_app/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, config.StorageDriverPostgres, cfg.StorageDriver)
	assert.True(t, cfg.DefaultEventBalance.Equal(decimal.Zero))
	assert.Equal(t, "PLN", cfg.DefaultEventCurrency)
	assert.Equal(t, "discard", cfg.BoxDeletePolicy)
	assert.Equal(t, config.RateSourceLive, cfg.RateSource)
	assert.Equal(t, config.DefaultNBPAPIURL, cfg.NBPAPIURL)
	assert.Equal(t, 5*time.Second, cfg.RateFetchTimeout)
	assert.False(t, cfg.RateCacheEnabled())
	assert.False(t, cfg.AuthEnabled)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("DEFAULT_EVENT_BALANCE", "-12.50")
	t.Setenv("DEFAULT_EVENT_CURRENCY", "eur")
	t.Setenv("BOX_DELETE_POLICY", "require_empty")
	t.Setenv("RATE_SOURCE", "fixed")
	t.Setenv("RATE_FETCH_TIMEOUT", "750ms")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("RATE_CACHE_TTL", "10m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, http://b.example")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, config.StorageDriverMemory, cfg.StorageDriver)
	assert.Equal(t, "-12.5", cfg.DefaultEventBalance.String())
	assert.Equal(t, "EUR", cfg.DefaultEventCurrency)
	assert.Equal(t, "require_empty", cfg.BoxDeletePolicy)
	assert.Equal(t, config.RateSourceFixed, cfg.RateSource)
	assert.Equal(t, 750*time.Millisecond, cfg.RateFetchTimeout)
	assert.Equal(t, 10*time.Minute, cfg.RateCacheTTL)
	assert.True(t, cfg.RateCacheEnabled())
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("DEFAULT_EVENT_BALANCE", "lots")
	t.Setenv("DEFAULT_EVENT_CURRENCY", "JPY")
	t.Setenv("BOX_DELETE_POLICY", "shred")
	t.Setenv("RATE_SOURCE", "oracle")
	t.Setenv("RATE_FETCH_TIMEOUT", "soon")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, config.StorageDriverPostgres, cfg.StorageDriver)
	assert.True(t, cfg.DefaultEventBalance.IsZero())
	assert.Equal(t, "PLN", cfg.DefaultEventCurrency)
	assert.Equal(t, "discard", cfg.BoxDeletePolicy)
	assert.Equal(t, config.RateSourceLive, cfg.RateSource)
	assert.Equal(t, 5*time.Second, cfg.RateFetchTimeout)
}
