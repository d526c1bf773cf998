package config_test

import (
	"testing"
	"time"

	"github.com/SscSPs/household_ledger/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWT_EXPIRY_DURATION", "not-a-duration")
	t.Setenv("LEDGER_CACHE_SIZE", "0")
	t.Setenv("LEDGER_CACHE_TTL", "-5s")
	t.Setenv("DEFAULT_PRIMARY_CURRENCY", "")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, 256, cfg.LedgerCacheSize)
	assert.Equal(t, time.Minute, cfg.LedgerCacheTTL)
	assert.Equal(t, "ARS", cfg.DefaultPrimaryCurrency)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_EXPIRY_DURATION", "30m")
	t.Setenv("DEFAULT_PRIMARY_CURRENCY", "USD")
	t.Setenv("DISPLAY_LOCALE", "en-US")
	t.Setenv("LEDGER_CACHE_SIZE", "16")
	t.Setenv("LEDGER_CACHE_TTL", "30s")
	t.Setenv("STRICT_CONVERSION", "true")
	t.Setenv("LOGIN_RATE_LIMIT", "10-M")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiryDuration)
	assert.Equal(t, "USD", cfg.DefaultPrimaryCurrency)
	assert.Equal(t, "en-US", cfg.DisplayLocale)
	assert.Equal(t, 16, cfg.LedgerCacheSize)
	assert.Equal(t, 30*time.Second, cfg.LedgerCacheTTL)
	assert.True(t, cfg.StrictConversion)
	assert.Equal(t, "10-M", cfg.LoginRateLimit)
}
