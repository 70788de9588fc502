package config_test

import (
	"testing"
	"time"

	"github.com/nikolayk812/rocketshoes-cart/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "LOG_LEVEL", "API_BASE_URL", "API_TIMEOUT", "STORAGE_DRIVER",
		"STORAGE_KEY", "REDIS_DB", "HTTP_PORT", "CURRENCY", "LOCALE"} {
		t.Setenv(key, "")
	}

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "http://localhost:3333", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.APITimeout)
	assert.Equal(t, config.DriverMemory, cfg.StorageDriver)
	assert.Equal(t, "@RocketShoes:cart", cfg.StorageKey)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, currency.BRL.String(), cfg.Currency.String())
	assert.Equal(t, language.BrazilianPortuguese.String(), cfg.Locale.String())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("API_TIMEOUT", "250ms")
	t.Setenv("CURRENCY", "USD")
	t.Setenv("LOCALE", "en")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, config.DriverRedis, cfg.StorageDriver)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 250*time.Millisecond, cfg.APITimeout)
	assert.Equal(t, currency.USD.String(), cfg.Currency.String())
	assert.Equal(t, language.English.String(), cfg.Locale.String())
	assert.Equal(t, 9090, cfg.HTTPPort)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		wantError string
	}{
		{
			name:      "unknown driver",
			key:       "STORAGE_DRIVER",
			value:     "mongo",
			wantError: "storage driver[mongo] is not supported",
		},
		{
			name:      "unknown currency",
			key:       "CURRENCY",
			value:     "XXXX",
			wantError: "currency.ParseISO",
		},
		{
			name:      "malformed locale",
			key:       "LOCALE",
			value:     "not a locale!",
			wantError: "language.Parse",
		},
		{
			name:      "non-numeric port",
			key:       "HTTP_PORT",
			value:     "abc",
			wantError: "HTTP_PORT[abc] is not an integer",
		},
		{
			name:      "non-numeric redis db",
			key:       "REDIS_DB",
			value:     "one",
			wantError: "REDIS_DB[one] is not an integer",
		},
		{
			name:      "timeout without unit",
			key:       "API_TIMEOUT",
			value:     "5",
			wantError: "API_TIMEOUT[5] is not a duration",
		},
		{
			name:      "negative timeout",
			key:       "API_TIMEOUT",
			value:     "-1s",
			wantError: "API_TIMEOUT[-1s] is negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := config.FromEnv()
			require.ErrorContains(t, err, tt.wantError)
		})
	}
}
