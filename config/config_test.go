package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.env")
	t.Setenv("API_BASE_URL", "api.hometex.test/api")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8090", cfg.Port)
	assert.Equal(t, APIModeDirect, cfg.APIMode)
	assert.Equal(t, 3*time.Second, cfg.APILocalTimeout)
	assert.Equal(t, "http://localhost:8000/api", cfg.APILocalURL)
	assert.Equal(t, 1000, cfg.MaxCartQuantity)
	assert.Equal(t, 10*time.Minute, cfg.CacheProductTTL)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.env")
	t.Setenv("API_BASE_URL", "https://api.hometex.test/api")
	t.Setenv("API_MODE", "fallback")
	t.Setenv("API_LOCAL_TIMEOUT", "1500ms")
	t.Setenv("API_RATE_LIMIT", "2.5")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("MAX_CART_QUANTITY", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, APIModeFallback, cfg.APIMode)
	assert.Equal(t, 1500*time.Millisecond, cfg.APILocalTimeout)
	assert.Equal(t, 2.5, cfg.APIRateLimit)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, 1000, cfg.MaxCartQuantity, "invalid ints fall back to the default")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "missing base url",
			cfg:     Config{APIMode: APIModeDirect, MaxCartQuantity: 1},
			wantErr: "API_BASE_URL",
		},
		{
			name:    "unknown mode",
			cfg:     Config{APIBaseURL: "x", APIMode: "race", MaxCartQuantity: 1},
			wantErr: "API_MODE",
		},
		{
			name:    "fallback without local url",
			cfg:     Config{APIBaseURL: "x", APIMode: APIModeFallback, MaxCartQuantity: 1},
			wantErr: "API_LOCAL_URL",
		},
		{
			name: "valid",
			cfg:  Config{APIBaseURL: "x", APIMode: APIModeDirect, MaxCartQuantity: 1, PackzyAPIKey: "k"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
