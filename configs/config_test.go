package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "key.json", cfg.CredentialsFile)
	assert.Equal(t, 5*time.Second, cfg.StoreTimeout)
	assert.Equal(t, 3, cfg.StoreRetryAttempts)
	assert.Equal(t, 200*time.Millisecond, cfg.StoreRetryDelay)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORE_TIMEOUT", "2s")
	t.Setenv("STORE_RETRY_ATTEMPTS", "5")

	cfg := LoadConfig()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 2*time.Second, cfg.StoreTimeout)
	assert.Equal(t, 5, cfg.StoreRetryAttempts)
}

func TestLoadConfigIgnoresMalformedValues(t *testing.T) {
	t.Setenv("STORE_TIMEOUT", "not-a-duration")
	t.Setenv("STORE_RETRY_ATTEMPTS", "many")

	cfg := LoadConfig()

	assert.Equal(t, 5*time.Second, cfg.StoreTimeout)
	assert.Equal(t, 3, cfg.StoreRetryAttempts)
}
