package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, 5*time.Second, cfg.LockTimeout)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("ENV", "production")
	t.Setenv("LOCK_TIMEOUT", "250ms")

	cfg := LoadConfig()

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 250*time.Millisecond, cfg.LockTimeout)
}

func TestLoadConfigInvalidLockTimeout(t *testing.T) {
	t.Setenv("LOCK_TIMEOUT", "not-a-duration")

	cfg := LoadConfig()
	assert.Equal(t, 5*time.Second, cfg.LockTimeout)
}
