package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "database.sqlite", cfg.SQLitePath)
	assert.Equal(t, 24, cfg.TokenTTLHours) // Single-node token policy
	assert.Equal(t, "public/uploads", cfg.UploadDir)
	assert.False(t, cfg.IsProd)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("TOKEN_TTL_HOURS", "720") // Hosted variant: 30 days
	t.Setenv("IS_PROD", "true")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, 720, cfg.TokenTTLHours)
	assert.True(t, cfg.IsProd)
}

func TestLoadConfigIgnoresBadTTL(t *testing.T) {
	t.Setenv("TOKEN_TTL_HOURS", "not-a-number")

	assert.Equal(t, 24, LoadConfig().TokenTTLHours)
}
