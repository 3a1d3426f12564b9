package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, 1920, cfg.Desktop.Width)
	assert.Equal(t, 1080, cfg.Desktop.Height)
	assert.Equal(t, 200, cfg.Desktop.SpawnJitter)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9100")
	t.Setenv("DESKTOP_WIDTH", "2560")
	t.Setenv("LOG_DEV", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Server.Port)
	assert.Equal(t, 2560, cfg.Desktop.Width)
	assert.True(t, cfg.Logging.Development)
	// untouched fields fall back to defaults
	assert.Equal(t, 1080, cfg.Desktop.Height)
}

func TestLoadOrDefaultNeverNil(t *testing.T) {
	cfg := LoadOrDefault()
	require.NotNil(t, cfg)
}
