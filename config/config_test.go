package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvDefaults(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, "http://10.0.2.2:8080", cfg.API.BaseURL)
	assert.Zero(t, cfg.API.Timeout)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Encoding)
	assert.False(t, cfg.Logger.FileEnable)
	assert.NotEmpty(t, cfg.Storage.Path)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("FRESHCART_API_URL", "https://api.freshcart.example")
	t.Setenv("FRESHCART_API_TIMEOUT", "30")
	t.Setenv("LOGGER_LEVEL", "warn")
	t.Setenv("LOGGER_FILE_ENABLE", "true")
	t.Setenv("FRESHCART_STATE_PATH", "/tmp/state.db")

	cfg := LoadEnv()
	assert.Equal(t, "https://api.freshcart.example", cfg.API.BaseURL)
	assert.Equal(t, 30, cfg.API.Timeout)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.True(t, cfg.Logger.FileEnable)
	assert.Equal(t, "/tmp/state.db", cfg.Storage.Path)
}
