package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 3000, cfg.API.Port)
	assert.Equal(t, 5*time.Second, cfg.Fetcher.Interval)
	assert.Equal(t, "barbellfx_signal.txt", cfg.Fetcher.FileName)
	assert.False(t, cfg.Telegram.Enabled())
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
logger:
  level: debug
  encoding: console
fetcher:
  base_url: https://signals.example.com/
  interval: 2s
telegram:
  bot_token: abc
  chat_id: 42
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("PORT", "8088")
	t.Setenv("FETCHER_FILE_NAME", "custom.txt")

	v := viper.New()
	v.SetConfigFile(path)
	cfg, err := load(v)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Encoding)
	assert.Equal(t, 8088, cfg.API.Port)
	assert.Equal(t, "https://signals.example.com", cfg.Fetcher.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Fetcher.Interval)
	assert.Equal(t, "custom.txt", cfg.Fetcher.FileName)
	assert.True(t, cfg.Telegram.Enabled())
}

func TestLoad_RejectsNonPositiveInterval(t *testing.T) {
	t.Setenv("FETCHER_INTERVAL", "0s")

	_, err := load(viper.New())
	assert.Error(t, err)
}
