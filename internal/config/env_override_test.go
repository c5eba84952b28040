package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("fill range", func(t *testing.T) {
		t.Setenv("GRIDDEMO_FILL_MIN", "-5")
		t.Setenv("GRIDDEMO_FILL_MAX", "5")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())

		assert.Equal(t, -5, cfg.Fill.Min)
		assert.Equal(t, 5, cfg.Fill.Max)
	})

	t.Run("ui", func(t *testing.T) {
		t.Setenv("GRIDDEMO_LOCALE", "uk-UA")
		t.Setenv("GRIDDEMO_COLOR", "true")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())

		assert.Equal(t, "uk-UA", cfg.UI.Locale)
		assert.True(t, cfg.UI.Color)
	})

	t.Run("logging", func(t *testing.T) {
		t.Setenv("GRIDDEMO_LOG_LEVEL", "debug")
		t.Setenv("GRIDDEMO_LOG_FORMAT", "json")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())

		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "json", cfg.Logging.Format)
	})

	t.Run("unset variables keep values", func(t *testing.T) {
		cfg := &Config{Fill: FillConfig{Min: 2, Max: 3}, UI: UIConfig{Locale: "uk-UA"}}
		require.NoError(t, cfg.applyEnvOverrides())

		assert.Equal(t, 2, cfg.Fill.Min)
		assert.Equal(t, 3, cfg.Fill.Max)
		assert.Equal(t, "uk-UA", cfg.UI.Locale)
	})

	t.Run("malformed number", func(t *testing.T) {
		t.Setenv("GRIDDEMO_FILL_MIN", "low")

		cfg := DefaultConfig()
		assert.Error(t, cfg.applyEnvOverrides())
	})
}

func TestEnvOverrides_WinOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "griddemo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fill:\n  min: 1\n  max: 2\nui:\n  locale: en-US\n"), 0644))

	t.Setenv("GRIDDEMO_FILL_MAX", "20")
	t.Setenv("GRIDDEMO_LOCALE", "uk-UA")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Fill.Min)
	assert.Equal(t, 20, cfg.Fill.Max)
	assert.Equal(t, "uk-UA", cfg.UI.Locale)
}
