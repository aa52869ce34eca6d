package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePreset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadPreset(t *testing.T) {
	path := writePreset(t, `
class = "HYPERCAR"
cars = ["7", "8", "50"]
window_start = "1:00:00"
window_end = "5:30:00"
top_percent = 60.0
max_delta_seconds = 2.5
by_driver = true
`)

	p, err := LoadPreset(path)
	require.NoError(t, err)

	cfg, err := p.FilterConfig()
	require.NoError(t, err)

	assert.Equal(t, "HYPERCAR", cfg.Class)
	assert.Equal(t, []string{"7", "8", "50"}, cfg.Cars)
	assert.Equal(t, time.Hour, cfg.WindowStart)
	assert.Equal(t, 5*time.Hour+30*time.Minute, cfg.WindowEnd)
	assert.InDelta(t, 60.0, cfg.TopPercent, 0.0001)
	assert.Equal(t, 2500*time.Millisecond, cfg.MaxDelta)
	assert.True(t, cfg.ByDriver)
	assert.False(t, cfg.ByManufacturer)
	assert.NoError(t, cfg.Validate())
}

func TestLoadPresetDefaults(t *testing.T) {
	path := writePreset(t, `class = "LMGT3"`)

	p, err := LoadPreset(path)
	require.NoError(t, err)

	cfg, err := p.FilterConfig()
	require.NoError(t, err)
	assert.Equal(t, "LMGT3", cfg.Class)
	assert.Empty(t, cfg.Cars)
	assert.Zero(t, cfg.WindowStart)
	assert.Zero(t, cfg.WindowEnd)
	assert.Zero(t, cfg.MaxDelta)
}

func TestLoadPresetBadWindow(t *testing.T) {
	path := writePreset(t, `window_start = "not a time"`)

	p, err := LoadPreset(path)
	require.NoError(t, err)

	_, err = p.FilterConfig()
	assert.ErrorContains(t, err, "window_start")
}

func TestLoadPresetMissingFile(t *testing.T) {
	_, err := LoadPreset(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoadPresetInvalidTOML(t *testing.T) {
	path := writePreset(t, `class = [`)
	_, err := LoadPreset(path)
	assert.ErrorContains(t, err, "parse preset")
}
