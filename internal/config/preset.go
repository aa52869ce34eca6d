// Package config loads reusable analysis presets from TOML files, so a
// selection worked out once (class, cars, window, cuts) can be replayed
// across stints of the same race.
package config

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/pitwall/pacestat/internal/core/timing"
	"github.com/pitwall/pacestat/internal/data/filter"
)

// Preset mirrors filter.Config but keeps times as strings to stay
// TOML friendly.
type Preset struct {
	Class           string   `toml:"class"`
	Cars            []string `toml:"cars"`
	WindowStart     string   `toml:"window_start"`
	WindowEnd       string   `toml:"window_end"`
	TopPercent      float64  `toml:"top_percent"`
	MaxDeltaSeconds float64  `toml:"max_delta_seconds"`
	ByDriver        bool     `toml:"by_driver"`
	ByManufacturer  bool     `toml:"by_manufacturer"`
}

// LoadPreset reads and parses a TOML preset file.
func LoadPreset(path string) (Preset, error) {
	var p Preset
	b, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := toml.Unmarshal(b, &p); err != nil {
		return p, fmt.Errorf("parse preset %s: %w", path, err)
	}
	return p, nil
}

// FilterConfig converts the preset into a filter configuration. Window
// times accept the same notations as the export's ELAPSED column.
func (p Preset) FilterConfig() (filter.Config, error) {
	cfg := filter.Config{
		Class:          p.Class,
		Cars:           p.Cars,
		TopPercent:     p.TopPercent,
		MaxDelta:       timing.SecondsToDuration(p.MaxDeltaSeconds),
		ByDriver:       p.ByDriver,
		ByManufacturer: p.ByManufacturer,
	}

	if p.WindowStart != "" {
		start, err := timing.ParseElapsed(p.WindowStart)
		if err != nil {
			return cfg, fmt.Errorf("preset window_start: %w", err)
		}
		cfg.WindowStart = start
	}
	if p.WindowEnd != "" {
		end, err := timing.ParseElapsed(p.WindowEnd)
		if err != nil {
			return cfg, fmt.Errorf("preset window_end: %w", err)
		}
		cfg.WindowEnd = end
	}

	return cfg, nil
}
