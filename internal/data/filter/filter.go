// Package filter reduces a full lap set to the laps relevant to one
// analysis. The reduction is a pure function of the lap set and a Config;
// nothing here mutates the loaded laps.
package filter

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/pitwall/pacestat/internal/core/model"
	"github.com/pitwall/pacestat/internal/core/timing"
)

// Config holds one analysis selection. The zero value keeps every
// non-pit lap.
type Config struct {
	Class          string        // selected class, empty = all classes
	Cars           []string      // selected car numbers, empty = all cars
	WindowStart    time.Duration // elapsed-time window, inclusive
	WindowEnd      time.Duration // zero = open-ended
	TopPercent     float64       // fastest share of laps kept per group, <=0 or >=100 = all
	MaxDelta       time.Duration // max gap to a group's fastest lap, zero = unlimited
	ByDriver       bool
	ByManufacturer bool
}

// Validate rejects selections that can never produce a meaningful result.
func (c Config) Validate() error {
	if c.WindowEnd > 0 && c.WindowStart > c.WindowEnd {
		return fmt.Errorf("invalid time window: start %s is after end %s",
			timing.FormatElapsed(c.WindowStart), timing.FormatElapsed(c.WindowEnd))
	}
	if c.TopPercent < 0 || c.TopPercent > 100 {
		return fmt.Errorf("top-percent must be within 0-100, got %g", c.TopPercent)
	}
	if c.MaxDelta < 0 {
		return fmt.Errorf("max-delta must not be negative, got %s", c.MaxDelta)
	}
	return nil
}

// GroupKey returns the aggregation key a lap falls under with this config.
// Manufacturer grouping collapses the per-car and per-driver keys.
func (c Config) GroupKey(l model.Lap) string {
	if c.ByManufacturer {
		return l.Manufacturer
	}
	if c.ByDriver {
		return l.Car + "|" + l.Driver
	}
	return l.Car
}

// Apply runs the reduction steps in order: pit laps out, class, car set,
// elapsed window, then per group the max-delta cut and the top-percent cut.
// Retained laps come back in their original row order.
func Apply(laps []model.Lap, cfg Config) []model.Lap {
	carSet := make(map[string]bool, len(cfg.Cars))
	for _, car := range cfg.Cars {
		carSet[strings.TrimSpace(car)] = true
	}

	kept := make([]model.Lap, 0, len(laps))
	for _, l := range laps {
		if l.InPit {
			continue
		}
		if cfg.Class != "" && !strings.EqualFold(l.Class, cfg.Class) {
			continue
		}
		if len(carSet) > 0 && !carSet[l.Car] {
			continue
		}
		if l.Elapsed < cfg.WindowStart {
			continue
		}
		if cfg.WindowEnd > 0 && l.Elapsed > cfg.WindowEnd {
			continue
		}
		kept = append(kept, l)
	}

	groups := make(map[string][]int, 16)
	var order []string
	for i, l := range kept {
		key := cfg.GroupKey(l)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], i)
	}

	retain := make([]bool, len(kept))
	for _, key := range order {
		for _, i := range retainGroup(kept, groups[key], cfg) {
			retain[i] = true
		}
	}

	out := make([]model.Lap, 0, len(kept))
	for i, l := range kept {
		if retain[i] {
			out = append(out, l)
		}
	}
	return out
}

// retainGroup applies the max-delta and top-percent cuts to one group and
// returns the indices of the surviving laps.
func retainGroup(laps []model.Lap, idx []int, cfg Config) []int {
	if len(idx) == 0 {
		return nil
	}

	// Stable so tied lap times keep their original row order.
	sorted := append([]int(nil), idx...)
	sort.SliceStable(sorted, func(a, b int) bool {
		return laps[sorted[a]].LapTime < laps[sorted[b]].LapTime
	})

	if cfg.MaxDelta > 0 {
		limit := laps[sorted[0]].LapTime + cfg.MaxDelta
		cut := sorted[:0]
		for _, i := range sorted {
			if laps[i].LapTime <= limit {
				cut = append(cut, i)
			}
		}
		sorted = cut
	}

	if cfg.TopPercent > 0 && cfg.TopPercent < 100 {
		keep := int(math.Ceil(float64(len(sorted)) * cfg.TopPercent / 100))
		if keep < 1 {
			keep = 1
		}
		sorted = sorted[:keep]
	}

	return sorted
}
