// Package aggregator computes per-group pace averages over an already
// filtered lap set.
package aggregator

import (
	"sort"
	"time"

	"github.com/pitwall/pacestat/internal/core/model"
	"github.com/pitwall/pacestat/internal/data/filter"
)

// DriverAll is shown in the driver column when laps are not broken down
// per driver.
const DriverAll = "All"

// multipleValues marks a column that spans more than one car or team,
// which happens when grouping by manufacturer.
const multipleValues = "Multiple"

// PaceRow is one aggregated line of the pace report.
type PaceRow struct {
	Driver       string
	Car          string
	Team         string
	Manufacturer string
	AvgLap       time.Duration
	LapsUsed     int
	AvgTopSpeed  float64
}

type group struct {
	first    model.Lap
	cars     map[string]bool
	teams    map[string]bool
	sumLap   time.Duration
	sumSpeed float64
	count    int
}

// Aggregate groups the retained laps with the config's grouping key and
// computes the mean lap time and mean top speed per group. Rows come back
// fastest first; groups that retained no laps simply do not appear.
func Aggregate(laps []model.Lap, cfg filter.Config) []PaceRow {
	groups := make(map[string]*group, 16)
	var order []string

	for _, l := range laps {
		key := cfg.GroupKey(l)
		g, ok := groups[key]
		if !ok {
			g = &group{
				first: l,
				cars:  make(map[string]bool),
				teams: make(map[string]bool),
			}
			groups[key] = g
			order = append(order, key)
		}
		g.cars[l.Car] = true
		g.teams[l.Team] = true
		g.sumLap += l.LapTime
		g.sumSpeed += l.TopSpeed
		g.count++
	}

	rows := make([]PaceRow, 0, len(groups))
	for _, key := range order {
		rows = append(rows, groups[key].row(cfg))
	}

	// Fastest average first; stable keeps first-appearance order on ties.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AvgLap < rows[j].AvgLap
	})
	return rows
}

func (g *group) row(cfg filter.Config) PaceRow {
	row := PaceRow{
		Driver:       DriverAll,
		Car:          g.first.Car,
		Team:         g.first.Team,
		Manufacturer: g.first.Manufacturer,
		AvgLap:       g.sumLap / time.Duration(g.count),
		LapsUsed:     g.count,
		AvgTopSpeed:  g.sumSpeed / float64(g.count),
	}

	switch {
	case cfg.ByManufacturer:
		if len(g.cars) > 1 {
			row.Car = multipleValues
		}
		if len(g.teams) > 1 {
			row.Team = multipleValues
		}
	case cfg.ByDriver:
		row.Driver = g.first.Driver
	}
	return row
}
