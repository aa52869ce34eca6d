// Package analyzer wires the pipeline together: load the export, filter
// the lap set, aggregate per group, and hand the report to a formatter.
package analyzer

import (
	"fmt"
	"time"

	"github.com/pitwall/pacestat/internal/data/aggregator"
	"github.com/pitwall/pacestat/internal/data/filter"
	"github.com/pitwall/pacestat/internal/data/loader"
	"github.com/pitwall/pacestat/internal/presentation/formatter"
	"github.com/pitwall/pacestat/internal/util"
)

type Config struct {
	File         string
	OutputFormat string // table, json, csv, summary
	Filter       filter.Config
}

type Analyzer struct {
	config *Config
}

func New(config *Config) *Analyzer {
	return &Analyzer{config: config}
}

// Run executes one full pass of the pipeline and prints the result.
func (a *Analyzer) Run() error {
	startTime := time.Now()

	if err := a.config.Filter.Validate(); err != nil {
		return err
	}
	if a.config.Filter.ByDriver && a.config.Filter.ByManufacturer {
		util.LogWarn("Both driver and manufacturer breakdown requested; manufacturer grouping wins")
	}

	report, err := a.report()
	if err != nil {
		return err
	}

	if len(report.Rows) == 0 {
		fmt.Println("No laps match the current selection; relax the filters and retry.")
		return nil
	}

	err = a.formatAndOutput(report)
	util.LogDebugf("Total analysis duration: %v", time.Since(startTime))
	return err
}

// report runs the load, filter, and aggregate phases.
func (a *Analyzer) report() (formatter.Report, error) {
	loadStart := time.Now()
	loaded, err := loader.LoadFile(a.config.File)
	if err != nil {
		return formatter.Report{}, err
	}
	util.LogDebugf("Phase 1 - Load duration: %v, %d laps (%d rows skipped)",
		time.Since(loadStart), len(loaded.Laps), loaded.Skipped)

	if loaded.Skipped > 0 {
		util.LogWarnf("Skipped %d of %d rows with unparseable values", loaded.Skipped, loaded.Rows)
	}

	filterStart := time.Now()
	kept := filter.Apply(loaded.Laps, a.config.Filter)
	util.LogDebugf("Phase 2 - Filter duration: %v, %d of %d laps retained",
		time.Since(filterStart), len(kept), len(loaded.Laps))

	aggStart := time.Now()
	rows := aggregator.Aggregate(kept, a.config.Filter)
	util.LogDebugf("Phase 3 - Aggregation duration: %v, %d groups", time.Since(aggStart), len(rows))

	return formatter.Report{
		Rows:       rows,
		LapsLoaded: len(loaded.Laps),
		LapsKept:   len(kept),
		Skipped:    loaded.Skipped,
	}, nil
}

func (a *Analyzer) formatAndOutput(report formatter.Report) error {
	return a.formatterFor(a.config.OutputFormat).Format(report)
}

func (a *Analyzer) formatterFor(format string) formatter.Formatter {
	switch format {
	case "json":
		return formatter.NewJSONFormatter()
	case "csv":
		return formatter.NewCSVFormatter()
	case "summary":
		return formatter.NewSummaryFormatter()
	default:
		return formatter.NewTableFormatter()
	}
}
