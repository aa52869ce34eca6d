package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/pitwall/pacestat/internal/analyzer"
	"github.com/pitwall/pacestat/internal/config"
	"github.com/pitwall/pacestat/internal/core/timing"
	"github.com/pitwall/pacestat/internal/data/filter"
	"github.com/pitwall/pacestat/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Logging related
	debug bool

	// Input data
	csvFile string
	preset  string

	// Filtering and grouping
	class          string
	cars           []string
	windowStart    string
	windowEnd      string
	topPercent     float64
	maxDelta       float64
	byDriver       bool
	byManufacturer bool

	// Output related
	outputFormat string
	watch        bool

	rootCmd = &cobra.Command{
		Use:   "pacestat [flags]",
		Short: "Endurance-racing pace analysis tool",
		Long: `pacestat computes filtered average pace from WEC/IMSA lap-time CSV exports.

It drops pit-crossing laps, applies class/car/time-window/delta/top-percent
filters, and reports average lap time and top speed per car, driver, or
manufacturer.

Examples:
  pacestat -f race.csv --class HYPERCAR                  # per-car averages
  pacestat -f race.csv --class HYPERCAR --cars 7,8       # only cars 7 and 8
  pacestat -f race.csv --top-percent 60 --max-delta 2.5  # fastest 60%, within 2.5s
  pacestat -f race.csv --window-start 1:00:00 --window-end 5:00:00
  pacestat -f race.csv --by-driver -o json               # per-driver, JSON output
  pacestat -f race.csv --preset quali.toml --watch       # preset + live reload`,
		RunE: runAnalyze,
	}
)

const defaultLogFile = "~/.pacestat/logs/app.log"

func init() {
	// Input data configuration
	rootCmd.PersistentFlags().StringVarP(&csvFile, "file", "f", "",
		"Lap-time CSV export to analyze")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "",
		"TOML preset with filter settings (flags override it)")

	// Lap selection
	rootCmd.Flags().StringVar(&class, "class", "",
		"Car class to analyze (empty = all classes)")
	rootCmd.Flags().StringSliceVar(&cars, "cars", nil,
		"Car numbers to include (empty = all cars in class)")
	rootCmd.Flags().StringVar(&windowStart, "window-start", "",
		"Start of the elapsed-time window (e.g. 1:00:00)")
	rootCmd.Flags().StringVar(&windowEnd, "window-end", "",
		"End of the elapsed-time window (e.g. 5:30:00)")
	rootCmd.Flags().Float64Var(&topPercent, "top-percent", 100,
		"Keep only the fastest N percent of laps per group")
	rootCmd.Flags().Float64Var(&maxDelta, "max-delta", 0,
		"Max seconds over a group's fastest lap (0 = unlimited)")

	// Grouping
	rootCmd.Flags().BoolVar(&byDriver, "by-driver", false,
		"Break averages down per driver")
	rootCmd.Flags().BoolVar(&byManufacturer, "by-manufacturer", false,
		"Collapse averages to one row per manufacturer")

	// Output configuration
	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "table",
		"Output format (table, json, csv, summary)")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false,
		"Recompute whenever the export file changes")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	initLogging()

	if csvFile == "" {
		return fmt.Errorf("no input file; pass one with --file")
	}

	filterCfg, err := buildFilterConfig(cmd)
	if err != nil {
		return err
	}

	a := analyzer.New(&analyzer.Config{
		File:         expandPath(csvFile),
		OutputFormat: outputFormat,
		Filter:       filterCfg,
	})

	if watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return a.Watch(ctx)
	}
	return a.Run()
}

// buildFilterConfig starts from the preset, if any, and lets every flag
// the user actually set override it.
func buildFilterConfig(cmd *cobra.Command) (filter.Config, error) {
	var cfg filter.Config
	cfg.TopPercent = 100

	if preset != "" {
		p, err := config.LoadPreset(expandPath(preset))
		if err != nil {
			return cfg, err
		}
		cfg, err = p.FilterConfig()
		if err != nil {
			return cfg, err
		}
		if cfg.TopPercent == 0 {
			cfg.TopPercent = 100
		}
	}

	flags := cmd.Flags()
	if flags.Changed("class") {
		cfg.Class = class
	}
	if flags.Changed("cars") {
		cfg.Cars = cars
	}
	if flags.Changed("top-percent") {
		cfg.TopPercent = topPercent
	}
	if flags.Changed("max-delta") {
		cfg.MaxDelta = timing.SecondsToDuration(maxDelta)
	}
	if flags.Changed("by-driver") {
		cfg.ByDriver = byDriver
	}
	if flags.Changed("by-manufacturer") {
		cfg.ByManufacturer = byManufacturer
	}
	if flags.Changed("window-start") {
		start, err := timing.ParseElapsed(windowStart)
		if err != nil {
			return cfg, fmt.Errorf("--window-start: %w", err)
		}
		cfg.WindowStart = start
	}
	if flags.Changed("window-end") {
		end, err := timing.ParseElapsed(windowEnd)
		if err != nil {
			return cfg, fmt.Errorf("--window-end: %w", err)
		}
		cfg.WindowEnd = end
	}

	return cfg, cfg.Validate()
}

func initLogging() {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}
	logFile := expandPath(defaultLogFile)
	ensureDir(filepath.Dir(logFile))
	util.InitLogger(logLevel, logFile, debug)
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
