package commands

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pitwall/pacestat/internal/core/model"
	"github.com/pitwall/pacestat/internal/core/timing"
	"github.com/pitwall/pacestat/internal/data/loader"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "List the classes, cars, and session range of an export",
	Long: `Inspect shows what an export contains before building filters:
the classes present, the car numbers and drivers per class, and the
elapsed-time range of the session.`,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	initLogging()

	if csvFile == "" {
		return fmt.Errorf("no input file; pass one with --file")
	}

	res, err := loader.LoadFile(expandPath(csvFile))
	if err != nil {
		return err
	}
	if len(res.Laps) == 0 {
		fmt.Printf("No usable laps in %s (%d rows, %d skipped)\n", csvFile, res.Rows, res.Skipped)
		return nil
	}

	minElapsed, maxElapsed := sessionRange(res.Laps)
	fmt.Printf("Session range: %s - %s\n", timing.FormatElapsed(minElapsed), timing.FormatElapsed(maxElapsed))
	fmt.Printf("Laps: %d (%d rows skipped)\n\n", len(res.Laps), res.Skipped)

	byClass := make(map[string]map[string]bool)
	lapCount := make(map[string]int)
	drivers := make(map[string]map[string]bool)
	for _, l := range res.Laps {
		if byClass[l.Class] == nil {
			byClass[l.Class] = make(map[string]bool)
			drivers[l.Class] = make(map[string]bool)
		}
		byClass[l.Class][l.Car] = true
		drivers[l.Class][l.Driver] = true
		lapCount[l.Class]++
	}

	classes := make([]string, 0, len(byClass))
	for c := range byClass {
		classes = append(classes, c)
	}
	sort.Strings(classes)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Class", "Cars", "Drivers", "Laps"})
	for _, c := range classes {
		t.AppendRow(table.Row{
			c,
			strings.Join(sortCarNumbers(keys(byClass[c])), ", "),
			len(drivers[c]),
			lapCount[c],
		})
	}
	t.Render()
	return nil
}

func sessionRange(laps []model.Lap) (time.Duration, time.Duration) {
	min, max := laps[0].Elapsed, laps[0].Elapsed
	for _, l := range laps[1:] {
		if l.Elapsed < min {
			min = l.Elapsed
		}
		if l.Elapsed > max {
			max = l.Elapsed
		}
	}
	return min, max
}

func keys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}

var nonDigits = regexp.MustCompile(`\D`)

// sortCarNumbers orders car numbers by their numeric value, so "7" comes
// before "51" and "007" sorts like 7.
func sortCarNumbers(cars []string) []string {
	sort.SliceStable(cars, func(i, j int) bool {
		a, aerr := strconv.Atoi(nonDigits.ReplaceAllString(cars[i], ""))
		b, berr := strconv.Atoi(nonDigits.ReplaceAllString(cars[j], ""))
		if aerr != nil || berr != nil {
			return cars[i] < cars[j]
		}
		if a != b {
			return a < b
		}
		return cars[i] < cars[j]
	})
	return cars
}
