package formatter

import (
	"fmt"
	"strings"

	"github.com/pitwall/pacestat/internal/core/timing"
	"github.com/pitwall/pacestat/internal/data/aggregator"
	"github.com/pitwall/pacestat/internal/util"
)

// SummaryFormatter prints a plain-text pace summary: lap accounting, the
// fastest group, and the spread through the field.
type SummaryFormatter struct{}

// NewSummaryFormatter creates a new instance of SummaryFormatter.
func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{}
}

// Format formats and outputs the summary of a pace report.
func (f *SummaryFormatter) Format(report Report) error {
	width := util.TerminalWidth()
	if width > 72 {
		width = 72
	}

	fmt.Println(strings.Repeat("=", width))
	fmt.Println("Pace Summary")
	fmt.Println(strings.Repeat("=", width))
	fmt.Println()

	fmt.Printf("Laps loaded: %d (%d rows skipped)\n", report.LapsLoaded, report.Skipped)
	fmt.Printf("Laps retained after filtering: %d\n", report.LapsKept)
	fmt.Println()

	if len(report.Rows) == 0 {
		fmt.Println("No group retained any laps under the current selection.")
		fmt.Println()
		fmt.Println(strings.Repeat("=", width))
		return nil
	}

	fastest := report.Rows[0]
	slowest := report.Rows[len(report.Rows)-1]
	fmt.Printf("Fastest: %s (#%s, %s) at %s\n",
		fastest.Driver, fastest.Car, fastest.Manufacturer, timing.FormatLapTime(fastest.AvgLap))
	if len(report.Rows) > 1 {
		spread := slowest.AvgLap - fastest.AvgLap
		fmt.Printf("Spread to slowest: +%.3fs over %d groups\n", spread.Seconds(), len(report.Rows))
	}
	fmt.Println()

	nameWidth := 0
	for _, row := range report.Rows {
		if w := util.DisplayWidth(label(row)); w > nameWidth {
			nameWidth = w
		}
	}

	for i, row := range report.Rows {
		gap := row.AvgLap - fastest.AvgLap
		gapStr := "-"
		if i > 0 {
			gapStr = fmt.Sprintf("+%.3fs", gap.Seconds())
		}
		fmt.Printf("%3d. %s  %s  %8s  %3d laps  %s km/h\n",
			i+1,
			util.PadRight(label(row), nameWidth),
			timing.FormatLapTime(row.AvgLap),
			gapStr,
			row.LapsUsed,
			timing.FormatSpeed(row.AvgTopSpeed))
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", width))
	return nil
}

// label picks the most specific identity a row carries.
func label(row aggregator.PaceRow) string {
	switch {
	case row.Driver != aggregator.DriverAll:
		return fmt.Sprintf("%s (#%s)", row.Driver, row.Car)
	case row.Car == "Multiple":
		return row.Manufacturer
	default:
		return fmt.Sprintf("#%s %s", row.Car, row.Team)
	}
}
