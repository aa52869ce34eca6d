package formatter

import "github.com/pitwall/pacestat/internal/data/aggregator"

// Report is what the formatters render: the aggregated pace rows plus the
// lap accounting for the load and filter stages.
type Report struct {
	Rows       []aggregator.PaceRow
	LapsLoaded int // laps parsed from the export
	LapsKept   int // laps that survived filtering
	Skipped    int // rows dropped at load time
}

// Formatter renders a report to stdout.
type Formatter interface {
	Format(report Report) error
}

// Output table column headers, shared by the table and CSV formatters.
var headers = []string{
	"Car", "Team", "Manufacturer", "Driver(s)",
	"Average", "Laps Used", "Avg Top Speed",
}
