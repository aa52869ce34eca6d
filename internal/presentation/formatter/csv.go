package formatter

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/pitwall/pacestat/internal/core/timing"
)

// CSVFormatter writes the pace report back out as CSV.
type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Format(report Report) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write(headers); err != nil {
		return err
	}

	for _, row := range report.Rows {
		record := []string{
			row.Car,
			row.Team,
			row.Manufacturer,
			row.Driver,
			timing.FormatLapTime(row.AvgLap),
			fmt.Sprintf("%d", row.LapsUsed),
			timing.FormatSpeed(row.AvgTopSpeed),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return nil
}
