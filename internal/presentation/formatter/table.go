package formatter

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pitwall/pacestat/internal/core/timing"
)

// TableFormatter renders the pace report as a terminal table.
type TableFormatter struct{}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{}
}

func (f *TableFormatter) Format(report Report) error {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	t.AppendHeader(header)

	for _, row := range report.Rows {
		t.AppendRow(table.Row{
			row.Car,
			row.Team,
			row.Manufacturer,
			row.Driver,
			timing.FormatLapTime(row.AvgLap),
			row.LapsUsed,
			timing.FormatSpeed(row.AvgTopSpeed),
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Average", Align: text.AlignRight},
		{Name: "Laps Used", Align: text.AlignRight},
		{Name: "Avg Top Speed", Align: text.AlignRight},
	})

	t.Render()
	return nil
}
