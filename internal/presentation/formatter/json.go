package formatter

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/pitwall/pacestat/internal/core/timing"
)

// JSONFormatter renders the pace report as indented JSON for downstream
// tooling (UIs, spreadsheets, plotting scripts).
type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

type jsonReport struct {
	LapsLoaded int       `json:"lapsLoaded"`
	LapsKept   int       `json:"lapsKept"`
	Skipped    int       `json:"rowsSkipped"`
	Rows       []jsonRow `json:"rows"`
}

type jsonRow struct {
	Car           string  `json:"car"`
	Team          string  `json:"team"`
	Manufacturer  string  `json:"manufacturer"`
	Driver        string  `json:"driver"`
	AvgLap        string  `json:"avgLap"`
	AvgLapSeconds float64 `json:"avgLapSeconds"`
	LapsUsed      int     `json:"lapsUsed"`
	AvgTopSpeed   float64 `json:"avgTopSpeed"`
}

func (f *JSONFormatter) Format(report Report) error {
	out := jsonReport{
		LapsLoaded: report.LapsLoaded,
		LapsKept:   report.LapsKept,
		Skipped:    report.Skipped,
		Rows:       make([]jsonRow, 0, len(report.Rows)),
	}

	for _, row := range report.Rows {
		out.Rows = append(out.Rows, jsonRow{
			Car:           row.Car,
			Team:          row.Team,
			Manufacturer:  row.Manufacturer,
			Driver:        row.Driver,
			AvgLap:        timing.FormatLapTime(row.AvgLap),
			AvgLapSeconds: row.AvgLap.Seconds(),
			LapsUsed:      row.LapsUsed,
			AvgTopSpeed:   row.AvgTopSpeed,
		})
	}

	data, err := sonic.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
