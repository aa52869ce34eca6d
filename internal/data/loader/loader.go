// Package loader turns a timing-system CSV export into typed lap records.
package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dimchansky/utfbom"
	"github.com/pitwall/pacestat/internal/core/model"
	"github.com/pitwall/pacestat/internal/core/timing"
	"github.com/pitwall/pacestat/internal/util"
)

// MissingColumnError reports required header columns absent from an export.
// It is fatal: without the full schema no row can be trusted.
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return "missing required column(s): " + strings.Join(e.Columns, ", ")
}

// Result carries the parsed laps plus row accounting for a single load.
type Result struct {
	Laps    []model.Lap
	Rows    int // data rows seen, header excluded
	Skipped int // rows dropped because a required value did not parse
}

// LoadFile reads and parses the export at path.
func LoadFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	res, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return res, nil
}

// Load parses a CSV export. WEC exports are semicolon-separated, IMSA ones
// comma-separated; the separator is sniffed from the header line.
func Load(r io.Reader) (*Result, error) {
	data, err := io.ReadAll(utfbom.SkipOnly(r))
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = sniffSeparator(data)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &MissingColumnError{Columns: model.RequiredColumns()}
		}
		return nil, err
	}

	index, missing := indexColumns(header)
	if len(missing) > 0 {
		return nil, &MissingColumnError{Columns: missing}
	}

	res := &Result{}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			res.Rows++
			res.Skipped++
			util.LogDebugf("Skipping malformed CSV row: %v", err)
			continue
		}
		res.Rows++

		lap, ok := parseRow(record, index)
		if !ok {
			res.Skipped++
			continue
		}
		res.Laps = append(res.Laps, lap)
	}

	util.LogDebugf("Loaded %d laps from %d rows (%d skipped)", len(res.Laps), res.Rows, res.Skipped)
	return res, nil
}

// sniffSeparator picks the field separator by counting candidates in the
// header line.
func sniffSeparator(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.Count(line, []byte{';'}) >= bytes.Count(line, []byte{','}) {
		return ';'
	}
	return ','
}

// indexColumns maps required column names to field positions, case and
// whitespace insensitive, and lists the ones that are absent.
func indexColumns(header []string) (map[string]int, []string) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToUpper(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, col := range model.RequiredColumns() {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	return index, missing
}

func parseRow(record []string, index map[string]int) (model.Lap, bool) {
	field := func(col string) string {
		i := index[col]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	lapTime, err := timing.ParseLapTime(field(model.ColLapTime))
	if err != nil {
		return model.Lap{}, false
	}
	elapsed, err := timing.ParseElapsed(field(model.ColElapsed))
	if err != nil {
		return model.Lap{}, false
	}
	topSpeed, err := strconv.ParseFloat(field(model.ColTopSpeed), 64)
	if err != nil {
		return model.Lap{}, false
	}

	return model.Lap{
		Car:          field(model.ColNumber),
		LapTime:      lapTime,
		Class:        field(model.ColClass),
		InPit:        strings.EqualFold(field(model.ColPitCrossing), "B"),
		Manufacturer: field(model.ColManufacturer),
		Elapsed:      elapsed,
		Driver:       field(model.ColDriverName),
		Team:         field(model.ColTeam),
		TopSpeed:     topSpeed,
	}, true
}
