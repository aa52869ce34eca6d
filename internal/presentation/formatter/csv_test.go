package formatter

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVFormatterFormat(t *testing.T) {
	out := captureStdout(t, func() error {
		return NewCSVFormatter().Format(sampleReport())
	})

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"Car", "Team", "Manufacturer", "Driver(s)",
		"Average", "Laps Used", "Avg Top Speed",
	}, records[0])
	assert.Equal(t, []string{
		"7", "Toyota Gazoo Racing", "Toyota", "All", "1:31.245", "34", "301.2",
	}, records[1])
	assert.Equal(t, "50", records[2][0])
}

func TestCSVFormatterEmptyReport(t *testing.T) {
	out := captureStdout(t, func() error {
		return NewCSVFormatter().Format(Report{})
	})

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}
