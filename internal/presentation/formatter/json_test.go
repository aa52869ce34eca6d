package formatter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFormatterFormat(t *testing.T) {
	out := captureStdout(t, func() error {
		return NewJSONFormatter().Format(sampleReport())
	})

	var decoded jsonReport
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, 120, decoded.LapsLoaded)
	assert.Equal(t, 98, decoded.LapsKept)
	assert.Equal(t, 2, decoded.Skipped)
	require.Len(t, decoded.Rows, 2)

	row := decoded.Rows[0]
	assert.Equal(t, "7", row.Car)
	assert.Equal(t, "All", row.Driver)
	assert.Equal(t, "1:31.245", row.AvgLap)
	assert.InDelta(t, 91.245, row.AvgLapSeconds, 0.0005)
	assert.Equal(t, 34, row.LapsUsed)
}

func TestJSONFormatterEmptyReport(t *testing.T) {
	out := captureStdout(t, func() error {
		return NewJSONFormatter().Format(Report{})
	})

	var decoded jsonReport
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Empty(t, decoded.Rows)
}
