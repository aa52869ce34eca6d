package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLapTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{
			name:  "standard_lap_time",
			input: "1:43.123",
			want:  1*time.Minute + 43*time.Second + 123*time.Millisecond,
		},
		{
			name:  "sub_minute_notation",
			input: "0:59.999",
			want:  59*time.Second + 999*time.Millisecond,
		},
		{
			name:  "surrounding_whitespace",
			input: "  2:01.500 ",
			want:  2*time.Minute + 1*time.Second + 500*time.Millisecond,
		},
		{
			name:  "long_minutes",
			input: "12:05.001",
			want:  12*time.Minute + 5*time.Second + 1*time.Millisecond,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "plain_number",
			input:   "95",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "n/a",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLapTime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want.Seconds(), got.Seconds(), 0.0005)
		})
	}
}

func TestParseElapsed(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{
			name:  "hours_minutes_seconds",
			input: "4:03:22.913",
			want:  4*time.Hour + 3*time.Minute + 22*time.Second + 913*time.Millisecond,
		},
		{
			name:  "no_hours",
			input: "43:22.1",
			want:  43*time.Minute + 22*time.Second + 100*time.Millisecond,
		},
		{
			name:  "whole_seconds_field",
			input: "1:00:00",
			want:  time.Hour,
		},
		{
			name:  "plain_seconds",
			input: "5403.25",
			want:  5403*time.Second + 250*time.Millisecond,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "negative_seconds",
			input:   "-12.5",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "session over",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseElapsed(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want.Seconds(), got.Seconds(), 0.0005)
		})
	}
}

func TestFormatLapTime(t *testing.T) {
	tests := []struct {
		name  string
		input time.Duration
		want  string
	}{
		{"round_trip", 1*time.Minute + 31*time.Second, "1:31.000"},
		{"with_millis", 1*time.Minute + 43*time.Second + 123*time.Millisecond, "1:43.123"},
		{"sub_minute", 59*time.Second + 999*time.Millisecond, "0:59.999"},
		{"zero", 0, "-"},
		{"negative", -time.Second, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatLapTime(tt.input))
		})
	}
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "4:03:22.913", FormatElapsed(4*time.Hour+3*time.Minute+22*time.Second+913*time.Millisecond))
	assert.Equal(t, "0:00:24.913", FormatElapsed(24*time.Second+913*time.Millisecond))
	assert.Equal(t, "-", FormatElapsed(-time.Second))
}

func TestFormatSpeed(t *testing.T) {
	assert.Equal(t, "312.4", FormatSpeed(312.42))
	assert.Equal(t, "-", FormatSpeed(0))
}

func TestLapTimeParseFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"1:31.000", "1:43.123", "0:59.999", "3:05.040"} {
		d, err := ParseLapTime(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatLapTime(d))
	}
}
