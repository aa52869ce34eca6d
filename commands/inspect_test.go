package commands

import (
	"testing"
	"time"

	"github.com/pitwall/pacestat/internal/core/model"
	"github.com/stretchr/testify/assert"
)

func TestSortCarNumbers(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "numeric_order_not_lexicographic",
			input: []string{"51", "7", "100", "8"},
			want:  []string{"7", "8", "51", "100"},
		},
		{
			name:  "letters_stripped",
			input: []string{"7bis", "12", "7"},
			want:  []string{"7", "7bis", "12"},
		},
		{
			name:  "non_numeric_fall_back_to_string_order",
			input: []string{"X", "A"},
			want:  []string{"A", "X"},
		},
		{
			name:  "empty",
			input: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sortCarNumbers(append([]string(nil), tt.input...))
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSessionRange(t *testing.T) {
	laps := []model.Lap{
		{Elapsed: 2 * time.Hour},
		{Elapsed: 30 * time.Minute},
		{Elapsed: 5 * time.Hour},
	}
	min, max := sessionRange(laps)
	assert.Equal(t, 30*time.Minute, min)
	assert.Equal(t, 5*time.Hour, max)
}
