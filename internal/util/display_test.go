package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPadRight(t *testing.T) {
	assert.Equal(t, "abc  ", PadRight("abc", 5))
	assert.Equal(t, "abcdef", PadRight("abcdef", 5))
	// Wide runes count double.
	assert.Equal(t, "平川 ", PadRight("平川", 5))
}

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 3, DisplayWidth("abc"))
	assert.Equal(t, 4, DisplayWidth("平川"))
}

func TestTerminalWidthFallback(t *testing.T) {
	// Test processes rarely run with a TTY on stdout; either way the
	// reported width must be usable.
	assert.Greater(t, TerminalWidth(), 0)
}
