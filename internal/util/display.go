package util

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const defaultTerminalWidth = 80

// TerminalWidth returns the current terminal width, falling back to 80
// columns when stdout is not a terminal.
func TerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultTerminalWidth
}

// PadRight pads s with spaces up to the given display width. Driver and
// team names can carry wide runes, so padding goes by display width, not
// byte length.
func PadRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// DisplayWidth returns the terminal display width of s.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}
