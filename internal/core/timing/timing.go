// Package timing parses and formats the time strings found in WEC/IMSA
// timing exports. Lap times come as "M:SS.mmm"; elapsed race time comes as
// "H:MM:SS.mmm" (hours optional) or occasionally as plain seconds.
package timing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	lapTimeRe = regexp.MustCompile(`(\d+):(\d{2}(?:\.\d+)?)`)
	elapsedRe = regexp.MustCompile(`(?:(\d+):)?(\d{1,2}):(\d{2}(?:\.\d+)?)`)
)

// ParseLapTime parses a lap time of the form "M:SS.mmm".
// The duration must come out positive; anything else is an error.
func ParseLapTime(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty lap time")
	}
	m := lapTimeRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("unparseable lap time %q", s)
	}
	minutes, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("unparseable lap time %q: %w", s, err)
	}
	seconds, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable lap time %q: %w", s, err)
	}
	d := SecondsToDuration(float64(minutes)*60 + seconds)
	if d <= 0 {
		return 0, fmt.Errorf("non-positive lap time %q", s)
	}
	return d, nil
}

// ParseElapsed parses an elapsed race time. Accepted forms are
// "H:MM:SS.mmm", "MM:SS.mmm", and plain seconds like "5403.2".
func ParseElapsed(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty elapsed time")
	}
	if m := elapsedRe.FindStringSubmatch(s); m != nil {
		hours := 0
		if m[1] != "" {
			var err error
			hours, err = strconv.Atoi(m[1])
			if err != nil {
				return 0, fmt.Errorf("unparseable elapsed time %q: %w", s, err)
			}
		}
		minutes, err := strconv.Atoi(m[2])
		if err != nil {
			return 0, fmt.Errorf("unparseable elapsed time %q: %w", s, err)
		}
		seconds, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			return 0, fmt.Errorf("unparseable elapsed time %q: %w", s, err)
		}
		return SecondsToDuration(float64(hours)*3600 + float64(minutes)*60 + seconds), nil
	}
	if secs, err := strconv.ParseFloat(s, 64); err == nil && secs >= 0 {
		return SecondsToDuration(secs), nil
	}
	return 0, fmt.Errorf("unparseable elapsed time %q", s)
}

// SecondsToDuration converts fractional seconds to a time.Duration.
func SecondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

// FormatLapTime renders a duration as "M:SS.mmm", matching the timing
// system's own lap time notation.
func FormatLapTime(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	total := d.Seconds()
	minutes := int(total) / 60
	seconds := total - float64(minutes*60)
	return fmt.Sprintf("%d:%06.3f", minutes, seconds)
}

// FormatElapsed renders an elapsed race time as "H:MM:SS.mmm".
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		return "-"
	}
	total := d.Seconds()
	hours := int(total) / 3600
	minutes := (int(total) % 3600) / 60
	seconds := total - float64(hours*3600) - float64(minutes*60)
	return fmt.Sprintf("%d:%02d:%06.3f", hours, minutes, seconds)
}

// FormatSpeed renders a top speed with one decimal, "-" when unknown.
func FormatSpeed(v float64) string {
	if v <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f", v)
}
