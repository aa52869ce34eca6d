package model

import "time"

// Column names a timing-system export must carry in its header row.
// Lookup is case and order insensitive.
const (
	ColNumber       = "NUMBER"
	ColLapTime      = "LAP_TIME"
	ColClass        = "CLASS"
	ColPitCrossing  = "CROSSING_FINISH_LINE_IN_PIT"
	ColManufacturer = "MANUFACTURER"
	ColElapsed      = "ELAPSED"
	ColDriverName   = "DRIVER_NAME"
	ColTeam         = "TEAM"
	ColTopSpeed     = "TOP_SPEED"
)

// RequiredColumns returns the columns a usable export must provide.
func RequiredColumns() []string {
	return []string{
		ColNumber,
		ColLapTime,
		ColClass,
		ColPitCrossing,
		ColManufacturer,
		ColElapsed,
		ColDriverName,
		ColTeam,
		ColTopSpeed,
	}
}

// Lap is a single timed lap as exported by the timing system.
// Values are fixed at load time and never mutated afterwards.
type Lap struct {
	Car          string
	LapTime      time.Duration
	Class        string
	InPit        bool // crossed the finish line while in the pit lane
	Manufacturer string
	Elapsed      time.Duration // race time at the moment the lap was set
	Driver       string
	Team         string
	TopSpeed     float64 // km/h
}
