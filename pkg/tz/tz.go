package tz

import "time"

// Paris is the Europe/Paris location (CET/CEST with automatic DST).
// It is the default day boundary for the relay counters.
var Paris *time.Location

func init() {
	var err error
	Paris, err = time.LoadLocation("Europe/Paris")
	if err != nil {
		panic("tz: load Europe/Paris: " + err.Error())
	}
}

// Load resolves an IANA timezone name. An empty or unknown name falls
// back to Paris so a bad TIMEZONE value never takes the relay down.
func Load(name string) *time.Location {
	if name == "" {
		return Paris
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Paris
	}
	return loc
}
