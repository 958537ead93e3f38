package util

import (
	"fmt"
	"time"
)

// LoadTimezone resolves a timezone name to a location. Everything downstream
// classifies in this single reference timezone, so failing fast with a
// helpful message beats falling back silently.
func LoadTimezone(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone '%s': %w\nValid examples: Local, UTC, America/New_York, Asia/Shanghai, Europe/London", timezone, err)
	}
	return loc, nil
}
