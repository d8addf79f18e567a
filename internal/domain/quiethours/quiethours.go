// Package quiethours implements the clock-time window policy that
// defers reminders out of a user-configured quiet window. All functions
// are pure; times are compared as minutes since local midnight and the
// window may wrap across midnight (start > end).
package quiethours

import (
	"fmt"
	"time"
)

// ParseClock parses an "HH:MM" clock string into minutes since
// midnight.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock time %q: out of range", s)
	}
	return h*60 + m, nil
}

// minutesOfDay returns t's local clock time as minutes since midnight.
func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// IsWithin reports whether t's local clock time falls inside the quiet
// window [startM, endM], boundaries inclusive. When startM > endM the
// window wraps midnight: [startM..24:00) U [00:00..endM].
func IsWithin(t time.Time, startM, endM int) bool {
	m := minutesOfDay(t)
	if startM <= endM {
		return m >= startM && m <= endM
	}
	return m >= startM || m <= endM
}

// Adjust returns the first instant at or after scheduled whose local
// clock time equals endM, with seconds and sub-seconds zeroed. If
// setting the clock on scheduled's own day does not land strictly
// after scheduled, the result advances by exactly one calendar day.
func Adjust(scheduled time.Time, endM int) time.Time {
	adjusted := time.Date(
		scheduled.Year(), scheduled.Month(), scheduled.Day(),
		endM/60, endM%60, 0, 0, scheduled.Location(),
	)
	if !adjusted.After(scheduled) {
		adjusted = adjusted.AddDate(0, 0, 1)
	}
	return adjusted
}
