// Package schedule normalizes the start and end times of a timeline entry.
package schedule

import (
	"time"
)

// DefaultDuration is applied when neither an end time nor a duration is given.
const DefaultDuration = 60 * time.Minute

// Policy controls how a missing start time is substituted.
type Policy int

const (
	// StartNow uses the current time as-is (create path).
	StartNow Policy = iota
	// StartFloorHour uses the current time with minutes and seconds zeroed
	// (update path).
	StartFloorHour
)

// Accepted layouts for incoming datetime strings. Offset-less forms are
// interpreted as UTC.
var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// Parse converts a client-supplied datetime string to UTC.
// Returns false when the string is empty or matches no accepted layout.
func Parse(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// Resolve computes the start and end of a timeline entry.
//
// Start: the parsed start string, else now per the policy.
// End resolution order: explicit parsable end, else start plus durationMinutes
// when it is a finite positive number, else start plus DefaultDuration.
func Resolve(start, end string, durationMinutes *float64, now time.Time, policy Policy) (time.Time, time.Time) {
	startAt, ok := Parse(start)
	if !ok {
		startAt = now.UTC()
		if policy == StartFloorHour {
			startAt = startAt.Truncate(time.Hour)
		}
	}

	if endAt, ok := Parse(end); ok {
		return startAt, endAt
	}
	if durationMinutes != nil && isFinitePositive(*durationMinutes) {
		return startAt, startAt.Add(time.Duration(*durationMinutes * float64(time.Minute)))
	}
	return startAt, startAt.Add(DefaultDuration)
}

func isFinitePositive(f float64) bool {
	// NaN fails every comparison; +Inf fails the upper bound.
	return f > 0 && f < 1e15
}
