// Package shift computes the absolute time range of the current work shift
// from a configured start/end time-of-day, handling shifts that cross
// midnight. All functions are pure: callers pass the reference instant.
package shift

import (
	"time"

	"github.com/lmercer/shiftdoc/internal/domain"
)

const clockLayout = "15:04"

// Window is the [Start, End] range of the current shift.
type Window struct {
	Start time.Time
	End   time.Time
}

// parseClock parses an "HH:mm" string, substituting the fallback when the
// string is malformed. The tool must stay usable with bad configuration.
func parseClock(s, fallback string) (hour, minute int) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		t, err = time.Parse(clockLayout, fallback)
		if err != nil {
			return 21, 0
		}
	}
	return t.Hour(), t.Minute()
}

// Start resolves the shift start relative to now. When the current
// time-of-day is earlier than the start time-of-day and the start hour is in
// the afternoon or evening, the shift began yesterday: the current moment is
// the early-morning tail of an overnight shift.
func Start(now time.Time, startStr string) time.Time {
	h, m := parseClock(startStr, domain.DefaultShiftStart)

	anchor := time.Date(now.Year(), now.Month(), now.Day(), h, m, 0, 0, now.Location())
	nowMinutes := now.Hour()*60 + now.Minute()
	startMinutes := h*60 + m
	if nowMinutes < startMinutes && h > 12 {
		anchor = anchor.AddDate(0, 0, -1)
	}
	return anchor
}

// End resolves the shift end. The end time-of-day is combined with the
// resolved start's calendar date; when it is numerically earlier than the
// start time-of-day the shift rolled over midnight, so the end lands on the
// next day.
func End(now time.Time, startStr, endStr string) time.Time {
	start := Start(now, startStr)
	eh, em := parseClock(endStr, domain.DefaultShiftEnd)
	sh, sm := parseClock(startStr, domain.DefaultShiftStart)

	end := time.Date(start.Year(), start.Month(), start.Day(), eh, em, 0, 0, start.Location())
	if eh*60+em < sh*60+sm {
		end = end.AddDate(0, 0, 1)
	}
	return end
}

// Current returns the full window for the given instant.
func Current(now time.Time, startStr, endStr string) Window {
	return Window{
		Start: Start(now, startStr),
		End:   End(now, startStr, endStr),
	}
}

// InShift reports whether now falls inside the configured shift, inclusive
// on both boundaries.
func InShift(now time.Time, startStr, endStr string) bool {
	w := Current(now, startStr, endStr)
	return !now.Before(w.Start) && !now.After(w.End)
}

// Contains reports whether t falls in [Start, End). Used for scoping
// incident history to the current shift; the half-open end keeps an incident
// stamped exactly at shift end out of this shift's count.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}
