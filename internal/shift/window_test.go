package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local)
}

func TestStart_EveningOfSameDay(t *testing.T) {
	// 22:30 is after a 21:00 start: the shift began tonight.
	now := at(2026, time.March, 10, 22, 30)
	start := Start(now, "21:00")
	assert.Equal(t, at(2026, time.March, 10, 21, 0), start)
}

func TestStart_EarlyMorningRollsBack(t *testing.T) {
	// 03:00 with a 21:00 start is the tail of an overnight shift that
	// began yesterday evening.
	now := at(2026, time.March, 11, 3, 0)
	start := Start(now, "21:00")
	assert.Equal(t, at(2026, time.March, 10, 21, 0), start)
}

func TestStart_MorningShiftDoesNotRollBack(t *testing.T) {
	// A 08:00 start with now at 06:00 stays today: only afternoon/evening
	// starts imply an overnight shift.
	now := at(2026, time.March, 11, 6, 0)
	start := Start(now, "08:00")
	assert.Equal(t, at(2026, time.March, 11, 8, 0), start)
}

func TestEnd_OvernightLandsNextDay(t *testing.T) {
	now := at(2026, time.March, 10, 22, 0)
	end := End(now, "21:00", "07:30")
	assert.Equal(t, at(2026, time.March, 11, 7, 30), end)
}

func TestEnd_SameDayShift(t *testing.T) {
	now := at(2026, time.March, 10, 10, 0)
	end := End(now, "08:00", "16:00")
	assert.Equal(t, at(2026, time.March, 10, 16, 0), end)
}

func TestParseClock_MalformedFallsBack(t *testing.T) {
	// Garbage start string falls back to the default 21:00.
	now := at(2026, time.March, 10, 22, 0)
	start := Start(now, "9pm")
	assert.Equal(t, at(2026, time.March, 10, 21, 0), start)
}

func TestInShift_Boundaries(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"exactly at start", at(2026, time.March, 10, 21, 0), true},
		{"middle of night", at(2026, time.March, 11, 2, 0), true},
		{"exactly at end", at(2026, time.March, 11, 7, 30), true},
		{"one minute after end", at(2026, time.March, 11, 7, 31), false},
		{"afternoon before start", at(2026, time.March, 10, 15, 0), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, InShift(tc.now, "21:00", "07:30"))
		})
	}
}

func TestWindow_Contains_HalfOpen(t *testing.T) {
	w := Window{
		Start: at(2026, time.March, 10, 21, 0),
		End:   at(2026, time.March, 11, 7, 30),
	}
	assert.True(t, w.Contains(at(2026, time.March, 10, 21, 0)), "start is included")
	assert.True(t, w.Contains(at(2026, time.March, 11, 7, 29)))
	assert.False(t, w.Contains(at(2026, time.March, 11, 7, 30)), "end is excluded")
	assert.False(t, w.Contains(at(2026, time.March, 10, 20, 59)))
}

func TestCurrent_SpansMidnightFromBothSides(t *testing.T) {
	// The same window resolves whether now is before or after midnight.
	evening := Current(at(2026, time.March, 10, 23, 0), "21:00", "07:30")
	morning := Current(at(2026, time.March, 11, 4, 0), "21:00", "07:30")
	assert.Equal(t, evening.Start, morning.Start)
	assert.Equal(t, evening.End, morning.End)
}
