package util

import "time"

// CurrentMonth returns the calendar year and month of now in loc
func CurrentMonth(now time.Time, loc *time.Location) (int, time.Month) {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	return local.Year(), local.Month()
}

// StartOfDay truncates t to midnight in its own location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
