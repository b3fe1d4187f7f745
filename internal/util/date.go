package util

import (
	"strings"
	"time"
)

// Accepted date layouts, most specific first
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseCalendarDate parses a date or date-time string. Values without an
// offset are read in loc. The second result is false when nothing matched.
func ParseCalendarDate(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}

	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return t.In(loc), true
		}
	}
	return time.Time{}, false
}

// FormatExportDate renders a date as M/D/YYYY
func FormatExportDate(t time.Time) string {
	return t.Format("1/2/2006")
}
