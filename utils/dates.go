package utils

import "time"

// DistantPast is the sentinel assigned to unparsable entry dates. Entries
// carrying it fall outside every date-range filter instead of crashing the
// pipeline.
var DistantPast = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)

var entryDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseEntryDate accepts YYYY-MM-DD or ISO8601 timestamps. Anything else
// returns DistantPast (never an error).
func ParseEntryDate(s string) time.Time {
	for _, layout := range entryDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return DistantPast
}

func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func DayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// SameCalendarDay compares by calendar date, ignoring time of day.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
