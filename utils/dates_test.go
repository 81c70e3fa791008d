package utils

import (
	"testing"
	"time"
)

func TestParseEntryDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"date only", "2025-03-10", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		{"rfc3339", "2025-03-10T08:30:00Z", time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)},
		{"naive timestamp", "2025-03-10T08:30:00", time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)},
		{"garbage", "next tuesday", DistantPast},
		{"empty", "", DistantPast},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseEntryDate(tt.in); !got.Equal(tt.want) {
				t.Errorf("ParseEntryDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDistantPastFallsOutsideRangeFilters(t *testing.T) {
	// the sentinel must sort before any plausible window start
	from := DayStart(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	if !DistantPast.Before(from) {
		t.Error("DistantPast should precede every realistic window")
	}
}

func TestDayBounds(t *testing.T) {
	at := time.Date(2025, 3, 10, 14, 22, 51, 123, time.UTC)

	start := DayStart(at)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		t.Errorf("DayStart = %v, want midnight", start)
	}
	end := DayEnd(at)
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("DayEnd = %v, want end of day", end)
	}
	if !start.Before(at) || !end.After(at) {
		t.Error("bounds should bracket the input instant")
	}
}

func TestSameCalendarDay(t *testing.T) {
	morning := time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC)
	night := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	next := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	if !SameCalendarDay(morning, night) {
		t.Error("same date, different times should match")
	}
	if SameCalendarDay(night, next) {
		t.Error("adjacent dates should not match")
	}
}
