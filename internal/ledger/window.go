package ledger

import (
	"fmt"
	"time"
)

// Window is the half-open interval [Start, End) a report covers.
// AsOf bounds every query to rows created at or before it.
type Window struct {
	StoreCode  string
	EmployeeID string
	Start      time.Time
	End        time.Time
	AsOf       time.Time
}

// DayWindow covers the calendar day of day in loc, expressed in UTC.
func DayWindow(storeCode string, day time.Time, loc *time.Location) Window {
	local := day.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	return Window{
		StoreCode: storeCode,
		Start:     start.UTC(),
		End:       start.AddDate(0, 0, 1).UTC(),
	}
}

// ParseDay parses YYYY-MM-DD in loc.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (YYYY-MM-DD): %w", s, err)
	}

	return t, nil
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Day is the window's calendar day in loc.
func (w Window) Day(loc *time.Location) string {
	return w.Start.In(loc).Format(time.DateOnly)
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	return a.In(loc).Format(time.DateOnly) == b.In(loc).Format(time.DateOnly)
}
