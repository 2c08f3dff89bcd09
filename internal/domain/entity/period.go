package entity

import "time"

// Period is a half-open time window [Start, End)
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// MonthOf returns the calendar month containing t, with boundaries at local
// midnight in loc
func MonthOf(t time.Time, loc *time.Location) Period {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	return Period{Start: start, End: start.AddDate(0, 1, 0)}
}

// PreviousMonthOf returns the calendar month before the one containing t.
// The last day of that month is covered in full.
func PreviousMonthOf(t time.Time, loc *time.Location) Period {
	current := MonthOf(t, loc)
	return Period{Start: current.Start.AddDate(0, -1, 0), End: current.Start}
}
