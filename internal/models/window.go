package models

import "time"

// Window is the half-open date interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

func (w Window) Empty() bool {
	return !w.Start.Before(w.End)
}

// MonthWindow is the calendar month containing now, in UTC.
func MonthWindow(now time.Time) Window {
	now = now.UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: start.AddDate(0, 1, 0)}
}

// PreviousMonthWindow is the calendar month before the one containing now, in UTC.
func PreviousMonthWindow(now time.Time) Window {
	cur := MonthWindow(now)
	return Window{Start: cur.Start.AddDate(0, -1, 0), End: cur.Start}
}
