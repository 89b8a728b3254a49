package service

import "time"

var spanishMonthAbbrev = [...]string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}

// MonthWindow is a half-open calendar month [Start, End).
type MonthWindow struct {
	Label string
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w MonthWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// CalendarWindows returns count consecutive calendar months in UTC starting
// at the month of first, labelled with Spanish month abbreviations.
func CalendarWindows(first time.Time, count int) []MonthWindow {
	first = first.UTC()
	start := time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.UTC)
	windows := make([]MonthWindow, 0, count)
	for i := 0; i < count; i++ {
		end := start.AddDate(0, 1, 0)
		windows = append(windows, MonthWindow{
			Label: spanishMonthAbbrev[start.Month()-1],
			Start: start,
			End:   end,
		})
		start = end
	}
	return windows
}
