package calendar

import "time"

// Week is seven consecutive days, Monday first.
type Week [7]time.Time

// Weekdays are the column labels of a week, Monday first.
var Weekdays = [7]string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

// IsWeekendColumn reports whether column col (0 = Monday) is Saturday or Sunday.
func IsWeekendColumn(col int) bool {
	return col == 5 || col == 6
}

// Column returns the 0-based Monday-first column of day.
func Column(day time.Time) int {
	return (int(day.Weekday()) + 6) % 7
}

// Weeks returns the full weeks covering m. The first week starts on the
// Monday on or before the 1st and the last one ends on the Sunday on or after
// the last day, so the outer weeks may hold days of the neighbouring months.
func Weeks(m Month) []Week {
	start := m.First().AddDate(0, 0, -Column(m.First()))
	last := m.Last()

	var weeks []Week
	for day := start; !day.After(last); {
		var w Week
		for i := range w {
			w[i] = day
			day = day.AddDate(0, 0, 1)
		}
		weeks = append(weeks, w)
	}

	return weeks
}
