// Package calendar lays dated events out on a Monday-first month grid.
package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/orayew2002/phase-calendar/domain"
)

// ErrEmptyDateRange is returned when there are no events to take a date range from.
var ErrEmptyDateRange = errors.New("no events with a valid start date")

// Month identifies one calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Next returns the following month, rolling December over into January.
func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// Before reports whether m comes strictly before o.
func (m Month) Before(o Month) bool {
	if m.Year != o.Year {
		return m.Year < o.Year
	}
	return m.Month < o.Month
}

// First returns the first day of the month at UTC midnight.
func (m Month) First() time.Time {
	return domain.Date(m.Year, m.Month, 1)
}

// Last returns the last day of the month at UTC midnight.
func (m Month) Last() time.Time {
	return m.Next().First().AddDate(0, 0, -1)
}

// Contains reports whether day falls inside the month.
func (m Month) Contains(day time.Time) bool {
	return day.Year() == m.Year && day.Month() == m.Month
}

// Title is the month header label, e.g. "MARCH 2024".
func (m Month) Title() string {
	return fmt.Sprintf("%s %d", strings.ToUpper(m.Month.String()), m.Year)
}

func (m Month) String() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// Range returns the earliest Start and the latest End across events.
func Range(events []domain.Event) (from, to time.Time, err error) {
	if len(events) == 0 {
		return time.Time{}, time.Time{}, ErrEmptyDateRange
	}

	from, to = events[0].Start, events[0].End
	for _, e := range events[1:] {
		if e.Start.Before(from) {
			from = e.Start
		}
		if e.End.After(to) {
			to = e.End
		}
	}

	return from, to, nil
}

// Months returns every month from the one holding the earliest Start through
// the one holding the latest End, inclusive and without gaps.
func Months(events []domain.Event) ([]Month, error) {
	from, to, err := Range(events)
	if err != nil {
		return nil, err
	}
	return Span(from, to), nil
}

// Span returns the inclusive month sequence between the months of from and to.
// It is empty when to falls in an earlier month than from.
func Span(from, to time.Time) []Month {
	last := MonthOf(to)

	var months []Month
	for m := MonthOf(from); !last.Before(m); m = m.Next() {
		months = append(months, m)
	}

	return months
}
