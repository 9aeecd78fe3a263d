// Package render lays out and writes the month calendar workbook.
package render

import (
	"time"

	"github.com/orayew2002/phase-calendar/calendar"
	"github.com/orayew2002/phase-calendar/config"
	"github.com/orayew2002/phase-calendar/domain"
)

// CellKind selects the font, alignment and border of a cell.
type CellKind int

const (
	// KindPadding is a day of a neighbouring month: empty, unstyled.
	KindPadding CellKind = iota
	KindMonthHeader
	KindWeekdayHeader
	KindDate
	KindEvent
)

// RowKind tells which part of a month block a row belongs to.
type RowKind int

const (
	MonthHeaderRow RowKind = iota
	WeekdayHeaderRow
	DateRow
	EventRow
)

func (k RowKind) String() string {
	switch k {
	case MonthHeaderRow:
		return "month-header"
	case WeekdayHeaderRow:
		return "weekday-header"
	case DateRow:
		return "date"
	case EventRow:
		return "event"
	}
	return "unknown"
}

// Cell is one styled grid cell. Value is a string, an int or nil.
// Fill is an RRGGBB colour; empty means no fill.
type Cell struct {
	Value any
	Kind  CellKind
	Fill  string
}

// Bordered reports whether the cell gets the thin border.
func (c Cell) Bordered() bool {
	return c.Kind != KindPadding
}

// Row is one sheet row of seven cells, Monday to Sunday.
type Row struct {
	Kind   RowKind
	Month  calendar.Month
	Cells  [7]Cell
	Height float64
}

// Merged reports whether the row is written as one cell spanning all columns.
func (r Row) Merged() bool {
	return r.Kind == MonthHeaderRow
}

// Layout returns the rows of every month in order.
func Layout(events []domain.Event, months []calendar.Month, cfg config.Config) []Row {
	var rows []Row
	for _, m := range months {
		rows = append(rows, LayoutMonth(events, m, cfg)...)
	}
	return rows
}

// LayoutMonth returns the month header, the weekday header and a date row
// plus an event row for every week of m.
func LayoutMonth(events []domain.Event, m calendar.Month, cfg config.Config) []Row {
	theme := cfg.Theme

	header := Row{Kind: MonthHeaderRow, Month: m, Height: theme.MonthHeader.Height}
	for col := range header.Cells {
		header.Cells[col] = Cell{Kind: KindMonthHeader, Fill: theme.MonthHeader.Fill}
	}
	header.Cells[0].Value = m.Title()

	weekdays := Row{Kind: WeekdayHeaderRow, Month: m}
	for col, label := range calendar.Weekdays {
		fill := theme.WeekdayHeaderFill
		if calendar.IsWeekendColumn(col) {
			fill = theme.WeekendFill
		}
		weekdays.Cells[col] = Cell{Value: label, Kind: KindWeekdayHeader, Fill: fill}
	}

	rows := []Row{header, weekdays}
	for _, week := range calendar.Weeks(m) {
		dates := Row{Kind: DateRow, Month: m, Height: theme.DateRow.Height}
		texts := Row{Kind: EventRow, Month: m, Height: theme.EventRow.Height}

		for col, day := range week {
			if !m.Contains(day) {
				continue
			}
			cov := calendar.Resolve(events, day)
			dates.Cells[col] = dateCell(day, col, cov, cfg)
			texts.Cells[col] = eventCell(col, cov, cfg)
		}

		rows = append(rows, dates, texts)
	}

	return rows
}

// dateCell colours a date by the phase of its first covering event. Without
// a known phase, weekend days get the weekend fill.
func dateCell(day time.Time, col int, cov calendar.Coverage, cfg config.Config) Cell {
	c := Cell{Value: day.Day(), Kind: KindDate}

	if phase, ok := cov.DatePhase(); ok {
		if color, known := cfg.Phases.Color(phase); known {
			c.Fill = color
			return c
		}
	}
	if calendar.IsWeekendColumn(col) {
		c.Fill = cfg.Theme.WeekendFill
	}

	return c
}

// eventCell lists the covering titles. Weekends always take the weekend
// fill; weekdays take the colour of the first listed event's phase.
func eventCell(col int, cov calendar.Coverage, cfg config.Config) Cell {
	c := Cell{Value: cov.Text(), Kind: KindEvent}

	if calendar.IsWeekendColumn(col) {
		c.Fill = cfg.Theme.WeekendFill
		return c
	}
	if phase, ok := cov.TextPhase(); ok {
		if color, known := cfg.Phases.Color(phase); known {
			c.Fill = color
		}
	}

	return c
}
