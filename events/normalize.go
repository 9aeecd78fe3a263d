package events

import (
	"github.com/sirupsen/logrus"

	"github.com/orayew2002/phase-calendar/domain"
	"github.com/orayew2002/phase-calendar/excel"
)

// Normalize coerces the Start/End cells of every row to dates.
//
// A row whose Start is not a date is dropped. A missing or unreadable End
// becomes the Start, making a single-day event. An End before its Start is
// swapped with it. Input order is kept.
func Normalize(table Table, log logrus.FieldLogger) []domain.Event {
	events := make([]domain.Event, 0, len(table.Rows))

	for _, row := range table.Rows {
		rowLog := log.WithField("line", row.Line)

		start, ok := excel.ParseDate(row.Start, table.Date1904)
		if !ok {
			rowLog.WithField("start", row.Start).Warn("dropping row without a valid start date")
			continue
		}

		end, ok := excel.ParseDate(row.End, table.Date1904)
		if !ok {
			rowLog.WithField("end", row.End).Debug("no valid end date, using start")
			end = start
		}

		if end.Before(start) {
			rowLog.WithFields(logrus.Fields{
				"start": start.Format("2006-01-02"),
				"end":   end.Format("2006-01-02"),
			}).Warn("end date before start date, swapping")
			start, end = end, start
		}

		events = append(events, domain.Event{
			Title: row.Title,
			Phase: row.Phase,
			Start: start,
			End:   end,
		})
	}

	log.WithFields(logrus.Fields{
		"rows":   len(table.Rows),
		"events": len(events),
	}).Debug("normalised input rows")

	return events
}
