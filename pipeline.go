package main

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"

	"github.com/orayew2002/phase-calendar/calendar"
	"github.com/orayew2002/phase-calendar/config"
	"github.com/orayew2002/phase-calendar/domain"
	"github.com/orayew2002/phase-calendar/events"
	"github.com/orayew2002/phase-calendar/render"
)

// loadEvents reads and normalises the input table and works out which
// months the calendar has to show.
func loadEvents(cfg config.Config, log logrus.FieldLogger) ([]domain.Event, []calendar.Month, error) {
	table, err := events.Load(cfg.Input, cfg.Sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("load: %w", err)
	}

	evs := events.Normalize(table, log)

	months, err := calendar.Months(evs)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", cfg.Input, err)
	}

	from, to, _ := calendar.Range(evs)
	log.WithFields(logrus.Fields{
		"events": len(evs),
		"from":   from.Format("2006-01-02"),
		"to":     to.Format("2006-01-02"),
		"months": len(months),
	}).Info("loaded events")

	return evs, months, nil
}

// renderCalendar runs the whole pipeline for cfg and returns the number of
// months written. A progress bar is drawn on progress unless it is nil.
func renderCalendar(cfg config.Config, progress io.Writer, log logrus.FieldLogger) (int, error) {
	evs, months, err := loadEvents(cfg, log)
	if err != nil {
		return 0, err
	}

	opts := []render.Option{render.WithLogger(log)}
	if progress != nil {
		bar := progressbar.NewOptions(len(months),
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("Rendering months"),
			progressbar.OptionSetWidth(20),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Finish()

		opts = append(opts, render.WithProgress(func(calendar.Month) {
			_ = bar.Add(1)
		}))
	}

	if err := render.New(cfg, opts...).WriteToFile(evs, months, cfg.Output); err != nil {
		return 0, fmt.Errorf("render: %w", err)
	}

	return len(months), nil
}
