package calendar

import (
	"strings"
	"time"

	"github.com/orayew2002/phase-calendar/domain"
)

// Coverage is the set of events whose range contains one day.
//
// When several events overlap, the first one in input order decides the
// phase colour of the date. This is a fixed policy: events are never ranked
// by phase.
type Coverage struct {
	Day time.Time
	// Events holds every covering event in input order.
	Events []domain.Event
	// Listed is the subset of Events that contributes text (see domain.Event.Listed).
	Listed []domain.Event
}

// Resolve collects the events covering day, keeping input order.
func Resolve(events []domain.Event, day time.Time) Coverage {
	c := Coverage{Day: day}
	for _, e := range events {
		if !e.Covers(day) {
			continue
		}
		c.Events = append(c.Events, e)
		if e.Listed() {
			c.Listed = append(c.Listed, e)
		}
	}
	return c
}

// DatePhase returns the phase of the first covering event.
func (c Coverage) DatePhase() (string, bool) {
	if len(c.Events) == 0 {
		return "", false
	}
	return c.Events[0].Phase, true
}

// TextPhase returns the phase of the first listed event.
func (c Coverage) TextPhase() (string, bool) {
	if len(c.Listed) == 0 {
		return "", false
	}
	return c.Listed[0].Phase, true
}

// Text joins the listed titles one per line.
func (c Coverage) Text() string {
	lines := make([]string, len(c.Listed))
	for i, e := range c.Listed {
		lines[i] = strings.TrimSpace(e.Title)
	}
	return strings.Join(lines, "\n")
}
