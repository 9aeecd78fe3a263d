package domain

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/bxcodec/faker/v4"
)

// Row is one raw line of the input table before date coercion.
// Line is the 1-based line number in the source sheet, used in diagnostics.
type Row struct {
	Line  int
	Title string
	Phase string
	Start string
	End   string
}

// Event is a normalised input row: an inclusive [Start, End] date range
// tagged with a title and the production phase it belongs to.
// Start and End are UTC midnights and Start never comes after End.
type Event struct {
	Title string
	Phase string
	Start time.Time
	End   time.Time
}

// Covers reports whether day falls inside the event's inclusive range.
func (e Event) Covers(day time.Time) bool {
	return !day.Before(e.Start) && !day.After(e.End)
}

// Listed reports whether the event contributes a line of text under its
// dates. Events with a blank title or phase, and titles that merely repeat
// the phase name ("Shooting" in phase "Shooting"), are left out.
func (e Event) Listed() bool {
	title := strings.ToLower(strings.TrimSpace(e.Title))
	phase := strings.ToLower(strings.TrimSpace(e.Phase))
	if title == "" || phase == "" {
		return false
	}
	return title != phase
}

// Date returns midnight UTC of the given calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DefaultPhases are the production phases used when generating sample data.
var DefaultPhases = []string{
	"Development",
	"Pre-pre-production",
	"Pre-production",
	"Shooting",
	"Post production",
}

// GenerateEvents creates n events with random titles walking forward from
// `from` through phases. Every few events the title repeats the phase name,
// so sample input exercises the title filter too.
func GenerateEvents(n int, from time.Time, phases []string) []Event {
	if len(phases) == 0 {
		phases = DefaultPhases
	}

	events := make([]Event, n)
	start := from

	for i := range n {
		phase := phases[(i*len(phases))/max(n, 1)]
		length := rand.IntN(10)

		title := generateTitle()
		if i%4 == 3 {
			title = phase
		}

		events[i] = Event{
			Title: title,
			Phase: phase,
			Start: start,
			End:   start.AddDate(0, 0, length),
		}

		start = start.AddDate(0, 0, 1+rand.IntN(length+3))
	}

	return events
}

func generateTitle() string {
	words := strings.Fields(faker.Sentence())
	if len(words) > 4 {
		words = words[:4]
	}
	title := strings.TrimRight(strings.Join(words, " "), ".")
	if title == "" {
		return faker.Word()
	}
	return title
}
