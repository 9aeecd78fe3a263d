package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventCovers(t *testing.T) {
	e := Event{Start: Date(2024, time.March, 1), End: Date(2024, time.March, 5)}

	assert.False(t, e.Covers(Date(2024, time.February, 29)))
	assert.True(t, e.Covers(Date(2024, time.March, 1)))
	assert.True(t, e.Covers(Date(2024, time.March, 3)))
	assert.True(t, e.Covers(Date(2024, time.March, 5)))
	assert.False(t, e.Covers(Date(2024, time.March, 6)))
}

func TestEventListed(t *testing.T) {
	tests := []struct {
		title, phase string
		want         bool
	}{
		{"Principal Photography", "Shooting", true},
		{"Shooting", "Shooting", false},
		{"  shooting ", "SHOOTING", false},
		{"", "Shooting", false},
		{"   ", "", false},
		{"Script lock", "", false},
		{"Script lock", "  ", false},
	}

	for _, tt := range tests {
		e := Event{Title: tt.title, Phase: tt.phase}
		assert.Equal(t, tt.want, e.Listed(), "title %q phase %q", tt.title, tt.phase)
	}
}

func TestGenerateEvents(t *testing.T) {
	from := Date(2024, time.January, 8)
	events := GenerateEvents(12, from, nil)
	require.Len(t, events, 12)

	assert.True(t, events[0].Start.Equal(from))
	for i, e := range events {
		assert.False(t, e.End.Before(e.Start), "event %d ends before it starts", i)
		assert.Contains(t, DefaultPhases, e.Phase)
		assert.NotEmpty(t, e.Title)
		if i > 0 {
			assert.True(t, e.Start.After(events[i-1].Start), "event %d does not move forward", i)
		}
	}

	assert.Equal(t, events[3].Phase, events[3].Title)
	assert.Equal(t, DefaultPhases[0], events[0].Phase)
	assert.Equal(t, DefaultPhases[len(DefaultPhases)-1], events[11].Phase)
}
