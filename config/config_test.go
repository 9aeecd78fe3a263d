package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "phasecal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	color, ok := cfg.Phases.Color("Shooting")
	assert.True(t, ok)
	assert.Equal(t, "00C04B", color)

	_, ok = cfg.Phases.Color("shooting")
	assert.False(t, ok, "phase lookup is exact")

	assert.Equal(t, []string{"Development", "Pre-pre-production", "Pre-production", "Shooting", "Post production"}, cfg.Phases.Names())
	assert.Equal(t, 15.0, cfg.Theme.ColumnWidth)
	assert.Equal(t, "D3D3D3", cfg.Theme.WeekendFill)
	assert.Equal(t, DefaultInput, cfg.Input)
	assert.Equal(t, DefaultOutput, cfg.Output)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
input: events.xlsx
phases:
  - name: Shooting
    color: "#00ff00"
  - name: Distribution
    color: 3366cc
theme:
  weekend_fill: eeeeee
  event_row:
    height: 60
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "events.xlsx", cfg.Input)
	assert.Equal(t, DefaultOutput, cfg.Output)

	color, _ := cfg.Phases.Color("Shooting")
	assert.Equal(t, "00FF00", color)
	color, ok := cfg.Phases.Color("Distribution")
	assert.True(t, ok)
	assert.Equal(t, "3366CC", color)
	assert.Len(t, cfg.Phases, 6)

	assert.Equal(t, "EEEEEE", cfg.Theme.WeekendFill)
	assert.Equal(t, 60.0, cfg.Theme.EventRow.Height)
	assert.Equal(t, 10.0, cfg.Theme.EventRow.FontSize)
	assert.Equal(t, "D3D3D3", cfg.Theme.WeekdayHeaderFill)
}

func TestLoadRejectsBadColour(t *testing.T) {
	path := writeConfig(t, `
phases:
  - name: Shooting
    color: green
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `phase "Shooting"`)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "phases: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
