// Package config holds the phase colour table, the calendar theme and the
// default file paths. A Config is built once and passed by value.
package config

import (
	"os"
	"regexp"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultInput  = "Calendar_table.xlsx"
	DefaultOutput = "calendar_output_vertical.xlsx"
	SheetName     = "Calendar"
)

// Config is the full run configuration.
type Config struct {
	// Input is the path of the event table (.xlsx or .csv).
	Input string `yaml:"input"`
	// Output is the path of the rendered calendar workbook.
	Output string `yaml:"output"`
	// Sheet selects the input sheet; empty means the first sheet.
	Sheet string `yaml:"sheet"`

	Phases PhaseColors `yaml:"phases"`
	Theme  Theme       `yaml:"theme"`
}

// Phase maps a phase name to a fill colour (RRGGBB hex, no leading '#').
type Phase struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// PhaseColors is the ordered phase colour table. Lookups use the exact name.
type PhaseColors []Phase

// Color returns the fill colour of phase.
func (p PhaseColors) Color(phase string) (string, bool) {
	for _, ph := range p {
		if ph.Name == phase {
			return ph.Color, true
		}
	}
	return "", false
}

// Names returns the phase names in table order.
func (p PhaseColors) Names() []string {
	names := make([]string, len(p))
	for i, ph := range p {
		names[i] = ph.Name
	}
	return names
}

// Theme describes fonts, fills, borders and sizes of the calendar grid.
type Theme struct {
	FontFamily  string  `yaml:"font_family"`
	ColumnWidth float64 `yaml:"column_width"`
	BorderColor string  `yaml:"border_color"`

	MonthHeader MonthHeaderTheme `yaml:"month_header"`

	WeekdayHeaderFill string `yaml:"weekday_header_fill"`
	WeekendFill       string `yaml:"weekend_fill"`

	DateRow  RowTheme `yaml:"date_row"`
	EventRow RowTheme `yaml:"event_row"`
}

type MonthHeaderTheme struct {
	Fill      string  `yaml:"fill"`
	FontColor string  `yaml:"font_color"`
	FontSize  float64 `yaml:"font_size"`
	Height    float64 `yaml:"height"`
}

type RowTheme struct {
	FontColor string  `yaml:"font_color"`
	FontSize  float64 `yaml:"font_size"`
	Height    float64 `yaml:"height"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input:  DefaultInput,
		Output: DefaultOutput,
		Phases: PhaseColors{
			{Name: "Development", Color: "FFFF00"},
			{Name: "Pre-pre-production", Color: "FFA500"},
			{Name: "Pre-production", Color: "83F28F"},
			{Name: "Shooting", Color: "00C04B"},
			{Name: "Post production", Color: "7C4700"},
		},
		Theme: Theme{
			ColumnWidth: 15,
			BorderColor: "000000",
			MonthHeader: MonthHeaderTheme{
				Fill:      "FF0000",
				FontColor: "FFFFFF",
				FontSize:  28,
				Height:    50,
			},
			WeekdayHeaderFill: "D3D3D3",
			WeekendFill:       "D3D3D3",
			DateRow:           RowTheme{FontColor: "000000", FontSize: 12, Height: 20},
			EventRow:          RowTheme{FontColor: "000000", FontSize: 10, Height: 40},
		},
	}
}

// Load reads a YAML file and overlays it on Default. Phases listed in the
// file replace the default colour of the same name; new names are appended.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, pkgerrors.Wrapf(err, "failed to read config %s", path)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, pkgerrors.Wrapf(err, "failed to parse config %s", path)
	}

	cfg.merge(file)

	if err := cfg.Validate(); err != nil {
		return Config{}, pkgerrors.Wrapf(err, "invalid config %s", path)
	}

	return cfg, nil
}

func (c *Config) merge(o Config) {
	setString(&c.Input, o.Input)
	setString(&c.Output, o.Output)
	setString(&c.Sheet, o.Sheet)

	for _, ph := range o.Phases {
		replaced := false
		for i := range c.Phases {
			if c.Phases[i].Name == ph.Name {
				c.Phases[i].Color = ph.Color
				replaced = true
				break
			}
		}
		if !replaced {
			c.Phases = append(c.Phases, ph)
		}
	}

	t, ot := &c.Theme, o.Theme
	setString(&t.FontFamily, ot.FontFamily)
	setFloat(&t.ColumnWidth, ot.ColumnWidth)
	setString(&t.BorderColor, ot.BorderColor)
	setString(&t.MonthHeader.Fill, ot.MonthHeader.Fill)
	setString(&t.MonthHeader.FontColor, ot.MonthHeader.FontColor)
	setFloat(&t.MonthHeader.FontSize, ot.MonthHeader.FontSize)
	setFloat(&t.MonthHeader.Height, ot.MonthHeader.Height)
	setString(&t.WeekdayHeaderFill, ot.WeekdayHeaderFill)
	setString(&t.WeekendFill, ot.WeekendFill)
	mergeRow(&t.DateRow, ot.DateRow)
	mergeRow(&t.EventRow, ot.EventRow)
}

func mergeRow(dst *RowTheme, src RowTheme) {
	setString(&dst.FontColor, src.FontColor)
	setFloat(&dst.FontSize, src.FontSize)
	setFloat(&dst.Height, src.Height)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setFloat(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}

var hexColor = regexp.MustCompile(`^[0-9A-F]{6}$`)

// Validate normalises every colour to upper-case RRGGBB and rejects the
// ones that are not.
func (c *Config) Validate() error {
	if c.Theme.ColumnWidth <= 0 {
		return pkgerrors.New("column_width must be positive")
	}

	for i := range c.Phases {
		if strings.TrimSpace(c.Phases[i].Name) == "" {
			return pkgerrors.Errorf("phase %d has no name", i+1)
		}
		if err := normalizeColor(&c.Phases[i].Color); err != nil {
			return pkgerrors.Wrapf(err, "phase %q", c.Phases[i].Name)
		}
	}

	t := &c.Theme
	for name, color := range map[string]*string{
		"border_color":            &t.BorderColor,
		"month_header.fill":       &t.MonthHeader.Fill,
		"month_header.font_color": &t.MonthHeader.FontColor,
		"weekday_header_fill":     &t.WeekdayHeaderFill,
		"weekend_fill":            &t.WeekendFill,
		"date_row.font_color":     &t.DateRow.FontColor,
		"event_row.font_color":    &t.EventRow.FontColor,
	} {
		if err := normalizeColor(color); err != nil {
			return pkgerrors.Wrap(err, name)
		}
	}

	return nil
}

func normalizeColor(c *string) error {
	v := strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(*c), "#"))
	if !hexColor.MatchString(v) {
		return pkgerrors.Errorf("invalid colour %q, want RRGGBB", *c)
	}
	*c = v
	return nil
}
