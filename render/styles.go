package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/orayew2002/phase-calendar/config"
)

// StyleManager caches Excel styles so each (kind, fill) pair is created only once per file.
type StyleManager struct {
	file  *excelize.File
	theme config.Theme
	cache map[string]int
}

// NewStyleManager creates a style manager bound to the given file.
func NewStyleManager(f *excelize.File, theme config.Theme) *StyleManager {
	return &StyleManager{file: f, theme: theme, cache: make(map[string]int)}
}

// Cell returns the style for c (cached).
func (sm *StyleManager) Cell(c Cell) (int, error) {
	key := fmt.Sprintf("%d/%s", c.Kind, c.Fill)
	if id, ok := sm.cache[key]; ok {
		return id, nil
	}

	id, err := sm.file.NewStyle(sm.build(c))
	if err != nil {
		return 0, err
	}

	sm.cache[key] = id
	return id, nil
}

func (sm *StyleManager) build(c Cell) *excelize.Style {
	t := sm.theme
	style := &excelize.Style{}

	switch c.Kind {
	case KindMonthHeader:
		style.Font = sm.font(true, t.MonthHeader.FontColor, t.MonthHeader.FontSize)
		style.Alignment = centered()
	case KindWeekdayHeader:
		style.Font = sm.font(true, t.DateRow.FontColor, 0)
		style.Alignment = centered()
	case KindDate:
		style.Font = sm.font(true, t.DateRow.FontColor, t.DateRow.FontSize)
		style.Alignment = centered()
	case KindEvent:
		style.Font = sm.font(false, t.EventRow.FontColor, t.EventRow.FontSize)
		style.Alignment = &excelize.Alignment{Horizontal: "left", Vertical: "top", WrapText: true}
	}

	if c.Bordered() {
		style.Border = thinBorder(t.BorderColor)
	}
	if c.Fill != "" {
		style.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{c.Fill}}
	}

	return style
}

func (sm *StyleManager) font(bold bool, color string, size float64) *excelize.Font {
	return &excelize.Font{Bold: bold, Color: color, Size: size, Family: sm.theme.FontFamily}
}

func centered() *excelize.Alignment {
	return &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true}
}

func thinBorder(color string) []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: color, Style: 1},
		{Type: "right", Color: color, Style: 1},
		{Type: "top", Color: color, Style: 1},
		{Type: "bottom", Color: color, Style: 1},
	}
}
