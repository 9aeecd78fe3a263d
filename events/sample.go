package events

import (
	"fmt"
	"time"

	excelize "github.com/xuri/excelize/v2"

	"github.com/orayew2002/phase-calendar/domain"
	"github.com/orayew2002/phase-calendar/excel"
)

const sampleSheet = "Events"

// WriteSampleFile writes events as an input table (Title, Phase, Start, End)
// to a new workbook at path.
func WriteSampleFile(events []domain.Event, path string) error {
	f, err := newSampleWorkbook(events)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	return nil
}

// WriteSampleBytes builds the same workbook as WriteSampleFile and returns it as bytes.
func WriteSampleBytes(events []domain.Event) ([]byte, error) {
	f, err := newSampleWorkbook(events)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}

	return buf.Bytes(), nil
}

func newSampleWorkbook(events []domain.Event) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), sampleSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := writeHeaders(f, sampleSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("write headers: %w", err)
	}

	if err := writeRows(f, sampleSheet, events); err != nil {
		f.Close()
		return nil, fmt.Errorf("write rows: %w", err)
	}

	if err := setColumnWidths(f, sampleSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("set column widths: %w", err)
	}

	return f, nil
}

func writeHeaders(f *excelize.File, sheet string) error {
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}

	for col, header := range Columns {
		cell := excel.CellName(0, col)
		if err := f.SetCellStr(sheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}

	return nil
}

func writeRows(f *excelize.File, sheet string, events []domain.Event) error {
	dateStyle, err := f.NewStyle(&excelize.Style{NumFmt: 14})
	if err != nil {
		return err
	}

	for i, e := range events {
		row := i + 1 // row 0 is headers

		if err := f.SetCellStr(sheet, excel.CellName(row, 0), e.Title); err != nil {
			return fmt.Errorf("event %d title: %w", i+1, err)
		}
		if err := f.SetCellStr(sheet, excel.CellName(row, 1), e.Phase); err != nil {
			return fmt.Errorf("event %d phase: %w", i+1, err)
		}

		if err := writeDate(f, sheet, excel.CellName(row, 2), e.Start, dateStyle); err != nil {
			return fmt.Errorf("event %d start: %w", i+1, err)
		}
		if err := writeDate(f, sheet, excel.CellName(row, 3), e.End, dateStyle); err != nil {
			return fmt.Errorf("event %d end: %w", i+1, err)
		}
	}

	return nil
}

func writeDate(f *excelize.File, sheet, cell string, day time.Time, style int) error {
	if err := f.SetCellValue(sheet, cell, day); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cell, cell, style)
}

func setColumnWidths(f *excelize.File, sheet string) error {
	widths := []float64{40, 22, 14, 14}
	for col, w := range widths {
		colName := excel.IndexToColumn(col)
		if err := f.SetColWidth(sheet, colName, colName, w); err != nil {
			return err
		}
	}
	return nil
}
