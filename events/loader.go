// Package events reads the Title/Phase/Start/End event table and turns its
// rows into normalised domain events.
package events

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/orayew2002/phase-calendar/domain"
)

// ErrMissingColumn is returned when the header row lacks a required column.
var ErrMissingColumn = errors.New("missing column")

// Columns are the required header names, matched case-insensitively.
var Columns = []string{"Title", "Phase", "Start", "End"}

// Table is the raw content of an input file.
type Table struct {
	Rows []domain.Row
	// Date1904 is set when the workbook stores serial dates in the 1904 system.
	Date1904 bool
}

// Load reads the event table at path. Files ending in .csv are read as CSV,
// anything else as an Excel workbook. sheet selects the worksheet; empty
// means the first one.
func Load(path, sheet string) (Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return loadCSV(path)
	}
	return loadWorkbook(path, sheet)
}

func loadWorkbook(path, sheet string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return readWorkbook(f, sheet)
}

// LoadReader reads an Excel workbook from r.
func LoadReader(r io.Reader, sheet string) (Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Table{}, fmt.Errorf("open from reader: %w", err)
	}
	defer f.Close()

	return readWorkbook(f, sheet)
}

func readWorkbook(f *excelize.File, sheet string) (Table, error) {
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return Table{}, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	// Raw values keep date cells as serial numbers instead of whatever
	// display format the author picked.
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return Table{}, fmt.Errorf("sheet %q: get rows: %w", sheet, err)
	}

	var table Table
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		table.Date1904 = *props.Date1904
	}

	table.Rows, err = parseRows(rows)
	if err != nil {
		return Table{}, fmt.Errorf("sheet %q: %w", sheet, err)
	}

	return table, nil
}

func loadCSV(path string) (Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("read %s: %w", path, err)
	}

	rows, err := parseRows(records)
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", path, err)
	}

	return Table{Rows: rows}, nil
}

// parseRows maps a header row plus data rows onto domain rows. Blank lines
// are skipped; short lines read missing cells as empty.
func parseRows(records [][]string) ([]domain.Row, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty table, want header %s", ErrMissingColumn, strings.Join(Columns, ", "))
	}

	index, err := headerIndex(records[0])
	if err != nil {
		return nil, err
	}

	cell := func(record []string, name string) string {
		i := index[name]
		if i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rows []domain.Row
	for i, record := range records[1:] {
		if blank(record) {
			continue
		}
		rows = append(rows, domain.Row{
			Line:  i + 2,
			Title: cell(record, "title"),
			Phase: cell(record, "phase"),
			Start: cell(record, "start"),
			End:   cell(record, "end"),
		})
	}

	return rows, nil
}

func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(Columns))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, seen := index[key]; !seen {
			index[key] = i
		}
	}

	for _, col := range Columns {
		if _, ok := index[strings.ToLower(col)]; !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, col)
		}
	}

	return index, nil
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
