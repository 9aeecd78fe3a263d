package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/orayew2002/phase-calendar/calendar"
	"github.com/orayew2002/phase-calendar/config"
	"github.com/orayew2002/phase-calendar/domain"
	"github.com/orayew2002/phase-calendar/excel"
)

const outputPermissions = 0644

// Renderer writes the calendar workbook for a set of events.
type Renderer struct {
	cfg     config.Config
	log     logrus.FieldLogger
	onMonth func(calendar.Month)
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger used for per-month diagnostics.
func WithLogger(log logrus.FieldLogger) Option {
	return func(r *Renderer) { r.log = log }
}

// WithProgress registers fn to be called after each month is written.
func WithProgress(fn func(calendar.Month)) Option {
	return func(r *Renderer) { r.onMonth = fn }
}

// New creates a Renderer for cfg.
func New(cfg config.Config, opts ...Option) *Renderer {
	r := &Renderer{cfg: cfg, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render builds the workbook in memory. The caller must Close the result.
func (r *Renderer) Render(events []domain.Event, months []calendar.Month) (*excelize.File, error) {
	f := excelize.NewFile()

	w, err := r.newSheetWriter(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	for _, m := range months {
		rows := LayoutMonth(events, m, r.cfg)
		for _, row := range rows {
			if err := w.append(row); err != nil {
				f.Close()
				return nil, fmt.Errorf("%s: %s row: %w", m, row.Kind, err)
			}
		}

		r.log.WithFields(logrus.Fields{
			"month": m.String(),
			"rows":  len(rows),
		}).Debug("rendered month")

		if r.onMonth != nil {
			r.onMonth(m)
		}
	}

	return f, nil
}

// WriteToFile renders the workbook and saves it to path. The data goes to a
// temporary file in the same directory first and is renamed over path only
// once fully written.
func (r *Renderer) WriteToFile(events []domain.Event, months []calendar.Month, path string) error {
	f, err := r.Render(events, months)
	if err != nil {
		return err
	}
	defer f.Close()

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := f.WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, outputPermissions); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save %s: %w", path, err)
	}

	return nil
}

// WriteToBytes renders the workbook and returns it as bytes.
func (r *Renderer) WriteToBytes(events []domain.Event, months []calendar.Month) ([]byte, error) {
	f, err := r.Render(events, months)
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

// sheetWriter appends rows to the calendar sheet. row is the 0-based index
// of the next row to write and only moves forward.
type sheetWriter struct {
	file  *excelize.File
	sheet string
	sm    *StyleManager
	row   int
}

func (r *Renderer) newSheetWriter(f *excelize.File) (*sheetWriter, error) {
	sheet := config.SheetName
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	first, last := excel.IndexToColumn(0), excel.IndexToColumn(len(calendar.Weekdays)-1)
	if err := f.SetColWidth(sheet, first, last, r.cfg.Theme.ColumnWidth); err != nil {
		return nil, fmt.Errorf("set col width: %w", err)
	}

	return &sheetWriter{
		file:  f,
		sheet: sheet,
		sm:    NewStyleManager(f, r.cfg.Theme),
	}, nil
}

func (w *sheetWriter) append(row Row) error {
	for col, cell := range row.Cells {
		if cell.Kind == KindPadding {
			continue
		}

		ref := excel.CellName(w.row, col)
		if err := w.setValue(ref, cell.Value); err != nil {
			return fmt.Errorf("cell %s: %w", ref, err)
		}

		styleID, err := w.sm.Cell(cell)
		if err != nil {
			return fmt.Errorf("style %s: %w", ref, err)
		}
		if err := w.file.SetCellStyle(w.sheet, ref, ref, styleID); err != nil {
			return fmt.Errorf("set style %s: %w", ref, err)
		}
	}

	if row.Merged() {
		from, to := excel.RowSpan(w.row, 0, len(row.Cells)-1)
		if err := w.file.MergeCell(w.sheet, from, to); err != nil {
			return fmt.Errorf("merge %s:%s: %w", from, to, err)
		}
	}

	if row.Height > 0 {
		if err := w.file.SetRowHeight(w.sheet, w.row+1, row.Height); err != nil {
			return fmt.Errorf("row height: %w", err)
		}
	}

	w.row++
	return nil
}

func (w *sheetWriter) setValue(ref string, value any) error {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		if v == "" {
			return nil
		}
		return w.file.SetCellStr(w.sheet, ref, v)
	case int:
		return w.file.SetCellInt(w.sheet, ref, int64(v))
	default:
		return w.file.SetCellValue(w.sheet, ref, v)
	}
}
