package excel

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// dateLayouts lists the textual date forms accepted in Start/End cells.
// Slash and short-dash dates are read month first.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"1/2/06",
	"01-02-06",
	"01-02-2006",
	"02.01.2006",
	"2 Jan 2006",
	"02 Jan 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Mon, 02 Jan 2006",
}

// maxSerial is the first 1900-system serial past 9999-12-31, the last day
// Excel can represent.
const maxSerial = 2958466

// ParseDate coerces a raw cell value to a calendar date at UTC midnight.
// Numeric values are read as Excel serial dates in the 1900 (or, when
// date1904 is set, 1904) date system. An eight digit value is read as
// YYYYMMDD first. The time of day is discarded.
func ParseDate(raw string, date1904 bool) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	if len(s) == 8 {
		if t, err := time.Parse("20060102", s); err == nil {
			return Day(t), true
		}
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if !validSerial(serial, date1904) {
			return time.Time{}, false
		}
		t, err := excelize.ExcelDateToTime(serial, date1904)
		if err != nil {
			return time.Time{}, false
		}
		return Day(t), true
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Day(t), true
		}
	}

	return time.Time{}, false
}

func validSerial(serial float64, date1904 bool) bool {
	if math.IsNaN(serial) || math.IsInf(serial, 0) || serial <= 0 {
		return false
	}
	limit := float64(maxSerial)
	if date1904 {
		limit -= 1462
	}
	return serial < limit
}

// Day truncates t to midnight UTC of its own calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
