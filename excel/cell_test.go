package excel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCellName(t *testing.T) {
	tests := []struct {
		row, col int
		want     string
	}{
		{0, 0, "A1"},
		{0, 6, "G1"},
		{9, 25, "Z10"},
		{1, 26, "AA2"},
		{2, 27, "AB3"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CellName(tt.row, tt.col))
	}
}

func TestRowSpan(t *testing.T) {
	from, to := RowSpan(4, 0, 6)
	assert.Equal(t, "A5", from)
	assert.Equal(t, "G5", to)
}

func TestParseDate(t *testing.T) {
	march1 := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  string
		want time.Time
		ok   bool
	}{
		{"iso", "2024-03-01", march1, true},
		{"iso with time", "2024-03-01 13:45:00", march1, true},
		{"rfc3339", "2024-03-01T23:59:59+02:00", march1, true},
		{"padded", "  2024-03-01 ", march1, true},
		{"us slashes", "03/01/2024", march1, true},
		{"us short", "3/1/24", march1, true},
		{"dotted", "01.03.2024", march1, true},
		{"long month", "March 1, 2024", march1, true},
		{"day month year", "1 Mar 2024", march1, true},
		{"serial", "45352", march1, true},
		{"fractional serial", "45352.75", march1, true},
		{"blank", "   ", time.Time{}, false},
		{"garbage", "tomorrow-ish", time.Time{}, false},
		{"zero serial", "0", time.Time{}, false},
		{"negative", "-3", time.Time{}, false},
		{"yyyymmdd", "20240301", march1, true},
		{"nan", "NaN", time.Time{}, false},
		{"inf", "Inf", time.Time{}, false},
		{"negative inf", "-Inf", time.Time{}, false},
		{"huge exponent", "1e20", time.Time{}, false},
		{"past year 9999", "2958466", time.Time{}, false},
		{"last excel day", "2958465", time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.raw, false)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.want.Equal(got), "got %s want %s", got, tt.want)
			}
		})
	}
}

func TestParseDate1904(t *testing.T) {
	// 1904 system serial for 2024-03-01 is 1462 days smaller.
	got, ok := ParseDate("43890", true)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), got)

	_, ok = ParseDate("2957004", true)
	assert.False(t, ok)
}
