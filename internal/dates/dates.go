// Package dates coerces the assorted date spellings found in imported files
// and command-line filters into calendar dates.
package dates

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/julianstephens/mindlog/internal/constants"
)

var layouts = []string{
	constants.DateFormat,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"02-01-2006",
	"01/02/2006",
	"01/02/06",
	"1/2/2006",
	"1/2/06",
}

// Parse reads s as a calendar date. It accepts ISO dates and timestamps,
// DD-MM-YYYY, US slash dates, and spreadsheet serial numbers.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return truncate(t), true
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		return FromSerial(serial)
	}
	return time.Time{}, false
}

// FromSerial converts a spreadsheet serial day number to a date
func FromSerial(serial float64) (time.Time, bool) {
	// serials below 1 or past year 9999 are not dates
	if serial < 1 || serial > 2958465 {
		return time.Time{}, false
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return time.Time{}, false
	}
	return truncate(t), true
}

// Normalize returns s formatted as YYYY-MM-DD, or "" when it is not a date
func Normalize(s string) string {
	t, ok := Parse(s)
	if !ok {
		return ""
	}
	return t.Format(constants.DateFormat)
}

// NormalizeOr is Normalize with a fallback for unparseable input
func NormalizeOr(s string, fallback time.Time) string {
	if n := Normalize(s); n != "" {
		return n
	}
	return fallback.Format(constants.DateFormat)
}

// Today returns the current local date formatted as YYYY-MM-DD
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
