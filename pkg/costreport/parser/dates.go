package parser

import (
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const isoDate = "2006-01-02"

// Serial numbers outside this range are not treated as Excel dates
// (1954-10-03 .. 2119-01-09).
const (
	minDateSerial = 20000
	maxDateSerial = 80000
)

var dateLayouts = []string{
	isoDate,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"1/2/2006",
	"01/02/2006",
	"1/2/06",
	"01/02/06",
	"1-2-2006",
	"01-02-2006",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"January 2 2006",
	"2 Jan 2006",
	"2 January 2006",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006 3:04 PM",
	"1/2/2006 3:04:05 PM",
}

// NormalizeDate converts a date-like cell value to YYYY-MM-DD.
// Numbers are read as Excel serial dates.
func NormalizeDate(v any) (string, bool) {
	switch val := v.(type) {
	case time.Time:
		return val.Format(isoDate), true
	case int64:
		return serialDate(float64(val))
	case float64:
		return serialDate(val)
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return "", false
		}
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed.Format(isoDate), true
			}
		}
	}
	return "", false
}

func serialDate(serial float64) (string, bool) {
	if serial < minDateSerial || serial > maxDateSerial {
		return "", false
	}
	parsed, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return "", false
	}
	return parsed.Format(isoDate), true
}
