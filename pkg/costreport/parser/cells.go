// Package parser turns raw spreadsheet grids into report metadata and salary records.
package parser

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/costreport-go/pkg/costreport/models"
	"github.com/xuri/excelize/v2"
)

// ReadGrid reads every row of a sheet as raw, unformatted cell values.
// Blank cells become nil; numeric text becomes int64 or float64.
func ReadGrid(f *excelize.File, sheetName string) (models.Grid, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	grid := make(models.Grid, 0, len(rows))
	for _, row := range rows {
		cells := make(models.Row, len(row))
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cells[colIdx] = parseValue(cellValue)
		}
		grid = append(grid, cells)
	}

	return grid, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for finite decimals, or the original string.
func parseValue(s string) any {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	// Return as string
	return s
}

// CellText renders a cell value as trimmed text. Blank cells render as "".
func CellText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format(isoDate)
	default:
		return ""
	}
}
