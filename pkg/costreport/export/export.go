// Package export writes flat tables of pipeline rows as CSV or XLSX files.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrEmptyExport indicates there are no rows to write.
var ErrEmptyExport = errors.New("no rows to export")

// sheetName is the worksheet used for .xlsx exports.
const sheetName = "Sheet1"

// Row is a flat record with a fixed header.
type Row interface {
	Columns() []string
	Values() []any
}

// Write writes rows to path. A ".xlsx" extension produces a workbook,
// anything else a CSV file. The header is taken from the first row.
func Write[T Row](path string, rows []T) error {
	if len(rows) == 0 {
		return fmt.Errorf("%s: %w", path, ErrEmptyExport)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return writeXLSX(path, rows)
	}
	return writeCSV(path, rows)
}

func writeCSV[T Row](path string, rows []T) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := writeRecords(csv.NewWriter(file), rows); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

func writeRecords[T Row](w *csv.Writer, rows []T) error {
	if err := w.Write(rows[0].Columns()); err != nil {
		return err
	}
	for _, row := range rows {
		values := row.Values()
		record := make([]string, len(values))
		for i, v := range values {
			record[i] = FormatValue(v)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeXLSX[T Row](path string, rows []T) error {
	f := excelize.NewFile()
	defer f.Close()

	header := rows[0].Columns()
	headerCells := make([]any, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &headerCells); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row.Values()
		for j, v := range values {
			if v == nil {
				values[j] = ""
			}
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

// FormatValue renders a row value as CSV text. nil is the empty string.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
