// Package models defines data structures for salary cost-report extraction.
package models

import "strings"

// Row is one spreadsheet row. A nil entry is a blank cell; other entries are
// string, float64, int64, bool or time.Time.
type Row []any

// Grid is a sheet read as raw rows, independent of any spreadsheet library.
type Grid []Row

// Cell returns the value at column idx, or nil when the row is shorter.
func (r Row) Cell(idx int) any {
	if idx < 0 || idx >= len(r) {
		return nil
	}
	return r[idx]
}

// IsBlank reports whether every cell in the row is blank.
func (r Row) IsBlank() bool {
	for _, v := range r {
		if !IsBlankCell(v) {
			return false
		}
	}
	return true
}

// IsBlankCell reports whether v is nil or a whitespace-only string.
func IsBlankCell(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	default:
		return false
	}
}

// Compact returns the grid without its fully blank rows.
func (g Grid) Compact() Grid {
	out := make(Grid, 0, len(g))
	for _, row := range g {
		if !row.IsBlank() {
			out = append(out, row)
		}
	}
	return out
}
