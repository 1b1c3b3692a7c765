package parser

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestReadGrid(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "District Name:")
	f.SetCellValue(sheetName, "B1", "North Valley")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "C2", 200.5)
	f.SetCellValue(sheetName, "A4", "$60,000.00")
	f.SetCellValue(sheetName, "B4", time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC))

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	grid, err := ReadGrid(f2, sheetName)
	if err != nil {
		t.Fatalf("ReadGrid failed: %v", err)
	}

	if len(grid) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(grid))
	}
	if grid[0].Cell(0) != "District Name:" {
		t.Errorf("Expected 'District Name:', got %v", grid[0].Cell(0))
	}
	if grid[1].Cell(0) != int64(100) {
		t.Errorf("Expected int64(100), got %v (type: %T)", grid[1].Cell(0), grid[1].Cell(0))
	}
	if grid[1].Cell(1) != nil {
		t.Errorf("Expected blank B2, got %v", grid[1].Cell(1))
	}
	if grid[1].Cell(2) != 200.5 {
		t.Errorf("Expected 200.5, got %v", grid[1].Cell(2))
	}
	if !grid[2].IsBlank() {
		t.Errorf("Expected row 3 to be blank, got %v", grid[2])
	}
	if grid[3].Cell(0) != "$60,000.00" {
		t.Errorf("Expected currency text to stay a string, got %v", grid[3].Cell(0))
	}
	if got, ok := NormalizeDate(grid[3].Cell(1)); !ok || got != "2024-06-30" {
		t.Errorf("Expected date cell to normalize to 2024-06-30, got %q (ok=%v)", got, ok)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected any
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"NaN", "NaN"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestCellText(t *testing.T) {
	tests := []struct {
		input    any
		expected string
	}{
		{nil, ""},
		{"  Jane Doe ", "Jane Doe"},
		{int64(42), "42"},
		{60000.5, "60000.5"},
		{true, "true"},
		{time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC), "2023-06-30"},
	}

	for _, tt := range tests {
		if got := CellText(tt.input); got != tt.expected {
			t.Errorf("CellText(%v) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
