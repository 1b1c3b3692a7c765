package parser

import (
	"github.com/ukaji3/costreport-go/pkg/costreport/models"
)

// Column labels of the salary table header.
const (
	ColumnName       = "Name"
	ColumnSalaries   = "Salaries"
	ColumnHealthcare = "Healthcare"
	ColumnRetirement = "Retirement"
	ColumnFederalPct = "Federal Funding %"
	ColumnStatePct   = "State Funding %"
)

// The second non-blank row is the header; data follows it.
const (
	headerRowIndex = 1
	minSalaryRows  = 3
)

// ParseSalaries extracts one record per employee row of a salary sheet.
// Sheets with fewer than three non-blank rows, or without a "Name" column,
// yield no records.
func ParseSalaries(g models.Grid, meta models.ReportMetadata, sourceFile string) []models.SalaryRecord {
	rows := g.Compact()
	if len(rows) < minSalaryRows {
		return nil
	}

	columns := columnIndex(HeaderLabels(rows[headerRowIndex]))
	nameCol, ok := columns[ColumnName]
	if !ok {
		return nil
	}

	cell := func(row models.Row, label string) any {
		idx, ok := columns[label]
		if !ok {
			return nil
		}
		return row.Cell(idx)
	}

	var records []models.SalaryRecord
	for _, row := range rows[headerRowIndex+1:] {
		name := CellText(row.Cell(nameCol))
		if name == "" {
			continue
		}
		records = append(records, models.SalaryRecord{
			DistrictName: meta.DistrictName,
			YearEnd:      meta.YearEnd,
			EmployeeName: name,
			Salary:       optional(AsNumber(cell(row, ColumnSalaries))),
			Healthcare:   optional(AsNumber(cell(row, ColumnHealthcare))),
			Retirement:   optional(AsNumber(cell(row, ColumnRetirement))),
			FederalPct:   optional(AsFraction(cell(row, ColumnFederalPct))),
			StatePct:     optional(AsFraction(cell(row, ColumnStatePct))),
			SourceFile:   sourceFile,
		})
	}

	return records
}

// columnIndex maps each label to its first column.
func columnIndex(labels []string) map[string]int {
	idx := make(map[string]int, len(labels))
	for i, label := range labels {
		if label == "" {
			continue
		}
		if _, seen := idx[label]; !seen {
			idx[label] = i
		}
	}
	return idx
}
