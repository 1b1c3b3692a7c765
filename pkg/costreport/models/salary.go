package models

// SalaryRecord is one employee row of a salary report.
type SalaryRecord struct {
	// DistrictName is copied from the workbook metadata.
	DistrictName string `json:"district_name"`
	// YearEnd is copied from the workbook metadata.
	YearEnd string `json:"year_end"`
	// EmployeeName is the trimmed "Name" cell.
	EmployeeName string `json:"employee_name"`
	// Salary is the salary amount (nil if missing or non-numeric).
	Salary *float64 `json:"salary"`
	// Healthcare is the healthcare amount (nil if missing or non-numeric).
	Healthcare *float64 `json:"healthcare"`
	// Retirement is the retirement amount (nil if missing or non-numeric).
	Retirement *float64 `json:"retirement"`
	// FederalPct is the federally funded fraction of salary (nil if missing).
	FederalPct *float64 `json:"federal_pct"`
	// StatePct is the state funded fraction of salary (nil if missing).
	StatePct *float64 `json:"state_pct"`
	// SourceFile is the workbook file name the row came from.
	SourceFile string `json:"source_file"`
	// ValidationPassed is set by the validator.
	ValidationPassed bool `json:"validation_passed"`
	// ValidationErrors is the "; "-joined list of validation errors.
	ValidationErrors string `json:"validation_errors"`
}

// Columns returns the export header.
func (SalaryRecord) Columns() []string {
	return []string{
		"district_name", "year_end", "employee_name",
		"salary", "healthcare", "retirement",
		"federal_pct", "state_pct",
		"source_file", "validation_passed", "validation_errors",
	}
}

// Values returns the export row in Columns order. Missing amounts are nil.
func (r SalaryRecord) Values() []any {
	return []any{
		r.DistrictName, r.YearEnd, r.EmployeeName,
		deref(r.Salary), deref(r.Healthcare), deref(r.Retirement),
		deref(r.FederalPct), deref(r.StatePct),
		r.SourceFile, r.ValidationPassed, r.ValidationErrors,
	}
}

// Float returns a pointer to v.
func Float(v float64) *float64 {
	return &v
}

// ValueOr returns *p, or fallback when p is nil.
func ValueOr(p *float64, fallback float64) float64 {
	if p == nil {
		return fallback
	}
	return *p
}

func deref(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}
