package models

// DeskReviewFinding is the desk-review result for one report.
type DeskReviewFinding struct {
	DistrictName string `json:"district_name"`
	YearEnd      string `json:"year_end"`
	// ReportID is the source file of the grouped records.
	ReportID string `json:"report_id"`
	// Finding1Text describes state salary threshold exposure.
	Finding1Text string `json:"finding_1_text"`
	// Finding1X is the number of employees over the state salary threshold.
	Finding1X int `json:"finding_1_x"`
	// Finding1Y is the number of employees in the report.
	Finding1Y    int    `json:"finding_1_y"`
	Finding2Text string `json:"finding_2_text"`
	// Finding2Flag is set when healthcare exceeds the threshold share of salaries.
	Finding2Flag bool `json:"finding_2_flag"`
	// HealthcarePctOfTotalSalary is total healthcare divided by total salary.
	HealthcarePctOfTotalSalary float64 `json:"healthcare_pct_of_total_salary"`
	StateSalaryThreshold       float64 `json:"state_salary_threshold"`
	HealthcareThreshold        float64 `json:"healthcare_threshold"`
}

// Columns returns the export header.
func (DeskReviewFinding) Columns() []string {
	return []string{
		"district_name", "year_end", "report_id",
		"finding_1_text", "finding_1_x", "finding_1_y",
		"finding_2_text", "finding_2_flag",
		"healthcare_pct_of_total_salary", "state_salary_threshold", "healthcare_threshold",
	}
}

// Values returns the export row in Columns order.
func (f DeskReviewFinding) Values() []any {
	return []any{
		f.DistrictName, f.YearEnd, f.ReportID,
		f.Finding1Text, f.Finding1X, f.Finding1Y,
		f.Finding2Text, f.Finding2Flag,
		f.HealthcarePctOfTotalSalary, f.StateSalaryThreshold, f.HealthcareThreshold,
	}
}
