package review

import "github.com/ukaji3/costreport-go/pkg/costreport/models"

// EmployeeMetrics are the per-employee desk-review figures.
type EmployeeMetrics struct {
	TotalPayroll       float64 `json:"total_payroll_costs"`
	StatePortion       float64 `json:"state_portion_of_total_payroll_costs"`
	FederalPortion     float64 `json:"federal_portion_of_total_payroll_costs"`
	HealthcarePctTotal float64 `json:"healthcare_percentage_of_total_payroll_costs"`
	RetirementPctTotal float64 `json:"retirement_percentage_of_total_payroll_costs"`
}

// EmployeeMetricsFor computes metrics for one record. Missing values count
// as zero whether or not the record passed validation.
func EmployeeMetricsFor(rec models.SalaryRecord) EmployeeMetrics {
	salary := models.ValueOr(rec.Salary, 0)
	healthcare := models.ValueOr(rec.Healthcare, 0)
	retirement := models.ValueOr(rec.Retirement, 0)
	total := salary + healthcare + retirement

	// Funding percentages describe how salary dollars were funded, so the
	// portions apply to salary only.
	m := EmployeeMetrics{
		TotalPayroll:   total,
		StatePortion:   salary * models.ValueOr(rec.StatePct, 0),
		FederalPortion: salary * models.ValueOr(rec.FederalPct, 0),
	}
	if total != 0 {
		m.HealthcarePctTotal = healthcare / total
		m.RetirementPctTotal = retirement / total
	}
	return m
}
