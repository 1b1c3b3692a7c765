package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ukaji3/costreport-go/pkg/costreport/models"
)

// ErrNotFound indicates a district has no cost report rows.
var ErrNotFound = errors.New("no cost report data found")

// CostReports returns all cost report rows in insertion order.
func (s *Store) CostReports(ctx context.Context) ([]models.SalaryRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT district_name, year_end, employee_name, salary, healthcare, retirement,
       federal_pct, state_pct, source_file, validation_passed, COALESCE(validation_errors, '')
FROM cost_reports
ORDER BY id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.SalaryRecord
	for rows.Next() {
		var r models.SalaryRecord
		var salary, healthcare, retirement, federal, state sql.NullFloat64
		if err := rows.Scan(
			&r.DistrictName,
			&r.YearEnd,
			&r.EmployeeName,
			&salary,
			&healthcare,
			&retirement,
			&federal,
			&state,
			&r.SourceFile,
			&r.ValidationPassed,
			&r.ValidationErrors,
		); err != nil {
			return nil, err
		}
		r.Salary = nullable(salary)
		r.Healthcare = nullable(healthcare)
		r.Retirement = nullable(retirement)
		r.FederalPct = nullable(federal)
		r.StatePct = nullable(state)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Contacts returns all contact rows in insertion order.
func (s *Store) Contacts(ctx context.Context) ([]models.ContactRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT district_name, year_end, COALESCE(contact_name, ''), COALESCE(contact_email, ''), source_file
FROM contact_info
ORDER BY id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ContactRecord
	for rows.Next() {
		var c models.ContactRecord
		if err := rows.Scan(&c.DistrictName, &c.YearEnd, &c.ContactName, &c.ContactEmail, &c.SourceFile); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Findings returns all desk-review findings in insertion order.
func (s *Store) Findings(ctx context.Context) ([]models.DeskReviewFinding, error) {
	return s.queryFindings(ctx, `
SELECT district_name, year_end, report_id, finding_1_text, finding_1_x, finding_1_y,
       finding_2_text, finding_2_flag, COALESCE(healthcare_pct_of_total_salary, 0),
       COALESCE(state_salary_threshold, 0), COALESCE(healthcare_threshold, 0)
FROM desk_review_findings
ORDER BY id;`)
}

// DistrictFindings returns the findings of one district, latest year first.
func (s *Store) DistrictFindings(ctx context.Context, district string) ([]models.DeskReviewFinding, error) {
	return s.queryFindings(ctx, `
SELECT district_name, year_end, report_id, finding_1_text, finding_1_x, finding_1_y,
       finding_2_text, finding_2_flag, COALESCE(healthcare_pct_of_total_salary, 0),
       COALESCE(state_salary_threshold, 0), COALESCE(healthcare_threshold, 0)
FROM desk_review_findings
WHERE district_name = ?
ORDER BY year_end DESC, id;`, district)
}

func (s *Store) queryFindings(ctx context.Context, query string, args ...any) ([]models.DeskReviewFinding, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.DeskReviewFinding
	for rows.Next() {
		var f models.DeskReviewFinding
		if err := rows.Scan(
			&f.DistrictName,
			&f.YearEnd,
			&f.ReportID,
			&f.Finding1Text,
			&f.Finding1X,
			&f.Finding1Y,
			&f.Finding2Text,
			&f.Finding2Flag,
			&f.HealthcarePctOfTotalSalary,
			&f.StateSalaryThreshold,
			&f.HealthcareThreshold,
		); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Districts returns the distinct district names of cost_reports, sorted.
func (s *Store) Districts(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT district_name FROM cost_reports ORDER BY district_name;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

// DistrictTotals are the funding totals of a district's latest period.
type DistrictTotals struct {
	DistrictName  string
	YearEnd       string
	StateSalary   float64
	StateFringe   float64
	FederalSalary float64
	FederalFringe float64
	// ContactName is the contact name of the latest contact row, "" when none.
	ContactName string
}

// DistrictTotals sums state and federal salary and fringe (healthcare plus
// retirement) portions for the latest year_end of district.
func (s *Store) DistrictTotals(ctx context.Context, district string) (DistrictTotals, error) {
	var t DistrictTotals
	var stateSalary, stateFringe, federalSalary, federalFringe sql.NullFloat64

	err := s.db.QueryRowContext(ctx, `
SELECT
    district_name,
    year_end,
    SUM(salary * state_pct),
    SUM((healthcare + retirement) * state_pct),
    SUM(salary * federal_pct),
    SUM((healthcare + retirement) * federal_pct)
FROM cost_reports
WHERE district_name = ?
GROUP BY district_name, year_end
ORDER BY year_end DESC
LIMIT 1;`, district).Scan(&t.DistrictName, &t.YearEnd, &stateSalary, &stateFringe, &federalSalary, &federalFringe)
	if errors.Is(err, sql.ErrNoRows) {
		return DistrictTotals{}, fmt.Errorf("%w for %s", ErrNotFound, district)
	}
	if err != nil {
		return DistrictTotals{}, err
	}
	t.StateSalary = stateSalary.Float64
	t.StateFringe = stateFringe.Float64
	t.FederalSalary = federalSalary.Float64
	t.FederalFringe = federalFringe.Float64

	var contact sql.NullString
	err = s.db.QueryRowContext(ctx, `
SELECT contact_name
FROM contact_info
WHERE district_name = ?
ORDER BY year_end DESC
LIMIT 1;`, district).Scan(&contact)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return DistrictTotals{}, err
	}
	t.ContactName = contact.String

	return t, nil
}

func nullable(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}
