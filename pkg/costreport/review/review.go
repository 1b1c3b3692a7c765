package review

import "github.com/ukaji3/costreport-go/pkg/costreport/models"

// GroupKey identifies one report: a district's source file for a period.
type GroupKey struct {
	DistrictName string
	SourceFile   string
	YearEnd      string
}

// KeyOf returns the grouping key of rec.
func KeyOf(rec models.SalaryRecord) GroupKey {
	return GroupKey{DistrictName: rec.DistrictName, SourceFile: rec.SourceFile, YearEnd: rec.YearEnd}
}

// bucket accumulates one group.
type bucket struct {
	totalEmployees     int
	overStateThreshold int
	totalSalary        float64
	totalHealthcare    float64
}

func (b *bucket) add(rec models.SalaryRecord, t Thresholds) {
	metrics := EmployeeMetricsFor(rec)
	b.totalEmployees++
	if metrics.StatePortion > t.StateSalary {
		b.overStateThreshold++
	}
	b.totalSalary += models.ValueOr(rec.Salary, 0)
	b.totalHealthcare += models.ValueOr(rec.Healthcare, 0)
}

// Review groups records by district, source file and year end and derives
// both findings for every group. Groups are returned in first-seen order.
// Records are grouped whether or not they passed validation.
func Review(records []models.SalaryRecord, t Thresholds) []models.DeskReviewFinding {
	var order []GroupKey
	groups := make(map[GroupKey]*bucket)

	for _, rec := range records {
		key := KeyOf(rec)
		b, ok := groups[key]
		if !ok {
			b = &bucket{}
			groups[key] = b
			order = append(order, key)
		}
		b.add(rec, t)
	}

	findings := make([]models.DeskReviewFinding, 0, len(order))
	for _, key := range order {
		findings = append(findings, finding(key, groups[key], t))
	}
	return findings
}

func finding(key GroupKey, b *bucket, t Thresholds) models.DeskReviewFinding {
	// The healthcare threshold applies to report totals, not per employee.
	ratio := 0.0
	if b.totalSalary != 0 {
		ratio = b.totalHealthcare / b.totalSalary
	}

	return models.DeskReviewFinding{
		DistrictName:               key.DistrictName,
		YearEnd:                    key.YearEnd,
		ReportID:                   key.SourceFile,
		Finding1Text:               t.Finding1Text(b.overStateThreshold, b.totalEmployees),
		Finding1X:                  b.overStateThreshold,
		Finding1Y:                  b.totalEmployees,
		Finding2Text:               t.Finding2Text(),
		Finding2Flag:               ratio > t.Healthcare,
		HealthcarePctOfTotalSalary: ratio,
		StateSalaryThreshold:       t.StateSalary,
		HealthcareThreshold:        t.Healthcare,
	}
}
