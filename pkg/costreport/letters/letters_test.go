package letters

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/costreport-go/pkg/costreport/models"
	"github.com/ukaji3/costreport-go/pkg/costreport/store"
)

func TestFiscalYear(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-06-30", "2024"},
		{"", ""},
		{"FY2023", "FY20"},
		{"202", "202"},
	}
	for _, tt := range tests {
		if got := FiscalYear(tt.in); got != tt.want {
			t.Errorf("FiscalYear(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSafeFragment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"North Valley", "North Valley"},
		{"St. Mary's/East", "St_ Mary_s_East"},
		{"  padded-name_1 ", "padded-name_1"},
		{"", "district"},
		{"   ", "district"},
	}
	for _, tt := range tests {
		if got := SafeFragment(tt.in); got != tt.want {
			t.Errorf("SafeFragment(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewSummaryDefaults(t *testing.T) {
	s := NewSummary(store.DistrictTotals{DistrictName: "North Valley", YearEnd: "2024-06-30"})
	assert.Equal(t, DefaultPositionTitle, s.PositionTitle)
	assert.Equal(t, "2024", s.FiscalYear)

	s = NewSummary(store.DistrictTotals{DistrictName: "North Valley", ContactName: "Pat Lee"})
	assert.Equal(t, "Pat Lee", s.PositionTitle)
}

func TestBuildLetterContext(t *testing.T) {
	s := Summary{
		DistrictName:  "North Valley",
		PositionTitle: "Pat Lee",
		FiscalYear:    "2024",
		StateSalary:   1234567.891,
		StateFringe:   1000,
		FederalSalary: 0.5,
	}
	now := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)

	got := BuildLetterContext(s, now)
	assert.Equal(t, LetterContext{
		CurrentDate:               "March 05, 2024",
		PositionTitle:             "Pat Lee",
		DistrictName:              "North Valley",
		FiscalYear:                "2024",
		StateSalaryTotal:          "1,234,567.89",
		StateFringeTotal:          "1,000.00",
		StateReimbursementTotal:   "1,235,567.89",
		FederalSalaryTotal:        "0.50",
		FederalFringeTotal:        "0.00",
		FederalReimbursementTotal: "0.50",
	}, got)
}

func TestFindingTexts(t *testing.T) {
	findings := []models.DeskReviewFinding{
		{Finding1Text: "one over", Finding1X: 1, Finding2Text: "healthcare", Finding2Flag: true},
		{Finding1Text: "none over", Finding1X: 0, Finding2Text: "healthcare", Finding2Flag: false},
		{Finding1Text: "  ", Finding1X: 3, Finding2Text: " padded ", Finding2Flag: true},
	}
	assert.Equal(t, []string{"one over", "healthcare", "padded"}, FindingTexts(findings))
	assert.Empty(t, FindingTexts(nil))
}

func TestBuildFindingsContextEmpty(t *testing.T) {
	got := BuildFindingsContext(Summary{DistrictName: "d", FiscalYear: "2024"}, nil)
	require.NotNil(t, got.Findings)

	data, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"district_name":"d","fiscal_year":"2024","findings":[]}`, string(data))
}

type fakeSource struct {
	districts []string
	totals    map[string]store.DistrictTotals
	findings  map[string][]models.DeskReviewFinding
}

func (f fakeSource) Districts(context.Context) ([]string, error) { return f.districts, nil }

func (f fakeSource) DistrictTotals(_ context.Context, d string) (store.DistrictTotals, error) {
	t, ok := f.totals[d]
	if !ok {
		return store.DistrictTotals{}, store.ErrNotFound
	}
	return t, nil
}

func (f fakeSource) DistrictFindings(_ context.Context, d string) ([]models.DeskReviewFinding, error) {
	return f.findings[d], nil
}

type recordingRenderer struct {
	dirs    []string
	letters []LetterContext
}

func (r *recordingRenderer) Render(dir, _ string, letter LetterContext, _ FindingsContext) error {
	r.dirs = append(r.dirs, dir)
	r.letters = append(r.letters, letter)
	return nil
}

func TestGenerateCollectsDistrictErrors(t *testing.T) {
	src := fakeSource{
		districts: []string{"Broken", "North Valley"},
		totals: map[string]store.DistrictTotals{
			"North Valley": {DistrictName: "North Valley", YearEnd: "2024-06-30", StateSalary: 10},
		},
	}
	out := t.TempDir()
	r := &recordingRenderer{}

	report, err := Generate(context.Background(), src, r, out, time.Now(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Processed())
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "Broken", report.Errors[0].District)
	assert.True(t, errors.Is(report.Errors[0].Err, store.ErrNotFound))

	assert.Equal(t, []string{filepath.Join(out, "North Valley")}, r.dirs)
	assert.Equal(t, "10.00", r.letters[0].StateSalaryTotal)
}

func TestGenerateFromStore(t *testing.T) {
	ctx := context.Background()
	db, err := store.Open(ctx, filepath.Join(t.TempDir(), "cost_reports.db"))
	require.NoError(t, err)
	defer db.Close()

	records := []models.SalaryRecord{{
		DistrictName: "North/Valley", YearEnd: "2024-06-30", EmployeeName: "Jane",
		Salary: models.Float(70000), Healthcare: models.Float(6000), Retirement: models.Float(4000),
		FederalPct: models.Float(0.5), StatePct: models.Float(0.5),
		SourceFile: "Salary_Report_North_Valley.xlsx", ValidationPassed: true,
	}}
	findings := []models.DeskReviewFinding{{
		DistrictName: "North/Valley", YearEnd: "2024-06-30", ReportID: "Salary_Report_North_Valley.xlsx",
		Finding1Text: "For 1 of 1 employees, over.", Finding1X: 1, Finding1Y: 1,
		Finding2Text: "District charged healthcare costs over 7% of total salaries.", Finding2Flag: true,
		HealthcarePctOfTotalSalary: 6000.0 / 70000.0, StateSalaryThreshold: 60000, HealthcareThreshold: 0.07,
	}}
	require.NoError(t, db.Replace(ctx, records, nil, findings))

	out := t.TempDir()
	report, err := Generate(ctx, db, JSONRenderer{}, out, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), nil)
	require.NoError(t, err)
	assert.Empty(t, report.Errors)
	assert.Equal(t, 1, report.Processed())

	dir := filepath.Join(out, "North_Valley")
	data, err := os.ReadFile(filepath.Join(dir, "desk_review_letter_North_Valley.json"))
	require.NoError(t, err)
	var letter LetterContext
	require.NoError(t, json.Unmarshal(data, &letter))
	assert.Equal(t, "January 02, 2025", letter.CurrentDate)
	assert.Equal(t, DefaultPositionTitle, letter.PositionTitle)
	assert.Equal(t, "2024", letter.FiscalYear)
	assert.Equal(t, "35,000.00", letter.StateSalaryTotal)
	assert.Equal(t, "5,000.00", letter.StateFringeTotal)
	assert.Equal(t, "40,000.00", letter.FederalReimbursementTotal)

	data, err = os.ReadFile(filepath.Join(dir, "desk_review_findings_North_Valley.json"))
	require.NoError(t, err)
	var fc FindingsContext
	require.NoError(t, json.Unmarshal(data, &fc))
	require.Len(t, fc.Findings, 2)
	assert.Equal(t, "For 1 of 1 employees, over.", fc.Findings[0].Text)
}
