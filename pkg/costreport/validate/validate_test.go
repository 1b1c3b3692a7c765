package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/costreport-go/pkg/costreport/models"
)

func validRecord() models.SalaryRecord {
	return models.SalaryRecord{
		DistrictName: "North Valley",
		YearEnd:      "2024-06-30",
		EmployeeName: "Jane Doe",
		Salary:       models.Float(80000),
		Healthcare:   models.Float(5000),
		Retirement:   models.Float(7000),
		FederalPct:   models.Float(0.4),
		StatePct:     models.Float(0.6),
		SourceFile:   "a.xlsx",
	}
}

func TestCheckRecord(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.SalaryRecord)
		want   []string
	}{
		{
			name:   "valid",
			mutate: func(*models.SalaryRecord) {},
			want:   nil,
		},
		{
			name:   "percent sum",
			mutate: func(r *models.SalaryRecord) { r.StatePct = models.Float(0.3) },
			want:   []string{ErrPercentSum},
		},
		{
			name:   "within tolerance",
			mutate: func(r *models.SalaryRecord) { r.StatePct = models.Float(0.6005) },
			want:   nil,
		},
		{
			name:   "blank name",
			mutate: func(r *models.SalaryRecord) { r.EmployeeName = "   " },
			want:   []string{ErrMissingName},
		},
		{
			name: "missing amounts",
			mutate: func(r *models.SalaryRecord) {
				r.Salary = nil
				r.Retirement = nil
			},
			want: []string{"salary missing or non-numeric", "retirement missing or non-numeric"},
		},
		{
			name:   "missing fraction skips sum check",
			mutate: func(r *models.SalaryRecord) { r.FederalPct = nil },
			want:   []string{"federal_pct missing or non-numeric"},
		},
		{
			name: "out of range and sum",
			mutate: func(r *models.SalaryRecord) {
				r.FederalPct = models.Float(-0.5)
				r.StatePct = models.Float(1.5)
			},
			want: []string{"federal_pct out of range [0, 1]", "state_pct out of range [0, 1]"},
		},
		{
			name: "both zero fails sum",
			mutate: func(r *models.SalaryRecord) {
				r.FederalPct = models.Float(0)
				r.StatePct = models.Float(0)
			},
			want: []string{ErrPercentSum},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord()
			tt.mutate(&rec)
			res := CheckRecord(rec)
			assert.Equal(t, tt.want, res.Errors)
			assert.Equal(t, len(tt.want) == 0, res.Passed())
		})
	}
}

func TestRecords(t *testing.T) {
	bad := validRecord()
	bad.StatePct = models.Float(0.3)
	bad.Salary = nil
	bad2 := bad
	bad2.EmployeeName = "John Roe"

	input := []models.SalaryRecord{validRecord(), bad, bad2}
	out, summary := Records(input, []string{"a.xlsx", "empty.xlsx"})

	require.Len(t, out, 3)
	assert.True(t, out[0].ValidationPassed)
	assert.Empty(t, out[0].ValidationErrors)
	assert.False(t, out[1].ValidationPassed)
	assert.Equal(t, "salary missing or non-numeric; Percent fields must sum to 1", out[1].ValidationErrors)

	// Input records are not annotated in place.
	assert.False(t, input[0].ValidationPassed)

	files := summary.Files()
	require.Len(t, files, 2)
	assert.Equal(t, "a.xlsx", files[0].SourceFile)
	assert.False(t, files[0].Passed)
	assert.Len(t, files[0].Errors, 4)
	assert.Equal(t, "empty.xlsx", files[1].SourceFile)
	assert.True(t, files[1].Passed)

	assert.Equal(t, []string{"Percent fields must sum to 1", "salary missing or non-numeric"}, summary.Reasons("a.xlsx"))
	assert.Equal(t, []string{"Validation failed for a.xlsx: Percent fields must sum to 1, salary missing or non-numeric"}, Digest(summary))
}

func TestRecordsUnknownSource(t *testing.T) {
	rec := validRecord()
	rec.SourceFile = "stray.xlsx"
	_, summary := Records([]models.SalaryRecord{rec}, nil)

	fv, ok := summary.Get("stray.xlsx")
	require.True(t, ok)
	assert.True(t, fv.Passed)
	assert.Empty(t, Digest(summary))
}
