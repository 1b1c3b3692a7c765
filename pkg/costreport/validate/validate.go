// Package validate applies desk-review field rules to salary records.
// Validation is advisory: it annotates records and never drops them.
package validate

import (
	"fmt"
	"math"
	"strings"

	"github.com/ukaji3/costreport-go/pkg/costreport/models"
)

// Error messages produced by the validator.
const (
	ErrMissingName = "Missing employee name"
	ErrPercentSum  = "Percent fields must sum to 1"
)

// PercentSumTolerance is the allowed distance of federal_pct + state_pct from 1.
const PercentSumTolerance = 1e-3

const errorSeparator = "; "

type field struct {
	name  string
	value func(models.SalaryRecord) *float64
}

var amountFields = []field{
	{"salary", func(r models.SalaryRecord) *float64 { return r.Salary }},
	{"healthcare", func(r models.SalaryRecord) *float64 { return r.Healthcare }},
	{"retirement", func(r models.SalaryRecord) *float64 { return r.Retirement }},
}

var percentFields = []field{
	{"federal_pct", func(r models.SalaryRecord) *float64 { return r.FederalPct }},
	{"state_pct", func(r models.SalaryRecord) *float64 { return r.StatePct }},
}

// Result is a record together with every rule it violated.
type Result struct {
	Record models.SalaryRecord
	Errors []string
}

// Passed reports whether no rule was violated.
func (r Result) Passed() bool { return len(r.Errors) == 0 }

// CheckRecord evaluates every rule against rec and returns all violations.
func CheckRecord(rec models.SalaryRecord) Result {
	var errs []string
	addErr := func(format string, args ...any) {
		errs = append(errs, fmt.Sprintf(format, args...))
	}

	if strings.TrimSpace(rec.EmployeeName) == "" {
		addErr(ErrMissingName)
	}

	for _, f := range amountFields {
		if v := f.value(rec); v == nil || !finite(*v) {
			addErr("%s missing or non-numeric", f.name)
		}
	}

	percentMissing := false
	percentTotal := 0.0
	for _, f := range percentFields {
		v := f.value(rec)
		if v == nil || !finite(*v) {
			addErr("%s missing or non-numeric", f.name)
			percentMissing = true
			continue
		}
		if *v < 0 || *v > 1 {
			addErr("%s out of range [0, 1]", f.name)
		}
		percentTotal += *v
	}

	if !percentMissing && math.Abs(percentTotal-1.0) > PercentSumTolerance {
		addErr(ErrPercentSum)
	}

	return Result{Record: rec, Errors: errs}
}

// Annotate returns a copy of rec with its validation fields set.
func Annotate(rec models.SalaryRecord) (models.SalaryRecord, []string) {
	res := CheckRecord(rec)
	out := res.Record
	out.ValidationPassed = res.Passed()
	out.ValidationErrors = strings.Join(res.Errors, errorSeparator)
	return out, res.Errors
}

// Records validates every record and builds the per-file summary. The
// summary is seeded with the given workbook names so files without rows are
// reported as passed. The input slice is not modified.
func Records(records []models.SalaryRecord, workbooks []string) ([]models.SalaryRecord, *models.ValidationSummary) {
	summary := models.NewValidationSummary(workbooks...)
	out := make([]models.SalaryRecord, 0, len(records))

	for _, rec := range records {
		annotated, errs := Annotate(rec)
		source := rec.SourceFile
		if source == "" {
			source = "unknown"
		}
		summary.Append(source, errs...)
		out = append(out, annotated)
	}

	return out, summary
}

// Digest renders one line per failed file: "Validation failed for f: a, b".
func Digest(summary *models.ValidationSummary) []string {
	var lines []string
	for _, fv := range summary.Failed() {
		reasons := strings.Join(summary.Reasons(fv.SourceFile), ", ")
		if reasons == "" {
			reasons = "Unknown reason"
		}
		lines = append(lines, fmt.Sprintf("Validation failed for %s: %s", fv.SourceFile, reasons))
	}
	return lines
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
