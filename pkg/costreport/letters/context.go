// Package letters builds the per-district desk review letter and findings
// contexts from a persisted cost report database.
package letters

import (
	"strings"
	"time"
	"unicode"

	"github.com/ukaji3/costreport-go/pkg/costreport/models"
	"github.com/ukaji3/costreport-go/pkg/costreport/review"
	"github.com/ukaji3/costreport-go/pkg/costreport/store"
)

// DefaultPositionTitle is used when a district has no contact name.
const DefaultPositionTitle = "Program Contact"

const letterDate = "January 02, 2006"

// Summary holds the funding totals of a district's latest reporting period.
type Summary struct {
	DistrictName  string
	PositionTitle string
	FiscalYear    string
	StateSalary   float64
	StateFringe   float64
	FederalSalary float64
	FederalFringe float64
}

// NewSummary derives a letter summary from store totals.
func NewSummary(t store.DistrictTotals) Summary {
	title := strings.TrimSpace(t.ContactName)
	if title == "" {
		title = DefaultPositionTitle
	}
	return Summary{
		DistrictName:  t.DistrictName,
		PositionTitle: title,
		FiscalYear:    FiscalYear(t.YearEnd),
		StateSalary:   t.StateSalary,
		StateFringe:   t.StateFringe,
		FederalSalary: t.FederalSalary,
		FederalFringe: t.FederalFringe,
	}
}

// StateReimbursement is state salary plus state fringe.
func (s Summary) StateReimbursement() float64 { return s.StateSalary + s.StateFringe }

// FederalReimbursement is federal salary plus federal fringe.
func (s Summary) FederalReimbursement() float64 { return s.FederalSalary + s.FederalFringe }

// FiscalYear returns the year of a YYYY-MM-DD period end, or the first four
// characters of anything else.
func FiscalYear(yearEnd string) string {
	if yearEnd == "" {
		return ""
	}
	if t, err := time.Parse(time.DateOnly, yearEnd); err == nil {
		return t.Format("2006")
	}
	if len(yearEnd) > 4 {
		return yearEnd[:4]
	}
	return yearEnd
}

// LetterContext is the data merged into the desk review letter template.
type LetterContext struct {
	CurrentDate               string `json:"current_date"`
	PositionTitle             string `json:"position_title"`
	DistrictName              string `json:"district_name"`
	FiscalYear                string `json:"fiscal_year"`
	StateSalaryTotal          string `json:"state_salary_total"`
	StateFringeTotal          string `json:"state_fringe_total"`
	StateReimbursementTotal   string `json:"state_reimbursement_total"`
	FederalSalaryTotal        string `json:"federal_salary_total"`
	FederalFringeTotal        string `json:"federal_fringe_total"`
	FederalReimbursementTotal string `json:"federal_reimbursement_total"`
}

// FindingItem is one entry of the findings list.
type FindingItem struct {
	Text string `json:"text"`
}

// FindingsContext is the data merged into the desk review findings template.
type FindingsContext struct {
	DistrictName string        `json:"district_name"`
	FiscalYear   string        `json:"fiscal_year"`
	Findings     []FindingItem `json:"findings"`
}

// BuildLetterContext formats a summary for the letter template, dated now.
func BuildLetterContext(s Summary, now time.Time) LetterContext {
	return LetterContext{
		CurrentDate:               now.Format(letterDate),
		PositionTitle:             s.PositionTitle,
		DistrictName:              s.DistrictName,
		FiscalYear:                s.FiscalYear,
		StateSalaryTotal:          FormatCurrency(s.StateSalary),
		StateFringeTotal:          FormatCurrency(s.StateFringe),
		StateReimbursementTotal:   FormatCurrency(s.StateReimbursement()),
		FederalSalaryTotal:        FormatCurrency(s.FederalSalary),
		FederalFringeTotal:        FormatCurrency(s.FederalFringe),
		FederalReimbursementTotal: FormatCurrency(s.FederalReimbursement()),
	}
}

// BuildFindingsContext pairs a summary with the finding texts to report.
func BuildFindingsContext(s Summary, texts []string) FindingsContext {
	items := make([]FindingItem, 0, len(texts))
	for _, text := range texts {
		items = append(items, FindingItem{Text: text})
	}
	return FindingsContext{
		DistrictName: s.DistrictName,
		FiscalYear:   s.FiscalYear,
		Findings:     items,
	}
}

// FindingTexts keeps finding 1 when at least one employee is over the state
// salary threshold and finding 2 when its flag is set, in input order.
func FindingTexts(findings []models.DeskReviewFinding) []string {
	var out []string
	for _, f := range findings {
		if text := strings.TrimSpace(f.Finding1Text); text != "" && f.Finding1X > 0 {
			out = append(out, text)
		}
		if text := strings.TrimSpace(f.Finding2Text); text != "" && f.Finding2Flag {
			out = append(out, text)
		}
	}
	return out
}

// FormatCurrency renders v with thousands separators and two decimals.
func FormatCurrency(v float64) string {
	return review.FormatAmount(v, 2)
}

// SafeFragment makes a district name usable as a file name component.
func SafeFragment(text string) string {
	var b strings.Builder
	for _, r := range text {
		if isAlnum(r) || r == ' ' || r == '_' || r == '-' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	if out := strings.TrimSpace(b.String()); out != "" {
		return out
	}
	return "district"
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
