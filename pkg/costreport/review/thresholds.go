// Package review computes desk-review metrics and findings from salary records.
package review

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Thresholds is the desk-review policy.
type Thresholds struct {
	// StateSalary is the per-employee state-funded salary limit.
	StateSalary float64 `yaml:"state_salary"`
	// Healthcare is the limit on total healthcare as a fraction of total salary.
	Healthcare float64 `yaml:"healthcare"`
}

// DefaultThresholds returns the standard policy: $60,000 and 7%.
func DefaultThresholds() Thresholds {
	return Thresholds{
		StateSalary: 60000,
		Healthcare:  0.07,
	}
}

// Validate rejects non-positive thresholds.
func (t Thresholds) Validate() error {
	if t.StateSalary <= 0 {
		return fmt.Errorf("thresholds.state_salary must be > 0, got %v", t.StateSalary)
	}
	if t.Healthcare <= 0 {
		return fmt.Errorf("thresholds.healthcare must be > 0, got %v", t.Healthcare)
	}
	return nil
}

var printer = message.NewPrinter(language.English)

// FormatAmount formats v with thousands separators and the given number of
// decimals: FormatAmount(1234.5, 2) is "1,234.50".
func FormatAmount(v float64, decimals int) string {
	return printer.Sprintf("%.*f", decimals, v)
}

// Finding1Text renders the state salary finding, e.g. "For 3 of 10
// employees, the district charged over the $60,000 threshold for
// state-related salary costs."
func (t Thresholds) Finding1Text(over, total int) string {
	return fmt.Sprintf(
		"For %d of %d employees, the district charged over the $%s threshold for state-related salary costs.",
		over, total, FormatAmount(t.StateSalary, 0),
	)
}

// Finding2Text renders the healthcare finding, e.g. "District charged
// healthcare costs over 7% of total salaries."
func (t Thresholds) Finding2Text() string {
	pct := math.Round(t.Healthcare*10000) / 100
	return fmt.Sprintf("District charged healthcare costs over %s%% of total salaries.",
		strconv.FormatFloat(pct, 'f', -1, 64))
}
