// Package costreport normalizes district salary cost-report workbooks into a
// SQLite database and flat exports, and runs the desk review over them.
package costreport

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/costreport-go/pkg/costreport/parser"
	"github.com/ukaji3/costreport-go/pkg/costreport/review"
)

// Options configures a pipeline run.
type Options struct {
	// DataDir is the folder scanned for workbooks.
	DataDir string `yaml:"data_dir"`
	// Database is the SQLite file to create or overwrite.
	Database string `yaml:"database"`
	// Export is the combined salary record export (.csv or .xlsx).
	Export string `yaml:"export"`
	// ContactExport is the contact export (.csv or .xlsx).
	ContactExport string `yaml:"contact_export"`
	// DeskReviewExport is the desk-review findings export (.csv or .xlsx).
	DeskReviewExport string `yaml:"desk_review_export"`

	// WorkbookGlob selects workbook files within DataDir.
	WorkbookGlob string `yaml:"workbook_glob"`
	// LockPrefix marks editor lock files, which are skipped.
	LockPrefix string `yaml:"lock_prefix"`
	// DistrictPrefix is stripped from file names used as district fallbacks.
	DistrictPrefix string `yaml:"district_prefix"`
	// MetadataSheet is the key/value sheet name.
	MetadataSheet string `yaml:"metadata_sheet"`
	// SalarySheet is the salary table sheet name.
	SalarySheet string `yaml:"salary_sheet"`

	Thresholds review.Thresholds `yaml:"thresholds"`
	Letters    LetterOptions     `yaml:"letters"`
}

// LetterOptions configures letter context generation.
type LetterOptions struct {
	// OutputDir receives one folder per district.
	OutputDir string `yaml:"output_dir"`
}

// DefaultOptions returns default pipeline options.
func DefaultOptions() Options {
	return Options{
		DataDir:          "test_data",
		Database:         "cost_reports.db",
		Export:           "combined_cost_reports.csv",
		ContactExport:    "contact_info.csv",
		DeskReviewExport: "desk_review_findings.csv",
		WorkbookGlob:     "*.xlsx",
		LockPrefix:       "~$",
		DistrictPrefix:   parser.DefaultMetadataParams().DistrictPrefix,
		MetadataSheet:    "Input Data",
		SalarySheet:      "Salaries",
		Thresholds:       review.DefaultThresholds(),
		Letters:          LetterOptions{OutputDir: "reports"},
	}
}

// LoadOptions reads a YAML config over DefaultOptions. Keys absent from the
// file keep their defaults.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse config %s: %w", path, err)
	}
	return opts, nil
}

// Validate reports every invalid option at once.
func (o Options) Validate() error {
	var errs []error
	required := []struct {
		key, value string
	}{
		{"data_dir", o.DataDir},
		{"database", o.Database},
		{"export", o.Export},
		{"contact_export", o.ContactExport},
		{"desk_review_export", o.DeskReviewExport},
		{"workbook_glob", o.WorkbookGlob},
		{"metadata_sheet", o.MetadataSheet},
		{"salary_sheet", o.SalarySheet},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, fmt.Errorf("%s is required", r.key))
		}
	}
	if err := o.Thresholds.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// MetadataParams returns the metadata parser parameters for these options.
func (o Options) MetadataParams() parser.MetadataParams {
	return parser.MetadataParams{DistrictPrefix: o.DistrictPrefix}
}
