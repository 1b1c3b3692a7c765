package costreport

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ukaji3/costreport-go/pkg/costreport/export"
	"github.com/ukaji3/costreport-go/pkg/costreport/models"
	"github.com/ukaji3/costreport-go/pkg/costreport/review"
	"github.com/ukaji3/costreport-go/pkg/costreport/store"
	"github.com/ukaji3/costreport-go/pkg/costreport/validate"
)

// Result is the outcome of a pipeline run.
type Result struct {
	// Workbooks are the discovered workbook paths.
	Workbooks []string
	// Records are the validated salary records of all workbooks.
	Records  []models.SalaryRecord
	Contacts []models.ContactRecord
	Findings []models.DeskReviewFinding
	// Validation holds per-file validation outcomes in discovery order.
	Validation *models.ValidationSummary
}

// Load discovers and extracts every workbook.
func Load(opts Options, logger *zap.Logger) ([]*models.Workbook, []string, error) {
	paths, err := Discover(opts.DataDir, opts.WorkbookGlob, opts.LockPrefix)
	if err != nil {
		return nil, nil, err
	}
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("%w in %s", ErrNoWorkbooks, opts.DataDir)
	}

	books := make([]*models.Workbook, 0, len(paths))
	for _, path := range paths {
		wb, err := Extract(path, opts, logger)
		if err != nil {
			return nil, nil, err
		}
		books = append(books, wb)
	}
	return books, paths, nil
}

// Run executes discovery, parsing, validation, desk review, persistence and
// export. Nothing is persisted when loading fails or yields no records.
func Run(ctx context.Context, opts Options, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	books, paths, err := Load(opts, logger)
	if err != nil {
		return nil, err
	}

	var records []models.SalaryRecord
	contacts := make([]models.ContactRecord, 0, len(books))
	names := make([]string, 0, len(books))
	for _, wb := range books {
		records = append(records, wb.Salaries...)
		contacts = append(contacts, wb.Contact())
		names = append(names, wb.BookName)
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	logger.Info("workbooks loaded", zap.Int("workbooks", len(books)), zap.Int("records", len(records)))

	validated, summary := validate.Records(records, names)
	for _, fv := range summary.Failed() {
		logger.Warn("validation failed",
			zap.String("file", fv.SourceFile),
			zap.Strings("reasons", summary.Reasons(fv.SourceFile)),
		)
	}

	findings := review.Review(validated, opts.Thresholds)
	logger.Info("desk review complete", zap.Int("findings", len(findings)))

	if err := persist(ctx, opts.Database, validated, contacts, findings); err != nil {
		return nil, err
	}
	logger.Info("database written", zap.String("path", opts.Database))

	if err := writeExports(opts, validated, contacts, findings); err != nil {
		return nil, err
	}

	return &Result{
		Workbooks:  paths,
		Records:    validated,
		Contacts:   contacts,
		Findings:   findings,
		Validation: summary,
	}, nil
}

func persist(ctx context.Context, path string, records []models.SalaryRecord, contacts []models.ContactRecord, findings []models.DeskReviewFinding) error {
	db, err := store.Open(ctx, path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.Replace(ctx, records, contacts, findings); err != nil {
		return fmt.Errorf("persist to %s: %w", filepath.Base(path), err)
	}
	return nil
}

func writeExports(opts Options, records []models.SalaryRecord, contacts []models.ContactRecord, findings []models.DeskReviewFinding) error {
	if err := export.Write(opts.Export, records); err != nil {
		return fmt.Errorf("combined export: %w", err)
	}
	if err := export.Write(opts.ContactExport, contacts); err != nil {
		return fmt.Errorf("contact export: %w", err)
	}
	if err := export.Write(opts.DeskReviewExport, findings); err != nil {
		return fmt.Errorf("desk review export: %w", err)
	}
	return nil
}
