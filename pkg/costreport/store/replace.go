package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ukaji3/costreport-go/pkg/costreport/models"
)

// Replace drops and recreates all tables and inserts the given rows, all in
// one transaction. Nothing is kept from previous runs.
func (s *Store) Replace(
	ctx context.Context,
	records []models.SalaryRecord,
	contacts []models.ContactRecord,
	findings []models.DeskReviewFinding,
) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{tableCostReports, tableContacts, tableFindings} {
		if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table+";"); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
	}
	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	if err := insertAll(ctx, tx, insertCostReport, records, func(r models.SalaryRecord) []any {
		return []any{
			r.DistrictName, r.YearEnd, r.EmployeeName,
			nullFloat(r.Salary), nullFloat(r.Healthcare), nullFloat(r.Retirement),
			nullFloat(r.FederalPct), nullFloat(r.StatePct),
			r.SourceFile, boolInt(r.ValidationPassed), r.ValidationErrors,
		}
	}); err != nil {
		return fmt.Errorf("insert %s: %w", tableCostReports, err)
	}

	if err := insertAll(ctx, tx, insertContact, contacts, func(c models.ContactRecord) []any {
		return []any{c.DistrictName, c.YearEnd, c.ContactName, c.ContactEmail, c.SourceFile}
	}); err != nil {
		return fmt.Errorf("insert %s: %w", tableContacts, err)
	}

	if err := insertAll(ctx, tx, insertFinding, findings, func(f models.DeskReviewFinding) []any {
		return []any{
			f.DistrictName, f.YearEnd, f.ReportID,
			f.Finding1Text, f.Finding1X, f.Finding1Y,
			f.Finding2Text, boolInt(f.Finding2Flag),
			f.HealthcarePctOfTotalSalary, f.StateSalaryThreshold, f.HealthcareThreshold,
		}
	}); err != nil {
		return fmt.Errorf("insert %s: %w", tableFindings, err)
	}

	return tx.Commit()
}

func insertAll[T any](ctx context.Context, tx *sql.Tx, query string, rows []T, args func(T) []any) error {
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, row := range rows {
		if _, err := stmt.ExecContext(ctx, args(row)...); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	return nil
}

func nullFloat(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
