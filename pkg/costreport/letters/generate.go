package letters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/ukaji3/costreport-go/pkg/costreport/models"
	"github.com/ukaji3/costreport-go/pkg/costreport/output"
	"github.com/ukaji3/costreport-go/pkg/costreport/store"
)

// Source is the read side of the cost report database.
type Source interface {
	Districts(ctx context.Context) ([]string, error)
	DistrictTotals(ctx context.Context, district string) (store.DistrictTotals, error)
	DistrictFindings(ctx context.Context, district string) ([]models.DeskReviewFinding, error)
}

// Renderer turns district contexts into documents under dir. name is the
// file-safe district fragment.
type Renderer interface {
	Render(dir, name string, letter LetterContext, findings FindingsContext) error
}

// JSONRenderer writes both contexts as JSON files for an external document
// renderer to consume.
type JSONRenderer struct{}

// Render writes desk_review_letter_<name>.json and desk_review_findings_<name>.json.
func (JSONRenderer) Render(dir, name string, letter LetterContext, findings FindingsContext) error {
	if err := output.WriteJSON(filepath.Join(dir, "desk_review_letter_"+name+".json"), letter); err != nil {
		return err
	}
	return output.WriteJSON(filepath.Join(dir, "desk_review_findings_"+name+".json"), findings)
}

// DistrictError records why a district could not be processed.
type DistrictError struct {
	District string
	Err      error
}

// Report summarizes a Generate call.
type Report struct {
	Districts []string
	Errors    []DistrictError
}

// Processed returns the number of districts rendered without error.
func (r *Report) Processed() int {
	return len(r.Districts) - len(r.Errors)
}

// Generate renders letter and findings contexts for every district of src
// into outDir/<district>/. A failing district is recorded in the report
// and does not stop the others.
func Generate(ctx context.Context, src Source, r Renderer, outDir string, now time.Time, logger *zap.Logger) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	districts, err := src.Districts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list districts: %w", err)
	}

	report := &Report{Districts: districts}
	for _, district := range districts {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if err := generateDistrict(ctx, src, r, outDir, district, now); err != nil {
			logger.Warn("district failed", zap.String("district", district), zap.Error(err))
			report.Errors = append(report.Errors, DistrictError{District: district, Err: err})
			continue
		}
		logger.Debug("district rendered", zap.String("district", district))
	}
	return report, nil
}

func generateDistrict(ctx context.Context, src Source, r Renderer, outDir, district string, now time.Time) error {
	totals, err := src.DistrictTotals(ctx, district)
	if err != nil {
		return err
	}
	findings, err := src.DistrictFindings(ctx, district)
	if err != nil {
		return err
	}

	summary := NewSummary(totals)
	name := SafeFragment(district)
	return r.Render(
		filepath.Join(outDir, name),
		name,
		BuildLetterContext(summary, now),
		BuildFindingsContext(summary, FindingTexts(findings)),
	)
}
