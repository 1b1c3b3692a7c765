package costreport

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ukaji3/costreport-go/pkg/costreport/models"
	"github.com/ukaji3/costreport-go/pkg/costreport/parser"
)

// Discover lists the workbooks in dir matching glob, skipping names that
// start with lockPrefix. glob applies to file names only; dir is taken
// literally. Paths are sorted. A missing dir yields no paths.
func Discover(dir, glob, lockPrefix string) ([]string, error) {
	if _, err := filepath.Match(glob, ""); err != nil {
		return nil, fmt.Errorf("workbook glob %q: %w", glob, err)
	}

	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read data directory: %w", err)
	}

	var out []string
	for _, e := range entries {
		name := e.Name()
		if lockPrefix != "" && strings.HasPrefix(name, lockPrefix) {
			continue
		}
		if ok, _ := filepath.Match(glob, name); !ok {
			continue
		}
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			continue
		}
		out = append(out, path)
	}
	sort.Strings(out)
	return out, nil
}

// Extract reads the metadata and salary sheets of one workbook.
func Extract(path string, opts Options, logger *zap.Logger) (*models.Workbook, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	bookName := filepath.Base(path)

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &ExtractionError{File: bookName, Err: err}
	}
	defer f.Close()

	metaGrid, err := parser.ReadGrid(f, opts.MetadataSheet)
	if err != nil {
		return nil, &ExtractionError{File: bookName, Sheet: opts.MetadataSheet, Err: err}
	}
	meta := parser.ParseMetadata(metaGrid, bookName, opts.MetadataParams())

	salaryGrid, err := parser.ReadGrid(f, opts.SalarySheet)
	if err != nil {
		return nil, &ExtractionError{File: bookName, Sheet: opts.SalarySheet, Err: err}
	}
	salaries := parser.ParseSalaries(salaryGrid, meta, bookName)

	logger.Debug("workbook extracted",
		zap.String("file", bookName),
		zap.String("district", meta.DistrictName),
		zap.String("year_end", meta.YearEnd),
		zap.Int("records", len(salaries)),
	)

	return &models.Workbook{
		BookName: bookName,
		Metadata: meta,
		Salaries: salaries,
	}, nil
}
