package parser

import (
	"path/filepath"
	"strings"

	"github.com/ukaji3/costreport-go/pkg/costreport/models"
)

// Labels recognized on the metadata sheet, lower-cased and without the colon.
const (
	LabelDistrictName = "district name"
	LabelYearEnd      = "year end"
	LabelContactName  = "contact name"
	LabelContactEmail = "contact email"
)

// MetadataParams holds parameters for metadata parsing.
type MetadataParams struct {
	// DistrictPrefix is stripped from the file stem when the sheet has no district name.
	DistrictPrefix string
}

// DefaultMetadataParams returns default metadata parsing parameters.
func DefaultMetadataParams() MetadataParams {
	return MetadataParams{DistrictPrefix: "Salary_Report_"}
}

// ParseMetadata scans a key/value sheet for "Label:" cells in the first
// column and reads the value from the second. It never fails: unknown labels
// are ignored and missing fields fall back to defaults.
func ParseMetadata(g models.Grid, bookName string, params MetadataParams) models.ReportMetadata {
	var meta models.ReportMetadata

	for _, row := range g.Compact() {
		label, ok := metadataLabel(row.Cell(0))
		if !ok {
			continue
		}
		value := row.Cell(1)
		if models.IsBlankCell(value) {
			continue
		}

		switch label {
		case LabelDistrictName:
			meta.DistrictName = CellText(value)
		case LabelYearEnd:
			if iso, ok := NormalizeDate(value); ok {
				meta.YearEnd = iso
			} else {
				meta.YearEnd = CellText(value)
			}
		case LabelContactName:
			meta.ContactName = CellText(value)
		case LabelContactEmail:
			meta.ContactEmail = CellText(value)
		}
	}

	if meta.DistrictName == "" {
		meta.DistrictName = DistrictFromFileName(bookName, params.DistrictPrefix)
	}

	return meta
}

// DistrictFromFileName derives a district name from a workbook file name:
// "Salary_Report_North_Valley.xlsx" becomes "North Valley".
func DistrictFromFileName(name, prefix string) string {
	base := filepath.Base(name)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if prefix != "" {
		stem = strings.ReplaceAll(stem, prefix, "")
	}
	return strings.ReplaceAll(stem, "_", " ")
}

func metadataLabel(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, ":") {
		return "", false
	}
	label := strings.ToLower(strings.TrimSpace(strings.TrimSuffix(s, ":")))
	return label, label != ""
}
