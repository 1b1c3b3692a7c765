package parser

import (
	"github.com/ukaji3/costreport-go/pkg/costreport/models"
)

// HeaderLabels returns trimmed header labels for row, filling each blank cell
// with the nearest non-blank label to its left. Leading blanks stay "".
func HeaderLabels(row models.Row) []string {
	labels := make([]string, len(row))
	last := ""
	for i, cell := range row {
		if !models.IsBlankCell(cell) {
			last = CellText(cell)
		}
		labels[i] = last
	}
	return labels
}
