package costreport

import (
	"errors"
	"fmt"
)

// ErrNoWorkbooks indicates discovery found no workbook files.
var ErrNoWorkbooks = errors.New("no .xlsx files found")

// ErrNoRecords indicates no salary row was parsed from any workbook.
var ErrNoRecords = errors.New("no salary rows detected in the provided workbooks")

// ExtractionError represents a workbook that could not be read.
type ExtractionError struct {
	File  string
	Sheet string // empty when the workbook itself could not be opened
	Err   error
}

func (e *ExtractionError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("extraction error in %s: %v", e.File, e.Err)
	}
	return fmt.Sprintf("extraction error in %s sheet %q: %v", e.File, e.Sheet, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
