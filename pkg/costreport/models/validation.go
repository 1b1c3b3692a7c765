package models

import "sort"

// FileValidation collects the validation errors of one source file.
type FileValidation struct {
	// SourceFile is the workbook file name.
	SourceFile string `json:"source_file"`
	// Errors lists every error of every record, in record order.
	Errors []string `json:"errors"`
	// Passed is true when Errors is empty.
	Passed bool `json:"passed"`
}

// ValidationSummary maps source files to their validation results, keeping
// the order in which files were first added.
type ValidationSummary struct {
	files []*FileValidation
	index map[string]*FileValidation
}

// NewValidationSummary returns a summary seeded with the given files, all passing.
func NewValidationSummary(files ...string) *ValidationSummary {
	s := &ValidationSummary{index: make(map[string]*FileValidation)}
	for _, f := range files {
		s.ensure(f)
	}
	return s
}

func (s *ValidationSummary) ensure(file string) *FileValidation {
	if s.index == nil {
		s.index = make(map[string]*FileValidation)
	}
	if fv, ok := s.index[file]; ok {
		return fv
	}
	fv := &FileValidation{SourceFile: file, Passed: true}
	s.files = append(s.files, fv)
	s.index[file] = fv
	return fv
}

// Append records errors against file. Appending no errors still registers the file.
func (s *ValidationSummary) Append(file string, errs ...string) {
	fv := s.ensure(file)
	fv.Errors = append(fv.Errors, errs...)
	fv.Passed = len(fv.Errors) == 0
}

// Get returns the result for file.
func (s *ValidationSummary) Get(file string) (FileValidation, bool) {
	fv, ok := s.index[file]
	if !ok {
		return FileValidation{}, false
	}
	return *fv, true
}

// Files returns all results in insertion order.
func (s *ValidationSummary) Files() []FileValidation {
	out := make([]FileValidation, 0, len(s.files))
	for _, fv := range s.files {
		out = append(out, *fv)
	}
	return out
}

// Failed returns the results that did not pass, in insertion order.
func (s *ValidationSummary) Failed() []FileValidation {
	var out []FileValidation
	for _, fv := range s.files {
		if !fv.Passed {
			out = append(out, *fv)
		}
	}
	return out
}

// Reasons returns the distinct errors of file, sorted.
func (s *ValidationSummary) Reasons(file string) []string {
	fv, ok := s.index[file]
	if !ok {
		return nil
	}
	seen := make(map[string]struct{}, len(fv.Errors))
	var out []string
	for _, e := range fv.Errors {
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}
