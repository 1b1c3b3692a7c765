// Package output serializes pipeline results to JSON.
package output

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ToJSON serializes v to JSON, indented when pretty is set.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// WriteJSON writes v to path as indented JSON, creating parent directories.
func WriteJSON(path string, v any) error {
	data, err := ToJSON(v, true)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
