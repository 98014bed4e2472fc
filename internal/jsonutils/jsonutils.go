package jsonutils

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// WriteFile marshals data into pretty JSON and writes it at path, creating parent directories as
// needed.
func WriteFile(path string, data any) error {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, append(b, '\n'), 0600)
}
