// Package save encodes result sets and writes them to a writer or a file.
package save

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/varstars/pkg/constants"
	"github.com/agentstation/varstars/pkg/errors"
	"github.com/agentstation/varstars/pkg/stars"
)

// Encode renders set in format f. An empty or nil set encodes as an empty
// array, never as null. JSON is indented with two spaces.
func Encode(set []stars.VariableStar, f Format) ([]byte, error) {
	if set == nil {
		set = []stars.VariableStar{}
	}

	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(set, "", "  ")
		if err != nil {
			return nil, errors.WrapParse("json", "", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(set)
		if err != nil {
			return nil, errors.WrapParse("yaml", "", err)
		}
		return data, nil
	}
	return nil, errors.NewValidationError("format", f, "unsupported format")
}

// Write sends already encoded data to the configured writer or path.
func Write(data []byte, opts ...Option) error {
	options := Defaults().Apply(opts...)

	switch {
	case options.Writer() != nil:
		if _, err := options.Writer().Write(data); err != nil {
			return errors.WrapIO("write", "", err)
		}
		return nil
	case options.Path() != "":
		return WriteFile(options.Path(), data)
	}
	return &errors.ConfigError{
		Component: "save",
		Message:   "no writer or path configured",
	}
}

// WriteFile replaces path with data. The data is written to a temporary file
// in the same directory and renamed over path, so readers never observe a
// partially written file.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.WrapIO("create", "temp file", err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempPath)
		return errors.WrapIO("write", path, err)
	}
	if err := tempFile.Close(); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("write", path, err)
	}
	if err := os.Chmod(tempPath, constants.FilePermissions); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("chmod", path, err)
	}

	// Atomically move temp file to final location
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("move", path, err)
	}
	return nil
}
