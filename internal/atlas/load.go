package atlas

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultPath is the atlas file name looked up in the workspace root.
const DefaultPath = "atlas_schema.json"

// Load reads and validates the atlas at path.
//
// Returns a *LoadError of kind:
//   - KindMissingFile when the file does not exist (run `poly init` first)
//   - KindMalformedInput when the file is not valid JSON
//   - KindInvalidAtlas when the schema or uniqueness checks fail
func Load(path string) (*Atlas, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, NewMissingFile(path, "atlas")
	}
	if err != nil {
		return nil, fmt.Errorf("read atlas: %w", err)
	}
	return Parse(data, path)
}

// Parse decodes and validates atlas JSON. path is used for diagnostics only.
func Parse(data []byte, path string) (*Atlas, error) {
	if !json.Valid(data) {
		var probe any
		return nil, NewMalformed(path, "atlas JSON", json.Unmarshal(data, &probe))
	}

	if err := CheckSchema(data, filepath.Base(path)); err != nil {
		return nil, &LoadError{
			Kind:    KindInvalidAtlas,
			Path:    path,
			Message: "atlas does not match schema",
			Err:     err,
		}
	}

	var a Atlas
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, &LoadError{
			Kind:    KindInvalidAtlas,
			Path:    path,
			Message: "atlas does not match schema",
			Err:     err,
		}
	}

	if issues := Validate(&a); len(issues) > 0 {
		msg := issues[0].String()
		if len(issues) > 1 {
			msg = fmt.Sprintf("%s (and %d more)", msg, len(issues)-1)
		}
		return nil, &LoadError{
			Kind:    KindInvalidAtlas,
			Path:    path,
			Message: msg,
		}
	}

	if a.Families == nil {
		a.Families = []Family{}
	}
	if a.Principles == nil {
		a.Principles = []Principle{}
	}
	return &a, nil
}

// Write serializes the atlas as indented JSON, creating parent directories.
func Write(path string, a *Atlas) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal atlas: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create atlas directory: %w", err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write atlas: %w", err)
	}
	return nil
}
