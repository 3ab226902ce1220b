package atlas

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes load failures.
type ErrorKind string

const (
	// KindMissingFile indicates the file does not exist.
	KindMissingFile ErrorKind = "MISSING_FILE"

	// KindMalformedInput indicates the file could not be parsed.
	KindMalformedInput ErrorKind = "MALFORMED_INPUT"

	// KindInvalidAtlas indicates the atlas parsed but violates the schema or
	// the symbol/id uniqueness rules.
	KindInvalidAtlas ErrorKind = "INVALID_ATLAS"
)

// LoadError describes why a workspace file could not be loaded.
// It is shared by the atlas loader and the workspace files (config, bridge
// manifest, fieldlink config) so callers handle one taxonomy.
type LoadError struct {
	Kind    ErrorKind
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Path)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewMissingFile creates a LoadError for an absent file.
func NewMissingFile(path, what string) *LoadError {
	return &LoadError{
		Kind:    KindMissingFile,
		Path:    path,
		Message: what + " not found",
	}
}

// NewMalformed creates a LoadError for a parse failure.
func NewMalformed(path, what string, err error) *LoadError {
	return &LoadError{
		Kind:    KindMalformedInput,
		Path:    path,
		Message: "malformed " + what,
		Err:     err,
	}
}

// KindOf returns the kind of a LoadError anywhere in err's chain.
// Returns "" for other errors.
func KindOf(err error) ErrorKind {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Kind
	}
	return ""
}

// IsMissingFile reports whether err is a missing-file LoadError.
func IsMissingFile(err error) bool {
	return KindOf(err) == KindMissingFile
}

// IsMalformed reports whether err is a malformed-input LoadError.
func IsMalformed(err error) bool {
	return KindOf(err) == KindMalformedInput
}

// IsInvalid reports whether err is an invalid-atlas LoadError.
func IsInvalid(err error) bool {
	return KindOf(err) == KindInvalidAtlas
}
