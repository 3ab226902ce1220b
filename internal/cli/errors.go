package cli

import (
	"errors"
	"fmt"

	"github.com/roach88/poly/internal/atlas"
)

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric         = "E001" // Generic/unknown error
	ErrCodeNotFound        = "E005" // Required file not found
	ErrCodeWriteFailed     = "E007" // File or journal write error
	ErrCodeMalformed       = "E008" // JSON/YAML parse failure
	ErrCodeInvalidAtlas    = "E009" // Atlas violates schema or uniqueness rules
	ErrCodeInvalidArgument = "E010" // Bad flag value or argument
)

// hintInit is shown when the atlas is missing.
const hintInit = "Run poly init to create one"

// CodeFor maps a load error kind to an error code.
func CodeFor(err error) string {
	switch atlas.KindOf(err) {
	case atlas.KindMissingFile:
		return ErrCodeNotFound
	case atlas.KindMalformedInput:
		return ErrCodeMalformed
	case atlas.KindInvalidAtlas:
		return ErrCodeInvalidAtlas
	default:
		return ErrCodeGeneric
	}
}

// fail writes the error through the formatter and returns an ExitError
// marked as reported.
func fail(f *OutputFormatter, code, message, hint string, err error) error {
	var details interface{}
	if err != nil {
		details = err.Error()
	}
	_ = f.ErrorWithHint(code, message, hint, details)

	exitErr := WrapExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message), err)
	exitErr.Reported = true
	return exitErr
}

// failLoad reports a load error, choosing the code from its kind.
func failLoad(f *OutputFormatter, err error, hint string) error {
	var le *atlas.LoadError
	if !errors.As(err, &le) {
		return fail(f, ErrCodeGeneric, err.Error(), "", err)
	}

	message := le.Message
	if le.Path != "" {
		message = fmt.Sprintf("%s at %s", le.Message, le.Path)
	}
	if le.Kind != atlas.KindMissingFile {
		hint = ""
	}
	return fail(f, CodeFor(err), message, hint, le.Err)
}

// invalidArgument reports a bad flag value or argument.
func invalidArgument(f *OutputFormatter, format string, args ...interface{}) error {
	return fail(f, ErrCodeInvalidArgument, fmt.Sprintf(format, args...), "", nil)
}

// usageError wraps a cobra usage error (unknown flag, wrong argument count)
// as a command error. It is printed by Execute.
func usageError(err error) error {
	return WrapExitError(ExitCommandError, ErrCodeInvalidArgument, err)
}
