package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Unexpected failure not classified by a command
	ExitCommandError = 2 // Command error (missing atlas, malformed input, invalid arguments, etc.)
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)

	// Reported is set once the error has been written through an
	// OutputFormatter, so Execute does not print it a second time.
	Reported bool
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Response statuses.
const (
	StatusOK      = "ok"
	StatusWarning = "warning"
	StatusError   = "error"
)

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose/diagnostic output (defaults to Writer)
	Verbose   bool
	Styles    Styles
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status  string      `json:"status"`            // "ok", "warning" or "error"
	Data    interface{} `json:"data,omitempty"`    // success payload
	Warning *CLIError   `json:"warning,omitempty"` // non-fatal condition
	Error   *CLIError   `json:"error,omitempty"`   // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string      `json:"code"`              // "E001", "E005", etc.
	Message string      `json:"message"`           // human-readable message
	Hint    string      `json:"hint,omitempty"`    // remediation
	Details interface{} `json:"details,omitempty"` // additional context
}

// IsJSON reports whether output is JSON.
func (f *OutputFormatter) IsJSON() bool {
	return f.Format == "json"
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.IsJSON() {
		return f.encode(CLIResponse{
			Status: StatusOK,
			Data:   data,
		})
	}

	// Human-readable text output
	fmt.Fprintln(f.Writer, data)
	return nil
}

// Warning outputs a non-fatal condition. The command still exits 0.
func (f *OutputFormatter) Warning(code, message, hint string, data interface{}) error {
	if f.IsJSON() {
		return f.encode(CLIResponse{
			Status:  StatusWarning,
			Data:    data,
			Warning: &CLIError{Code: code, Message: message, Hint: hint},
		})
	}

	fmt.Fprintf(f.Writer, "%s  %s\n", f.Styles.Warning.Render("⚠"), message)
	if hint != "" {
		fmt.Fprintf(f.Writer, "  %s\n", hint)
	}
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	return f.ErrorWithHint(code, message, "", details)
}

// ErrorWithHint outputs an error followed by a remediation hint.
func (f *OutputFormatter) ErrorWithHint(code, message, hint string, details interface{}) error {
	if f.IsJSON() {
		return f.encode(CLIResponse{
			Status: StatusError,
			Error: &CLIError{
				Code:    code,
				Message: message,
				Hint:    hint,
				Details: details,
			},
		})
	}

	// Human-readable error
	fmt.Fprintf(f.Writer, "%s Error [%s]: %s\n", f.Styles.Error.Render("✗"), code, message)
	if hint != "" {
		fmt.Fprintf(f.Writer, "  %s\n", hint)
	}
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// VerboseLog outputs a message only if verbose mode is enabled.
// Uses ErrWriter if set, otherwise falls back to Writer.
// When format is JSON, verbose logs go to ErrWriter to avoid corrupting JSON output.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.GetErrWriter(), format+"\n", args...)
}

// GetErrWriter returns the appropriate writer for diagnostic output.
// Returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}

// Printf writes formatted text. It is a no-op in JSON mode.
func (f *OutputFormatter) Printf(format string, a ...interface{}) {
	if f.IsJSON() {
		return
	}
	fmt.Fprintf(f.Writer, format, a...)
}

// Heading writes a blank line, a bold title and another blank line.
func (f *OutputFormatter) Heading(title string) {
	f.Printf("\n%s\n\n", f.Styles.Title.Render(title))
}

// Check writes an indented success line.
func (f *OutputFormatter) Check(format string, a ...interface{}) {
	f.Printf("%s %s\n", f.Styles.Success.Render("✓"), fmt.Sprintf(format, a...))
}

// NextSteps writes a "Next steps" block.
func (f *OutputFormatter) NextSteps(steps ...string) {
	f.Printf("\n%s\n", f.Styles.Info.Render("Next steps:"))
	for _, s := range steps {
		f.Printf("  %s\n", s)
	}
}

func (f *OutputFormatter) encode(resp CLIResponse) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(resp)
}
