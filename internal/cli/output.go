package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/calegray/harmonia/internal/codec"
	"github.com/calegray/harmonia/internal/theory"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Operational failure (store I/O, no results where required)
	ExitCommandError = 2 // Command error (bad flags, invalid chord, malformed payload)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
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

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // separate writer for verbose output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response envelope.
type CLIResponse struct {
	Status string    `json:"status"` // "ok" or "error"
	Data   any       `json:"data,omitempty"`
	Error  *CLIError `json:"error,omitempty"`
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Success outputs a successful result in the configured format. The text
// renderer is supplied by the caller so commands control their own
// human-readable layout.
func (f *OutputFormatter) Success(data any, text func(io.Writer)) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}
	text(f.Writer)
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}
	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// VerboseLog outputs a message only if verbose mode is enabled. Goes to
// ErrWriter so JSON output on the main stream stays parseable.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}

// Error codes surfaced in the CLI envelope.
const (
	ErrCodeInvalidConstruction = "INVALID_CONSTRUCTION"
	ErrCodeIncompatibleScale   = "INCOMPATIBLE_SCALE"
	ErrCodeInvalidFormat       = "INVALID_FORMAT"
	ErrCodeStore               = "STORE_ERROR"
	ErrCodeInternal            = "INTERNAL"
)

// errorCode maps a theory/codec error to its envelope code.
func errorCode(err error) string {
	switch {
	case theory.IsInvalidConstruction(err):
		return ErrCodeInvalidConstruction
	case theory.IsIncompatibleScale(err):
		return ErrCodeIncompatibleScale
	case codec.IsInvalidFormat(err):
		return ErrCodeInvalidFormat
	default:
		return ErrCodeInternal
	}
}

// failDomain reports a theory/codec error through the formatter and
// returns the command-error exit status.
func failDomain(f *OutputFormatter, err error) error {
	if outErr := f.Error(errorCode(err), err.Error(), nil); outErr != nil {
		return outErr
	}
	return &ExitError{Code: ExitCommandError, Message: err.Error(), Err: err}
}
