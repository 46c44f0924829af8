// Package errors provides structured CLI error types for the basictext CLI.
//
// CLIError wraps errors with user-facing messages, hints, and exit codes
// to provide consistent, actionable error output across all commands.
package errors

import (
	"errors"
	"fmt"
)

// Exit codes for CLI errors.
const (
	ExitSuccess   = 0  // Successful execution
	ExitGeneral   = 1  // General error
	ExitConfig    = 4  // Configuration error
	ExitConvert   = 6  // Conversion error (ConversionRejected exits with ExitDataErr instead)
	ExitUsage     = 64 // Command line usage error (BSD convention)
	ExitDataErr   = 65 // Input data was not valid Unicode/Basic Text (sysexits EX_DATAERR)
)

// CLIError represents a user-facing CLI error with actionable guidance.
type CLIError struct {
	// Message is the primary error message shown to the user.
	Message string

	// Hint provides actionable guidance on how to fix the error.
	Hint string

	// Cause is the underlying error, if any.
	Cause error

	// Code is the exit code for the CLI.
	Code int
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// New creates a new CLIError with the given message and exit code.
func New(code int, message string) *CLIError {
	return &CLIError{
		Message: message,
		Code:    code,
	}
}

// Wrap wraps an existing error with a CLIError.
func Wrap(code int, message string, cause error) *CLIError {
	return &CLIError{
		Message: message,
		Cause:   cause,
		Code:    code,
	}
}

// WithHint adds a hint to the error.
func (e *CLIError) WithHint(hint string) *CLIError {
	e.Hint = hint
	return e
}

// As is a convenience function for errors.As with CLIError.
func As(err error, target **CLIError) bool {
	return errors.As(err, target)
}

// --- Common error constructors ---

// ConversionRejected wraps a strict-mode transducer error for display,
// including the byte offset of the offending scalar when known.
func ConversionRejected(path string, cause error) *CLIError {
	msg := "Input is not valid Basic Text"
	if path != "" {
		msg = fmt.Sprintf("%s: not valid Basic Text", path)
	}

	return &CLIError{
		Message: msg,
		Hint:    "Run 'basictext convert' to produce a lossy, valid Basic Text rendering",
		Cause:   cause,
		Code:    ExitDataErr,
	}
}

// ConfigFailed returns an error for configuration save failures.
func ConfigFailed(operation string, cause error) *CLIError {
	return &CLIError{
		Message: fmt.Sprintf("Failed to %s", operation),
		Hint:    "Check file permissions for your basictext config directory",
		Cause:   cause,
		Code:    ExitConfig,
	}
}

// InstallConflict returns an error when an output path already exists.
func InstallConflict(path string) *CLIError {
	return &CLIError{
		Message: fmt.Sprintf("Output already exists: %s", path),
		Hint:    "Use --force to overwrite, or pass a different --output path",
		Code:    ExitGeneral,
	}
}

// UnderlyingIOFailed wraps a byte-channel (file/stdio) error.
func UnderlyingIOFailed(operation string, cause error) *CLIError {
	return &CLIError{
		Message: fmt.Sprintf("Failed to %s", operation),
		Cause:   cause,
		Code:    ExitGeneral,
	}
}
