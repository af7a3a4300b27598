package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorInit     = 2   // Indicates the OS resource facility could not be initialized.
	ExitErrorQuery    = 3   // Indicates an OS counter or process query failed.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
// It allows for the creation of configuration-specific errors with dynamic
// content.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// InitializationError indicates that the OS resource/process enumeration
// facility could not be set up. It is raised once, at monitor construction,
// and is not recoverable at the monitor's own level.
type InitializationError struct {
	// Cause is the underlying error returned by the OS facility.
	Cause error
}

// Error returns a formatted message describing the initialization failure.
//
// Returns:
//   - string: The error message string.
func (e InitializationError) Error() string {
	return fmt.Sprintf("monitor initialization failed: %v", e.Cause)
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
//
// Returns:
//   - error: The underlying cause of the InitializationError.
func (e InitializationError) Unwrap() error { return e.Cause }

// QueryError indicates that a refresh or read against the OS facility failed
// after successful initialization. It captures which counter group was being
// queried so callers can log a precise failure site. The monitor performs no
// retry; the error is surfaced as-is.
type QueryError struct {
	// Subsystem is the counter group that was being refreshed
	// (e.g., "cpu", "memory", "processes", "display").
	Subsystem string
	// Cause is the underlying error returned by the OS facility.
	Cause error
}

// Error returns a formatted message describing the failed query.
//
// Returns:
//   - string: The error message string.
func (e QueryError) Error() string {
	return fmt.Sprintf("%s query failed: %v", e.Subsystem, e.Cause)
}

// Unwrap returns the original wrapped error.
//
// Returns:
//   - error: The underlying cause of the QueryError.
func (e QueryError) Unwrap() error { return e.Cause }

// NewQueryError creates a QueryError for the given subsystem.
//
// Parameters:
//   - subsystem: The counter group being refreshed when the failure occurred.
//   - cause: The underlying error.
//
// Returns:
//   - error: A new QueryError, or nil if cause is nil.
func NewQueryError(subsystem string, cause error) error {
	if cause == nil {
		return nil
	}
	return QueryError{Subsystem: subsystem, Cause: cause}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error to the application exit code that should be
// reported to the OS. Context cancellation takes precedence over the typed
// classification so Ctrl-C always exits 130.
//
// Parameters:
//   - err: The error to classify. May be nil.
//
// Returns:
//   - int: The corresponding exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if IsContextError(err) {
		return ExitErrorCanceled
	}
	var initErr InitializationError
	if errors.As(err, &initErr) {
		return ExitErrorInit
	}
	var queryErr QueryError
	if errors.As(err, &queryErr) {
		return ExitErrorQuery
	}
	var cfgErr ConfigError
	if errors.As(err, &cfgErr) {
		return ExitErrorConfig
	}
	return ExitErrorGeneric
}
