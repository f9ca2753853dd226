package models

import (
	"errors"
	"fmt"
)

// InvalidConfigurationError reports a value rejected by a format or filter
// setter. Validation happens at mutation time: a failed setter leaves the
// prior value in place and never surfaces again at execution time.
type InvalidConfigurationError struct {
	Field  string // configuration field that rejected the value
	Value  any    // the rejected value
	Reason string // human-readable rule that was violated
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s=%v: %s", e.Field, e.Value, e.Reason)
}

// NewInvalidConfiguration creates an InvalidConfigurationError.
//
// Example:
//
//	return models.NewInvalidConfiguration("channels", 0, "must be at least 1")
func NewInvalidConfiguration(field string, value any, reason string) *InvalidConfigurationError {
	return &InvalidConfigurationError{Field: field, Value: value, Reason: reason}
}

// IsInvalidConfiguration reports whether err is (or wraps) an
// InvalidConfigurationError.
func IsInvalidConfiguration(err error) bool {
	var ice *InvalidConfigurationError
	return errors.As(err, &ice)
}

// ExecutionError reports a failed ffmpeg invocation. It wraps the driver's
// diagnostic (exit code plus a stderr excerpt) so callers never need to
// inspect the driver's own error types.
type ExecutionError struct {
	ExitCode   int    // process exit code, -1 when the process never started
	Diagnostic string // trimmed stderr excerpt from the failed run
	cause      error
}

func (e *ExecutionError) Error() string {
	if e.Diagnostic == "" {
		return fmt.Sprintf("execution failed: exit code %d", e.ExitCode)
	}
	return fmt.Sprintf("execution failed: exit code %d: %s", e.ExitCode, e.Diagnostic)
}

// Unwrap returns the underlying driver error.
func (e *ExecutionError) Unwrap() error {
	return e.cause
}

// NewExecutionError creates an ExecutionError wrapping cause.
func NewExecutionError(exitCode int, diagnostic string, cause error) *ExecutionError {
	return &ExecutionError{ExitCode: exitCode, Diagnostic: diagnostic, cause: cause}
}

// IsExecutionError reports whether err is (or wraps) an ExecutionError.
func IsExecutionError(err error) bool {
	var ee *ExecutionError
	return errors.As(err, &ee)
}
