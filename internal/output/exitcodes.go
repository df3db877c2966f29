package output

import (
	"errors"
	"fmt"
)

// Process exit codes.
const (
	ExitSuccess     = 0
	ExitUserError   = 1
	ExitSystemError = 2
	ExitPartial     = 3
)

// ExitError carries the exit code a command failure maps to.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUserError reports a problem with the invocation itself.
func NewUserError(format string, args ...any) *ExitError {
	return &ExitError{Code: ExitUserError, Message: fmt.Sprintf(format, args...)}
}

// NewSystemError reports an I/O or environment failure.
// cause may be nil.
func NewSystemError(message string, cause error) *ExitError {
	if cause != nil {
		message = message + ": " + cause.Error()
	}
	return &ExitError{Code: ExitSystemError, Message: message, Cause: cause}
}

// NewPartialError reports a strict run that left failed blocks in place.
func NewPartialError(failed int) *ExitError {
	noun := "admonitions"
	if failed == 1 {
		noun = "admonition"
	}
	return &ExitError{
		Code:    ExitPartial,
		Message: fmt.Sprintf("%d %s could not be converted", failed, noun),
	}
}

// GetExitCode maps err to a process exit code.
// Untyped errors (cobra flag errors, for instance) count as user errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUserError
}
