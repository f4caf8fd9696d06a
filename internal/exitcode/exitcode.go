package exitcode

import (
	"context"
	"errors"
	"os"
	"strings"

	vserrors "github.com/felixgeelhaar/vstask/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError covers task failures, missing tasks, and spawn failures
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, etc.)
	UsageError = 2

	// Interrupted indicates the invocation was cancelled by a signal
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}

	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	if errors.Is(err, context.Canceled) {
		return Interrupted
	}

	switch vserrors.CodeOf(err) {
	case vserrors.ErrCodeTasksNotFound,
		vserrors.ErrCodeUnknownTask,
		vserrors.ErrCodeInvalidDefinition,
		vserrors.ErrCodeTaskFailed,
		vserrors.ErrCodeShellUnavailable,
		vserrors.ErrCodeWaitFailed:
		return GeneralError
	}

	// cobra reports flag problems as plain errors
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "unknown flag") || strings.Contains(errMsg, "unknown shorthand flag") {
		return UsageError
	}
	if strings.Contains(errMsg, "invalid argument") || strings.Contains(errMsg, "flag needs an argument") {
		return UsageError
	}

	return GeneralError
}

// GetExitCodeDescription returns a human-readable description of an exit code
func GetExitCodeDescription(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags or arguments)"
	case Interrupted:
		return "Interrupted"
	default:
		return "Unknown error"
	}
}

type silentError struct {
	err error
}

func (e *silentError) Error() string { return e.err.Error() }

func (e *silentError) Unwrap() error { return e.err }

// Silent marks err so the entry point sets its exit code without printing it.
func Silent(err error) error {
	if err == nil {
		return nil
	}
	return &silentError{err: err}
}

// IsSilent reports whether err was marked with Silent.
func IsSilent(err error) bool {
	var s *silentError
	return errors.As(err, &s)
}
