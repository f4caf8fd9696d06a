package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Configuration errors (CONFIG-001 to CONFIG-099)
	ErrCodeMarkerNotFound     ErrorCode = "CONFIG-001"
	ErrCodeTasksFileRead      ErrorCode = "CONFIG-002"
	ErrCodeTasksFileMalformed ErrorCode = "CONFIG-003"
	ErrCodeGlobalConfig       ErrorCode = "CONFIG-004"

	// Task errors (TASK-001 to TASK-099)
	ErrCodeTasksNotFound     ErrorCode = "TASK-001"
	ErrCodeUnknownTask       ErrorCode = "TASK-002"
	ErrCodeInvalidDefinition ErrorCode = "TASK-003"
	ErrCodeTaskFailed        ErrorCode = "TASK-004"

	// Execution errors (EXEC-001 to EXEC-099)
	ErrCodeShellUnavailable ErrorCode = "EXEC-001"
	ErrCodeWaitFailed       ErrorCode = "EXEC-002"
)

// VstaskError represents an error with code, suggestions, and an optional cause
type VstaskError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *VstaskError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *VstaskError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a VstaskError carrying the same code.
func (e *VstaskError) Is(target error) bool {
	t, ok := target.(*VstaskError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// New creates a new VstaskError
func New(code ErrorCode, message string) *VstaskError {
	return &VstaskError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new VstaskError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *VstaskError {
	return &VstaskError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *VstaskError) WithSuggestion(suggestion string) *VstaskError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *VstaskError) WithSuggestions(suggestions ...string) *VstaskError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// CodeOf returns the code of the first VstaskError in err's chain, or "".
func CodeOf(err error) ErrorCode {
	var ve *VstaskError
	if stderrors.As(err, &ve) {
		return ve.Code
	}
	return ""
}

// Common error constructors

// NewTasksNotFoundError is returned when tasks are requested but none are configured.
func NewTasksNotFoundError(marker, file string) *VstaskError {
	return New(ErrCodeTasksNotFound, fmt.Sprintf("Unable to locate %s directory or %s", marker, file)).
		WithSuggestions(
			fmt.Sprintf("Run vstask from inside a project that contains %s/%s", marker, file),
			"Check that the file is valid JSON with a top-level \"tasks\" array",
		)
}

// NewUnknownTaskError is returned when a requested task name is not defined.
func NewUnknownTaskError(name string) *VstaskError {
	return New(ErrCodeUnknownTask, fmt.Sprintf("task not found: %s", name)).
		WithSuggestion("List available tasks: vstask --list")
}

// NewInvalidDefinitionError reports a schema violation in one task entry.
func NewInvalidDefinitionError(index int, name string, cause error) *VstaskError {
	return Wrap(ErrCodeInvalidDefinition, fmt.Sprintf("invalid task %q (index %d)", name, index), cause).
		WithSuggestion("Fix the task entry in tasks.json")
}

// NewTaskFailedError records a task that exited with a non-zero status.
func NewTaskFailedError(name string, exitCode int) *VstaskError {
	return New(ErrCodeTaskFailed, fmt.Sprintf("task %s exited with status %d", name, exitCode))
}

// NewShellUnavailableError reports a shell that could not be started.
func NewShellUnavailableError(shell string, cause error) *VstaskError {
	return Wrap(ErrCodeShellUnavailable, fmt.Sprintf("unable to start shell %s", shell), cause).
		WithSuggestion(fmt.Sprintf("Check that %s is installed and on PATH", shell)).
		WithSuggestion("Configure another shell with shell.executable in ~/.vstask/config.yaml")
}
