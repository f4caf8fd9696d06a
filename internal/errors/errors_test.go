package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeUnknownTask, "test error message")

	if err.Code != ErrCodeUnknownTask {
		t.Errorf("expected code %s, got %s", ErrCodeUnknownTask, err.Code)
	}

	if err.Message != "test error message" {
		t.Errorf("expected message 'test error message', got '%s'", err.Message)
	}

	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("underlying error")
	err := Wrap(ErrCodeTasksFileRead, "failed to read file", cause)

	if err.Code != ErrCodeTasksFileRead {
		t.Errorf("expected code %s, got %s", ErrCodeTasksFileRead, err.Code)
	}

	if err.Cause != cause {
		t.Errorf("expected cause to be set")
	}

	if !errors.Is(err, cause) {
		t.Errorf("Wrap should support errors.Is")
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *VstaskError
		wantCode string
		wantMsg  string
	}{
		{
			name:     "simple error",
			err:      New(ErrCodeInvalidDefinition, "invalid task"),
			wantCode: "TASK-003",
			wantMsg:  "invalid task",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeTasksFileRead, "read failed", fmt.Errorf("permission denied")),
			wantCode: "CONFIG-002",
			wantMsg:  "permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errStr := tt.err.Error()

			if !strings.Contains(errStr, tt.wantCode) {
				t.Errorf("error string should contain code %s, got: %s", tt.wantCode, errStr)
			}

			if !strings.Contains(errStr, tt.wantMsg) {
				t.Errorf("error string should contain message '%s', got: %s", tt.wantMsg, errStr)
			}
		})
	}
}

func TestWithSuggestions(t *testing.T) {
	err := New(ErrCodeTasksNotFound, "no tasks").
		WithSuggestion("Suggestion 1").
		WithSuggestions("Suggestion 2", "Suggestion 3")

	if len(err.Suggestions) != 3 {
		t.Errorf("expected 3 suggestions, got %d", len(err.Suggestions))
	}

	errStr := err.Error()
	if !strings.Contains(errStr, "Suggestions:") {
		t.Errorf("error string should contain suggestions section")
	}
	for _, suggestion := range err.Suggestions {
		if !strings.Contains(errStr, suggestion) {
			t.Errorf("error string should contain suggestion: %s", suggestion)
		}
	}
}

func TestIsMatchesCode(t *testing.T) {
	err := fmt.Errorf("running: %w", NewUnknownTaskError("build"))

	if !errors.Is(err, New(ErrCodeUnknownTask, "")) {
		t.Error("errors.Is should match on code")
	}
	if errors.Is(err, New(ErrCodeTaskFailed, "")) {
		t.Error("errors.Is should not match a different code")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, ""},
		{"plain error", errors.New("boom"), ""},
		{"direct", NewTaskFailedError("test", 3), ErrCodeTaskFailed},
		{"wrapped", fmt.Errorf("ctx: %w", NewShellUnavailableError("bash", errors.New("not found"))), ErrCodeShellUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *VstaskError
		wantCode ErrorCode
		contains string
	}{
		{"tasks not found", NewTasksNotFoundError(".vscode", "tasks.json"), ErrCodeTasksNotFound, "Unable to locate .vscode directory or tasks.json"},
		{"unknown task", NewUnknownTaskError("lint"), ErrCodeUnknownTask, "task not found: lint"},
		{"invalid definition", NewInvalidDefinitionError(2, "task2", errors.New("command is required")), ErrCodeInvalidDefinition, "command is required"},
		{"task failed", NewTaskFailedError("B", 3), ErrCodeTaskFailed, "status 3"},
		{"shell unavailable", NewShellUnavailableError("zsh", errors.New("executable file not found")), ErrCodeShellUnavailable, "zsh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %s, want %s", tt.err.Code, tt.wantCode)
			}
			if !strings.Contains(tt.err.Error(), tt.contains) {
				t.Errorf("Error() = %q, want it to contain %q", tt.err.Error(), tt.contains)
			}
		})
	}
}
