package exec

import "time"

// Shell is the interpreter a task's command text is fed to on stdin.
type Shell struct {
	Executable string
	Args       []string
}

// DefaultShell is a bash login shell, so profile scripts are sourced before
// the task runs.
var DefaultShell = Shell{Executable: "bash", Args: []string{"--login"}}

// Result represents the outcome of a single task run
type Result struct {
	// ExitCode is the child's exit status, propagated verbatim.
	ExitCode int

	Duration   time.Duration
	UserTime   time.Duration
	SystemTime time.Duration
}

// Success reports whether the task exited with status 0.
func (r *Result) Success() bool { return r != nil && r.ExitCode == 0 }
