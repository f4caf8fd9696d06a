package exec

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	osexec "os/exec"
	"time"

	"github.com/felixgeelhaar/vstask/internal/errors"
	"github.com/felixgeelhaar/vstask/internal/log"
	"github.com/felixgeelhaar/vstask/internal/task"
)

// Runner executes task definitions one at a time in a login shell.
type Runner struct {
	// Shell is used unless a task sets options.shell.
	Shell Shell

	// Cwd is the directory vstask was started from, used for ${cwd}.
	Cwd string

	Stdout io.Writer
	Stderr io.Writer
	Logger *log.Logger
}

// NewRunner creates a runner writing to the process's stdout and stderr.
func NewRunner(shell Shell, logger *log.Logger) *Runner {
	if shell.Executable == "" {
		shell = DefaultShell
	}
	if logger == nil {
		logger = log.Discard()
	}
	return &Runner{
		Shell:  shell,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logger,
	}
}

// Run echoes the task's command line, feeds it to a fresh shell followed by
// "exit", and waits for the shell to finish.
//
// A non-zero exit status is not an error: it is returned in Result.ExitCode
// exactly as the child reported it. Errors are reserved for a shell that
// cannot be started or waited on, and for a cancelled ctx.
func (r *Runner) Run(ctx context.Context, def *task.Definition, root string) (*Result, error) {
	vars := NewVariables(root, r.Cwd)
	script := Script(def, vars)
	dir := WorkDir(root, vars.Expand(def.Cwd()))

	shell := r.Shell
	if override := def.ShellOverride(); override != nil {
		shell = Shell{Executable: override.Executable, Args: override.Args}
	}

	logger := r.Logger.WithGroup("task").With(
		slog.String("shell", shell.Executable),
		slog.String("dir", dir),
	)

	fmt.Fprintln(r.stdout(), script)

	cmd := osexec.CommandContext(ctx, shell.Executable, shell.Args...)
	cmd.Dir = dir
	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()
	cmd.Env = Environ(os.Environ(), def.Env(), vars)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, errors.NewShellUnavailableError(shell.Executable, err)
	}

	startTime := time.Now()
	if err := cmd.Start(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, errors.NewShellUnavailableError(shell.Executable, err)
	}
	logger.DebugContext(ctx, "task started", slog.Int("pid", cmd.Process.Pid))

	// A shell that exits before reading all of its input closes the pipe.
	// The exit status still tells the whole story.
	if _, err := io.WriteString(stdin, script+"\nexit\n"); err != nil {
		logger.Debug("shell stopped reading input", slog.String("error", err.Error()))
	}
	_ = stdin.Close()

	err = cmd.Wait()
	result := &Result{
		ExitCode: 0,
		Duration: time.Since(startTime),
	}
	if cmd.ProcessState != nil {
		result.UserTime = cmd.ProcessState.UserTime()
		result.SystemTime = cmd.ProcessState.SystemTime()
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, ctxErr
	}

	if err != nil {
		var exitErr *osexec.ExitError
		if !stderrors.As(err, &exitErr) {
			return nil, errors.Wrap(errors.ErrCodeWaitFailed, "failed waiting for shell", err)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	logger.DebugContext(ctx, "task finished",
		slog.Int("exit_code", result.ExitCode),
		slog.Duration("duration", result.Duration),
	)
	return result, nil
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout == nil {
		return os.Stdout
	}
	return r.Stdout
}

func (r *Runner) stderr() io.Writer {
	if r.Stderr == nil {
		return os.Stderr
	}
	return r.Stderr
}
