package cmd

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/vstask/internal/exec"
	"github.com/felixgeelhaar/vstask/internal/log"
	"github.com/felixgeelhaar/vstask/internal/task"
)

const progName = "vstask"

// TaskRunner runs a single task definition rooted at a project directory.
type TaskRunner interface {
	Run(ctx context.Context, def *task.Definition, root string) (*exec.Result, error)
}

// App carries the process boundaries of one invocation.
type App struct {
	Stdout io.Writer
	Stderr io.Writer

	// Getwd returns the directory the project search starts from.
	Getwd func() (string, error)

	// NewRunner builds the task runner once configuration is known.
	NewRunner func(cfg *GlobalConfig, cwd string, logger *log.Logger) TaskRunner
}

// NewApp returns an App wired to the real process.
func NewApp() *App {
	app := &App{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getwd:  os.Getwd,
	}
	app.NewRunner = app.shellRunner
	return app
}

func (a *App) shellRunner(cfg *GlobalConfig, cwd string, logger *log.Logger) TaskRunner {
	r := exec.NewRunner(cfg.shell(), logger)
	r.Cwd = cwd
	r.Stdout = a.Stdout
	r.Stderr = a.Stderr
	return r
}

// NewRootCommand builds the vstask command for app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   progName + " [TASK...]",
		Short: "Run tasks defined in .vscode/tasks.json",
		Long: `vstask runs the tasks defined in the nearest .vscode/tasks.json from the
command line. Each task is fed to a login shell in the project root.

With no task names, or with --list, the available tasks are printed one per
line. Requested tasks run in the order given; the first failing task stops
the rest.`,
		Example: `  vstask --list
  vstask build test
  vstask -t build
  source <(vstask --completion)`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := parseOptions(cmd.Flags())
			if err != nil {
				return err
			}
			return app.run(cmd.Context(), opts, args)
		},
	}

	registerFlags(rootCmd.Flags(), Flags)
	rootCmd.SetOut(app.Stdout)
	rootCmd.SetErr(app.Stderr)

	return rootCmd
}

// ExecuteContext runs the vstask command with os.Args under ctx.
func ExecuteContext(ctx context.Context) error {
	return NewRootCommand(NewApp()).ExecuteContext(ctx)
}
