package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/vstask/internal/errors"
	"github.com/felixgeelhaar/vstask/internal/exec"
	"github.com/felixgeelhaar/vstask/internal/exitcode"
	"github.com/felixgeelhaar/vstask/internal/workspace"
)

// run resolves one invocation in precedence order: version, completion,
// task resolution, listing, then execution.
func (a *App) run(ctx context.Context, opts options, names []string) error {
	if opts.version {
		printVersion(a.Stdout, progName)
		return nil
	}

	if opts.completion {
		fmt.Fprint(a.Stdout, RenderCompletion(Flags, progName))
		return nil
	}

	cfg, cfgErr := loadConfig(opts.configPath)
	if cfgErr != nil {
		cfg = defaultGlobalConfig()
	}

	logger, cleanup := setupLogging(cfg, opts, a.Stderr)
	defer cleanup()

	if cfgErr != nil {
		logger.WithError(cfgErr).Warn("config not loaded; using defaults")
	}

	cwd, err := a.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	res := workspace.NewLocator(cfg.Marker, cfg.TasksFile, logger).Locate(cwd)

	if (!res.Found() || res.Tasks.Len() == 0) && len(names) > 0 {
		return errors.NewTasksNotFoundError(cfg.Marker, cfg.TasksFile)
	}

	if opts.list || len(names) == 0 {
		for _, name := range res.Tasks.Names() {
			fmt.Fprintln(a.Stdout, name)
		}
		return nil
	}

	runner := a.NewRunner(cfg, cwd, logger)

	var sw *exec.Stopwatch
	if opts.time {
		sw = exec.StartStopwatch(a.Stdout)
		defer sw.Stop()
	}

	for _, name := range names {
		def, err := res.Tasks.Lookup(name)
		if err != nil {
			return err
		}

		logger.Debug("running task", slog.String("task", name), slog.String("root", res.Root))
		result, err := runner.Run(ctx, def, res.Root)
		sw.Add(result)
		if err != nil {
			return fmt.Errorf("task %s: %w", name, err)
		}
		if !result.Success() {
			logger.InfoContext(ctx, "task failed", slog.String("task", name), slog.Int("exit_code", result.ExitCode))
			return exitcode.Silent(errors.NewTaskFailedError(name, result.ExitCode))
		}
	}
	return nil
}
