package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/vstask/internal/cmd"
	"github.com/felixgeelhaar/vstask/internal/exitcode"
	"github.com/felixgeelhaar/vstask/internal/log"
)

func main() {
	// Create a context that listens for interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		// Check if error was due to context cancellation (e.g., Ctrl+C)
		if ctx.Err() == context.Canceled {
			fmt.Fprintln(os.Stderr, "\nInterrupted")
			exitcode.Exit(exitcode.Interrupted)
		}

		if !exitcode.IsSilent(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		logExit(ctx, err)
		exitcode.ExitWithError(err)
	}
	exitcode.Exit(exitcode.Success)
}

// logExit records the failure as a structured event when debug logging is on.
func logExit(ctx context.Context, err error) {
	logger := log.DefaultLogger()
	if !logger.Enabled(ctx, log.LevelDebug) {
		return
	}
	logger.LogError(err)
	code := exitcode.DetermineExitCode(err)
	logger.Debug("exiting", "exit_code", code, "description", exitcode.GetExitCodeDescription(code))
}
