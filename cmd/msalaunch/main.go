package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/msa-monitor/msalaunch/internal/core/domain/launch"
	"github.com/msa-monitor/msalaunch/internal/infrastructure/console"
	"github.com/msa-monitor/msalaunch/internal/interfaces/cli"
)

// Overridden by ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Before any text output, so non-ASCII diagnostics render on Windows.
	console.EnableUTF8()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		fmt.Println("\nShutting down...")
		cancel()
	}()

	rootCmd := cli.NewRootCommand(version, commit, date)
	err := rootCmd.ExecuteContext(ctx)
	if err != nil && launch.KindOf(err) == launch.FailureUnknown {
		// Launch failures already printed their diagnostic; everything else
		// (flag errors, settings problems) surfaces here.
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(launch.ExitCode(err))
}
