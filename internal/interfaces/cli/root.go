// Package cli wires the launcher's subcommands.
package cli

import (
	"errors"
	"fmt"

	"github.com/msa-monitor/msalaunch/internal/core/domain/launch"
	"github.com/msa-monitor/msalaunch/internal/infrastructure/console"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by all subcommands.
type rootOptions struct {
	dir          string
	settingsPath string
	debug        bool
}

// NewRootCommand builds the base command with its subcommands.
func NewRootCommand(version, commit, date string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "msalaunch",
		Short: "Bootstrap launcher for the MSA navigation-warning monitor",
		Long: `msalaunch prepares the runtime environment for the MSA navigation-warning
monitor and then hands control to it: it verifies the Python interpreter,
creates or reuses the virtual environment, optionally loads and validates the
run configuration, executes n8n_msa_monitor.py, and surfaces its exit status.

The monitor itself (scraping, Teams delivery, cadence) is an external program;
msalaunch only gets it off the ground.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.debug {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.WarnLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.dir, "dir", "", "Working directory holding the monitor layout (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&opts.settingsPath, "settings", "", "Launcher settings file (default: msalaunch.yaml in the working directory)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newRunCommand(opts))
	rootCmd.AddCommand(newMonitorCommand(opts))
	rootCmd.AddCommand(newDoctorCommand(opts))

	return rootCmd
}

// reportFailure prints the operator-facing diagnostic for a launch error.
// Non-launch errors are left for main to print once.
func reportFailure(err error) {
	var le *launch.Error
	if !errors.As(err, &le) {
		return
	}
	fmt.Println(console.Failure(err.Error()))
	if le.Advice != "" {
		fmt.Println(console.Advice(le.Advice))
	}
}
