package cli

import (
	"github.com/spf13/cobra"
)

// newMonitorCommand creates the config-aware launch variant. It never pauses:
// configuration failures exit with status 1 immediately, which is what a task
// scheduler needs. Completed runs are recorded in the execution log;
// configuration failures are not.
func newMonitorCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "monitor",
		Short: "Load the run configuration and run the monitor",
		Long: `Monitor loads the configuration file, refuses to start while the Teams
webhook still has its placeholder value, executes the monitor, and appends a
timestamped completion line to the execution log.

A missing or incomplete configuration exits with status 1 before the monitor
is ever invoked. The monitor's own exit code is propagated verbatim.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newLaunchEnv(opts)
			if err != nil {
				reportFailure(err)
				return err
			}

			if err := env.service().RunConfigAware(cmd.Context()); err != nil {
				reportFailure(err)
				return err
			}
			return nil
		},
	}
}
