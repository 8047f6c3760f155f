package cli

import (
	"github.com/msa-monitor/msalaunch/internal/infrastructure/console"
	"github.com/spf13/cobra"
)

// newRunCommand creates the plain launch variant: bootstrap the virtual
// environment and run the monitor. Interactive by default — every outcome
// waits for operator acknowledgment so a double-clicked window cannot close
// before its message is read.
func newRunCommand(opts *rootOptions) *cobra.Command {
	var nonInteractive bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Bootstrap the virtual environment and run the monitor",
		Long: `Run verifies the Python interpreter, creates the virtual environment on
first use (an existing one is reused untouched), checks the activation entry
point, and executes the monitor inside the environment.

Every failure halts the launch with a diagnostic; nothing is retried.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ack := console.NewAcknowledger(!nonInteractive)
			defer ack.WaitForAck()

			env, err := newLaunchEnv(opts)
			if err != nil {
				reportFailure(err)
				return err
			}

			if err := env.service().RunPlain(cmd.Context()); err != nil {
				reportFailure(err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Do not wait for operator acknowledgment (for scheduled execution)")

	return cmd
}
