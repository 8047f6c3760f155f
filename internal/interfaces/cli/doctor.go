package cli

import (
	"fmt"
	"os"

	"github.com/msa-monitor/msalaunch/internal/infrastructure/console"
	"github.com/spf13/cobra"
)

// newDoctorCommand creates the preflight command: every check the launch
// variants perform, without executing the monitor and without creating
// anything.
func newDoctorCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check interpreter, environment, and configuration without launching",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newLaunchEnv(opts)
			if err != nil {
				reportFailure(err)
				return err
			}
			return runDoctor(env)
		},
	}
}

func runDoctor(env *launchEnv) error {
	fmt.Println(console.Heading("msalaunch preflight"))
	fmt.Printf("Working directory: %s\n\n", env.workDir)

	failures := 0
	fail := func(msg, advice string) {
		failures++
		fmt.Println(console.Failure(msg))
		if advice != "" {
			fmt.Println(console.Advice(advice))
		}
	}

	if interpreter, err := env.locator.Locate(); err != nil {
		fail("Python interpreter not found on the search path",
			"Install Python and make sure the interpreter is on your PATH.")
	} else {
		fmt.Println(console.Success("Python interpreter: " + interpreter))
	}

	if _, err := os.Stat(env.provisioner.Dir()); os.IsNotExist(err) {
		fmt.Println(console.Success("Virtual environment: will be created on first run"))
	} else if _, err := os.Stat(env.provisioner.ActivationEntryPoint()); err != nil {
		fail("Virtual environment exists but its activation entry point is missing",
			fmt.Sprintf("Delete %s and run again to recreate the environment.", env.provisioner.Dir()))
	} else {
		fmt.Println(console.Success("Virtual environment: " + env.provisioner.Dir()))
	}

	if _, err := os.Stat(env.targetScriptPath()); err != nil {
		fail("Target script "+env.targetScriptPath()+" not found",
			"Place the monitor program next to the launcher or point target_script at it.")
	} else {
		fmt.Println(console.Success("Target script: " + env.targetScriptPath()))
	}

	if cfg, err := env.loader.Load(); err != nil {
		fail("Configuration: "+err.Error(), "")
	} else if err := cfg.Validate(); err != nil {
		fail("Configuration: "+err.Error(), "")
	} else {
		fmt.Println(console.Success("Configuration: " + env.loader.Path()))
	}

	fmt.Println()
	if failures > 0 {
		return fmt.Errorf("%d preflight check(s) failed", failures)
	}
	fmt.Println(console.Success("All preflight checks passed"))
	return nil
}
