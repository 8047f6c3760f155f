// Package services orchestrates the launch state machines over the ports.
package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/msa-monitor/msalaunch/internal/core/domain/launch"
	"github.com/msa-monitor/msalaunch/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// Dependencies wires the launch service to its infrastructure.
type Dependencies struct {
	Locator     ports.InterpreterLocator
	Environment ports.EnvironmentProvisioner
	Config      ports.ConfigLoader
	Executor    ports.ProcessExecutor
	RunLog      ports.RunLogger
	Out         io.Writer
}

// LaunchService runs the two launch variants. Every step either succeeds or
// terminates the whole launch; there are no retries.
type LaunchService struct {
	deps         Dependencies
	workDir      string
	targetScript string
}

// NewLaunchService creates a launch service for the given working directory
// and target script.
func NewLaunchService(deps Dependencies, workDir, targetScript string) *LaunchService {
	return &LaunchService{deps: deps, workDir: workDir, targetScript: targetScript}
}

// RunPlain executes the plain variant: interpreter check, virtual-environment
// bootstrap, activation, then the target program. The returned error carries
// the failure kind and the launcher's exit code.
func (s *LaunchService) RunPlain(ctx context.Context) error {
	fmt.Fprintln(s.deps.Out, "Checking Python interpreter...")
	interpreter, err := s.deps.Locator.Locate()
	if err != nil {
		return err
	}
	fmt.Fprintf(s.deps.Out, "Using interpreter: %s\n", interpreter)

	fmt.Fprintln(s.deps.Out, "Preparing virtual environment...")
	if err := s.deps.Environment.Ensure(ctx, interpreter); err != nil {
		return err
	}

	overrides, err := s.deps.Environment.Activate()
	if err != nil {
		return err
	}

	cmd, err := s.targetCommand(s.deps.Environment.Interpreter(), overrides, nil)
	if err != nil {
		return err
	}

	return s.runAndReport(ctx, cmd, false)
}

// RunConfigAware executes the config-aware variant: load the configuration,
// reject the documented placeholder, run the target, and append a completion
// line to the execution log. Configuration failures exit with status 1 and
// never reach the target program.
func (s *LaunchService) RunConfigAware(ctx context.Context) error {
	fmt.Fprintf(s.deps.Out, "Loading configuration from %s...\n", s.deps.Config.Path())
	cfg, err := s.deps.Config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	interpreter, err := s.deps.Locator.Locate()
	if err != nil {
		return err
	}

	cmd, err := s.targetCommand(interpreter, nil, cfg.Environ())
	if err != nil {
		return err
	}

	return s.runAndReport(ctx, cmd, true)
}

// targetCommand assembles the invocation of the target script.
func (s *LaunchService) targetCommand(interpreter string, overrides map[string]string, environ []string) (launch.Command, error) {
	cmd, err := launch.NewCommand(interpreter, []string{s.targetScript}, s.workDir)
	if err != nil {
		return launch.Command{}, launch.WrapError(launch.TargetExecutionFailed, "assembling target command", err)
	}
	for key, value := range overrides {
		cmd = cmd.WithEnv(key, value)
	}
	return cmd.WithEnviron(environ), nil
}

// runAndReport runs the target to completion, surfaces its exit status, and
// in the config-aware variant records the run in the execution log.
func (s *LaunchService) runAndReport(ctx context.Context, cmd launch.Command, logCompletion bool) error {
	fmt.Fprintf(s.deps.Out, "Starting %s...\n", s.targetScript)

	result, err := s.deps.Executor.Run(ctx, cmd)
	if err != nil {
		return launch.WrapError(launch.TargetExecutionFailed, "running target program", err)
	}

	if logCompletion {
		if logErr := s.deps.RunLog.AppendCompletion(time.Now(), result.ExitCode); logErr != nil {
			// The run itself already finished; a broken log must not change
			// the reported outcome.
			logrus.WithError(logErr).Warn("could not append to execution log")
		}
	}

	logrus.WithFields(logrus.Fields{
		"exit_code": result.ExitCode,
		"duration":  result.Duration().Round(time.Millisecond),
	}).Debug("target program finished")

	if !result.Succeeded() {
		fmt.Fprintf(s.deps.Out, "Target program reported an error (exit code %d).\n", result.ExitCode)
		fmt.Fprintln(s.deps.Out, "Monitor run finished.")
		return launch.NewTargetError(result.ExitCode)
	}

	fmt.Fprintln(s.deps.Out, "Monitor run finished.")
	return nil
}
