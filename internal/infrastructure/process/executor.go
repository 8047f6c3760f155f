// Package process executes the target program and captures its exit status.
package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/msa-monitor/msalaunch/internal/core/domain/launch"
	"github.com/sirupsen/logrus"
)

// Executor implements the ProcessExecutor port on top of os/exec. The target
// inherits the launcher's stdout and stderr so its own diagnostics reach the
// operator unchanged.
type Executor struct {
	stdout io.Writer
	stderr io.Writer
}

// NewExecutor creates an executor writing through to the launcher's console.
func NewExecutor() *Executor {
	return &Executor{stdout: os.Stdout, stderr: os.Stderr}
}

// NewExecutorWithOutput redirects the target's output, for tests.
func NewExecutorWithOutput(stdout, stderr io.Writer) *Executor {
	return &Executor{stdout: stdout, stderr: stderr}
}

// Run starts the command, waits for completion, and returns the exit status.
// An error is returned only when the process could not be started at all.
func (e *Executor) Run(ctx context.Context, cmd launch.Command) (launch.Result, error) {
	if err := cmd.IsValid(); err != nil {
		return launch.Result{}, fmt.Errorf("invalid command: %w", err)
	}

	execCmd := exec.CommandContext(ctx, cmd.Executable(), cmd.Args()...)
	execCmd.Dir = cmd.WorkingDir()
	execCmd.Env = buildEnvironment(cmd.Env())
	execCmd.Stdout = e.stdout
	execCmd.Stderr = e.stderr

	logrus.WithField("command", cmd.String()).Debug("starting target program")

	started := time.Now()
	err := execCmd.Run()
	result := launch.Result{StartedAt: started, FinishedAt: time.Now()}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return launch.Result{}, fmt.Errorf("failed to start %s: %w", cmd.Executable(), err)
	}

	return result, nil
}

// buildEnvironment layers the command's overrides over the inherited
// environment. An override with an empty value removes the variable.
func buildEnvironment(overrides map[string]string) []string {
	if len(overrides) == 0 {
		return os.Environ()
	}

	env := make([]string, 0, len(os.Environ())+len(overrides))
	for _, pair := range os.Environ() {
		key, _, _ := strings.Cut(pair, "=")
		if _, ok := overrides[key]; ok {
			continue
		}
		env = append(env, pair)
	}
	for key, value := range overrides {
		if value == "" {
			continue
		}
		env = append(env, fmt.Sprintf("%s=%s", key, value))
	}
	return env
}
