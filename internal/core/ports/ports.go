// Package ports defines the boundaries between the launch orchestration and
// the infrastructure that touches the operating system.
package ports

import (
	"context"
	"time"

	"github.com/msa-monitor/msalaunch/internal/core/domain/launch"
)

// InterpreterLocator resolves the Python interpreter on the search path.
type InterpreterLocator interface {
	// Locate returns the absolute path of the first resolvable interpreter,
	// or an InterpreterNotFound launch error.
	Locate() (string, error)
}

// EnvironmentProvisioner manages the isolated runtime environment.
type EnvironmentProvisioner interface {
	// Ensure creates the environment if it does not exist yet. A pre-existing
	// environment is reused without modification.
	Ensure(ctx context.Context, interpreter string) error

	// Activate verifies the activation entry point and returns the
	// environment overrides that redirect interpreter resolution into the
	// isolated environment.
	Activate() (map[string]string, error)

	// Interpreter returns the path of the interpreter inside the isolated
	// environment. Only meaningful after a successful Activate.
	Interpreter() string
}

// ConfigLoader reads the run configuration from its file.
type ConfigLoader interface {
	// Load parses the configuration file into a RunConfig. A missing file is
	// a ConfigurationMissing launch error.
	Load() (launch.RunConfig, error)

	// Path returns the location the loader reads from.
	Path() string
}

// ProcessExecutor runs the target program to completion.
type ProcessExecutor interface {
	// Run starts the command, waits for it, and returns its exit status. An
	// error is returned only when the process could not be started.
	Run(ctx context.Context, cmd launch.Command) (launch.Result, error)
}

// RunLogger records completed runs in the execution log.
type RunLogger interface {
	AppendCompletion(at time.Time, exitCode int) error
}

// Acknowledger blocks until the operator confirms having read the console.
type Acknowledger interface {
	WaitForAck()
}
