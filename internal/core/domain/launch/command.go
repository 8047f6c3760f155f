package launch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Command represents the target invocation to be executed and supervised.
type Command struct {
	executable string
	args       []string
	workingDir string
	env        map[string]string
}

// NewCommand creates a new Command value object.
func NewCommand(executable string, args []string, workingDir string) (Command, error) {
	if executable == "" {
		return Command{}, fmt.Errorf("executable cannot be empty")
	}

	if workingDir == "" {
		var err error
		workingDir, err = os.Getwd()
		if err != nil {
			workingDir = "."
		}
	}
	if !filepath.IsAbs(workingDir) {
		if absDir, err := filepath.Abs(workingDir); err == nil {
			workingDir = absDir
		}
	}

	return Command{
		executable: executable,
		args:       append([]string(nil), args...),
		workingDir: workingDir,
		env:        make(map[string]string),
	}, nil
}

// Executable returns the command executable.
func (c Command) Executable() string {
	return c.executable
}

// Args returns a copy of the command arguments.
func (c Command) Args() []string {
	return append([]string(nil), c.args...)
}

// WorkingDir returns the working directory for the command.
func (c Command) WorkingDir() string {
	return c.workingDir
}

// Env returns a copy of the environment overrides.
func (c Command) Env() map[string]string {
	envCopy := make(map[string]string, len(c.env))
	for k, v := range c.env {
		envCopy[k] = v
	}
	return envCopy
}

// WithEnv returns a new Command with one additional environment override.
func (c Command) WithEnv(key, value string) Command {
	newEnv := c.Env()
	newEnv[key] = value

	return Command{
		executable: c.executable,
		args:       append([]string(nil), c.args...),
		workingDir: c.workingDir,
		env:        newEnv,
	}
}

// WithEnviron returns a new Command with all KEY=VALUE pairs applied as
// environment overrides.
func (c Command) WithEnviron(pairs []string) Command {
	cmd := c
	for _, pair := range pairs {
		if key, value, ok := strings.Cut(pair, "="); ok {
			cmd = cmd.WithEnv(key, value)
		}
	}
	return cmd
}

// String returns a string representation of the command.
func (c Command) String() string {
	if len(c.args) == 0 {
		return c.executable
	}
	return fmt.Sprintf("%s %s", c.executable, strings.Join(c.args, " "))
}

// IsValid validates the command structure.
func (c Command) IsValid() error {
	if c.executable == "" {
		return fmt.Errorf("executable cannot be empty")
	}
	if stat, err := os.Stat(c.workingDir); err != nil || !stat.IsDir() {
		return fmt.Errorf("working directory does not exist: %s", c.workingDir)
	}
	return nil
}
