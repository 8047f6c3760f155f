package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/msa-monitor/msalaunch/internal/application/services"
	"github.com/msa-monitor/msalaunch/internal/infrastructure/config"
	"github.com/msa-monitor/msalaunch/internal/infrastructure/process"
	"github.com/msa-monitor/msalaunch/internal/infrastructure/python"
	"github.com/msa-monitor/msalaunch/internal/infrastructure/runlog"
)

// launchEnv holds the resolved settings and the concrete infrastructure for
// one invocation. All relative layout paths are resolved against the working
// directory so the launcher behaves the same wherever it is started from.
type launchEnv struct {
	workDir     string
	settings    config.Settings
	locator     *python.Locator
	provisioner *python.Provisioner
	loader      *config.FileLoader
	executor    *process.Executor
	runLog      *runlog.Appender
}

// newLaunchEnv resolves the working directory, loads the settings file, and
// builds the infrastructure.
func newLaunchEnv(opts *rootOptions) (*launchEnv, error) {
	workDir := opts.dir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
	}
	workDir, err := filepath.Abs(workDir)
	if err != nil {
		return nil, fmt.Errorf("resolving working directory: %w", err)
	}

	settings, err := config.LoadSettings(workDir, opts.settingsPath)
	if err != nil {
		return nil, err
	}

	resolve := func(path string) string {
		if filepath.IsAbs(path) {
			return path
		}
		return filepath.Join(workDir, path)
	}

	return &launchEnv{
		workDir:     workDir,
		settings:    settings,
		locator:     python.NewLocator(settings.Interpreters),
		provisioner: python.NewProvisioner(resolve(settings.VenvDir)),
		loader:      config.NewFileLoader(resolve(settings.ConfigFile)),
		executor:    process.NewExecutor(),
		runLog:      runlog.NewAppender(resolve(settings.LogFile)),
	}, nil
}

// targetScriptPath returns the absolute path of the target program.
func (e *launchEnv) targetScriptPath() string {
	if filepath.IsAbs(e.settings.TargetScript) {
		return e.settings.TargetScript
	}
	return filepath.Join(e.workDir, e.settings.TargetScript)
}

// service assembles the launch service over this environment.
func (e *launchEnv) service() *services.LaunchService {
	deps := services.Dependencies{
		Locator:     e.locator,
		Environment: e.provisioner,
		Config:      e.loader,
		Executor:    e.executor,
		RunLog:      e.runLog,
		Out:         os.Stdout,
	}
	return services.NewLaunchService(deps, e.workDir, e.settings.TargetScript)
}
