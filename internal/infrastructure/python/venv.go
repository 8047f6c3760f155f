package python

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/msa-monitor/msalaunch/internal/core/domain/launch"
	"github.com/sirupsen/logrus"
)

// Provisioner creates and activates a virtual environment at a fixed
// directory. Creation happens at most once; an existing directory is reused
// without modification.
type Provisioner struct {
	dir    string
	create func(ctx context.Context, interpreter, dir string) error
}

// NewProvisioner creates a provisioner for the environment directory.
func NewProvisioner(dir string) *Provisioner {
	return &Provisioner{dir: dir, create: createVenv}
}

// NewProvisionerWithCreate substitutes the creation step, for tests.
func NewProvisionerWithCreate(dir string, create func(ctx context.Context, interpreter, dir string) error) *Provisioner {
	return &Provisioner{dir: dir, create: create}
}

// Dir returns the environment directory.
func (p *Provisioner) Dir() string {
	return p.dir
}

// Ensure creates the virtual environment if the directory does not exist.
func (p *Provisioner) Ensure(ctx context.Context, interpreter string) error {
	if info, err := os.Stat(p.dir); err == nil {
		if !info.IsDir() {
			return launch.NewError(launch.EnvironmentSetupFailed,
				fmt.Sprintf("%s exists but is not a directory", p.dir)).
				WithAdvice("Remove the file blocking the environment directory and run again.")
		}
		logrus.WithField("dir", p.dir).Debug("reusing existing virtual environment")
		return nil
	}

	logrus.WithField("dir", p.dir).Debug("creating virtual environment")
	if err := p.create(ctx, interpreter, p.dir); err != nil {
		return launch.WrapError(launch.EnvironmentSetupFailed,
			fmt.Sprintf("creating virtual environment at %s", p.dir), err).
			WithAdvice("Check that the interpreter ships the venv module and that the directory is writable.")
	}
	return nil
}

// Activate verifies the activation entry point and returns the environment
// overrides that redirect interpreter resolution into the environment.
func (p *Provisioner) Activate() (map[string]string, error) {
	entry := p.ActivationEntryPoint()
	if _, err := os.Stat(entry); err != nil {
		return nil, launch.NewError(launch.EnvironmentCorrupt,
			fmt.Sprintf("activation entry point %s is missing", entry)).
			WithAdvice(fmt.Sprintf("Delete %s and run again to recreate the environment.", p.dir))
	}

	absDir, err := filepath.Abs(p.dir)
	if err != nil {
		absDir = p.dir
	}
	binDir := filepath.Dir(entry)
	if abs, err := filepath.Abs(binDir); err == nil {
		binDir = abs
	}

	// Same effect as sourcing the activation script: the environment's bin
	// directory wins interpreter resolution, and PYTHONHOME must not leak in.
	return map[string]string{
		"VIRTUAL_ENV": absDir,
		"PATH":        binDir + string(os.PathListSeparator) + os.Getenv("PATH"),
		"PYTHONHOME":  "",
	}, nil
}

// Interpreter returns the path of the interpreter inside the environment.
func (p *Provisioner) Interpreter() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(p.dir, "Scripts", "python.exe")
	}
	return filepath.Join(p.dir, "bin", "python")
}

// ActivationEntryPoint returns the platform path of the activation script.
func (p *Provisioner) ActivationEntryPoint() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(p.dir, "Scripts", "activate.bat")
	}
	return filepath.Join(p.dir, "bin", "activate")
}

func createVenv(ctx context.Context, interpreter, dir string) error {
	cmd := exec.CommandContext(ctx, interpreter, "-m", "venv", dir)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
