package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultSettingsFile is looked up in the working directory when no explicit
// settings path is given.
const DefaultSettingsFile = "msalaunch.yaml"

// Settings overrides the launcher's filesystem layout. Every field is
// optional; zero values fall back to the historical layout of the batch
// launchers.
type Settings struct {
	VenvDir      string   `yaml:"venv_dir"`
	TargetScript string   `yaml:"target_script"`
	ConfigFile   string   `yaml:"config_file"`
	LogFile      string   `yaml:"log_file"`
	Interpreters []string `yaml:"interpreters"`
}

// DefaultSettings returns the layout the batch launchers used.
func DefaultSettings() Settings {
	return Settings{
		VenvDir:      "venv",
		TargetScript: "n8n_msa_monitor.py",
		ConfigFile:   "config.bat",
		LogFile:      "execution.log",
	}
}

// LoadSettings reads the settings file. With an empty path the default file
// in dir is tried and silently skipped when absent; an explicitly named file
// must exist. Relative paths are resolved against dir.
func LoadSettings(dir, path string) (Settings, error) {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, DefaultSettingsFile)
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}

	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return settings, nil
		}
		return Settings{}, fmt.Errorf("reading settings file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("parsing settings file %s: %w", path, err)
	}

	// Partial files keep the defaults for whatever they leave out.
	defaults := DefaultSettings()
	if settings.VenvDir == "" {
		settings.VenvDir = defaults.VenvDir
	}
	if settings.TargetScript == "" {
		settings.TargetScript = defaults.TargetScript
	}
	if settings.ConfigFile == "" {
		settings.ConfigFile = defaults.ConfigFile
	}
	if settings.LogFile == "" {
		settings.LogFile = defaults.LogFile
	}

	return settings, nil
}
