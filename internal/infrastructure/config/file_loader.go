// Package config loads the launcher settings and the run configuration
// handed to the target program.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/msa-monitor/msalaunch/internal/core/domain/launch"
	"github.com/sirupsen/logrus"
)

// FileLoader reads KEY=VALUE declarations from the configuration file. Both
// batch-style files ("set NAME=value" lines) and plain dotenv files are
// accepted, since operators carried both formats over time.
type FileLoader struct {
	path string
}

// NewFileLoader creates a loader for the given configuration file path.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// Path returns the location the loader reads from.
func (l *FileLoader) Path() string {
	return l.path
}

// Load parses the configuration file into a RunConfig. A missing file aborts
// the launch with ConfigurationMissing.
func (l *FileLoader) Load() (launch.RunConfig, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return launch.RunConfig{}, launch.NewError(launch.ConfigurationMissing,
				fmt.Sprintf("configuration file %s not found", l.path)).
				WithAdvice(fmt.Sprintf("Copy the sample configuration to %s and fill in your webhook URL.", l.path))
		}
		return launch.RunConfig{}, launch.WrapError(launch.ConfigurationMissing,
			fmt.Sprintf("reading configuration file %s", l.path), err)
	}

	values, err := godotenv.Unmarshal(normalize(string(data)))
	if err != nil {
		return launch.RunConfig{}, launch.WrapError(launch.ConfigurationIncomplete,
			fmt.Sprintf("parsing configuration file %s", l.path), err)
	}

	logrus.WithFields(logrus.Fields{"path": l.path, "keys": len(values)}).
		Debug("configuration loaded")
	return launch.NewRunConfig(values), nil
}

// normalize strips batch syntax so the remaining lines are plain KEY=VALUE
// declarations: "set NAME=value" loses its prefix, batch comments and
// directives ("rem", "::", "@echo off", "chcp") are dropped.
func normalize(content string) string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		lower := strings.ToLower(line)

		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			out = append(out, line)
			continue
		case strings.HasPrefix(lower, "rem ") || lower == "rem" || strings.HasPrefix(line, "::"):
			continue
		case strings.HasPrefix(line, "@") || strings.HasPrefix(lower, "chcp ") || strings.HasPrefix(lower, "echo "):
			continue
		}

		if strings.HasPrefix(lower, "set ") {
			line = strings.TrimSpace(line[len("set "):])
		}
		if !strings.Contains(line, "=") {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
