// Package python provides the interpreter and virtual-environment
// infrastructure behind the launch ports.
package python

import (
	"os/exec"
	"strings"

	"github.com/msa-monitor/msalaunch/internal/core/domain/launch"
	"github.com/sirupsen/logrus"
)

// DefaultInterpreters are the interpreter names tried in order when the
// settings file does not override them.
var DefaultInterpreters = []string{"python3", "python"}

// Locator resolves a Python interpreter from the search path.
type Locator struct {
	candidates []string
}

// NewLocator creates a locator trying the given interpreter names in order.
// An empty list falls back to DefaultInterpreters.
func NewLocator(candidates []string) *Locator {
	if len(candidates) == 0 {
		candidates = DefaultInterpreters
	}
	return &Locator{candidates: append([]string(nil), candidates...)}
}

// Locate returns the absolute path of the first candidate resolvable on the
// search path.
func (l *Locator) Locate() (string, error) {
	for _, name := range l.candidates {
		path, err := exec.LookPath(name)
		if err != nil {
			logrus.WithField("candidate", name).Debug("interpreter not on search path")
			continue
		}
		logrus.WithField("interpreter", path).Debug("resolved interpreter")
		return path, nil
	}

	return "", launch.NewError(launch.InterpreterNotFound,
		"no Python interpreter found on the search path (tried "+strings.Join(l.candidates, ", ")+")").
		WithAdvice("Install Python and make sure the interpreter is on your PATH.")
}
