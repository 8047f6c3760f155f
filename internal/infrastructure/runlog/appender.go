// Package runlog appends completion records to the execution log.
package runlog

import (
	"fmt"
	"os"
	"time"
)

// timestampLayout matches the date-and-time lines the batch launcher wrote.
const timestampLayout = "2006-01-02 15:04:05"

// Appender writes one free-text completion line per run. The file is opened
// in append mode on every write so concurrent launchers cannot truncate each
// other's records.
type Appender struct {
	path string
}

// NewAppender creates an appender for the execution log path.
func NewAppender(path string) *Appender {
	return &Appender{path: path}
}

// Path returns the execution log location.
func (a *Appender) Path() string {
	return a.path
}

// AppendCompletion records a finished run, success and failure alike.
func (a *Appender) AppendCompletion(at time.Time, exitCode int) error {
	f, err := os.OpenFile(a.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening execution log %s: %w", a.path, err)
	}
	defer f.Close()

	line := fmt.Sprintf("%s monitor run completed (exit %d)\n", at.Format(timestampLayout), exitCode)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("appending to execution log %s: %w", a.path, err)
	}
	return nil
}
