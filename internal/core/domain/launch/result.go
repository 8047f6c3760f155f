package launch

import "time"

// Result captures the outcome of a completed target run.
type Result struct {
	ExitCode   int
	StartedAt  time.Time
	FinishedAt time.Time
}

// Succeeded reports whether the target exited cleanly.
func (r Result) Succeeded() bool {
	return r.ExitCode == 0
}

// Duration returns the wall-clock runtime of the target.
func (r Result) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
