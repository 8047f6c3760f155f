package launch

import (
	"errors"
	"fmt"
)

// FailureKind classifies the terminal failures of a launch. Every kind maps
// to exactly one branch of the launch state machine; none are retried.
type FailureKind int

const (
	FailureUnknown FailureKind = iota
	InterpreterNotFound
	EnvironmentSetupFailed
	EnvironmentCorrupt
	ConfigurationMissing
	ConfigurationIncomplete
	TargetExecutionFailed
)

// String returns the canonical name of the failure kind.
func (k FailureKind) String() string {
	switch k {
	case InterpreterNotFound:
		return "InterpreterNotFound"
	case EnvironmentSetupFailed:
		return "EnvironmentSetupFailed"
	case EnvironmentCorrupt:
		return "EnvironmentCorrupt"
	case ConfigurationMissing:
		return "ConfigurationMissing"
	case ConfigurationIncomplete:
		return "ConfigurationIncomplete"
	case TargetExecutionFailed:
		return "TargetExecutionFailed"
	default:
		return "Unknown"
	}
}

// Error is the terminal error of a launch attempt. Code is the exit status
// the launcher itself should terminate with; for TargetExecutionFailed it is
// the target program's own exit code, otherwise 1.
type Error struct {
	Kind   FailureKind
	Code   int
	Advice string
	msg    string
	cause  error
}

// NewError creates a launch error of the given kind with exit code 1.
func NewError(kind FailureKind, msg string) *Error {
	return &Error{Kind: kind, Code: 1, msg: msg}
}

// WrapError creates a launch error wrapping an underlying cause.
func WrapError(kind FailureKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Code: 1, msg: msg, cause: cause}
}

// NewTargetError creates a TargetExecutionFailed error carrying the target
// program's exit code as the launcher's own.
func NewTargetError(exitCode int) *Error {
	return &Error{
		Kind: TargetExecutionFailed,
		Code: exitCode,
		msg:  fmt.Sprintf("target program exited with code %d", exitCode),
	}
}

// WithAdvice attaches an operator-facing remediation hint.
func (e *Error) WithAdvice(advice string) *Error {
	e.Advice = advice
	return e
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// KindOf extracts the failure kind from an error chain, or FailureUnknown
// when err is not a launch error.
func KindOf(err error) FailureKind {
	var le *Error
	if errors.As(err, &le) {
		return le.Kind
	}
	return FailureUnknown
}

// ExitCode maps an error chain to the launcher's process exit status:
// 0 for nil, the embedded code for launch errors, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var le *Error
	if errors.As(err, &le) {
		return le.Code
	}
	return 1
}
