// Package console handles operator-facing output: styled diagnostics, the
// acknowledgment pause, and console encoding setup.
package console

import "github.com/charmbracelet/lipgloss"

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	failureStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	adviceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Heading renders a section heading.
func Heading(s string) string { return headingStyle.Render(s) }

// Success renders a passed step.
func Success(s string) string { return successStyle.Render("✅ " + s) }

// Failure renders a failed step.
func Failure(s string) string { return failureStyle.Render("❌ " + s) }

// Advice renders a dimmed remediation hint.
func Advice(s string) string { return adviceStyle.Render(s) }
