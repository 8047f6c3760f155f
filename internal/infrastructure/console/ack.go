package console

import (
	"bufio"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Acknowledger blocks until the operator presses a key, so a launcher window
// opened by double-click cannot close before its message is read. A disabled
// acknowledger (non-interactive mode) returns immediately.
type Acknowledger struct {
	enabled bool
}

// NewAcknowledger creates an acknowledger. Pass enabled=false for automated
// contexts such as scheduled execution.
func NewAcknowledger(enabled bool) *Acknowledger {
	return &Acknowledger{enabled: enabled}
}

// WaitForAck blocks until any key is pressed.
func (a *Acknowledger) WaitForAck() {
	if !a.enabled {
		return
	}

	if info, err := os.Stdin.Stat(); err != nil || info.Mode()&os.ModeCharDevice == 0 {
		// Not a terminal; a raw-mode key read cannot work. Take a line.
		fmt.Println("Press Enter to continue...")
		bufio.NewReader(os.Stdin).ReadString('\n')
		return
	}

	program := tea.NewProgram(ackModel{})
	if _, err := program.Run(); err != nil {
		fmt.Println("Press Enter to continue...")
		bufio.NewReader(os.Stdin).ReadString('\n')
	}
}

type ackModel struct{}

func (m ackModel) Init() tea.Cmd {
	return nil
}

func (m ackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return m, tea.Quit
	}
	return m, nil
}

func (m ackModel) View() string {
	return Advice("Press any key to continue...") + "\n"
}
