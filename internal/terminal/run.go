package terminal

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ziadkadry99/camino/internal/shell"
)

// Run starts the terminal UI over sh and blocks until the user quits.
// Swaps of the content region are forwarded to the program; Send runs on its
// own goroutine because swaps also happen inside Update.
func Run(sh *shell.Shell, style string) error {
	p := tea.NewProgram(New(sh, style), tea.WithAltScreen())

	cancel := sh.Region().Subscribe(func(v shell.View) {
		go p.Send(refreshMsg{view: v})
	})
	defer cancel()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running terminal ui: %w", err)
	}
	return nil
}
