// Command retireplan-tui is an interactive viewer for one simulation run,
// grounded on the teacher's cmd/rpgo-tui/main.go entry point.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/retireplan/engine/internal/tui"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: retireplan-tui <plan-file>")
		os.Exit(1)
	}
	planPath := os.Args[1]

	if _, err := os.Stat(planPath); os.IsNotExist(err) {
		fmt.Printf("Error: plan file not found: %s\n", planPath)
		os.Exit(1)
	}

	model := tui.NewModel(planPath)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
