// Package tui is a compact bubbletea viewer over one simulation run's
// year-by-year results, adapted from the teacher's internal/tui
// (model.go/styles.go/view.go/update.go) multi-scene scenario-comparison
// browser down to a single list-plus-detail pane.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/retireplan/engine/internal/config"
	"github.com/retireplan/engine/internal/domain"
	"github.com/retireplan/engine/internal/simulation"
)

var (
	keyQuit = key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"))
	keyUp   = key.NewBinding(key.WithKeys("up", "k"))
	keyDown = key.NewBinding(key.WithKeys("down", "j"))
)

// Model is the entire application state for the result viewer.
type Model struct {
	width  int
	height int

	planPath string
	result   *domain.PlanResult
	cursor   int

	loading bool
	err     error
}

// NewModel creates a model that will load and simulate planPath on Init.
func NewModel(planPath string) Model {
	return Model{
		planPath: planPath,
		loading:  true,
		width:    80,
		height:   24,
	}
}

func (m Model) Init() tea.Cmd {
	return runSimulationCmd(m.planPath)
}

func runSimulationCmd(path string) tea.Cmd {
	return func() tea.Msg {
		plan, err := config.LoadPlanInput(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		result, err := simulation.Simulate(plan)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ResultLoadedMsg{Result: result}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ResultLoadedMsg:
		m.loading = false
		m.result = msg.Result
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keyQuit):
		return m, tea.Quit
	case key.Matches(msg, keyUp):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, keyDown):
		if m.result != nil && m.cursor < len(m.result.Yearly)-1 {
			m.cursor++
		}
		return m, nil
	}
	return m, nil
}
