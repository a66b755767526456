package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/retireplan/engine/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sampleModel() Model {
	return Model{
		result: &domain.PlanResult{
			Summary: domain.Summary{
				SuccessProbability:  decimal.NewFromInt(1),
				MedianTerminalValue: decimal.NewFromInt(500000),
			},
			Yearly: []domain.YearResult{
				{Year: 2026, AgePrimary: 65},
				{Year: 2027, AgePrimary: 66},
				{Year: 2028, AgePrimary: 67},
			},
		},
		width:  80,
		height: 24,
	}
}

func TestHandleKeyPress_CursorMovesWithinBounds(t *testing.T) {
	m := sampleModel()

	next, _ := m.handleKeyPress(tea.KeyMsg{Type: tea.KeyDown})
	m2 := next.(Model)
	assert.Equal(t, 1, m2.cursor)

	next, _ = m2.handleKeyPress(tea.KeyMsg{Type: tea.KeyUp})
	m3 := next.(Model)
	assert.Equal(t, 0, m3.cursor)
}

func TestHandleKeyPress_CursorDoesNotGoNegative(t *testing.T) {
	m := sampleModel()
	next, _ := m.handleKeyPress(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, next.(Model).cursor)
}

func TestHandleKeyPress_CursorStopsAtLastYear(t *testing.T) {
	m := sampleModel()
	m.cursor = 2
	next, _ := m.handleKeyPress(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, next.(Model).cursor)
}

func TestHandleKeyPress_QuitReturnsQuitCmd(t *testing.T) {
	m := sampleModel()
	_, cmd := m.handleKeyPress(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd)
}

func TestView_RendersYearListAndDetail(t *testing.T) {
	m := sampleModel()
	out := m.View()
	assert.Contains(t, out, "2026")
	assert.Contains(t, out, "2027")
	assert.Contains(t, out, "RETIREMENT PLAN RESULT VIEWER")
}

func TestView_ShowsErrorWhenPresent(t *testing.T) {
	m := Model{err: assert.AnError}
	out := m.View()
	assert.Contains(t, out, "error:")
}

func TestView_ShowsLoadingBeforeResult(t *testing.T) {
	m := NewModel("some-plan.yaml")
	out := m.View()
	assert.Contains(t, out, "Loading")
}
