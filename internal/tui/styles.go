package tui

import "github.com/charmbracelet/lipgloss"

// Color palette, trimmed from the teacher's broader scenario-comparison
// palette down to what a single-pane year browser needs.
var (
	ColorPrimary = lipgloss.Color("#00D4AA")
	ColorMuted   = lipgloss.Color("#565F89")
	ColorBorder  = lipgloss.Color("#414868")
	ColorDanger  = lipgloss.Color("#EF4444")
	ColorSuccess = lipgloss.Color("#10B981")
)

var (
	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			PaddingBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C0CAF5")).
			Background(ColorBorder).
			Padding(0, 1)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(1, 2)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true).
				PaddingLeft(1)

	UnselectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				PaddingLeft(1)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Bold(true)

	MetricValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#C0CAF5")).
				Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDanger)
)
