package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/retireplan/engine/internal/output"
)

func (m Model) View() string {
	if m.err != nil {
		return AppStyle.Render(ErrorStyle.Render(fmt.Sprintf("error: %v", m.err)) + "\n\npress q to quit")
	}
	if m.loading || m.result == nil {
		return AppStyle.Render(SubtitleStyle.Render("Loading " + m.planPath + "..."))
	}

	title := TitleStyle.Render("RETIREMENT PLAN RESULT VIEWER")
	subtitle := SubtitleStyle.Render(fmt.Sprintf("Success probability: %s  Median terminal value: %s",
		output.FormatPercentage(m.result.Summary.SuccessProbability.Shift(2)),
		output.FormatCurrency(m.result.Summary.MedianTerminalValue)))

	listWidth := m.width / 3
	if listWidth < 20 {
		listWidth = 20
	}
	list := m.renderYearList(listWidth)
	detail := m.renderDetail(m.width - listWidth - 6)

	body := lipgloss.JoinHorizontal(lipgloss.Top, BorderStyle.Width(listWidth).Render(list), ActiveBorderStyle.Render(detail))

	status := StatusBarStyle.Render("↑/↓ navigate years  •  q quit")

	return AppStyle.Render(strings.Join([]string{title, subtitle, "", body, "", status}, "\n"))
}

func (m Model) renderYearList(width int) string {
	var lines []string
	for i, y := range m.result.Yearly {
		label := fmt.Sprintf("%d (age %d)", y.Year, y.AgePrimary)
		if i == m.cursor {
			lines = append(lines, SelectedItemStyle.Render("▸ "+label))
		} else {
			lines = append(lines, UnselectedItemStyle.Render("  "+label))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderDetail(width int) string {
	if m.cursor >= len(m.result.Yearly) {
		return ""
	}
	y := m.result.Yearly[m.cursor]

	row := func(label string, value string) string {
		return MetricLabelStyle.Render(label+": ") + MetricValueStyle.Render(value)
	}

	lines := []string{
		fmt.Sprintf("Year %d — age %d", y.Year, y.AgePrimary),
		"",
		row("Target spend", output.FormatCurrency(y.TargetSpend)),
		row("Actual spend", output.FormatCurrency(y.ActualSpend)),
		row("Gross income", output.FormatCurrency(y.GrossIncome)),
		row("Federal tax", output.FormatCurrency(y.TaxesFederal)),
		row("State tax", output.FormatCurrency(y.TaxesState)),
		row("Net spendable", output.FormatCurrency(y.NetSpendable)),
	}
	if y.Shortfall.IsPositive() {
		lines = append(lines, row("Shortfall", output.FormatCurrency(y.Shortfall)))
	}
	if y.Surplus.IsPositive() {
		lines = append(lines, row("Surplus", output.FormatCurrency(y.Surplus)))
	}
	lines = append(lines, "", "Withdrawals by account:")
	for acct, amt := range y.WithdrawalsByAccount {
		lines = append(lines, row("  "+acct, output.FormatCurrency(amt)))
	}
	lines = append(lines, "", "Ending balance by account:")
	for acct, amt := range y.EndBalanceByAccount {
		lines = append(lines, row("  "+acct, output.FormatCurrency(amt)))
	}
	if y.ConvergenceWarning {
		lines = append(lines, "", ErrorStyle.Render("convergence warning"))
	}

	return strings.Join(lines, "\n")
}
