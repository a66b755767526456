// Package output renders a PlanResult in the formats a caller asks for,
// grounded on the teacher's internal/output/report.go ReportGenerator.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/retireplan/engine/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Format is a supported report output format.
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatCSV     Format = "csv"
)

// GenerateReport renders result to stdout in the named format, grounded on
// the teacher's GenerateReport/format-switch shape.
func GenerateReport(result *domain.PlanResult, format string) error {
	return WriteReport(os.Stdout, result, Format(format))
}

// WriteReport renders result in format to w.
func WriteReport(w io.Writer, result *domain.PlanResult, format Format) error {
	switch format {
	case FormatConsole, "":
		return writeConsoleReport(w, result)
	case FormatJSON:
		return writeJSONReport(w, result)
	case FormatYAML:
		return writeYAMLReport(w, result)
	case FormatCSV:
		return writeCSVReport(w, result)
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

func writeConsoleReport(w io.Writer, result *domain.PlanResult) error {
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintln(w, "RETIREMENT PLAN SIMULATION - RESULTS")
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "SUMMARY")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "Success Probability: %s\n", FormatPercentage(result.Summary.SuccessProbability.Shift(2)))
	fmt.Fprintf(w, "Median Terminal Value: %s\n", FormatCurrency(result.Summary.MedianTerminalValue))
	if result.Summary.WorstCaseShortfall != nil {
		fmt.Fprintf(w, "Worst-Case Shortfall: %s\n", FormatCurrency(*result.Summary.WorstCaseShortfall))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "ASSUMPTIONS")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	a := result.AssumptionsUsed
	fmt.Fprintf(w, "Simulation Mode: %s\n", a.SimulationMode)
	fmt.Fprintf(w, "Inflation: %s\n", FormatPercentage(a.InflationPct))
	fmt.Fprintf(w, "Federal Effective Rate: %s\n", FormatPercentage(a.FederalEffectiveRatePct))
	fmt.Fprintf(w, "Cap Gains Rate: %s\n", FormatPercentage(a.CapGainsRatePct))
	fmt.Fprintf(w, "Withdrawal Order: %s\n", a.WithdrawalOrder)
	fmt.Fprintf(w, "Rebalance Frequency: %s\n", a.RebalanceFrequency)
	fmt.Fprintf(w, "Guardrails Enabled: %t\n", a.GuardrailsEnabled)
	fmt.Fprintf(w, "Horizon: %d years from %d\n", a.Horizon, a.BaseCalendarYear)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "YEAR-BY-YEAR")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	for _, y := range result.Yearly {
		fmt.Fprintf(w, "%d (age %d): spend=%s gross=%s taxes=%s net=%s",
			y.Year, y.AgePrimary, FormatCurrency(y.ActualSpend), FormatCurrency(y.GrossIncome),
			FormatCurrency(y.TaxesFederal.Add(y.TaxesState)), FormatCurrency(y.NetSpendable))
		if y.Shortfall.IsPositive() {
			fmt.Fprintf(w, " SHORTFALL=%s", FormatCurrency(y.Shortfall))
		}
		if y.ConvergenceWarning {
			fmt.Fprint(w, " [convergence warning]")
		}
		fmt.Fprintln(w)
	}

	return nil
}

func writeJSONReport(w io.Writer, result *domain.PlanResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func writeYAMLReport(w io.Writer, result *domain.PlanResult) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(result)
}

func writeCSVReport(w io.Writer, result *domain.PlanResult) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{
		"Year", "AgePrimary", "TargetSpend", "ActualSpend", "GrossIncome",
		"TaxesFederal", "TaxesState", "NetSpendable", "Shortfall", "Surplus",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, y := range result.Yearly {
		row := []string{
			strconv.Itoa(y.Year),
			strconv.Itoa(y.AgePrimary),
			y.TargetSpend.StringFixed(2),
			y.ActualSpend.StringFixed(2),
			y.GrossIncome.StringFixed(2),
			y.TaxesFederal.StringFixed(2),
			y.TaxesState.StringFixed(2),
			y.NetSpendable.StringFixed(2),
			y.Shortfall.StringFixed(2),
			y.Surplus.StringFixed(2),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return nil
}

// FormatCurrency formats a decimal as currency.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatPercentage formats a decimal as a percentage.
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}
