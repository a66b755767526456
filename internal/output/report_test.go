package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retireplan/engine/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *domain.PlanResult {
	return &domain.PlanResult{
		Summary: domain.Summary{
			SuccessProbability:  decimal.NewFromInt(1),
			MedianTerminalValue: decimal.NewFromInt(500000),
		},
		Yearly: []domain.YearResult{
			{
				Year:         2026,
				AgePrimary:   65,
				TargetSpend:  decimal.NewFromInt(50000),
				ActualSpend:  decimal.NewFromInt(50000),
				GrossIncome:  decimal.NewFromInt(60000),
				TaxesFederal: decimal.NewFromInt(5000),
				TaxesState:   decimal.Zero,
				NetSpendable: decimal.NewFromInt(55000),
				Shortfall:    decimal.Zero,
				Surplus:      decimal.NewFromInt(5000),
			},
		},
		AssumptionsUsed: domain.AssumptionsUsed{
			SimulationMode:          domain.ModeDeterministic,
			InflationPct:            decimal.NewFromInt(2),
			FederalEffectiveRatePct: decimal.NewFromInt(12),
			CapGainsRatePct:         decimal.NewFromInt(15),
			WithdrawalOrder:         domain.OrderTaxableFirst,
			RebalanceFrequency:      domain.RebalanceNone,
			Horizon:                 1,
			BaseCalendarYear:        2026,
		},
	}
}

func TestWriteReport_Console(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, sampleResult(), FormatConsole))
	out := buf.String()
	assert.Contains(t, out, "RETIREMENT PLAN SIMULATION")
	assert.Contains(t, out, "100.00%")
	assert.Contains(t, out, "2026 (age 65)")
}

func TestWriteReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, sampleResult(), FormatJSON))
	assert.Contains(t, buf.String(), `"summary"`)
}

func TestWriteReport_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, sampleResult(), FormatYAML))
	assert.Contains(t, buf.String(), "summary:")
}

func TestWriteReport_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, sampleResult(), FormatCSV))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Year")
	assert.Contains(t, lines[1], "2026")
}

func TestWriteReport_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := WriteReport(&buf, sampleResult(), Format("xml"))
	assert.Error(t, err)
}

func TestFormatCurrencyAndPercentage(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatCurrency(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "12.00%", FormatPercentage(decimal.NewFromInt(12)))
}
