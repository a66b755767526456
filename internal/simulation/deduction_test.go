package simulation

import (
	"testing"

	"github.com/retireplan/engine/internal/domain"
	"github.com/retireplan/engine/internal/refdata"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestComputeStandardDeduction_CatchUpInflatesWithBase confirms the age-65+
// catch-up amount is inflated by the same cumulative factor as the base
// standard deduction, not added at its nominal value.
func TestComputeStandardDeduction_CatchUpInflatesWithBase(t *testing.T) {
	state := &domain.SimulationState{
		Plan:                      &domain.PlanInput{},
		CumulativeInflationByYear: []decimal.Decimal{d(1), d(1.10)},
	}
	phase := PhaseResult{FilingStatus: domain.FilingSingle, PrimaryAlive: true, AgePrimary: 70}

	base := refdata.StandardDeductions[string(domain.FilingSingle)]
	catchUp := refdata.ExtraDeductionSingle65Plus

	y0 := computeStandardDeduction(state, phase, 0)
	assert.True(t, y0.Equal(base.Add(catchUp)), "year 0 (inflation 1.0) should match nominal amounts, got %s", y0)

	y1 := computeStandardDeduction(state, phase, 1)
	expected := base.Mul(d(1.10)).Add(catchUp.Mul(d(1.10)))
	assert.True(t, y1.Equal(expected), "expected catch-up to inflate by the same 1.10 factor as the base, got %s want %s", y1, expected)
}
