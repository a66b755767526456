package simulation

import (
	"github.com/retireplan/engine/internal/domain"
	"github.com/shopspring/decimal"
)

// inflationRate returns rate(i): scenarioInflation[i] when present and
// in-range, else the plan's flat spending inflation rate (spec §4.1 step 0).
func inflationRate(state *domain.SimulationState, yearIndex int) decimal.Decimal {
	if yearIndex >= 0 && yearIndex < len(state.ScenarioInflation) {
		return state.ScenarioInflation[yearIndex]
	}
	return state.Plan.Spending.InflationPct
}

// advanceCumulativeInflation computes cumulativeInflationByYear[y] from
// [y-1] and appends it, maintaining the spec §9 prefix-product array.
// Must be called once per year, in order, starting at y=1 (index 0 is
// seeded to 1.0 by initializeState).
func advanceCumulativeInflation(state *domain.SimulationState, y int) {
	if y == 0 {
		return
	}
	prior := state.CumulativeInflationByYear[y-1]
	rate := inflationRate(state, y-1)
	factor := decimal.NewFromInt(1).Add(pctToFactor(rate))
	state.CumulativeInflationByYear = append(state.CumulativeInflationByYear, prior.Mul(factor))
}

// recomputeBaselineReturn recomputes the balance-weighted mean expected
// return across all accounts (spec §4.1 step 0).
func recomputeBaselineReturn(state *domain.SimulationState) {
	totalBalance := decimal.Zero
	weighted := decimal.Zero
	for _, a := range state.Accounts {
		if a.Balance.LessThanOrEqual(decimal.Zero) {
			continue
		}
		totalBalance = totalBalance.Add(a.Balance)
		weighted = weighted.Add(a.Balance.Mul(a.ExpectedReturnPct))
	}
	if totalBalance.LessThanOrEqual(decimal.Zero) {
		state.BaselineReturn = decimal.Zero
		return
	}
	state.BaselineReturn = weighted.Div(totalBalance)
}

func scenarioActiveForReturns(state *domain.SimulationState, y int) bool {
	return y >= 0 && y < len(state.ScenarioReturns)
}

// applyReturns executes step 2: growth is applied to every positive-balance
// account; cost basis is untouched (unrealized gains).
func applyReturns(state *domain.SimulationState, y int) {
	scenario := scenarioActiveForReturns(state, y)
	var scenarioRate decimal.Decimal
	if scenario {
		scenarioRate = state.ScenarioReturns[y]
	}
	for i := range state.Accounts {
		a := &state.Accounts[i]
		if a.Balance.LessThanOrEqual(decimal.Zero) {
			continue
		}
		var rate decimal.Decimal
		if scenario {
			rate = scenarioRate.Add(a.ExpectedReturnPct.Sub(state.BaselineReturn))
		} else {
			rate = a.ExpectedReturnPct
		}
		factor := decimal.NewFromInt(1).Add(pctToFactor(rate))
		a.Balance = a.Balance.Mul(factor)
		if a.Balance.LessThan(decimal.Zero) {
			a.Balance = decimal.Zero
		}
	}
}
