package simulation

import (
	"github.com/retireplan/engine/internal/domain"
	"github.com/shopspring/decimal"
)

// guardrailCeilingMultiple is the Guyton-Klinger ceiling-rule trigger: the
// ceiling rule fires once the portfolio exceeds this many multiples of the
// inflation-adjusted ceiling spend.
var guardrailCeilingMultiple = decimal.NewFromInt(20)

// guardrailFloorRatePct is the Guyton-Klinger floor-rule trigger: the floor
// rule fires once targetSpend implies a withdrawal rate above this percent
// of the portfolio.
var guardrailFloorRatePct = decimal.NewFromInt(6)

// computeTargetSpend executes step 6: the inflation-adjusted target spend,
// the survivor-phase adjustment, and (when enabled) the Guyton-Klinger
// ceiling/floor guardrails.
func computeTargetSpend(state *domain.SimulationState, phase PhaseResult, y int) decimal.Decimal {
	plan := state.Plan
	target := plan.Spending.TargetAnnualSpend.Mul(state.CumulativeInflationByYear[y])

	if phase.IsSurvivorPhase {
		target = target.Mul(plan.Spending.SurvivorSpendingAdjustmentPct).Div(hundred)
	}

	if plan.Strategy.GuardrailsEnabled {
		target = applyGuardrails(state, plan, target, y)
	}

	if target.IsNegative() {
		target = decimal.Zero
	}
	return target
}

// applyGuardrails implements step 6's ceiling and floor rules. The ceiling
// rule raises spend to the inflation-adjusted ceiling once the portfolio has
// grown past guardrailCeilingMultiple times that ceiling. The floor rule
// fires when targetSpend implies a withdrawal rate above guardrailFloorRatePct
// of the portfolio, clamping spend to that rate (never below the
// inflation-adjusted floor, when one is set).
func applyGuardrails(state *domain.SimulationState, plan *domain.PlanInput, target decimal.Decimal, y int) decimal.Decimal {
	totalBalance := decimal.Zero
	for _, a := range state.Accounts {
		totalBalance = totalBalance.Add(a.Balance)
	}
	if totalBalance.LessThanOrEqual(decimal.Zero) {
		return target
	}

	if plan.Spending.CeilingAnnualSpend != nil {
		inflatedCeiling := plan.Spending.CeilingAnnualSpend.Mul(state.CumulativeInflationByYear[y])
		if totalBalance.GreaterThan(inflatedCeiling.Mul(guardrailCeilingMultiple)) {
			target = decimal.Max(target, inflatedCeiling)
		}
	}

	withdrawalRate := target.Div(totalBalance).Mul(hundred)
	if withdrawalRate.GreaterThan(guardrailFloorRatePct) {
		capped := decimal.Min(target, totalBalance.Mul(guardrailFloorRatePct).Div(hundred))
		if plan.Spending.FloorAnnualSpend != nil {
			inflatedFloor := plan.Spending.FloorAnnualSpend.Mul(state.CumulativeInflationByYear[y])
			capped = decimal.Max(inflatedFloor, capped)
		}
		target = capped
	}

	return target
}
