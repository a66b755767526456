package simulation

import (
	"testing"

	"github.com/retireplan/engine/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestApplyGuardrails_CeilingRuleRaisesSpend exercises the Guyton-Klinger
// ceiling rule directly: once the portfolio exceeds 20x the inflated
// ceiling, spend is raised to that ceiling.
func TestApplyGuardrails_CeilingRuleRaisesSpend(t *testing.T) {
	ceiling := d(100)
	plan := &domain.PlanInput{
		Spending: domain.SpendingPlan{CeilingAnnualSpend: &ceiling},
	}
	state := &domain.SimulationState{
		Plan:                      plan,
		CumulativeInflationByYear: []decimal.Decimal{d(1)},
		Accounts: []domain.AccountState{
			{Balance: d(2500)}, // > 20 * 100
		},
	}

	result := applyGuardrails(state, plan, d(50), 0)
	assert.True(t, result.Equal(d(100)), "expected ceiling rule to raise spend to the ceiling, got %s", result)
}

// TestApplyGuardrails_CeilingRuleDormantBelowThreshold confirms the ceiling
// rule leaves spend untouched while the portfolio is at or below 20x ceiling.
func TestApplyGuardrails_CeilingRuleDormantBelowThreshold(t *testing.T) {
	ceiling := d(100)
	plan := &domain.PlanInput{
		Spending: domain.SpendingPlan{CeilingAnnualSpend: &ceiling},
	}
	state := &domain.SimulationState{
		Plan:                      plan,
		CumulativeInflationByYear: []decimal.Decimal{d(1)},
		Accounts: []domain.AccountState{
			{Balance: d(1500)}, // < 20 * 100
		},
	}

	result := applyGuardrails(state, plan, d(50), 0)
	assert.True(t, result.Equal(d(50)), "expected spend unchanged below the 20x ceiling threshold, got %s", result)
}

// TestApplyGuardrails_FloorRuleCapsWithdrawalRate exercises the floor rule:
// once targetSpend implies a withdrawal rate above 6% of the portfolio,
// spend is capped at 6% of the portfolio (never below the inflated floor).
func TestApplyGuardrails_FloorRuleCapsWithdrawalRate(t *testing.T) {
	floor := d(50)
	plan := &domain.PlanInput{
		Spending: domain.SpendingPlan{FloorAnnualSpend: &floor},
	}
	state := &domain.SimulationState{
		Plan:                      plan,
		CumulativeInflationByYear: []decimal.Decimal{d(1)},
		Accounts: []domain.AccountState{
			{Balance: d(1000)}, // 6% of portfolio = 60
		},
	}

	// targetSpend of 100 implies a 10% withdrawal rate, above the 6% trigger.
	result := applyGuardrails(state, plan, d(100), 0)
	assert.True(t, result.Equal(d(60)), "expected spend capped at 6%% of the portfolio, got %s", result)
}

// TestApplyGuardrails_FloorRuleNeverBelowInflatedFloor confirms the floor
// rule's cap never drops spend below the plan's inflation-adjusted floor.
func TestApplyGuardrails_FloorRuleNeverBelowInflatedFloor(t *testing.T) {
	floor := d(80)
	plan := &domain.PlanInput{
		Spending: domain.SpendingPlan{FloorAnnualSpend: &floor},
	}
	state := &domain.SimulationState{
		Plan:                      plan,
		CumulativeInflationByYear: []decimal.Decimal{d(1)},
		Accounts: []domain.AccountState{
			{Balance: d(1000)}, // 6% of portfolio = 60, below the 80 floor
		},
	}

	result := applyGuardrails(state, plan, d(100), 0)
	assert.True(t, result.Equal(d(80)), "expected spend floored at the inflation-adjusted floor, got %s", result)
}

// TestApplyGuardrails_WithinBandLeavesTargetUnchanged confirms spend passes
// through untouched when neither the ceiling nor the floor rule fires.
func TestApplyGuardrails_WithinBandLeavesTargetUnchanged(t *testing.T) {
	floor := d(50)
	ceiling := d(200)
	plan := &domain.PlanInput{
		Spending: domain.SpendingPlan{FloorAnnualSpend: &floor, CeilingAnnualSpend: &ceiling},
	}
	state := &domain.SimulationState{
		Plan:                      plan,
		CumulativeInflationByYear: []decimal.Decimal{d(1)},
		Accounts: []domain.AccountState{
			{Balance: d(2000)}, // 5% withdrawal rate on a 100 target, below 6%; well below 20x ceiling
		},
	}

	result := applyGuardrails(state, plan, d(100), 0)
	assert.True(t, result.Equal(d(100)), "expected spend unchanged within the guardrail band, got %s", result)
}
