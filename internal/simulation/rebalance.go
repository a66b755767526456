package simulation

import (
	"github.com/retireplan/engine/internal/domain"
	"github.com/shopspring/decimal"
)

// applyRebalance executes step 12: accounts carrying a targetAllocationPct
// are redistributed toward those weights (renormalized to sum to 100%
// across the participating accounts). Overweight positions are sold down to
// target; for a taxable account that sale realizes a proportional share of
// its unrealized gain into state.PriorYearRebalanceGains, taxed the
// following year (rebalancing runs after step 9). The proceeds transfer to
// underweight accounts, whose cost basis increases by the incoming cash.
func applyRebalance(state *domain.SimulationState) {
	realizedGains := decimal.Zero
	defer func() { state.PriorYearRebalanceGains = realizedGains }()

	if state.Plan.Strategy.RebalanceFrequency == domain.RebalanceNone {
		return
	}

	var participants []int
	totalBalance := decimal.Zero
	totalWeight := decimal.Zero
	for i := range state.Accounts {
		a := &state.Accounts[i]
		if a.TargetAllocationPct == nil {
			continue
		}
		participants = append(participants, i)
		totalBalance = totalBalance.Add(a.Balance)
		totalWeight = totalWeight.Add(*a.TargetAllocationPct)
	}
	if len(participants) < 2 || totalWeight.LessThanOrEqual(decimal.Zero) {
		return
	}

	for _, i := range participants {
		a := &state.Accounts[i]
		weight := a.TargetAllocationPct.Div(totalWeight)
		target := totalBalance.Mul(weight)
		delta := target.Sub(a.Balance)

		switch {
		case delta.LessThan(decimal.Zero):
			// Overweight: sell down to target.
			soldAmount := delta.Neg()
			if a.Type == domain.AccountTaxable && a.Balance.GreaterThan(decimal.Zero) {
				gainFraction := decimal.NewFromInt(1).Sub(a.CostBasis.Div(a.Balance))
				if gainFraction.LessThan(decimal.Zero) {
					gainFraction = decimal.Zero
				}
				realized := soldAmount.Mul(gainFraction)
				realizedGains = realizedGains.Add(realized)
				a.CostBasis = a.CostBasis.Sub(soldAmount.Sub(realized))
			}
			a.Balance = target
		case delta.GreaterThan(decimal.Zero):
			// Underweight: receives the proceeds transferred from overweight
			// accounts; its basis increases by the incoming cash.
			if a.Type == domain.AccountTaxable {
				a.CostBasis = a.CostBasis.Add(delta)
			}
			a.Balance = target
		}
	}
}
