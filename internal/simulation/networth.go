package simulation

import (
	"github.com/retireplan/engine/internal/domain"
	"github.com/shopspring/decimal"
)

// netWorthSplit is step 10's output: how much of net spendable cash was
// actually spent versus banked as surplus (or missed as shortfall).
type netWorthSplit struct {
	ActualSpend decimal.Decimal
	Shortfall   decimal.Decimal
	Surplus     decimal.Decimal
}

// computeNetSpendableSplit executes step 10: actual spend can never exceed
// net spendable cash; any shortfall is recorded, any surplus is deposited
// back into the household's largest-balance taxable account as new
// principal.
func computeNetSpendableSplit(state *domain.SimulationState, targetSpend, netSpendable decimal.Decimal) netWorthSplit {
	split := netWorthSplit{}
	if netSpendable.GreaterThanOrEqual(targetSpend) {
		split.ActualSpend = targetSpend
		split.Surplus = netSpendable.Sub(targetSpend)
	} else {
		split.ActualSpend = netSpendable
		split.Shortfall = targetSpend.Sub(netSpendable)
	}
	if split.Surplus.GreaterThan(decimal.Zero) {
		depositSurplus(state, split.Surplus)
	}
	return split
}

// depositSurplus deposits into the largest-balance taxable account as new
// principal (new contributions carry their own cost basis equal to the
// deposit).
func depositSurplus(state *domain.SimulationState, amount decimal.Decimal) {
	largest := -1
	for i := range state.Accounts {
		if state.Accounts[i].Type != domain.AccountTaxable {
			continue
		}
		if largest == -1 || state.Accounts[i].Balance.GreaterThan(state.Accounts[largest].Balance) {
			largest = i
		}
	}
	if largest == -1 {
		return
	}
	state.Accounts[largest].Balance = state.Accounts[largest].Balance.Add(amount)
	state.Accounts[largest].CostBasis = state.Accounts[largest].CostBasis.Add(amount)
}
