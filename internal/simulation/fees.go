package simulation

import "github.com/retireplan/engine/internal/domain"

// applyFees executes step 11: each account's annual fee drag is deducted
// from its balance after returns and withdrawals are applied.
func applyFees(state *domain.SimulationState) {
	for i := range state.Accounts {
		a := &state.Accounts[i]
		if a.Balance.LessThanOrEqual(zero) || a.FeePct.LessThanOrEqual(zero) {
			continue
		}
		fee := a.Balance.Mul(pctToFactor(a.FeePct))
		a.Balance = a.Balance.Sub(fee)
		if a.Balance.IsNegative() {
			a.Balance = zero
		}
	}
}
