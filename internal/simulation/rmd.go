package simulation

import (
	"github.com/retireplan/engine/internal/domain"
	"github.com/retireplan/engine/internal/refdata"
	"github.com/shopspring/decimal"
)

// rmdOwnerAge resolves the age used to evaluate RMD eligibility for an
// account: the owning person's age, or the primary's for joint accounts
// (tax-deferred accounts are not expected to be jointly owned in practice).
func rmdOwnerAge(owner domain.AccountOwner, phase PhaseResult) int {
	if owner == domain.OwnerSpouse {
		return phase.AgeSpouse
	}
	return phase.AgePrimary
}

func rmdOwnerBirthYear(owner domain.AccountOwner, plan *domain.PlanInput) int {
	if owner == domain.OwnerSpouse && plan.Household.Spouse != nil {
		return plan.Household.Spouse.BirthYear
	}
	return plan.Household.Primary.BirthYear
}

// computeRMDs executes step 5: required minimum distributions from every
// tax-deferred account, using the prior year's ending balance and the IRS
// Uniform Lifetime Table. Distributions are ordinary income and reduce the
// paying account's balance directly, ahead of the withdrawal solver.
func computeRMDs(state *domain.SimulationState, phase PhaseResult) (total decimal.Decimal, byAccount map[string]decimal.Decimal) {
	total = decimal.Zero
	byAccount = make(map[string]decimal.Decimal)

	for i := range state.Accounts {
		a := &state.Accounts[i]
		if a.Type != domain.AccountTaxDeferred {
			continue
		}
		age := rmdOwnerAge(a.Owner, phase)
		birthYear := rmdOwnerBirthYear(a.Owner, state.Plan)
		startAge := refdata.RMDStartAge(birthYear)
		if age < startAge {
			continue
		}
		period := refdata.DistributionPeriod(age)
		if period.IsZero() {
			continue
		}
		priorBalance, ok := state.PriorYearEndBalances[a.ID]
		if !ok {
			priorBalance = a.Balance
		}
		amount := priorBalance.Div(period)
		if amount.GreaterThan(a.Balance) {
			amount = a.Balance
		}
		if amount.LessThanOrEqual(decimal.Zero) {
			continue
		}
		a.Balance = a.Balance.Sub(amount)
		total = total.Add(amount)
		byAccount[a.ID] = amount
	}
	return total, byAccount
}
