package simulation

import (
	"github.com/retireplan/engine/internal/domain"
	"github.com/retireplan/engine/internal/sequencing"
	"github.com/retireplan/engine/internal/tax"
	"github.com/shopspring/decimal"
)

// withdrawalResult is the converged output of steps 7-9 for one year.
type withdrawalResult struct {
	Plan                  sequencing.Plan
	TaxableOrdinaryIncome decimal.Decimal
	TaxableCapitalGains   decimal.Decimal
	TaxableSocialSecurity decimal.Decimal
	FederalTax            decimal.Decimal
	StateTax              decimal.Decimal
	NetSpendable          decimal.Decimal
	Iterations            int
	ConvergenceWarning    bool
}

func buildSources(state *domain.SimulationState) []sequencing.Source {
	sources := make([]sequencing.Source, 0, len(state.Accounts))
	for _, a := range state.Accounts {
		sources = append(sources, sequencing.Source{
			AccountID: a.ID,
			Type:      a.Type,
			Balance:   a.Balance,
			CostBasis: a.CostBasis,
		})
	}
	return sources
}

// solveWithdrawals executes steps 7-9: it repeatedly sizes the discretionary
// withdrawal so that net spendable cash converges on targetSpend within
// convergenceTolerance, capped at maxConvergenceIterations (spec §4.1 steps
// 7-9, §9 "fixed-point convergence loop").
func solveWithdrawals(state *domain.SimulationState, phase PhaseResult, mandatory domain.MandatoryIncome, rmdTotal decimal.Decimal, standardDeduction, targetSpend decimal.Decimal) withdrawalResult {
	strategy := sequencing.CreateStrategy(state.Plan.Strategy.WithdrawalOrder)
	sources := buildSources(state)
	nonWithdrawalCash := mandatory.Total.Add(rmdTotal)
	otherOrdinaryBase := mandatory.TaxablePensionAndOther.
		Add(rmdTotal).
		Add(mandatory.NQDCDistributions).
		Add(mandatory.TaxableAdjustments)

	// Seed the convergence loop's tax estimate from last year's actual total
	// (state.PriorYearTotalTaxDollars), or half of a naive flat-rate estimate
	// on the first simulated year, when there is no prior year to draw from.
	estimatedTaxes := state.PriorYearTotalTaxDollars
	if state.YearIndex == 0 {
		estimatedTaxes = targetSpend.Mul(state.Plan.Tax.FederalEffectiveRatePct).Div(hundred).Mul(decimal.NewFromFloat(0.5))
	}
	need := decimal.Max(decimal.Zero, targetSpend.Add(estimatedTaxes).Sub(nonWithdrawalCash))

	// sources is drawn from a fixed snapshot taken once, before any
	// iteration's speculative draw; restoring it each pass keeps every
	// iteration's sequencing.Plan call working from the same starting
	// balances regardless of what a prior iteration computed.
	snapshot := state.Snapshot()

	var result withdrawalResult
	var plan sequencing.Plan
	var yearTax tax.YearOutput

	for iter := 1; iter <= maxConvergenceIterations; iter++ {
		state.Restore(snapshot)
		ctx := sequencing.Context{
			Target:                  need,
			CurrentOrdinaryIncome:   otherOrdinaryBase,
			StandardDeduction:       standardDeduction,
			CapGainsRatePct:         state.Plan.Tax.CapGainsRatePct,
			FederalEffectiveRatePct: state.Plan.Tax.FederalEffectiveRatePct,
		}
		plan = strategy.Plan(sources, ctx)

		withdrawalOrdinary, withdrawalCapGains := decomposePlan(plan)
		otherOrdinary := otherOrdinaryBase.Add(withdrawalOrdinary)
		capGains := withdrawalCapGains.Add(state.PriorYearRebalanceGains)

		yearTax = tax.ComputeYear(tax.YearInput{
			FilingStatus:           phase.FilingStatus,
			StateCode:              state.Plan.Household.StateOfResidence,
			StandardDeduction:      standardDeduction,
			SocialSecurityBenefits: mandatory.SocialSecurity,
			OtherOrdinaryIncome:    otherOrdinary,
			CapitalGains:           capGains,
			Config:                 state.Plan.Tax,
		})

		totalTax := yearTax.FederalTax.Add(yearTax.StateTax)
		totalCash := nonWithdrawalCash.Add(plan.TotalSourced)
		netSpendable := totalCash.Sub(totalTax)
		diff := targetSpend.Sub(netSpendable)

		result.Iterations = iter
		if diff.Abs().LessThanOrEqual(convergenceTolerance) || plan.RemainingNeed.GreaterThan(decimal.Zero) {
			result.NetSpendable = netSpendable
			break
		}
		if iter == maxConvergenceIterations {
			result.NetSpendable = netSpendable
			result.ConvergenceWarning = true
			break
		}
		need = decimal.Max(decimal.Zero, need.Add(diff))
	}

	_, withdrawalCapGains := decomposePlan(plan)
	result.Plan = plan
	result.TaxableOrdinaryIncome = yearTax.TaxableOrdinaryIncome
	result.TaxableCapitalGains = withdrawalCapGains.Add(state.PriorYearRebalanceGains)
	result.TaxableSocialSecurity = yearTax.TaxableSocialSecurity
	result.FederalTax = yearTax.FederalTax
	result.StateTax = yearTax.StateTax
	return result
}

func decomposePlan(plan sequencing.Plan) (ordinary, capitalGains decimal.Decimal) {
	ordinary, capitalGains = decimal.Zero, decimal.Zero
	for _, a := range plan.Allocations {
		ordinary = ordinary.Add(a.OrdinaryIncome)
		capitalGains = capitalGains.Add(a.CapitalGains)
	}
	return ordinary, capitalGains
}

// applyWithdrawals permanently debits state.Accounts by the converged plan's
// allocations, reducing cost basis on taxable draws (step 9 follow-through).
func applyWithdrawals(state *domain.SimulationState, plan sequencing.Plan) map[string]decimal.Decimal {
	byAccount := make(map[string]decimal.Decimal, len(plan.Allocations))
	for _, alloc := range plan.Allocations {
		if alloc.Gross.LessThanOrEqual(decimal.Zero) {
			continue
		}
		for i := range state.Accounts {
			if state.Accounts[i].ID != alloc.AccountID {
				continue
			}
			state.Accounts[i].Balance = state.Accounts[i].Balance.Sub(alloc.Gross)
			if state.Accounts[i].Balance.IsNegative() {
				state.Accounts[i].Balance = decimal.Zero
			}
			state.Accounts[i].CostBasis = state.Accounts[i].CostBasis.Sub(alloc.CostBasisReduction)
			if state.Accounts[i].CostBasis.IsNegative() {
				state.Accounts[i].CostBasis = decimal.Zero
			}
			break
		}
		byAccount[alloc.AccountID] = alloc.Gross
	}
	return byAccount
}
