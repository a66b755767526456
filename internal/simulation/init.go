package simulation

import (
	"github.com/retireplan/engine/internal/domain"
	"github.com/shopspring/decimal"
)

// computeHorizon returns the number of years to simulate: the longest span
// until any household member reaches life expectancy. A non-positive result
// means there is nothing to simulate (spec §7 HorizonError).
func computeHorizon(plan *domain.PlanInput) int {
	horizon := plan.Household.Primary.LifeExpectancy - plan.Household.Primary.CurrentAge
	if plan.Household.Spouse != nil {
		spouseHorizon := plan.Household.Spouse.LifeExpectancy - plan.Household.Spouse.CurrentAge
		if spouseHorizon > horizon {
			horizon = spouseHorizon
		}
	}
	return horizon
}

// initializeState builds the mutable SimulationState for one run (spec §3
// Lifecycle: "Created in initializeState(plan)").
func initializeState(plan *domain.PlanInput) *domain.SimulationState {
	accounts := make([]domain.AccountState, len(plan.Accounts))
	priorEnd := make(map[string]decimal.Decimal, len(plan.Accounts))
	for i, a := range plan.Accounts {
		accounts[i] = domain.AccountState{
			Account:   a,
			Balance:   a.CurrentBalance,
			CostBasis: a.EffectiveCostBasis(),
		}
		if a.Type == domain.AccountTaxDeferred {
			priorEnd[a.ID] = a.CurrentBalance
		}
	}

	state := &domain.SimulationState{
		Plan:                      plan,
		Accounts:                  accounts,
		CurrentYear:               domain.BaseCalendarYear,
		YearIndex:                 0,
		PriorYearTotalTaxDollars:  decimal.Zero,
		PriorYearRebalanceGains:   decimal.Zero,
		ScenarioReturns:           plan.Market.ScenarioReturns,
		ScenarioInflation:         plan.Market.ScenarioInflation,
		CumulativeInflationByYear: []decimal.Decimal{decimal.NewFromInt(1)},
		FirstSurvivorYearIndex:    -1,
		PriorYearEndBalances:      priorEnd,
	}
	return state
}
