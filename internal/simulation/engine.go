// Package simulation implements the year-by-year retirement projection
// pipeline (spec §4.1): phase/survivor determination, market returns,
// mandatory income, RMDs, spending targets, the tax-withdrawal convergence
// solver, fees, rebalancing, and per-year result assembly.
package simulation

import (
	"github.com/retireplan/engine/internal/domain"
	"github.com/shopspring/decimal"
)

// Simulate runs the full deterministic projection for plan and returns the
// year-by-year results plus a summary, or a *domain.ValidationError /
// *domain.HorizonError on invalid input.
func Simulate(plan *domain.PlanInput) (*domain.PlanResult, error) {
	return SimulateWithLogger(plan, NopLogger{})
}

// SimulateWithLogger is Simulate with an injectable Logger, letting callers
// (the CLI, tests) observe per-year diagnostics without the engine importing
// any particular logging backend.
func SimulateWithLogger(plan *domain.PlanInput, log Logger) (*domain.PlanResult, error) {
	if err := ValidatePlanInput(plan); err != nil {
		return nil, err
	}

	horizon := computeHorizon(plan)
	if horizon <= 0 {
		return nil, &domain.HorizonError{Message: "no years to simulate: household has already reached life expectancy"}
	}

	state := initializeState(plan)
	results := make([]domain.YearResult, 0, horizon)
	totalShortfall := decimal.Zero

	for y := 0; y < horizon; y++ {
		state.YearIndex = y
		state.CurrentYear = domain.BaseCalendarYear + y

		advanceCumulativeInflation(state, y)
		recomputeBaselineReturn(state)

		phase := determinePhase(state, y)
		applyReturns(state, y)

		mandatory, nqdcByAccount := computeMandatoryIncome(state, phase, y)
		standardDeduction := computeStandardDeduction(state, phase, y)
		rmdTotal, rmdByAccount := computeRMDs(state, phase)
		targetSpend := computeTargetSpend(state, phase, y)

		wr := solveWithdrawals(state, phase, mandatory, rmdTotal, standardDeduction, targetSpend)
		withdrawalByAccount := applyWithdrawals(state, wr.Plan)

		split := computeNetSpendableSplit(state, targetSpend, wr.NetSpendable)
		applyFees(state)
		applyRebalance(state)

		if wr.ConvergenceWarning {
			log.Warnf("year %d: withdrawal solve did not converge after %d iterations", state.CurrentYear, wr.Iterations)
		}
		if split.Shortfall.GreaterThan(decimal.Zero) {
			totalShortfall = totalShortfall.Add(split.Shortfall)
			log.Infof("year %d: shortfall of %s", state.CurrentYear, split.Shortfall.StringFixed(2))
		}

		withdrawalsByID := mergeWithdrawalMaps(rmdByAccount, nqdcByAccount, withdrawalByAccount)
		results = append(results, buildYearResult(state, yearInputs{
			CalendarYear:    state.CurrentYear,
			Phase:           phase,
			Mandatory:       mandatory,
			RMDTotal:        rmdTotal,
			TargetSpend:     targetSpend,
			Withdrawal:      wr,
			Split:           split,
			WithdrawalsByID: withdrawalsByID,
		}))

		advancePriorYearState(state, wr)
	}

	summary := buildSummary(results, totalShortfall)
	return &domain.PlanResult{
		Summary: summary,
		Yearly:  results,
		AssumptionsUsed: domain.AssumptionsUsed{
			SimulationMode:          plan.Market.SimulationMode,
			InflationPct:            plan.Spending.InflationPct,
			FederalEffectiveRatePct: plan.Tax.FederalEffectiveRatePct,
			CapGainsRatePct:         plan.Tax.CapGainsRatePct,
			WithdrawalOrder:         plan.Strategy.WithdrawalOrder,
			RebalanceFrequency:      plan.Strategy.RebalanceFrequency,
			GuardrailsEnabled:       plan.Strategy.GuardrailsEnabled,
			Horizon:                 horizon,
			BaseCalendarYear:        domain.BaseCalendarYear,
		},
	}, nil
}

func mergeWithdrawalMaps(maps ...map[string]decimal.Decimal) map[string]decimal.Decimal {
	merged := make(map[string]decimal.Decimal)
	for _, m := range maps {
		for id, amount := range m {
			merged[id] = merged[id].Add(amount)
		}
	}
	return merged
}

// advancePriorYearState carries this year's results into next year's inputs:
// tax-deferred year-end balances (for next year's RMD) and total tax dollars
// (the seed of next year's convergence loop in solveWithdrawals).
func advancePriorYearState(state *domain.SimulationState, wr withdrawalResult) {
	for _, a := range state.Accounts {
		if a.Type == domain.AccountTaxDeferred {
			state.PriorYearEndBalances[a.ID] = a.Balance
		}
	}
	state.PriorYearTotalTaxDollars = wr.FederalTax.Add(wr.StateTax)
}

func buildSummary(results []domain.YearResult, totalShortfall decimal.Decimal) domain.Summary {
	summary := domain.Summary{
		SuccessProbability: decimal.NewFromInt(1),
	}
	if totalShortfall.GreaterThan(decimal.Zero) {
		summary.SuccessProbability = decimal.Zero
		summary.WorstCaseShortfall = &totalShortfall
	}
	if len(results) > 0 {
		last := results[len(results)-1]
		total := decimal.Zero
		for _, v := range last.EndBalanceByAccount {
			total = total.Add(v)
		}
		summary.MedianTerminalValue = total
	}
	return summary
}
