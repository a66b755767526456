package simulation

import (
	"github.com/retireplan/engine/internal/domain"
	"github.com/shopspring/decimal"
)

// computeMandatoryIncome executes step 3: Social Security, NQDC distributions,
// other income streams, and taxable/non-taxable adjustments. NQDC accounts are
// drawn down here (not via internal/sequencing) since their payout is fixed by
// schedule rather than by withdrawal need.
func computeMandatoryIncome(state *domain.SimulationState, phase PhaseResult, y int) (domain.MandatoryIncome, map[string]decimal.Decimal) {
	plan := state.Plan
	calendarYear := state.CurrentYear

	var income domain.MandatoryIncome
	var nqdcByAccount map[string]decimal.Decimal
	income.SocialSecurity = socialSecurityIncome(state, phase, calendarYear)
	income.NQDCDistributions, nqdcByAccount = nqdcDistributions(state, calendarYear)
	income.PensionAndOther, income.TaxablePensionAndOther = incomeStreamTotal(plan.IncomeStreams, calendarYear, phase)

	taxable, nonTaxable := adjustmentTotals(state, plan.Adjustments, calendarYear, y)
	income.TaxableAdjustments = taxable
	income.NonTaxableAdjustments = nonTaxable

	income.Total = income.SocialSecurity.
		Add(income.NQDCDistributions).
		Add(income.PensionAndOther).
		Add(taxable).
		Add(nonTaxable)
	return income, nqdcByAccount
}

// ssBenefitForPerson returns the person's annualized Social Security benefit
// for calendarYear: zero before claimAge, otherwise the monthly benefit at
// claim compounded by colaPct for each year since claiming.
func ssBenefitForPerson(p domain.PersonProfile, calendarYear int) decimal.Decimal {
	if p.SocialSecurity == nil {
		return decimal.Zero
	}
	claimYear := p.BirthYear + p.SocialSecurity.ClaimAge
	if calendarYear < claimYear {
		return decimal.Zero
	}
	yearsSinceClaim := calendarYear - claimYear
	annual := p.SocialSecurity.EstimatedMonthlyBenefitAtClaim.Mul(decimal.NewFromInt(12))
	factor := decimal.NewFromInt(1).Add(pctToFactor(p.SocialSecurity.ColaPct))
	for i := 0; i < yearsSinceClaim; i++ {
		annual = annual.Mul(factor)
	}
	return annual
}

// socialSecurityIncome applies the survivor benefit rule: once in survivor
// phase, the survivor receives the greater of their own and the deceased's
// benefit, not the sum of both.
func socialSecurityIncome(state *domain.SimulationState, phase PhaseResult, calendarYear int) decimal.Decimal {
	h := state.Plan.Household
	primaryBenefit := ssBenefitForPerson(h.Primary, calendarYear)
	if h.Spouse == nil {
		if phase.PrimaryAlive {
			return primaryBenefit
		}
		return decimal.Zero
	}

	spouseBenefit := ssBenefitForPerson(*h.Spouse, calendarYear)
	switch {
	case phase.BothDead:
		return decimal.Zero
	case phase.IsSurvivorPhase:
		if primaryBenefit.GreaterThan(spouseBenefit) {
			return primaryBenefit
		}
		return spouseBenefit
	default:
		total := decimal.Zero
		if phase.PrimaryAlive {
			total = total.Add(primaryBenefit)
		}
		if phase.SpouseAlive {
			total = total.Add(spouseBenefit)
		}
		return total
	}
}

// nqdcDistributions pays out scheduled deferred-comp amounts and reduces the
// paying account's balance accordingly (spec §9: NQDC is ordinary income,
// paid from a notional balance rather than sequenced like a discretionary
// withdrawal).
func nqdcDistributions(state *domain.SimulationState, calendarYear int) (decimal.Decimal, map[string]decimal.Decimal) {
	total := decimal.Zero
	byAccount := make(map[string]decimal.Decimal)
	for i := range state.Accounts {
		a := &state.Accounts[i]
		sched := a.DeferredCompSchedule
		if sched == nil || calendarYear < sched.StartYear {
			continue
		}

		if calendarYear > sched.EndYear {
			// The schedule has run its course but growth outpaced payout;
			// lump-sum whatever remains as ordinary income.
			if a.Balance.GreaterThan(decimal.Zero) {
				byAccount[a.ID] = a.Balance
				total = total.Add(a.Balance)
				a.Balance = decimal.Zero
			}
			continue
		}

		amount := sched.Amount
		if sched.Frequency == domain.FrequencyMonthly {
			amount = amount.Mul(decimal.NewFromInt(12))
		}
		if sched.InflationAdjusted {
			amount = amount.Mul(inflationAdjustmentFactor(state, sched.StartYear, calendarYear))
		}
		if amount.GreaterThan(a.Balance) {
			amount = a.Balance
		}
		a.Balance = a.Balance.Sub(amount)
		if amount.GreaterThan(decimal.Zero) {
			byAccount[a.ID] = amount
		}
		total = total.Add(amount)
	}
	return total, byAccount
}

// inflationAdjustmentFactor scales an amount fixed at baseYear forward to
// calendarYear using the cumulative inflation prefix-product array.
func inflationAdjustmentFactor(state *domain.SimulationState, baseYear, calendarYear int) decimal.Decimal {
	baseIdx := baseYear - domain.BaseCalendarYear
	curIdx := calendarYear - domain.BaseCalendarYear
	if baseIdx < 0 {
		baseIdx = 0
	}
	if curIdx < 0 || curIdx >= len(state.CumulativeInflationByYear) {
		return decimal.NewFromInt(1)
	}
	if baseIdx >= len(state.CumulativeInflationByYear) {
		return decimal.NewFromInt(1)
	}
	base := state.CumulativeInflationByYear[baseIdx]
	if base.IsZero() {
		return decimal.NewFromInt(1)
	}
	return state.CumulativeInflationByYear[curIdx].Div(base)
}

func ownerAlive(owner domain.AccountOwner, phase PhaseResult) bool {
	switch owner {
	case domain.OwnerPrimary:
		return phase.PrimaryAlive
	case domain.OwnerSpouse:
		return phase.SpouseAlive
	default: // joint
		return phase.PrimaryAlive || phase.SpouseAlive
	}
}

func incomeStreamTotal(streams []domain.IncomeStream, calendarYear int, phase PhaseResult) (total, taxableTotal decimal.Decimal) {
	total, taxableTotal = decimal.Zero, decimal.Zero
	for _, s := range streams {
		alive := ownerAlive(s.Owner, phase)
		if !s.Active(calendarYear, alive, phase.IsSurvivorPhase) {
			continue
		}
		total = total.Add(s.AnnualAmount)
		if s.Taxable {
			taxableTotal = taxableTotal.Add(s.AnnualAmount)
		}
	}
	return total, taxableTotal
}

func adjustmentTotals(state *domain.SimulationState, adjustments []domain.Adjustment, calendarYear, y int) (taxable, nonTaxable decimal.Decimal) {
	taxable, nonTaxable = decimal.Zero, decimal.Zero
	for _, a := range adjustments {
		if !a.Active(calendarYear) {
			continue
		}
		amount := a.Amount
		if a.InflationAdjusted {
			amount = amount.Mul(inflationAdjustmentFactor(state, a.Year, calendarYear))
		}
		if a.Taxable {
			taxable = taxable.Add(amount)
		} else {
			nonTaxable = nonTaxable.Add(amount)
		}
	}
	return taxable, nonTaxable
}
