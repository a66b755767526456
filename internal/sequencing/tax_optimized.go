package sequencing

import (
	"sort"

	"github.com/retireplan/engine/internal/domain"
	"github.com/shopspring/decimal"
)

// TaxOptimizedStrategy first fills the "0% bracket space" from tax-deferred
// sources, then prefers either taxable (ascending gain fraction) or
// tax-deferred depending on which of the capital-gains/federal rates is
// lower, and draws Roth last (spec §4.1 step 8).
type TaxOptimizedStrategy struct{}

func NewTaxOptimizedStrategy() *TaxOptimizedStrategy { return &TaxOptimizedStrategy{} }

func (s *TaxOptimizedStrategy) Name() domain.WithdrawalOrder { return domain.OrderTaxOptimized }

func (s *TaxOptimizedStrategy) Plan(sources []Source, ctx Context) Plan {
	plan := Plan{Requested: ctx.Target}
	remaining := ctx.Target

	balances := make(map[string]decimal.Decimal, len(sources))
	byID := make(map[string]Source, len(sources))
	ids := make([]string, 0, len(sources))
	for _, src := range sources {
		balances[src.AccountID] = src.Balance
		byID[src.AccountID] = src
		ids = append(ids, src.AccountID)
	}

	draw := func(id string, amt decimal.Decimal) {
		if amt.LessThanOrEqual(decimal.Zero) {
			return
		}
		sumAllocations(&plan, decomposeDraw(byID[id], amt))
		balances[id] = balances[id].Sub(amt)
		remaining = remaining.Sub(amt)
	}

	// Phase 1: fill the 0% bracket space from taxDeferred, then deferredComp.
	bracketSpace := ctx.StandardDeduction.Sub(ctx.CurrentOrdinaryIncome)
	if bracketSpace.LessThan(decimal.Zero) {
		bracketSpace = decimal.Zero
	}
	fillTarget := minDec(bracketSpace, remaining)
	for _, t := range []domain.AccountType{domain.AccountTaxDeferred, domain.AccountDeferredComp} {
		for _, id := range ids {
			if fillTarget.LessThanOrEqual(decimal.Zero) {
				break
			}
			if byID[id].Type != t || balances[id].LessThanOrEqual(decimal.Zero) {
				continue
			}
			amt := minDec(balances[id], fillTarget)
			draw(id, amt)
			fillTarget = fillTarget.Sub(amt)
		}
	}

	// Phase 2: ordinary preference between taxable and tax-deferred sources.
	preferTaxable := ctx.CapGainsRatePct.LessThan(ctx.FederalEffectiveRatePct)
	var typeOrder []domain.AccountType
	if preferTaxable {
		typeOrder = []domain.AccountType{domain.AccountTaxable, domain.AccountTaxDeferred, domain.AccountDeferredComp}
	} else {
		typeOrder = []domain.AccountType{domain.AccountTaxDeferred, domain.AccountDeferredComp, domain.AccountTaxable}
	}

	for _, t := range typeOrder {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		if t == domain.AccountTaxable {
			var taxableIDs []string
			for _, id := range ids {
				if byID[id].Type == domain.AccountTaxable && balances[id].GreaterThan(decimal.Zero) {
					taxableIDs = append(taxableIDs, id)
				}
			}
			sort.Slice(taxableIDs, func(i, j int) bool {
				return byID[taxableIDs[i]].GainFraction().LessThan(byID[taxableIDs[j]].GainFraction())
			})
			for _, id := range taxableIDs {
				if remaining.LessThanOrEqual(decimal.Zero) {
					break
				}
				draw(id, minDec(balances[id], remaining))
			}
			continue
		}
		for _, id := range ids {
			if remaining.LessThanOrEqual(decimal.Zero) {
				break
			}
			if byID[id].Type != t || balances[id].LessThanOrEqual(decimal.Zero) {
				continue
			}
			draw(id, minDec(balances[id], remaining))
		}
	}

	// Phase 3: Roth last.
	for _, id := range ids {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		if byID[id].Type != domain.AccountRoth || balances[id].LessThanOrEqual(decimal.Zero) {
			continue
		}
		draw(id, minDec(balances[id], remaining))
	}

	plan.RemainingNeed = remaining
	if plan.RemainingNeed.LessThan(decimal.Zero) {
		plan.RemainingNeed = decimal.Zero
	}
	return plan
}
