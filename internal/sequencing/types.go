// Package sequencing implements the four withdrawal-ordering strategies of
// spec §4.1 step 8. Adapted from the teacher's internal/sequencing package:
// the same SequencingStrategy shape (Name + Plan over a slice of sources and
// a context), four concrete strategies instead of the teacher's
// standard/tax_efficient/bracket_fill/custom, and the same per-draw tax
// decomposition idiom (ordinary / capital-gains / tax-free portions).
package sequencing

import (
	"github.com/retireplan/engine/internal/domain"
	"github.com/shopspring/decimal"
)

// Source is one account available to satisfy a year's withdrawal target.
type Source struct {
	AccountID string
	Type      domain.AccountType
	Balance   decimal.Decimal
	CostBasis decimal.Decimal
}

// GainFraction is the fraction of a taxable account's balance that is
// unrealized gain, per spec GLOSSARY: max(0, 1 - costBasis/balance).
func (s Source) GainFraction() decimal.Decimal {
	if s.Balance.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	frac := decimal.NewFromInt(1).Sub(s.CostBasis.Div(s.Balance))
	if frac.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return frac
}

// Allocation is the drawn amount from one source and its tax decomposition.
type Allocation struct {
	AccountID          string
	Gross              decimal.Decimal
	OrdinaryIncome     decimal.Decimal
	CapitalGains       decimal.Decimal
	TaxFree            decimal.Decimal
	CostBasisReduction decimal.Decimal // amount to subtract from the account's cost basis
}

// Plan is the result of solving a withdrawal target over a set of sources.
type Plan struct {
	Requested     decimal.Decimal
	Allocations   []Allocation
	TotalSourced  decimal.Decimal
	RemainingNeed decimal.Decimal
}

// Context carries the inputs the tax-optimized strategy needs beyond the
// plain withdrawal target (spec §4.1 step 8).
type Context struct {
	Target                  decimal.Decimal
	CurrentOrdinaryIncome   decimal.Decimal
	StandardDeduction       decimal.Decimal
	CapGainsRatePct         decimal.Decimal
	FederalEffectiveRatePct decimal.Decimal
}

// Strategy is the withdrawal-sequencing interface every WithdrawalOrder implements.
type Strategy interface {
	Name() domain.WithdrawalOrder
	Plan(sources []Source, ctx Context) Plan
}

// decomposeDraw computes the tax decomposition of drawing `amount` from src,
// per spec §4.1 step 8's per-draw tax-effect rules, and returns the
// allocation plus the cost-basis reduction to apply to the live account.
func decomposeDraw(src Source, amount decimal.Decimal) Allocation {
	alloc := Allocation{AccountID: src.AccountID, Gross: amount}
	switch src.Type {
	case domain.AccountTaxable:
		gainFraction := src.GainFraction()
		gains := amount.Mul(gainFraction)
		alloc.CapitalGains = gains
		alloc.CostBasisReduction = amount.Sub(gains)
	case domain.AccountTaxDeferred, domain.AccountDeferredComp:
		alloc.OrdinaryIncome = amount
	case domain.AccountRoth:
		alloc.TaxFree = amount
	}
	return alloc
}

func minDec(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

func sumAllocations(plan *Plan, alloc Allocation) {
	plan.Allocations = append(plan.Allocations, alloc)
	plan.TotalSourced = plan.TotalSourced.Add(alloc.Gross)
}

// drawOrdered draws from sources (already ordered as the strategy wants)
// until target is met or sources run out.
func drawOrdered(sources []Source, target decimal.Decimal) Plan {
	plan := Plan{Requested: target}
	remaining := target
	for _, src := range sources {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		if src.Balance.LessThanOrEqual(decimal.Zero) {
			continue
		}
		draw := src.Balance
		if draw.GreaterThan(remaining) {
			draw = remaining
		}
		sumAllocations(&plan, decomposeDraw(src, draw))
		remaining = remaining.Sub(draw)
	}
	plan.RemainingNeed = remaining
	if plan.RemainingNeed.LessThan(decimal.Zero) {
		plan.RemainingNeed = decimal.Zero
	}
	return plan
}
