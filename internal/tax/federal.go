package tax

import (
	"github.com/retireplan/engine/internal/domain"
	"github.com/retireplan/engine/internal/refdata"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FederalOrdinaryTax computes federal tax on taxable ordinary income (after
// deductions), either as a flat effective rate or marginal brackets.
func FederalOrdinaryTax(taxableOrdinaryIncome decimal.Decimal, filingStatus domain.FilingStatus, model domain.FederalTaxModel, effectiveRatePct decimal.Decimal) decimal.Decimal {
	if taxableOrdinaryIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if model == domain.FederalModelEffective {
		return taxableOrdinaryIncome.Mul(effectiveRatePct).Div(hundred)
	}
	return applyBrackets(taxableOrdinaryIncome, refdata.FederalBracketsFor(string(filingStatus)))
}

func applyBrackets(income decimal.Decimal, brackets []refdata.FederalBracket) decimal.Decimal {
	total := decimal.Zero
	lower := decimal.Zero
	for _, b := range brackets {
		upper := b.UpperBound
		unbounded := upper.IsZero()
		if !unbounded && income.LessThanOrEqual(lower) {
			break
		}
		var bandIncome decimal.Decimal
		if unbounded {
			bandIncome = income.Sub(lower)
		} else {
			bandIncome = decimal.Min(income, upper).Sub(lower)
		}
		if bandIncome.GreaterThan(decimal.Zero) {
			total = total.Add(bandIncome.Mul(b.Rate))
		}
		if !unbounded {
			lower = upper
		}
		if unbounded || income.LessThanOrEqual(upper) {
			break
		}
	}
	return total
}

// CapitalGainsTax computes tax on long-term capital gains stacked on top of
// taxable ordinary income (the standard "fills the remaining bracket space"
// treatment), either flat or by LTCG bracket.
func CapitalGainsTax(capitalGains, taxableOrdinaryIncome decimal.Decimal, filingStatus domain.FilingStatus, model domain.FederalTaxModel, capGainsRatePct decimal.Decimal) decimal.Decimal {
	if capitalGains.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if model == domain.FederalModelEffective {
		return capitalGains.Mul(capGainsRatePct).Div(hundred)
	}
	brackets := refdata.CapGainsBracketsFor(string(filingStatus))
	total := decimal.Zero
	stackFloor := taxableOrdinaryIncome
	stackCeiling := taxableOrdinaryIncome.Add(capitalGains)
	lower := decimal.Zero
	for _, b := range brackets {
		upper := b.UpperBound
		unbounded := upper.IsZero()
		bandLow := lower
		var bandHigh decimal.Decimal
		if unbounded {
			bandHigh = stackCeiling
		} else {
			bandHigh = upper
		}
		overlapLow := decimal.Max(bandLow, stackFloor)
		overlapHigh := decimal.Min(bandHigh, stackCeiling)
		if overlapHigh.GreaterThan(overlapLow) {
			total = total.Add(overlapHigh.Sub(overlapLow).Mul(b.Rate))
		}
		if !unbounded {
			lower = upper
			if stackCeiling.LessThanOrEqual(upper) {
				break
			}
		} else {
			break
		}
	}
	return total
}
