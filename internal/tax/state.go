package tax

import (
	"github.com/retireplan/engine/internal/domain"
	"github.com/retireplan/engine/internal/refdata"
	"github.com/shopspring/decimal"
)

// StateTaxInput bundles the inputs the engine's in-loop state computation
// needs for a year (spec §4.1 step 9).
type StateTaxInput struct {
	StateCode               string
	Model                   domain.StateTaxModel
	EffectiveRatePctOverride *decimal.Decimal
	CapGainsRatePctOverride  *decimal.Decimal
	OrdinaryIncome           decimal.Decimal // before state standard deduction
	TaxableSocialSecurity    decimal.Decimal // the federal taxable SS amount
	CapitalGains             decimal.Decimal
	FederalStandardDeduction decimal.Decimal // fallback when the state table has none
}

// StateTax computes state income tax. The bracket model falls back to each
// state's flat IncomeRate: refdata's per-state Brackets tables are carried
// for the standalone tax module but are not populated with real progressive
// schedules in v1 (spec §9 Open Questions), so "bracket" and "effective"
// produce the same flat-rate result at the state level.
func StateTax(in StateTaxInput) decimal.Decimal {
	if in.Model == domain.StateModelNone {
		return decimal.Zero
	}

	rule, ok := refdata.LookupState(in.StateCode)
	if !ok {
		return decimal.Zero
	}

	ordinary := in.OrdinaryIncome
	switch rule.SSTaxExempt {
	case refdata.SSExemptYes:
		// state ordinary income already excludes SS (the federal base never
		// included SS since it is layered in separately by the caller)
	case refdata.SSExemptPartial:
		ordinary = ordinary.Add(in.TaxableSocialSecurity.Div(decimal.NewFromInt(2)))
	default:
		ordinary = ordinary.Add(in.TaxableSocialSecurity)
	}
	// spec §4.1 step 9: stateStandardDeduction ?? round(federalStandardDeduction × 0.5)
	stateDeduction := in.FederalStandardDeduction.Div(decimal.NewFromInt(2)).Round(0)
	if rule.StateStandardDeduction != nil {
		stateDeduction = *rule.StateStandardDeduction
	}
	ordinary = ordinary.Sub(stateDeduction)
	if ordinary.IsNegative() {
		ordinary = decimal.Zero
	}

	rate := rule.IncomeRate
	if in.EffectiveRatePctOverride != nil {
		rate = *in.EffectiveRatePctOverride
	}
	tax := ordinary.Mul(rate).Div(hundred)

	gains := in.CapitalGains
	if rule.CapitalGainsThreshold != nil {
		gains = gains.Sub(*rule.CapitalGainsThreshold)
		if gains.IsNegative() {
			gains = decimal.Zero
		}
	}
	if gains.GreaterThan(decimal.Zero) {
		gainsRate := rule.CapitalGainsRate
		if in.CapGainsRatePctOverride != nil {
			gainsRate = *in.CapGainsRatePctOverride
		}
		tax = tax.Add(gains.Mul(gainsRate).Div(hundred))
	}
	return tax
}
