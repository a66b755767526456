// Package tax computes federal and state income tax: Social Security
// provisional-income taxability, marginal/effective federal brackets on
// ordinary income and long-term capital gains, and state tax by the 50-state
// reference table. ComputeYear is used in-loop by internal/simulation's
// yearly convergence solver; ComputeTaxYear computes one recorded tax year
// standalone and is not called by any other package (spec §4.2).
package tax

import (
	"github.com/retireplan/engine/internal/domain"
	"github.com/shopspring/decimal"
)

// YearInput is one year's tax inputs for the engine's convergence loop.
type YearInput struct {
	FilingStatus          domain.FilingStatus
	StateCode             string
	StandardDeduction     decimal.Decimal
	SocialSecurityBenefits decimal.Decimal
	OtherOrdinaryIncome   decimal.Decimal // RMDs, NQDC, taxable pensions/adjustments, withdrawal ordinary income
	CapitalGains          decimal.Decimal // withdrawal capital gains + prior-year rebalance gains
	Config                domain.TaxConfig
}

// YearOutput is the resolved tax liability for the year.
type YearOutput struct {
	TaxableSocialSecurity decimal.Decimal
	TaxableOrdinaryIncome decimal.Decimal
	FederalTax            decimal.Decimal
	StateTax              decimal.Decimal
}

// ComputeYear runs the full federal+state computation for one year (spec
// §4.1 step 9): Social Security taxability first (it depends on the other
// ordinary income, not the reverse), then the standard deduction, then
// federal ordinary/capital-gains tax, then state tax.
func ComputeYear(in YearInput) YearOutput {
	ssTaxable := TaxableSocialSecurity(in.SocialSecurityBenefits, in.OtherOrdinaryIncome, in.FilingStatus)

	grossOrdinary := in.OtherOrdinaryIncome.Add(ssTaxable)
	taxableOrdinary := grossOrdinary.Sub(in.StandardDeduction)
	if taxableOrdinary.IsNegative() {
		taxableOrdinary = decimal.Zero
	}

	federal := FederalOrdinaryTax(taxableOrdinary, in.FilingStatus, in.Config.FederalModel, in.Config.FederalEffectiveRatePct)
	federal = federal.Add(CapitalGainsTax(in.CapitalGains, taxableOrdinary, in.FilingStatus, in.Config.FederalModel, in.Config.CapGainsRatePct))

	state := StateTax(StateTaxInput{
		StateCode:                in.StateCode,
		Model:                    in.Config.StateModel,
		EffectiveRatePctOverride: in.Config.StateEffectiveRatePct,
		CapGainsRatePctOverride:  in.Config.StateCapGainsRatePct,
		OrdinaryIncome:           in.OtherOrdinaryIncome,
		TaxableSocialSecurity:    ssTaxable,
		CapitalGains:             in.CapitalGains,
		FederalStandardDeduction: in.StandardDeduction,
	})

	return YearOutput{
		TaxableSocialSecurity: ssTaxable,
		TaxableOrdinaryIncome: taxableOrdinary,
		FederalTax:            federal,
		StateTax:              state,
	}
}
