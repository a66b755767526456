package tax

import (
	"github.com/retireplan/engine/internal/domain"
	"github.com/retireplan/engine/internal/refdata"
	"github.com/shopspring/decimal"
)

var maxCapitalLossOffset = decimal.NewFromInt(3000)

// ComputeTaxYear reconciles one recorded tax year independent of the
// simulation engine (spec §4.2). When the record's Status is filed or
// amended, the recorded federal/state amounts are authoritative and returned
// as-is; otherwise the year is computed from its income components using
// marginal federal brackets. Loss carryforward tracking is out of scope
// (spec Non-goals): any capital loss beyond the $3,000 ordinary-income offset
// is simply not deducted this year.
func ComputeTaxYear(rec domain.TaxYearRecord) domain.TaxComputation {
	netCapitalGains := rec.CapitalGains.Sub(rec.CapitalLosses)
	lossOffset := decimal.Zero
	preferentialIncome := rec.QualifiedDividends
	if netCapitalGains.GreaterThan(decimal.Zero) {
		preferentialIncome = preferentialIncome.Add(netCapitalGains)
	} else if netCapitalGains.IsNegative() {
		lossOffset = decimal.Min(netCapitalGains.Abs(), maxCapitalLossOffset)
	}

	ordinaryDividendsNonQualified := rec.OrdinaryDividends.Sub(rec.QualifiedDividends)
	if ordinaryDividendsNonQualified.IsNegative() {
		ordinaryDividendsNonQualified = decimal.Zero
	}

	ordinaryBeforeSS := rec.Wages.
		Add(rec.InterestIncome).
		Add(ordinaryDividendsNonQualified).
		Add(rec.RetirementDistributions).
		Add(rec.SelfEmploymentIncome).
		Add(rec.RentsAndOther).
		Add(rec.OtherIncome).
		Sub(lossOffset)

	grossIncome := ordinaryBeforeSS.
		Add(rec.SocialSecurityBenefits).
		Add(preferentialIncome)

	ssTaxable := TaxableSocialSecurity(rec.SocialSecurityBenefits, ordinaryBeforeSS, rec.FilingStatus)
	ordinaryIncome := ordinaryBeforeSS.Add(ssTaxable)

	deduction := standardOrItemized(rec, grossIncome)
	taxableOrdinary := ordinaryIncome.Sub(deduction)
	if taxableOrdinary.IsNegative() {
		taxableOrdinary = decimal.Zero
	}

	federal := FederalOrdinaryTax(taxableOrdinary, rec.FilingStatus, domain.FederalModelBracket, decimal.Zero)
	federal = federal.Add(CapitalGainsTax(preferentialIncome, taxableOrdinary, rec.FilingStatus, domain.FederalModelBracket, decimal.Zero))

	federalStandardDeduction, ok := refdata.StandardDeductions[string(rec.FilingStatus)]
	if !ok {
		federalStandardDeduction = refdata.StandardDeductions[string(domain.FilingSingle)]
	}
	state := StateTax(StateTaxInput{
		StateCode:                rec.StateOfResidence,
		Model:                    domain.StateModelEffective,
		OrdinaryIncome:           ordinaryBeforeSS,
		TaxableSocialSecurity:    ssTaxable,
		CapitalGains:             preferentialIncome,
		FederalStandardDeduction: federalStandardDeduction,
	})
	federal = federal.Sub(rec.TotalCredits)
	if federal.IsNegative() {
		federal = decimal.Zero
	}

	out := domain.TaxComputation{
		GrossIncome:           grossIncome,
		OrdinaryIncome:        ordinaryIncome,
		TaxableSocialSecurity: ssTaxable,
		Deduction:             deduction,
		PreferentialIncome:    preferentialIncome,
		ExcessCapitalLosses:   negativeOf(netCapitalGains).Sub(lossOffset),
		FederalTax:            federal,
		StateTax:              state,
	}
	if out.ExcessCapitalLosses.IsNegative() {
		out.ExcessCapitalLosses = decimal.Zero
	}

	if rec.Status != domain.TaxYearDraft {
		out.FederalTax = rec.RecordedFederalTax
		out.StateTax = rec.RecordedStateTax
		out.FromRecordedFiling = true
	}
	return out
}

func negativeOf(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return d.Abs()
	}
	return decimal.Zero
}

// standardOrItemized returns the standard deduction, or the itemized total
// (with the SALT cap applied to any "stateAndLocalTaxes" entry and the
// 7.5%-of-AGI floor applied to any "medicalExpenses" entry) when the record
// elects itemizing.
func standardOrItemized(rec domain.TaxYearRecord, agi decimal.Decimal) decimal.Decimal {
	if !rec.UseItemized {
		d, ok := refdata.StandardDeductions[string(rec.FilingStatus)]
		if !ok {
			d = refdata.StandardDeductions[string(domain.FilingSingle)]
		}
		return d
	}
	medicalFloor := agi.Mul(refdata.MedicalExpenseAGIFloorPct).Div(hundred)
	total := decimal.Zero
	for key, amount := range rec.ItemizedDeductions {
		switch key {
		case "stateAndLocalTaxes":
			if amount.GreaterThan(refdata.SALTCap) {
				amount = refdata.SALTCap
			}
		case "medicalExpenses":
			amount = amount.Sub(medicalFloor)
			if amount.IsNegative() {
				amount = decimal.Zero
			}
		}
		total = total.Add(amount)
	}
	return total
}
