package tax

import (
	"github.com/retireplan/engine/internal/domain"
	"github.com/retireplan/engine/internal/refdata"
	"github.com/shopspring/decimal"
)

var half = decimal.NewFromFloat(0.5)

func ssThresholds(filingStatus domain.FilingStatus) refdata.SocialSecurityProvisionalThresholds {
	switch filingStatus {
	case domain.FilingMFJ, domain.FilingSurvivor:
		return refdata.SSThresholdsMFJ
	default:
		return refdata.SSThresholdsSingle
	}
}

// TaxableSocialSecurity applies the IRS provisional-income test: up to 50%
// taxable in the middle band, up to 85% above the upper threshold.
func TaxableSocialSecurity(ssBenefits, otherOrdinaryIncome decimal.Decimal, filingStatus domain.FilingStatus) decimal.Decimal {
	if ssBenefits.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	thresholds := ssThresholds(filingStatus)
	provisionalIncome := otherOrdinaryIncome.Add(ssBenefits.Mul(half))

	switch {
	case provisionalIncome.LessThanOrEqual(thresholds.Lower):
		return decimal.Zero
	case provisionalIncome.LessThanOrEqual(thresholds.Upper):
		midBand := provisionalIncome.Sub(thresholds.Lower).Mul(half)
		return decimal.Min(ssBenefits.Mul(half), midBand)
	default:
		topBand := provisionalIncome.Sub(thresholds.Upper).Mul(decimal.NewFromFloat(0.85)).Add(thresholds.MidBandCap)
		return decimal.Min(ssBenefits.Mul(decimal.NewFromFloat(0.85)), topBand)
	}
}
