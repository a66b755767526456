package tax

import (
	"testing"

	"github.com/retireplan/engine/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func TestFederalOrdinaryTax_EffectiveModel(t *testing.T) {
	tax := FederalOrdinaryTax(d(50000), domain.FilingSingle, domain.FederalModelEffective, d(12))
	assert.True(t, tax.Equal(d(6000)))
}

func TestFederalOrdinaryTax_ZeroOrNegativeIncome(t *testing.T) {
	assert.True(t, FederalOrdinaryTax(d(0), domain.FilingSingle, domain.FederalModelEffective, d(12)).IsZero())
	assert.True(t, FederalOrdinaryTax(d(-100), domain.FilingSingle, domain.FederalModelEffective, d(12)).IsZero())
}

func TestFederalOrdinaryTax_BracketModelIsProgressive(t *testing.T) {
	low := FederalOrdinaryTax(d(10000), domain.FilingSingle, domain.FederalModelBracket, d(0))
	high := FederalOrdinaryTax(d(100000), domain.FilingSingle, domain.FederalModelBracket, d(0))
	// effective rate on the larger income should be at least as high as on the
	// smaller income under a progressive schedule
	assert.True(t, high.Div(d(100000)).GreaterThanOrEqual(low.Div(d(10000))))
	assert.True(t, high.GreaterThan(low))
}

func TestCapitalGainsTax_EffectiveModel(t *testing.T) {
	tax := CapitalGainsTax(d(20000), d(40000), domain.FilingSingle, domain.FederalModelEffective, d(15))
	assert.True(t, tax.Equal(d(3000)))
}

func TestCapitalGainsTax_ZeroWhenNoGains(t *testing.T) {
	assert.True(t, CapitalGainsTax(d(0), d(40000), domain.FilingSingle, domain.FederalModelEffective, d(15)).IsZero())
}

func TestTaxableSocialSecurity_BelowLowerThreshold(t *testing.T) {
	taxable := TaxableSocialSecurity(d(20000), d(10000), domain.FilingSingle)
	assert.True(t, taxable.IsZero())
}

func TestTaxableSocialSecurity_MidBand(t *testing.T) {
	// provisional income = 20000(other) + 0.5*20000(ss) = 30000, above single's
	// 25000 lower threshold but below the 34000 upper one
	taxable := TaxableSocialSecurity(d(20000), d(20000), domain.FilingSingle)
	assert.True(t, taxable.GreaterThan(decimal.Zero))
	assert.True(t, taxable.LessThanOrEqual(d(20000).Mul(d(0.5))))
}

func TestTaxableSocialSecurity_TopBandCapsAt85Pct(t *testing.T) {
	taxable := TaxableSocialSecurity(d(40000), d(200000), domain.FilingSingle)
	assert.True(t, taxable.Equal(d(40000).Mul(d(0.85))))
}

func TestTaxableSocialSecurity_ZeroBenefits(t *testing.T) {
	assert.True(t, TaxableSocialSecurity(d(0), d(50000), domain.FilingSingle).IsZero())
}

func TestStateTax_NoneModelIsZero(t *testing.T) {
	tax := StateTax(StateTaxInput{StateCode: "WA", Model: domain.StateModelNone, OrdinaryIncome: d(100000)})
	assert.True(t, tax.IsZero())
}

func TestStateTax_EffectiveOverrideWins(t *testing.T) {
	rate := d(9.3)
	tax := StateTax(StateTaxInput{
		StateCode:                "CA",
		Model:                    domain.StateModelEffective,
		EffectiveRatePctOverride: &rate,
		OrdinaryIncome:           d(100000),
	})
	assert.True(t, tax.GreaterThan(decimal.Zero))
}

func TestStateTax_UnknownStateIsZero(t *testing.T) {
	tax := StateTax(StateTaxInput{StateCode: "ZZ", Model: domain.StateModelEffective, OrdinaryIncome: d(100000)})
	assert.True(t, tax.IsZero())
}

func TestStateTax_PartialSSExemptionHalvesTaxableSS(t *testing.T) {
	// CO partially exempts Social Security: only half of the federal taxable
	// SS amount should enter the state ordinary base.
	withSS := StateTax(StateTaxInput{
		StateCode:             "CO",
		Model:                 domain.StateModelEffective,
		OrdinaryIncome:        d(50000),
		TaxableSocialSecurity: d(20000),
	})
	withoutSS := StateTax(StateTaxInput{
		StateCode:      "CO",
		Model:          domain.StateModelEffective,
		OrdinaryIncome: d(60000), // 50000 + half of 20000
	})
	assert.True(t, withSS.Equal(withoutSS), "partial-exemption state should tax only half of taxableSS: %s vs %s", withSS, withoutSS)
}

func TestComputeYear_NoStateTaxInWA(t *testing.T) {
	out := ComputeYear(YearInput{
		FilingStatus:      domain.FilingSingle,
		StateCode:         "WA",
		StandardDeduction: d(15000),
		OtherOrdinaryIncome: d(60000),
		CapitalGains:      d(10000),
		Config: domain.TaxConfig{
			FederalModel:            domain.FederalModelEffective,
			StateModel:              domain.StateModelNone,
			FederalEffectiveRatePct: d(12),
			CapGainsRatePct:         d(15),
		},
	})
	assert.True(t, out.StateTax.IsZero())
	assert.True(t, out.FederalTax.GreaterThan(decimal.Zero))
	assert.True(t, out.TaxableOrdinaryIncome.Equal(d(45000)))
}

func TestComputeYear_SocialSecurityLayeredBeforeDeduction(t *testing.T) {
	out := ComputeYear(YearInput{
		FilingStatus:           domain.FilingSingle,
		StateCode:              "WA",
		StandardDeduction:      d(15000),
		SocialSecurityBenefits: d(20000),
		OtherOrdinaryIncome:    d(30000),
		Config: domain.TaxConfig{
			FederalModel:            domain.FederalModelEffective,
			StateModel:              domain.StateModelNone,
			FederalEffectiveRatePct: d(12),
			CapGainsRatePct:         d(15),
		},
	})
	assert.True(t, out.TaxableSocialSecurity.GreaterThan(decimal.Zero))
	assert.True(t, out.TaxableOrdinaryIncome.Equal(d(30000).Add(out.TaxableSocialSecurity).Sub(d(15000))))
}
