package refdata

import "github.com/shopspring/decimal"

// StandardDeductions are the 2025 federal standard deduction amounts by
// filing status (spec §6). Keyed by the domain.FilingStatus string value so
// callers in internal/simulation and internal/tax can index directly without
// importing domain into this leaf package.
var StandardDeductions = map[string]decimal.Decimal{
	"single":   decimal.NewFromInt(15000),
	"mfj":      decimal.NewFromInt(30000),
	"survivor": decimal.NewFromInt(30000),
	"hoh":      decimal.NewFromInt(22500),
}

// ExtraDeductionSingle65Plus is the additional standard deduction for a
// single/HOH filer aged 65 or older (spec §4.1 step 4).
var ExtraDeductionSingle65Plus = decimal.NewFromInt(1950)

// ExtraDeductionMFJ65PlusPerPerson is the additional standard deduction per
// qualifying spouse aged 65+ when filing MFJ or survivor (spec §4.1 step 4).
var ExtraDeductionMFJ65PlusPerPerson = decimal.NewFromInt(1550)

// SocialSecurityProvisionalThresholds are the base/upper provisional-income
// thresholds and the mid-band cap used by the taxable-Social-Security
// calculation (spec §4.1 step 9, GLOSSARY).
type SocialSecurityProvisionalThresholds struct {
	Lower      decimal.Decimal
	Upper      decimal.Decimal
	MidBandCap decimal.Decimal
}

// SSThresholdsSingle applies to single/hoh filers.
var SSThresholdsSingle = SocialSecurityProvisionalThresholds{
	Lower:      decimal.NewFromInt(25000),
	Upper:      decimal.NewFromInt(34000),
	MidBandCap: decimal.NewFromFloat(4500),
}

// SSThresholdsMFJ applies to mfj/survivor filers.
var SSThresholdsMFJ = SocialSecurityProvisionalThresholds{
	Lower:      decimal.NewFromInt(32000),
	Upper:      decimal.NewFromInt(44000),
	MidBandCap: decimal.NewFromInt(6000),
}

// SALTCap is the state-and-local-tax itemized deduction cap used by the
// standalone tax module (spec §4.2), distinguishing it from the engine's
// in-loop tax math which assumes a clean user-supplied deduction.
var SALTCap = decimal.NewFromInt(10000)

// MedicalExpenseAGIFloorPct is the AGI floor below which itemized medical
// expenses are not deductible (spec §4.2).
var MedicalExpenseAGIFloorPct = decimal.NewFromFloat(7.5)
