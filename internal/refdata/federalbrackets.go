package refdata

import "github.com/shopspring/decimal"

// FederalBracket is one marginal federal income tax bracket.
type FederalBracket struct {
	UpperBound decimal.Decimal // exclusive; the last bracket's UpperBound is unbounded (zero value)
	Rate       decimal.Decimal
}

func fb(upper float64, rate float64) FederalBracket {
	var u decimal.Decimal
	if upper > 0 {
		u = decimal.NewFromFloat(upper)
	}
	return FederalBracket{UpperBound: u, Rate: decimal.NewFromFloat(rate)}
}

// FederalBracketsSingle are the 2025 single-filer marginal brackets.
var FederalBracketsSingle = []FederalBracket{
	fb(11925, 0.10),
	fb(48475, 0.12),
	fb(103350, 0.22),
	fb(197300, 0.24),
	fb(250525, 0.32),
	fb(626350, 0.35),
	fb(0, 0.37),
}

// FederalBracketsMFJ are the 2025 married-filing-jointly brackets. Qualifying
// surviving spouse (domain.FilingSurvivor) uses these same brackets per IRS
// rules for the two years following the spouse's death.
var FederalBracketsMFJ = []FederalBracket{
	fb(23850, 0.10),
	fb(96950, 0.12),
	fb(206700, 0.22),
	fb(394600, 0.24),
	fb(501050, 0.32),
	fb(751600, 0.35),
	fb(0, 0.37),
}

// FederalBracketsHOH are the 2025 head-of-household brackets.
var FederalBracketsHOH = []FederalBracket{
	fb(17000, 0.10),
	fb(64850, 0.12),
	fb(103350, 0.22),
	fb(197300, 0.24),
	fb(250500, 0.32),
	fb(626350, 0.35),
	fb(0, 0.37),
}

// FederalBracketsFor returns the bracket table for a domain.FilingStatus
// string value, keyed the same way refdata.StandardDeductions is.
func FederalBracketsFor(filingStatus string) []FederalBracket {
	switch filingStatus {
	case "mfj", "survivor":
		return FederalBracketsMFJ
	case "hoh":
		return FederalBracketsHOH
	default:
		return FederalBracketsSingle
	}
}

// CapitalGainsBracket mirrors the 0/15/20% long-term capital gains brackets.
type CapitalGainsBracket struct {
	UpperBound decimal.Decimal
	Rate       decimal.Decimal
}

// CapGainsBracketsSingle are the 2025 single-filer LTCG thresholds.
var CapGainsBracketsSingle = []CapitalGainsBracket{
	{UpperBound: decimal.NewFromInt(48350), Rate: decimal.Zero},
	{UpperBound: decimal.NewFromInt(533400), Rate: decimal.NewFromFloat(0.15)},
	{UpperBound: decimal.Zero, Rate: decimal.NewFromFloat(0.20)},
}

// CapGainsBracketsMFJ are the 2025 MFJ/survivor LTCG thresholds.
var CapGainsBracketsMFJ = []CapitalGainsBracket{
	{UpperBound: decimal.NewFromInt(96700), Rate: decimal.Zero},
	{UpperBound: decimal.NewFromInt(600050), Rate: decimal.NewFromFloat(0.15)},
	{UpperBound: decimal.Zero, Rate: decimal.NewFromFloat(0.20)},
}

// CapGainsBracketsFor returns the LTCG bracket table for a filing status.
func CapGainsBracketsFor(filingStatus string) []CapitalGainsBracket {
	if filingStatus == "mfj" || filingStatus == "survivor" {
		return CapGainsBracketsMFJ
	}
	return CapGainsBracketsSingle
}
