// Package refdata holds the process-wide, read-only reference tables the
// simulation and tax packages consult: state tax rules, the IRS RMD Uniform
// Lifetime Table, and standard deduction amounts (spec §6). All tables are
// initialized once from embedded Go literals; there is no I/O and no
// teardown, matching the "reference data tables are process-wide read-only
// constants" requirement of spec §5.
package refdata

import "github.com/shopspring/decimal"

// TaxBracket is one marginal bracket: tax at Rate applies to income above
// the previous bracket's UpperBound and at or below this one's.
type TaxBracket struct {
	UpperBound decimal.Decimal
	Rate       decimal.Decimal
}

// SSExemption describes how a state treats Social Security income for tax
// purposes. Mirrors domain.SSExemption without importing domain, so refdata
// stays a leaf package.
type SSExemption string

const (
	SSExemptYes     SSExemption = "yes"
	SSExemptNo      SSExemption = "no"
	SSExemptPartial SSExemption = "partial"
)

// StateTaxRule is one state's (or DC's) flat-rate tax profile plus the
// progressive bracket table carried for the standalone tax module (spec §6);
// the engine's in-loop state computation always uses the flat IncomeRate
// per the Open Questions noted in spec §9.
type StateTaxRule struct {
	StateCode                   string
	StateName                   string
	IncomeRate                  decimal.Decimal
	CapitalGainsRate            decimal.Decimal
	SSTaxExempt                 SSExemption
	StateStandardDeduction      *decimal.Decimal
	Brackets                    []TaxBracket
	CapitalGainsThreshold       *decimal.Decimal
	CapitalGainsExcludesQualDivs bool
}

func pct(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func dollars(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

// noIncomeTax states levy no broad personal income tax.
var noIncomeTaxStates = map[string]bool{
	"AK": true, "FL": true, "NV": true, "NH": true,
	"SD": true, "TN": true, "TX": true, "WA": true, "WY": true,
}

// StateTaxTable is the 50-state + DC reference table (spec §6).
// Rates are representative flat effective rates, not a literal transcription
// of any state's current bracket schedule; progressive Brackets are carried
// for completeness but unused by either tax consumer in v1 (spec §9).
var StateTaxTable = buildStateTaxTable()

func buildStateTaxTable() map[string]StateTaxRule {
	names := map[string]string{
		"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
		"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
		"DC": "District of Columbia", "FL": "Florida", "GA": "Georgia", "HI": "Hawaii",
		"ID": "Idaho", "IL": "Illinois", "IN": "Indiana", "IA": "Iowa",
		"KS": "Kansas", "KY": "Kentucky", "LA": "Louisiana", "ME": "Maine",
		"MD": "Maryland", "MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota",
		"MS": "Mississippi", "MO": "Missouri", "MT": "Montana", "NE": "Nebraska",
		"NV": "Nevada", "NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico",
		"NY": "New York", "NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio",
		"OK": "Oklahoma", "OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island",
		"SC": "South Carolina", "SD": "South Dakota", "TN": "Tennessee", "TX": "Texas",
		"UT": "Utah", "VT": "Vermont", "VA": "Virginia", "WA": "Washington",
		"WV": "West Virginia", "WI": "Wisconsin", "WY": "Wyoming",
	}

	// flatRates holds a representative effective income-tax rate (pct) for
	// states with a broad-based income tax; absent entries fall back to a
	// 5.0% default, except for noIncomeTaxStates which are forced to 0.
	flatRates := map[string]float64{
		"AL": 5.0, "AZ": 2.5, "AR": 4.4, "CA": 9.3, "CO": 4.4, "CT": 5.5,
		"DE": 5.55, "DC": 8.5, "GA": 5.39, "HI": 7.9, "ID": 5.8, "IL": 4.95,
		"IN": 3.05, "IA": 3.8, "KS": 5.2, "KY": 4.0, "LA": 3.0, "ME": 6.75,
		"MD": 4.75, "MA": 5.0, "MI": 4.25, "MN": 7.85, "MS": 4.7, "MO": 4.8,
		"MT": 5.9, "NE": 5.2, "NJ": 6.37, "NM": 4.9, "NY": 6.85, "NC": 4.5,
		"ND": 2.5, "OH": 3.5, "OK": 4.75, "OR": 8.75, "PA": 3.07, "RI": 5.99,
		"SC": 6.4, "UT": 4.65, "VT": 6.6, "VA": 5.75, "WV": 5.12, "WI": 5.3,
	}

	// waThreshold reflects the only state in this table with
	// a capital-gains-only tax above a threshold (spec §4.1 step 9).
	waThreshold := dollars(250000)

	table := make(map[string]StateTaxRule, len(names))
	for code, name := range names {
		rate := flatRates[code]
		if noIncomeTaxStates[code] {
			rate = 0
		} else if rate == 0 {
			rate = 5.0
		}

		rule := StateTaxRule{
			StateCode:        code,
			StateName:        name,
			IncomeRate:       pct(rate),
			CapitalGainsRate: pct(rate),
			SSTaxExempt:      SSExemptYes,
		}

		switch code {
		case "WA":
			rule.CapitalGainsRate = pct(7.0)
			rule.CapitalGainsThreshold = waThreshold
			rule.CapitalGainsExcludesQualDivs = true
		case "MN", "VT", "CO", "NM", "UT", "MT", "WV", "CT", "RI", "NE", "ND", "KS":
			rule.SSTaxExempt = SSExemptPartial
		}

		table[code] = rule
	}
	return table
}

// LookupState returns the tax rule for a state code, and whether it exists.
func LookupState(code string) (StateTaxRule, bool) {
	r, ok := StateTaxTable[code]
	return r, ok
}

// ValidStateCode reports whether code is a recognized state/DC code.
func ValidStateCode(code string) bool {
	_, ok := StateTaxTable[code]
	return ok
}
