package simulation

import "github.com/shopspring/decimal"

var (
	hundred             = decimal.NewFromInt(100)
	negHundred          = decimal.NewFromInt(-100)
	hundredth           = decimal.NewFromFloat(0.01)
	zero                = decimal.Zero
	convergenceTolerance = decimal.NewFromInt(100) // dollars; spec §4.1 convergence loop
	maxConvergenceIterations = 12
)

// pctToFactor converts a percent value (e.g. 6 for 6%) to a growth factor addend (0.06).
func pctToFactor(pct decimal.Decimal) decimal.Decimal {
	return pct.Mul(hundredth)
}
