package domain

import "github.com/shopspring/decimal"

// SchemaVersion is the only supported PlanInput schema version.
const SchemaVersion = "3.0.0"

// SocialSecurityClaim describes one person's Social Security claiming decision.
type SocialSecurityClaim struct {
	ClaimAge                     int             `yaml:"claimAge" json:"claimAge"`
	EstimatedMonthlyBenefitAtClaim decimal.Decimal `yaml:"estimatedMonthlyBenefitAtClaim" json:"estimatedMonthlyBenefitAtClaim"`
	ColaPct                       decimal.Decimal `yaml:"colaPct" json:"colaPct"`
}

// PersonProfile describes one member of the household.
type PersonProfile struct {
	ID              PersonID              `yaml:"id" json:"id"`
	BirthYear       int                    `yaml:"birthYear" json:"birthYear"`
	CurrentAge      int                    `yaml:"currentAge" json:"currentAge"`
	RetirementAge   int                    `yaml:"retirementAge" json:"retirementAge"`
	LifeExpectancy  int                    `yaml:"lifeExpectancy" json:"lifeExpectancy"`
	SocialSecurity  *SocialSecurityClaim   `yaml:"socialSecurity,omitempty" json:"socialSecurity,omitempty"`
}

// HouseholdProfile describes the household composition.
type HouseholdProfile struct {
	MaritalStatus    MaritalStatus  `yaml:"maritalStatus" json:"maritalStatus"`
	FilingStatus     FilingStatus   `yaml:"filingStatus" json:"filingStatus"`
	StateOfResidence string         `yaml:"stateOfResidence" json:"stateOfResidence"`
	Primary          PersonProfile  `yaml:"primary" json:"primary"`
	Spouse           *PersonProfile `yaml:"spouse,omitempty" json:"spouse,omitempty"`
}

// DeferredCompSchedule describes a fixed NQDC payout schedule.
type DeferredCompSchedule struct {
	StartYear         int             `yaml:"startYear" json:"startYear"`
	EndYear           int             `yaml:"endYear" json:"endYear"`
	Frequency         DeferredCompFrequency `yaml:"frequency" json:"frequency"`
	Amount            decimal.Decimal `yaml:"amount" json:"amount"`
	InflationAdjusted bool            `yaml:"inflationAdjusted" json:"inflationAdjusted"`
}

// Account is an immutable plan-level account definition.
type Account struct {
	ID                  string                `yaml:"id" json:"id"`
	Name                string                `yaml:"name" json:"name"`
	Type                AccountType           `yaml:"type" json:"type"`
	Owner               AccountOwner          `yaml:"owner" json:"owner"`
	CurrentBalance      decimal.Decimal       `yaml:"currentBalance" json:"currentBalance"`
	CostBasis           *decimal.Decimal      `yaml:"costBasis,omitempty" json:"costBasis,omitempty"`
	ExpectedReturnPct   decimal.Decimal       `yaml:"expectedReturnPct" json:"expectedReturnPct"`
	FeePct              decimal.Decimal       `yaml:"feePct" json:"feePct"`
	TargetAllocationPct *decimal.Decimal      `yaml:"targetAllocationPct,omitempty" json:"targetAllocationPct,omitempty"`
	DeferredCompSchedule *DeferredCompSchedule `yaml:"deferredCompSchedule,omitempty" json:"deferredCompSchedule,omitempty"`
}

// EffectiveCostBasis returns the account's configured cost basis, defaulting
// to the current balance for taxable accounts per spec §3.
func (a Account) EffectiveCostBasis() decimal.Decimal {
	if a.CostBasis != nil {
		return *a.CostBasis
	}
	if a.Type == AccountTaxable {
		return a.CurrentBalance
	}
	return decimal.Zero
}

// IncomeStream is a recurring income source (pension, annuity, etc.).
type IncomeStream struct {
	ID               string          `yaml:"id" json:"id"`
	Name             string          `yaml:"name" json:"name"`
	Owner            AccountOwner    `yaml:"owner" json:"owner"`
	StartYear        int             `yaml:"startYear" json:"startYear"`
	EndYear          *int            `yaml:"endYear,omitempty" json:"endYear,omitempty"`
	AnnualAmount     decimal.Decimal `yaml:"annualAmount" json:"annualAmount"`
	ColaPct          *decimal.Decimal `yaml:"colaPct,omitempty" json:"colaPct,omitempty"`
	Taxable          bool            `yaml:"taxable" json:"taxable"`
	SurvivorContinues bool           `yaml:"survivorContinues" json:"survivorContinues"`
}

// Active reports whether the stream is active in calendarYear for the given alive flags.
func (s IncomeStream) Active(calendarYear int, ownerAlive, survivorPhase bool) bool {
	if calendarYear < s.StartYear {
		return false
	}
	if s.EndYear != nil && calendarYear > *s.EndYear {
		return false
	}
	if ownerAlive {
		return true
	}
	return survivorPhase && s.SurvivorContinues
}

// Adjustment is a signed, time-bounded income adjustment.
type Adjustment struct {
	Year              int             `yaml:"year" json:"year"`
	EndYear           *int            `yaml:"endYear,omitempty" json:"endYear,omitempty"`
	Amount            decimal.Decimal `yaml:"amount" json:"amount"`
	Taxable           bool            `yaml:"taxable" json:"taxable"`
	InflationAdjusted bool            `yaml:"inflationAdjusted" json:"inflationAdjusted"`
}

// Active reports whether the adjustment applies in calendarYear.
func (a Adjustment) Active(calendarYear int) bool {
	end := a.Year
	if a.EndYear != nil {
		end = *a.EndYear
	}
	return a.Year <= calendarYear && calendarYear <= end
}

// SpendingPlan is the household's target spending configuration.
type SpendingPlan struct {
	TargetAnnualSpend            decimal.Decimal  `yaml:"targetAnnualSpend" json:"targetAnnualSpend"`
	InflationPct                 decimal.Decimal  `yaml:"inflationPct" json:"inflationPct"`
	FloorAnnualSpend             *decimal.Decimal `yaml:"floorAnnualSpend,omitempty" json:"floorAnnualSpend,omitempty"`
	CeilingAnnualSpend           *decimal.Decimal `yaml:"ceilingAnnualSpend,omitempty" json:"ceilingAnnualSpend,omitempty"`
	SurvivorSpendingAdjustmentPct decimal.Decimal `yaml:"survivorSpendingAdjustmentPct" json:"survivorSpendingAdjustmentPct"`
}

// TaxConfig configures the federal/state tax model inputs.
type TaxConfig struct {
	FederalModel              FederalTaxModel  `yaml:"federalModel" json:"federalModel"`
	StateModel                StateTaxModel    `yaml:"stateModel" json:"stateModel"`
	FederalEffectiveRatePct   decimal.Decimal  `yaml:"federalEffectiveRatePct" json:"federalEffectiveRatePct"`
	StateEffectiveRatePct     *decimal.Decimal `yaml:"stateEffectiveRatePct,omitempty" json:"stateEffectiveRatePct,omitempty"`
	CapGainsRatePct           decimal.Decimal  `yaml:"capGainsRatePct" json:"capGainsRatePct"`
	StateCapGainsRatePct      *decimal.Decimal `yaml:"stateCapGainsRatePct,omitempty" json:"stateCapGainsRatePct,omitempty"`
	StandardDeductionOverride *decimal.Decimal `yaml:"standardDeductionOverride,omitempty" json:"standardDeductionOverride,omitempty"`
}

// MarketConfig configures the return/inflation generation mode.
type MarketConfig struct {
	SimulationMode             SimulationMode   `yaml:"simulationMode" json:"simulationMode"`
	DeterministicReturnPct     *decimal.Decimal `yaml:"deterministicReturnPct,omitempty" json:"deterministicReturnPct,omitempty"`
	DeterministicInflationPct  *decimal.Decimal `yaml:"deterministicInflationPct,omitempty" json:"deterministicInflationPct,omitempty"`
	MonteCarloRuns             *int             `yaml:"monteCarloRuns,omitempty" json:"monteCarloRuns,omitempty"`

	// ScenarioReturns/ScenarioInflation are an optional year-indexed overlay,
	// supplied by the caller (e.g. historical or stress-test sequences, or one
	// sampled path of a Monte Carlo run driven from outside the engine).
	ScenarioReturns   []decimal.Decimal `yaml:"scenarioReturns,omitempty" json:"scenarioReturns,omitempty"`
	ScenarioInflation []decimal.Decimal `yaml:"scenarioInflation,omitempty" json:"scenarioInflation,omitempty"`
}

// StrategyConfig configures the withdrawal and rebalancing strategy.
type StrategyConfig struct {
	WithdrawalOrder      WithdrawalOrder    `yaml:"withdrawalOrder" json:"withdrawalOrder"`
	RebalanceFrequency   RebalanceFrequency `yaml:"rebalanceFrequency" json:"rebalanceFrequency"`
	GuardrailsEnabled    bool               `yaml:"guardrailsEnabled" json:"guardrailsEnabled"`
}

// PlanInput is the full declarative retirement plan (ingress, spec §6).
type PlanInput struct {
	SchemaVersion string             `yaml:"schemaVersion" json:"schemaVersion"`
	Household     HouseholdProfile   `yaml:"household" json:"household"`
	Accounts      []Account          `yaml:"accounts" json:"accounts"`
	IncomeStreams []IncomeStream     `yaml:"incomeStreams" json:"incomeStreams"`
	Adjustments   []Adjustment       `yaml:"adjustments,omitempty" json:"adjustments,omitempty"`
	Spending      SpendingPlan       `yaml:"spending" json:"spending"`
	Tax           TaxConfig          `yaml:"tax" json:"tax"`
	Market        MarketConfig       `yaml:"market" json:"market"`
	Strategy      StrategyConfig     `yaml:"strategy" json:"strategy"`
}
