package domain

import "github.com/shopspring/decimal"

// MandatoryIncome aggregates step-3 income sources before withdrawals are solved.
type MandatoryIncome struct {
	SocialSecurity        decimal.Decimal
	NQDCDistributions     decimal.Decimal
	PensionAndOther       decimal.Decimal
	TaxablePensionAndOther decimal.Decimal
	TaxableAdjustments    decimal.Decimal
	NonTaxableAdjustments decimal.Decimal
	Total                 decimal.Decimal
}

// YearResult is the deterministic, per-year output of the simulation (spec §4.1 step 13).
type YearResult struct {
	Year            int          `json:"year"`
	AgePrimary      int          `json:"agePrimary"`
	AgeSpouse       int          `json:"ageSpouse,omitempty"`
	IsSurvivorPhase bool         `json:"isSurvivorPhase"`
	FilingStatus    FilingStatus `json:"filingStatus"`

	TargetSpend  decimal.Decimal `json:"targetSpend"`
	ActualSpend  decimal.Decimal `json:"actualSpend"`
	GrossIncome  decimal.Decimal `json:"grossIncome"`

	SocialSecurityIncome   decimal.Decimal `json:"socialSecurityIncome"`
	NQDCDistributions      decimal.Decimal `json:"nqdcDistributions"`
	RMDTotal               decimal.Decimal `json:"rmdTotal"`
	PensionAndOtherIncome  decimal.Decimal `json:"pensionAndOtherIncome"`
	RothWithdrawals        decimal.Decimal `json:"rothWithdrawals"`

	WithdrawalsByAccount map[string]decimal.Decimal `json:"withdrawalsByAccount"`

	TaxesFederal decimal.Decimal `json:"taxesFederal"`
	TaxesState   decimal.Decimal `json:"taxesState"`

	TaxableOrdinaryIncome decimal.Decimal `json:"taxableOrdinaryIncome"`
	TaxableCapitalGains   decimal.Decimal `json:"taxableCapitalGains"`

	NetSpendable decimal.Decimal `json:"netSpendable"`
	Shortfall    decimal.Decimal `json:"shortfall"`
	Surplus      decimal.Decimal `json:"surplus"`

	EndBalanceByAccount map[string]decimal.Decimal `json:"endBalanceByAccount"`
	CostBasisByAccount  map[string]decimal.Decimal `json:"costBasisByAccount"`

	// ConvergenceIterations records how many fixed-point iterations step 7-9
	// took to converge this year; capped at MaxConvergenceIterations.
	ConvergenceIterations int  `json:"convergenceIterations"`
	ConvergenceWarning    bool `json:"convergenceWarning"`
}

// AssumptionsUsed echoes the resolved assumptions for a run (spec §6).
type AssumptionsUsed struct {
	SimulationMode          SimulationMode     `json:"simulationMode"`
	InflationPct            decimal.Decimal    `json:"inflationPct"`
	FederalEffectiveRatePct decimal.Decimal    `json:"federalEffectiveRatePct"`
	CapGainsRatePct         decimal.Decimal    `json:"capGainsRatePct"`
	WithdrawalOrder         WithdrawalOrder    `json:"withdrawalOrder"`
	RebalanceFrequency      RebalanceFrequency `json:"rebalanceFrequency"`
	GuardrailsEnabled       bool               `json:"guardrailsEnabled"`
	Horizon                 int                `json:"horizon"`
	BaseCalendarYear        int                `json:"baseCalendarYear"`
}

// Summary is the headline result of a plan run (spec §6).
type Summary struct {
	SuccessProbability  decimal.Decimal  `json:"successProbability"`
	MedianTerminalValue decimal.Decimal  `json:"medianTerminalValue"`
	WorstCaseShortfall  *decimal.Decimal `json:"worstCaseShortfall,omitempty"`
}

// PlanResult is the full egress of a simulation run (spec §6).
type PlanResult struct {
	Summary         Summary          `json:"summary"`
	Yearly          []YearResult     `json:"yearly"`
	AssumptionsUsed AssumptionsUsed  `json:"assumptionsUsed"`
}
