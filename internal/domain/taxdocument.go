package domain

import "github.com/shopspring/decimal"

// TaxYearRecord is a single filed/draft tax year, consumed by the standalone
// tax computation module (spec §4.2) independent of the simulation engine.
type TaxYearRecord struct {
	Year         int           `json:"year"`
	FilingStatus FilingStatus  `json:"filingStatus"`
	Status       TaxYearStatus `json:"status"`

	// Recorded numbers, authoritative when Status is filed/amended.
	RecordedFederalTax decimal.Decimal `json:"recordedFederalTax,omitempty"`
	RecordedStateTax   decimal.Decimal `json:"recordedStateTax,omitempty"`

	// Income components.
	Wages                 decimal.Decimal `json:"wages"`
	InterestIncome        decimal.Decimal `json:"interestIncome"`
	OrdinaryDividends     decimal.Decimal `json:"ordinaryDividends"`
	QualifiedDividends    decimal.Decimal `json:"qualifiedDividends"`
	RetirementDistributions decimal.Decimal `json:"retirementDistributions"`
	CapitalGains          decimal.Decimal `json:"capitalGains"`
	CapitalLosses         decimal.Decimal `json:"capitalLosses"`
	SocialSecurityBenefits decimal.Decimal `json:"socialSecurityBenefits"`
	SelfEmploymentIncome  decimal.Decimal `json:"selfEmploymentIncome"`
	RentsAndOther         decimal.Decimal `json:"rentsAndOther"`
	OtherIncome           decimal.Decimal `json:"otherIncome"`

	// Deductions.
	UseItemized       bool            `json:"useItemized"`
	ItemizedDeductions map[string]decimal.Decimal `json:"itemizedDeductions,omitempty"`
	TotalCredits      decimal.Decimal `json:"totalCredits"`

	StateOfResidence string `json:"stateOfResidence"`

	// Payments withheld, used for checklist estimated-payment detection.
	EstimatedPaymentsMade bool `json:"estimatedPaymentsMade"`
}

// TaxComputation is the result of ComputeTaxYear (spec §4.2).
type TaxComputation struct {
	GrossIncome            decimal.Decimal
	OrdinaryIncome         decimal.Decimal
	TaxableSocialSecurity  decimal.Decimal
	Deduction              decimal.Decimal
	PreferentialIncome     decimal.Decimal
	ExcessCapitalLosses    decimal.Decimal
	FederalTax             decimal.Decimal
	StateTax               decimal.Decimal
	FromRecordedFiling     bool
}

// DocumentRef identifies one tax-related document by form type and issuer,
// shared by the anomaly detector (§4.3) and checklist generator (§4.4).
type DocumentRef struct {
	FormType       string `json:"formType"`
	IssuerName     string `json:"issuerName"`
}
