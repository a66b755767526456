package simulation

import (
	"fmt"

	"github.com/retireplan/engine/internal/domain"
	"github.com/retireplan/engine/internal/refdata"
)

// ValidatePlanInput checks every invariant in spec §3 and returns a single
// *domain.ValidationError listing every violation found, or nil. Unlike the
// teacher's fail-fast InputParser.validateGenericConfiguration, this collects
// every failure before returning, per spec §6/§7.
func ValidatePlanInput(plan *domain.PlanInput) error {
	errs := &domain.ValidationError{}

	if plan.SchemaVersion != domain.SchemaVersion {
		errs.Add("schemaVersion", fmt.Sprintf("expected %q, got %q", domain.SchemaVersion, plan.SchemaVersion))
	}

	validatePerson(errs, "household.primary", plan.Household.Primary)

	h := plan.Household
	switch h.MaritalStatus {
	case domain.MaritalSingle:
		if h.Spouse != nil {
			errs.Add("household.spouse", "single household must not have a spouse")
		}
	case domain.MaritalMarried:
		if h.Spouse == nil {
			errs.Add("household.spouse", "married household requires a spouse")
		} else {
			validatePerson(errs, "household.spouse", *h.Spouse)
		}
	default:
		errs.Add("household.maritalStatus", fmt.Sprintf("unrecognized value %q", h.MaritalStatus))
	}

	if h.FilingStatus == domain.FilingMFJ && (h.MaritalStatus != domain.MaritalMarried || h.Spouse == nil) {
		errs.Add("household.filingStatus", "mfj requires married household with a spouse")
	}

	if !refdata.ValidStateCode(h.StateOfResidence) {
		errs.Add("household.stateOfResidence", fmt.Sprintf("unrecognized state code %q", h.StateOfResidence))
	}

	for i, acc := range plan.Accounts {
		validateAccount(errs, i, acc)
	}

	if plan.Spending.SurvivorSpendingAdjustmentPct.IsNegative() || plan.Spending.SurvivorSpendingAdjustmentPct.GreaterThan(hundred) {
		errs.Add("spending.survivorSpendingAdjustmentPct", "must be within [0,100]")
	}
	if plan.Spending.TargetAnnualSpend.IsNegative() {
		errs.Add("spending.targetAnnualSpend", "must be >= 0")
	}

	for i, s := range plan.IncomeStreams {
		if s.EndYear != nil && *s.EndYear < s.StartYear {
			errs.Add(fmt.Sprintf("incomeStreams[%d]", i), "endYear must be >= startYear")
		}
	}
	for i, a := range plan.Adjustments {
		if a.EndYear != nil && *a.EndYear < a.Year {
			errs.Add(fmt.Sprintf("adjustments[%d]", i), "endYear must be >= year")
		}
	}

	return errs.OrNil()
}

func validatePerson(errs *domain.ValidationError, path string, p domain.PersonProfile) {
	if p.LifeExpectancy < p.CurrentAge {
		errs.Add(path+".lifeExpectancy", "must be >= currentAge")
	}
	if p.LifeExpectancy < p.RetirementAge {
		errs.Add(path+".lifeExpectancy", "must be >= retirementAge")
	}
	impliedAge := domain.BaseCalendarYear - p.BirthYear
	diff := impliedAge - p.CurrentAge
	if diff < -2 || diff > 2 {
		errs.Add(path+".currentAge", "inconsistent with birthYear and the plan's base calendar year (tolerance +/-2)")
	}
	if p.SocialSecurity != nil {
		if p.SocialSecurity.ClaimAge < 62 || p.SocialSecurity.ClaimAge > 70 {
			errs.Add(path+".socialSecurity.claimAge", "must be within [62,70]")
		}
		if p.SocialSecurity.EstimatedMonthlyBenefitAtClaim.IsNegative() {
			errs.Add(path+".socialSecurity.estimatedMonthlyBenefitAtClaim", "must be >= 0")
		}
	}
}

func validateAccount(errs *domain.ValidationError, i int, acc domain.Account) {
	path := fmt.Sprintf("accounts[%d]", i)
	if acc.Owner == domain.OwnerJoint && acc.Type != domain.AccountTaxable {
		errs.Add(path+".owner", "joint-owned accounts must be type=taxable")
	}
	if acc.DeferredCompSchedule != nil && acc.Type != domain.AccountDeferredComp {
		errs.Add(path+".type", "accounts with a deferredCompSchedule must be type=deferredComp")
	}
	if acc.CurrentBalance.IsNegative() {
		errs.Add(path+".currentBalance", "must be >= 0")
	}
	if acc.ExpectedReturnPct.LessThan(negHundred) || acc.ExpectedReturnPct.GreaterThan(hundred) {
		errs.Add(path+".expectedReturnPct", "must be within [-100,100]")
	}
	if acc.FeePct.IsNegative() || acc.FeePct.GreaterThan(hundred) {
		errs.Add(path+".feePct", "must be within [0,100]")
	}
	if acc.DeferredCompSchedule != nil && acc.DeferredCompSchedule.StartYear > acc.DeferredCompSchedule.EndYear {
		errs.Add(path+".deferredCompSchedule", "startYear must be <= endYear")
	}
}
