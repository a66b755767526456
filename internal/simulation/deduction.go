package simulation

import (
	"github.com/retireplan/engine/internal/domain"
	"github.com/retireplan/engine/internal/refdata"
	"github.com/shopspring/decimal"
)

// computeStandardDeduction executes step 4: the base standard deduction for
// the year's filing status, inflated from the base year, plus any 65+
// catch-up amounts, unless the plan overrides it outright.
func computeStandardDeduction(state *domain.SimulationState, phase PhaseResult, y int) decimal.Decimal {
	if override := state.Plan.Tax.StandardDeductionOverride; override != nil {
		return *override
	}

	base, ok := refdata.StandardDeductions[string(phase.FilingStatus)]
	if !ok {
		base = refdata.StandardDeductions[string(domain.FilingSingle)]
	}
	inflated := base.Mul(state.CumulativeInflationByYear[y])

	inflated = inflated.Add(catchUpDeduction(phase).Mul(state.CumulativeInflationByYear[y]))
	return inflated
}

// catchUpDeduction adds the extra standard deduction for filers aged 65+,
// counted per qualifying living spouse under mfj/survivor.
func catchUpDeduction(phase PhaseResult) decimal.Decimal {
	switch phase.FilingStatus {
	case domain.FilingMFJ, domain.FilingSurvivor:
		extra := decimal.Zero
		if phase.PrimaryAlive && phase.AgePrimary >= 65 {
			extra = extra.Add(refdata.ExtraDeductionMFJ65PlusPerPerson)
		}
		if phase.SpouseAlive && phase.AgeSpouse >= 65 {
			extra = extra.Add(refdata.ExtraDeductionMFJ65PlusPerPerson)
		}
		return extra
	default:
		survivingAge := phase.AgePrimary
		if !phase.PrimaryAlive {
			survivingAge = phase.AgeSpouse
		}
		if survivingAge >= 65 {
			return refdata.ExtraDeductionSingle65Plus
		}
		return decimal.Zero
	}
}
