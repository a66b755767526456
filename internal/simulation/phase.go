package simulation

import "github.com/retireplan/engine/internal/domain"

// PhaseResult is step 1's output: ages, alive flags, survivor phase, and the
// resolved filing status for the year (spec §4.1 step 1).
type PhaseResult struct {
	AgePrimary      int
	AgeSpouse       int
	PrimaryAlive    bool
	SpouseAlive     bool
	IsSurvivorPhase bool
	BothDead        bool
	FilingStatus    domain.FilingStatus
}

func ageAndAlive(person domain.PersonProfile, yearIndex int) (age int, alive bool) {
	deathYearIndex := person.LifeExpectancy - person.CurrentAge
	alive = yearIndex < deathYearIndex
	age = person.CurrentAge + yearIndex
	if age > person.LifeExpectancy {
		age = person.LifeExpectancy
	}
	return age, alive
}

// determinePhase executes step 1, including the one-time ownership rewrite
// on the first survivor year.
func determinePhase(state *domain.SimulationState, y int) PhaseResult {
	plan := state.Plan
	result := PhaseResult{}

	result.AgePrimary, result.PrimaryAlive = ageAndAlive(plan.Household.Primary, y)

	hasSpouse := plan.Household.Spouse != nil
	spouseAlive := true
	if hasSpouse {
		result.AgeSpouse, spouseAlive = ageAndAlive(*plan.Household.Spouse, y)
		result.SpouseAlive = spouseAlive
	}

	result.BothDead = hasSpouse && !result.PrimaryAlive && !spouseAlive
	result.IsSurvivorPhase = hasSpouse && (result.PrimaryAlive != spouseAlive) && !result.BothDead

	if result.IsSurvivorPhase && !state.SurvivorTransitioned {
		state.SurvivorTransitioned = true
		state.FirstSurvivorYearIndex = y
		transferOwnership(state, result)
	}

	switch {
	case result.BothDead:
		result.FilingStatus = domain.FilingSingle
	case result.IsSurvivorPhase:
		if y-state.FirstSurvivorYearIndex < 2 {
			result.FilingStatus = domain.FilingMFJ
		} else {
			result.FilingStatus = domain.FilingSingle
		}
	default:
		result.FilingStatus = plan.Household.FilingStatus
	}

	return result
}

// transferOwnership rewrites every account owned by the deceased spouse (or
// jointly) to the survivor, once, at the first survivor year (spec §9:
// "Ownership on death").
func transferOwnership(state *domain.SimulationState, phase PhaseResult) {
	var deceased, survivor domain.AccountOwner
	if phase.PrimaryAlive {
		deceased, survivor = domain.OwnerSpouse, domain.OwnerPrimary
	} else {
		deceased, survivor = domain.OwnerPrimary, domain.OwnerSpouse
	}
	for i := range state.Accounts {
		owner := state.Accounts[i].Owner
		if owner == deceased || owner == domain.OwnerJoint {
			state.Accounts[i].Owner = survivor
		}
	}
}
