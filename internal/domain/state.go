package domain

import "github.com/shopspring/decimal"

// BaseCalendarYear anchors year index 0. Hardcoded per spec §4.1 for
// reproducibility of golden tests; see Open Questions in DESIGN.md.
const BaseCalendarYear = 2026

// AccountState is the mutable per-run mirror of a plan Account.
type AccountState struct {
	Account
	Balance   decimal.Decimal
	CostBasis decimal.Decimal
}

// SimulationState is the mutable, single-run state threaded through the
// 13-step pipeline. It is exclusively owned by one Simulate call.
type SimulationState struct {
	Plan    *PlanInput
	Accounts []AccountState

	CurrentYear int // calendar year
	YearIndex   int // 0-based offset from BaseCalendarYear

	PriorYearTotalTaxDollars decimal.Decimal
	PriorYearRebalanceGains  decimal.Decimal

	ScenarioReturns   []decimal.Decimal
	ScenarioInflation []decimal.Decimal

	CumulativeInflationByYear []decimal.Decimal
	BaselineReturn            decimal.Decimal

	SurvivorTransitioned   bool
	FirstSurvivorYearIndex int

	// PriorYearEndBalances snapshots each tax-deferred account's prior
	// year-end balance, taken before step 2 applies growth; RMDs (step 5)
	// are computed from this snapshot per IRS rule.
	PriorYearEndBalances map[string]decimal.Decimal
}

// AccountByID returns a pointer to the account state with the given id, or nil.
func (s *SimulationState) AccountByID(id string) *AccountState {
	for i := range s.Accounts {
		if s.Accounts[i].ID == id {
			return &s.Accounts[i]
		}
	}
	return nil
}

// AccountSnapshot is a shallow (balance, costBasis) pair used by the
// convergence loop to restore account state between iterations without
// touching anything else on AccountState.
type AccountSnapshot struct {
	Balance   decimal.Decimal
	CostBasis decimal.Decimal
}

// Snapshot captures (balance, costBasis) for every account, keyed by id.
func (s *SimulationState) Snapshot() map[string]AccountSnapshot {
	snap := make(map[string]AccountSnapshot, len(s.Accounts))
	for _, a := range s.Accounts {
		snap[a.ID] = AccountSnapshot{Balance: a.Balance, CostBasis: a.CostBasis}
	}
	return snap
}

// Restore writes a previously captured snapshot back onto the accounts.
func (s *SimulationState) Restore(snap map[string]AccountSnapshot) {
	for i := range s.Accounts {
		if v, ok := snap[s.Accounts[i].ID]; ok {
			s.Accounts[i].Balance = v.Balance
			s.Accounts[i].CostBasis = v.CostBasis
		}
	}
}
