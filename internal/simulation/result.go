package simulation

import (
	"github.com/retireplan/engine/internal/domain"
	"github.com/shopspring/decimal"
)

// yearInputs bundles everything result.go needs to assemble a YearResult,
// so engine.go's per-year loop stays readable.
type yearInputs struct {
	CalendarYear    int
	Phase           PhaseResult
	Mandatory       domain.MandatoryIncome
	RMDTotal        decimal.Decimal
	TargetSpend     decimal.Decimal
	Withdrawal      withdrawalResult
	Split           netWorthSplit
	WithdrawalsByID map[string]decimal.Decimal
}

func rothWithdrawalsTotal(wr withdrawalResult) decimal.Decimal {
	total := decimal.Zero
	for _, a := range wr.Plan.Allocations {
		total = total.Add(a.TaxFree)
	}
	return total
}

// buildYearResult executes step 13: assembles the immutable YearResult for
// one simulated year from every prior step's output, and snapshots the
// post-rebalance account balances/cost basis for egress.
func buildYearResult(state *domain.SimulationState, in yearInputs) domain.YearResult {
	endBalances := make(map[string]decimal.Decimal, len(state.Accounts))
	costBases := make(map[string]decimal.Decimal, len(state.Accounts))
	for _, a := range state.Accounts {
		endBalances[a.ID] = a.Balance
		costBases[a.ID] = a.CostBasis
	}

	nonRothWithdrawals := in.Withdrawal.Plan.TotalSourced.Sub(rothWithdrawalsTotal(in.Withdrawal))
	grossIncome := in.Mandatory.Total.Add(in.RMDTotal).Add(nonRothWithdrawals)

	return domain.YearResult{
		Year:            in.CalendarYear,
		AgePrimary:      in.Phase.AgePrimary,
		AgeSpouse:       in.Phase.AgeSpouse,
		IsSurvivorPhase: in.Phase.IsSurvivorPhase,
		FilingStatus:    in.Phase.FilingStatus,

		TargetSpend: in.TargetSpend,
		ActualSpend: in.Split.ActualSpend,
		GrossIncome: grossIncome,

		SocialSecurityIncome:  in.Mandatory.SocialSecurity,
		NQDCDistributions:     in.Mandatory.NQDCDistributions,
		RMDTotal:              in.RMDTotal,
		PensionAndOtherIncome: in.Mandatory.PensionAndOther,
		RothWithdrawals:       rothWithdrawalsTotal(in.Withdrawal),

		WithdrawalsByAccount: in.WithdrawalsByID,

		TaxesFederal: in.Withdrawal.FederalTax,
		TaxesState:   in.Withdrawal.StateTax,

		TaxableOrdinaryIncome: in.Withdrawal.TaxableOrdinaryIncome,
		TaxableCapitalGains:   in.Withdrawal.TaxableCapitalGains,

		NetSpendable: in.Withdrawal.NetSpendable,
		Shortfall:    in.Split.Shortfall,
		Surplus:      in.Split.Surplus,

		EndBalanceByAccount: endBalances,
		CostBasisByAccount:  costBases,

		ConvergenceIterations: in.Withdrawal.Iterations,
		ConvergenceWarning:    in.Withdrawal.ConvergenceWarning,
	}
}
