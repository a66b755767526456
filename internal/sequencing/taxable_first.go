package sequencing

import "github.com/retireplan/engine/internal/domain"

// TaxableFirstStrategy draws taxable -> taxDeferred -> deferredComp -> roth
// (spec §4.1 step 8).
type TaxableFirstStrategy struct{}

func NewTaxableFirstStrategy() *TaxableFirstStrategy { return &TaxableFirstStrategy{} }

func (s *TaxableFirstStrategy) Name() domain.WithdrawalOrder { return domain.OrderTaxableFirst }

func (s *TaxableFirstStrategy) Plan(sources []Source, ctx Context) Plan {
	order := []domain.AccountType{
		domain.AccountTaxable, domain.AccountTaxDeferred, domain.AccountDeferredComp, domain.AccountRoth,
	}
	return drawOrdered(orderByType(sources, order), ctx.Target)
}

// orderByType returns sources sorted into type-priority buckets, preserving
// within-bucket input order.
func orderByType(sources []Source, order []domain.AccountType) []Source {
	priority := make(map[domain.AccountType]int, len(order))
	for i, t := range order {
		priority[t] = i
	}
	out := make([]Source, len(sources))
	copy(out, sources)
	// stable insertion sort by priority; account counts are small per plan.
	for i := 1; i < len(out); i++ {
		j := i
		for j > 0 && priority[out[j-1].Type] > priority[out[j].Type] {
			out[j-1], out[j] = out[j], out[j-1]
			j--
		}
	}
	return out
}
