package sequencing

import "github.com/retireplan/engine/internal/domain"

// TaxDeferredFirstStrategy draws taxDeferred -> deferredComp -> taxable ->
// roth (spec §4.1 step 8).
type TaxDeferredFirstStrategy struct{}

func NewTaxDeferredFirstStrategy() *TaxDeferredFirstStrategy { return &TaxDeferredFirstStrategy{} }

func (s *TaxDeferredFirstStrategy) Name() domain.WithdrawalOrder { return domain.OrderTaxDeferredFirst }

func (s *TaxDeferredFirstStrategy) Plan(sources []Source, ctx Context) Plan {
	order := []domain.AccountType{
		domain.AccountTaxDeferred, domain.AccountDeferredComp, domain.AccountTaxable, domain.AccountRoth,
	}
	return drawOrdered(orderByType(sources, order), ctx.Target)
}
