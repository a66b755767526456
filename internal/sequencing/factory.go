package sequencing

import "github.com/retireplan/engine/internal/domain"

// CreateStrategy resolves a domain.WithdrawalOrder to its Strategy
// implementation, falling back to TaxableFirst for an unrecognized value
// the way the teacher's CreateStrategy falls back to "standard".
func CreateStrategy(order domain.WithdrawalOrder) Strategy {
	switch order {
	case domain.OrderTaxableFirst:
		return NewTaxableFirstStrategy()
	case domain.OrderTaxDeferredFirst:
		return NewTaxDeferredFirstStrategy()
	case domain.OrderProRata:
		return NewProRataStrategy()
	case domain.OrderTaxOptimized:
		return NewTaxOptimizedStrategy()
	default:
		return NewTaxableFirstStrategy()
	}
}
