package sequencing

import (
	"github.com/retireplan/engine/internal/domain"
	"github.com/shopspring/decimal"
)

// ProRataStrategy weights every positive-balance account (including Roth)
// by its share of total balance; the last account absorbs rounding dust so
// the sum exactly equals min(target, totalBalance) (spec §4.1 step 8).
type ProRataStrategy struct{}

func NewProRataStrategy() *ProRataStrategy { return &ProRataStrategy{} }

func (s *ProRataStrategy) Name() domain.WithdrawalOrder { return domain.OrderProRata }

func (s *ProRataStrategy) Plan(sources []Source, ctx Context) Plan {
	plan := Plan{Requested: ctx.Target}

	var positive []Source
	total := decimal.Zero
	for _, src := range sources {
		if src.Balance.GreaterThan(decimal.Zero) {
			positive = append(positive, src)
			total = total.Add(src.Balance)
		}
	}
	if len(positive) == 0 || total.LessThanOrEqual(decimal.Zero) {
		plan.RemainingNeed = ctx.Target
		return plan
	}

	toSource := ctx.Target
	if toSource.GreaterThan(total) {
		toSource = total
	}

	allocated := decimal.Zero
	for i, src := range positive {
		var draw decimal.Decimal
		if i == len(positive)-1 {
			draw = toSource.Sub(allocated)
		} else {
			weight := src.Balance.Div(total)
			draw = toSource.Mul(weight)
			if draw.GreaterThan(src.Balance) {
				draw = src.Balance
			}
		}
		if draw.LessThan(decimal.Zero) {
			draw = decimal.Zero
		}
		sumAllocations(&plan, decomposeDraw(src, draw))
		allocated = allocated.Add(draw)
	}

	plan.RemainingNeed = ctx.Target.Sub(plan.TotalSourced)
	if plan.RemainingNeed.LessThan(decimal.Zero) {
		plan.RemainingNeed = decimal.Zero
	}
	return plan
}
