package deals

import (
	"github.com/de-tools/deal-atlas/pkg/models/domain"
	"github.com/samber/lo"
)

// PositionalRotation selects a slice of the product list per date:
//
//	0: the first 70%
//	1: 70% starting at 15%
//	2: everything from 30% on
//	other: every second product
//
// and reprices it with the rotation price table. Output keeps input order.
type PositionalRotation struct{}

var _ Strategy = (*PositionalRotation)(nil)

func PositionalRotationFactory(_ Options) (Strategy, error) {
	return &PositionalRotation{}, nil
}

func (s *PositionalRotation) Name() domain.StrategyName {
	return domain.StrategyPositional
}

func (s *PositionalRotation) Generate(base *domain.DealsDocument, params Params) (*domain.DealsDocument, error) {
	if len(base.Deals) == 0 {
		return base.WithDeals(params.Date, nil), nil
	}

	selected := cloneDeals(positionalSlice(base.Deals, params.DateIndex))
	rotationAdjustment(params.DateIndex).apply(selected)
	stampPromoEnds(selected, params.Date, rotationPromoDays, rotationFallbackEnds)

	return base.WithDeals(params.Date, selected), nil
}

func positionalSlice(deals []domain.Deal, dateIndex int) []domain.Deal {
	total := len(deals)
	share := func(ratio float64) int { return int(float64(total) * ratio) }

	switch dateIndex {
	case 0:
		return deals[:max(1, share(0.7))]
	case 1:
		start := max(0, share(0.15))
		end := min(total, start+share(0.7))
		return deals[start:end]
	case 2:
		return deals[max(0, share(0.3)):]
	default:
		return lo.Filter(deals, func(_ domain.Deal, i int) bool { return i%2 == 0 })
	}
}
