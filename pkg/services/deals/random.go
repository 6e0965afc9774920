package deals

import (
	"fmt"

	"github.com/de-tools/deal-atlas/pkg/models/domain"
)

const (
	randomGroups        = 5
	minSelectFraction   = 0.8
	maxSelectFraction   = 1.0
	fullSelectThreshold = 0.7
)

// RandomAllocation gives every date its own fifth of the products, keeps a random
// 80-100% of that fifth and prices each kept deal with a random discount.
type RandomAllocation struct{}

var _ Strategy = (*RandomAllocation)(nil)

func RandomAllocationFactory(_ Options) (Strategy, error) {
	return &RandomAllocation{}, nil
}

func (s *RandomAllocation) Name() domain.StrategyName {
	return domain.StrategyRandom
}

// Generate selects and discounts the deals of group params.DateIndex.
//
// The generator is seeded from the date index and a stable hash of the date, so the
// same base document, date and index always produce the same output.
func (s *RandomAllocation) Generate(base *domain.DealsDocument, params Params) (*domain.DealsDocument, error) {
	if len(base.Deals) == 0 {
		return base.WithDeals(params.Date, nil), nil
	}
	if params.DateIndex < 0 || params.DateIndex >= randomGroups {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidDateIndex, params.DateIndex, randomGroups)
	}

	group := assignedGroup(base.Deals, randomGroups, params.DateIndex)
	rng := newGenerator(randomSeed(params.DateIndex, params.Date))

	fraction := uniform(rng, minSelectFraction, maxSelectFraction)
	count := max(1, int(float64(len(group))*fraction))
	if float64(count) < float64(len(group))*fullSelectThreshold {
		count = len(group)
	}
	count = min(count, len(group))

	shuffleDeals(rng, group)
	selected := group[:count]

	for i := range selected {
		pct := uniform(rng, params.DiscountMin, params.DiscountMax)
		if selected[i].HasUnitPrice() {
			selected[i].SetPromoPrice(discountedPrice(*selected[i].UnitPrice, pct))
		}
	}

	stampPromoEnds(selected, params.Date, randomPromoDays, randomFallbackEnds)
	shuffleDeals(rng, selected)

	return base.WithDeals(params.Date, selected), nil
}
