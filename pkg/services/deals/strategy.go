package deals

import (
	"github.com/de-tools/deal-atlas/pkg/models/domain"
	"github.com/samber/lo"
)

// Params selects what a strategy produces for one calendar date.
type Params struct {
	Date        string
	DateIndex   int
	DiscountMin float64
	DiscountMax float64
}

// Strategy derives a new deals document for one date from a base document.
// Implementations never modify base; every returned deal is a deep copy.
type Strategy interface {
	Name() domain.StrategyName
	Generate(base *domain.DealsDocument, params Params) (*domain.DealsDocument, error)
}

// assignedGroup returns deep copies of the deals whose position modulo groups equals index,
// in their original order. Across all indexes the groups partition the input.
func assignedGroup(deals []domain.Deal, groups, index int) []domain.Deal {
	selected := lo.Filter(deals, func(_ domain.Deal, i int) bool { return i%groups == index })
	return cloneDeals(selected)
}

func cloneDeals(deals []domain.Deal) []domain.Deal {
	return lo.Map(deals, func(d domain.Deal, _ int) domain.Deal { return d.Clone() })
}
