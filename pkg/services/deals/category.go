package deals

import (
	"fmt"
	"slices"

	"github.com/de-tools/deal-atlas/pkg/models/domain"
	"github.com/samber/lo"
)

const categoryGroups = 4

type categoryFocus struct {
	priority []Category
	divisor  int
}

// categoryFocuses is indexed by date index.
var categoryFocuses = [categoryGroups]categoryFocus{
	{priority: []Category{CategoryMeat, CategoryProduce}, divisor: 2},
	{priority: []Category{CategoryDairy, CategoryBakery}, divisor: 2},
	{priority: []Category{CategoryPantry, CategoryBeverage}, divisor: 3},
	{priority: []Category{CategorySpecialty, CategoryFrozen}, divisor: 2},
}

// CategoryRotation gives every date its own quarter of the products, keeps all deals of
// the date's focus categories and a fraction of the rest.
type CategoryRotation struct {
	classifier *Classifier
}

var _ Strategy = (*CategoryRotation)(nil)

func NewCategoryRotation(classifier *Classifier) *CategoryRotation {
	if classifier == nil {
		classifier = NewClassifier(nil)
	}
	return &CategoryRotation{classifier: classifier}
}

func CategoryRotationFactory(opts Options) (Strategy, error) {
	return NewCategoryRotation(opts.Classifier), nil
}

func (s *CategoryRotation) Name() domain.StrategyName {
	return domain.StrategyCategory
}

func (s *CategoryRotation) Generate(base *domain.DealsDocument, params Params) (*domain.DealsDocument, error) {
	if len(base.Deals) == 0 {
		return base.WithDeals(params.Date, nil), nil
	}
	if params.DateIndex < 0 || params.DateIndex >= categoryGroups {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidDateIndex, params.DateIndex, categoryGroups)
	}

	focus := categoryFocuses[params.DateIndex]
	group := assignedGroup(base.Deals, categoryGroups, params.DateIndex)

	priority, others := lo.FilterReject(group, func(d domain.Deal, _ int) bool {
		return slices.Contains(focus.priority, s.classifier.Classify(d.ProductName))
	})

	take := min(len(others), max(1, len(others)/focus.divisor))
	selected := append(priority, others[:take]...)

	rotationAdjustment(params.DateIndex).apply(selected)
	stampPromoEnds(selected, params.Date, rotationPromoDays, rotationFallbackEnds)
	shuffleDeals(newGenerator(int64(params.DateIndex)), selected)

	return base.WithDeals(params.Date, selected), nil
}
