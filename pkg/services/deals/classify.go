package deals

import (
	"strings"

	"github.com/de-tools/deal-atlas/pkg/models/domain"
	"github.com/samber/lo"
)

// Category is the product family a deal is classified into.
type Category string

const (
	CategoryMeat      Category = "meat"
	CategoryProduce   Category = "produce"
	CategoryDairy     Category = "dairy"
	CategoryBakery    Category = "bakery"
	CategoryPantry    Category = "pantry"
	CategoryBeverage  Category = "beverage"
	CategoryFrozen    Category = "frozen"
	CategorySpecialty Category = "specialty"
	CategoryOther     Category = "other"
)

// DefaultCategories returns the built-in keyword table in priority order.
func DefaultCategories() []domain.CategoryKeywords {
	return []domain.CategoryKeywords{
		{Name: string(CategoryMeat), Keywords: []string{
			"chicken", "beef", "pork", "turkey", "bacon", "sausage", "salmon", "tilapia",
			"shrimp", "drumsticks", "thighs", "cutlets",
		}},
		{Name: string(CategoryProduce), Keywords: []string{
			"cabbage", "carrots", "celery", "cilantro", "onions", "garlic", "tomatoes", "lettuce",
			"peppers", "broccoli", "asparagus", "zucchini", "mushrooms", "corn", "cucumber", "green beans",
		}},
		{Name: string(CategoryDairy), Keywords: []string{
			"milk", "cheese", "butter", "yogurt", "sour cream", "cream cheese", "cottage cheese",
			"mozzarella", "cheddar", "provolone",
		}},
		{Name: string(CategoryBakery), Keywords: []string{
			"bread", "baguette", "bagels", "muffins", "rolls", "buns", "tortillas",
		}},
		{Name: string(CategoryPantry), Keywords: []string{
			"rice", "pasta", "flour", "cornmeal", "beans", "chickpeas", "kidney", "black beans",
			"canned", "mayonnaise", "panko", "salsa",
		}},
		{Name: string(CategoryBeverage), Keywords: []string{
			"juice", "coffee", "tea", "cranberry", "orange", "apple",
		}},
		{Name: string(CategoryFrozen), Keywords: []string{
			"frozen", "berries", "vegetables",
		}},
		{Name: string(CategorySpecialty), Keywords: []string{
			"organic", "greek", "hummus", "quinoa", "granola", "almond", "coconut", "avocado",
			"strawberries", "blueberries",
		}},
	}
}

type categoryRule struct {
	category Category
	keywords []string
}

// Classifier assigns a category to a product name by ordered keyword matching.
// The first category with a keyword contained in the lower-cased name wins.
type Classifier struct {
	rules []categoryRule
}

// NewClassifier builds a classifier from an ordered keyword table.
// An empty table falls back to DefaultCategories.
func NewClassifier(categories []domain.CategoryKeywords) *Classifier {
	if len(categories) == 0 {
		categories = DefaultCategories()
	}

	rules := lo.Map(categories, func(c domain.CategoryKeywords, _ int) categoryRule {
		return categoryRule{
			category: Category(strings.ToLower(strings.TrimSpace(c.Name))),
			keywords: lo.Map(c.Keywords, func(k string, _ int) string { return strings.ToLower(k) }),
		}
	})

	return &Classifier{rules: rules}
}

func (c *Classifier) Classify(productName string) Category {
	name := strings.ToLower(productName)
	for _, rule := range c.rules {
		if lo.ContainsBy(rule.keywords, func(k string) bool { return k != "" && strings.Contains(name, k) }) {
			return rule.category
		}
	}
	return CategoryOther
}

// Categories lists the configured categories in priority order, followed by CategoryOther.
func (c *Classifier) Categories() []Category {
	out := lo.Map(c.rules, func(r categoryRule, _ int) Category { return r.category })
	return lo.Uniq(append(out, CategoryOther))
}
