package domain

import "fmt"

// StrategyName identifies one of the deal generation strategies.
type StrategyName string

const (
	StrategyRandom     StrategyName = "random"
	StrategyPositional StrategyName = "positional"
	StrategyCategory   StrategyName = "category"
)

// CategoryKeywords binds a product category to the keywords that select it.
type CategoryKeywords struct {
	Name     string   `mapstructure:"name"`
	Keywords []string `mapstructure:"keywords"`
}

// ScheduleEntry is one dated run of a batch schedule.
type ScheduleEntry struct {
	Date        string
	Strategy    StrategyName
	DateIndex   int
	BaseFile    string
	OutputFile  string
	DiscountMin float64
	DiscountMax float64
}

func (e ScheduleEntry) String() string {
	return fmt.Sprintf("%s:%s[%d]", e.Date, e.Strategy, e.DateIndex)
}
