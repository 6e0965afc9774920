package deals

import (
	"fmt"
	"time"

	"github.com/de-tools/deal-atlas/pkg/models/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const reportCurrency = "USD"

// Summarize builds a report describing a generated document: its promotion window,
// how many deals fell into each category and how deep the discounts are.
func Summarize(strategy domain.StrategyName, doc *domain.DealsDocument, classifier *Classifier) *domain.Report {
	if classifier == nil {
		classifier = NewClassifier(nil)
	}

	report := &domain.Report{
		Title:    fmt.Sprintf("Deals for %s (%s)", doc.Date, strategy),
		Period:   promoPeriod(doc),
		Currency: reportCurrency,
	}

	counts := lo.CountValuesBy(doc.Deals, func(d domain.Deal) Category {
		return classifier.Classify(d.ProductName)
	})
	categories := domain.ReportSection{
		Title:   "Categories",
		Summary: map[string]interface{}{"Deals": len(doc.Deals)},
	}
	for _, c := range classifier.Categories() {
		if counts[c] == 0 {
			continue
		}
		categories.Details = append(categories.Details, domain.ReportDetail{
			Name:        string(c),
			Value:       counts[c],
			Unit:        "deals",
			Description: fmt.Sprintf("%.1f%% of selection", 100*float64(counts[c])/float64(len(doc.Deals))),
		})
	}

	total := decimal.Zero
	discounts := make([]decimal.Decimal, 0, len(doc.Deals))
	for i := range doc.Deals {
		d := &doc.Deals[i]
		if d.PromoPrice != nil {
			total = total.Add(decimal.NewFromFloat(*d.PromoPrice))
		}
		if d.HasUnitPrice() && d.PromoPrice != nil {
			unit := decimal.NewFromFloat(*d.UnitPrice)
			off := unit.Sub(decimal.NewFromFloat(*d.PromoPrice)).Div(unit).Mul(hundred)
			discounts = append(discounts, off)
		}
	}
	report.TotalAmount = total.Round(pricePlaces).InexactFloat64()

	pricing := domain.ReportSection{
		Title:   "Pricing",
		Summary: map[string]interface{}{"Discounted deals": len(discounts)},
	}
	if len(discounts) > 0 {
		avg := decimal.Avg(discounts[0], discounts[1:]...)
		low := decimal.Min(discounts[0], discounts[1:]...)
		high := decimal.Max(discounts[0], discounts[1:]...)
		pricing.Details = []domain.ReportDetail{
			{Name: "Average discount", Value: avg.StringFixed(1), Unit: "%", Description: "mean of (unit - promo) / unit"},
			{Name: "Smallest discount", Value: low.StringFixed(1), Unit: "%"},
			{Name: "Largest discount", Value: high.StringFixed(1), Unit: "%"},
		}
	}

	report.Sections = []domain.ReportSection{categories, pricing}
	return report
}

func promoPeriod(doc *domain.DealsDocument) domain.TimePeriod {
	start, err := time.Parse(InputDateLayout, doc.Date)
	if err != nil || len(doc.Deals) == 0 {
		return domain.TimePeriod{}
	}

	end, err := time.Parse(PromoDateLayout, doc.Deals[0].PromoEnds)
	if err != nil {
		return domain.TimePeriod{Start: start, End: start}
	}

	return domain.TimePeriod{
		Start:    start,
		End:      end,
		Duration: int(end.Sub(start).Hours() / 24),
	}
}
