package deals

import (
	"encoding/json"
	"fmt"

	"github.com/de-tools/deal-atlas/pkg/models/domain"
)

func price(v float64) *float64 {
	return &v
}

func newDeal(name string, unit, promo float64) domain.Deal {
	return domain.Deal{
		ProductName: name,
		UnitPrice:   price(unit),
		PromoPrice:  price(promo),
		Extra: map[string]json.RawMessage{
			"sizeText": json.RawMessage(`"1 ea"`),
		},
	}
}

// numberedDocument builds a document whose deals are named product-0..product-(n-1).
func numberedDocument(n int) *domain.DealsDocument {
	doc := &domain.DealsDocument{
		Date: "20241101",
		Extra: map[string]json.RawMessage{
			"storeName": json.RawMessage(`"Corner Market"`),
		},
	}
	for i := 0; i < n; i++ {
		doc.Deals = append(doc.Deals, newDeal(fmt.Sprintf("product-%d", i), 2.00, 1.00))
	}
	return doc
}

func productNames(deals []domain.Deal) []string {
	names := make([]string, len(deals))
	for i, d := range deals {
		names[i] = d.ProductName
	}
	return names
}
