package deals

import (
	"time"

	"github.com/de-tools/deal-atlas/pkg/models/domain"
)

const (
	// InputDateLayout is the layout of the document date, e.g. 20241101.
	InputDateLayout = "20060102"
	// PromoDateLayout is the layout of derived dates, e.g. 2024-11-08.
	PromoDateLayout = "2006-01-02"

	randomPromoDays      = 7
	randomFallbackEnds   = "2024-11-15"
	rotationPromoDays    = 5
	rotationFallbackEnds = "2024-11-10"
)

// PromoEnds returns date shifted by days in the promo layout.
func PromoEnds(date string, days int) (string, error) {
	start, err := time.Parse(InputDateLayout, date)
	if err != nil {
		return "", err
	}
	return start.AddDate(0, 0, days).Format(PromoDateLayout), nil
}

// stampPromoEnds sets promoEnds on every deal. When date cannot be parsed only deals
// without a promoEnds receive fallback.
func stampPromoEnds(deals []domain.Deal, date string, days int, fallback string) {
	ends, err := PromoEnds(date, days)
	if err != nil {
		for i := range deals {
			if deals[i].PromoEnds == "" {
				deals[i].PromoEnds = fallback
			}
		}
		return
	}

	for i := range deals {
		deals[i].PromoEnds = ends
	}
}
