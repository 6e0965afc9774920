package deals

import (
	"strconv"

	"github.com/de-tools/deal-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

const (
	pricePlaces   = 2
	maxPromoRatio = 0.99
	minPromoPrice = 0.01
)

var hundred = decimal.NewFromInt(100)

// priceAdjustment multiplies the prices it holds a valid factor for.
type priceAdjustment struct {
	unit  decimal.NullDecimal
	promo decimal.NullDecimal
}

func factor(v float64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromFloat(v))
}

// rotationAdjustment is the per-date pricing shared by the positional and category rotations.
func rotationAdjustment(dateIndex int) priceAdjustment {
	switch dateIndex {
	case 0:
		return priceAdjustment{unit: factor(1.05), promo: factor(1.05)}
	case 1:
		return priceAdjustment{}
	case 2:
		return priceAdjustment{promo: factor(0.95)}
	default:
		return priceAdjustment{unit: factor(1.1), promo: factor(1.08)}
	}
}

func (a priceAdjustment) apply(deals []domain.Deal) {
	for i := range deals {
		d := &deals[i]
		if a.unit.Valid && d.HasUnitPrice() {
			d.SetUnitPrice(scalePrice(*d.UnitPrice, a.unit.Decimal))
		}
		if a.promo.Valid && d.HasPromoPrice() {
			d.SetPromoPrice(scalePrice(*d.PromoPrice, a.promo.Decimal))
		}
	}
}

// scalePrice multiplies in float64 and rounds the binary product, so 0.50 x 0.95
// (0.47499999...) becomes 0.47.
func scalePrice(price float64, by decimal.Decimal) float64 {
	return roundCents(price * by.InexactFloat64())
}

// discountedPrice takes pct percent off unit, keeping the result at least 1% below
// unit and never under one cent.
func discountedPrice(unit, pct float64) float64 {
	ceiling := unit * maxPromoRatio
	promo := min(unit*(1-pct/100), ceiling)

	rounded := roundCents(promo)
	if rounded > ceiling {
		rounded = decimal.NewFromFloat(ceiling).RoundFloor(pricePlaces).InexactFloat64()
	}
	return max(rounded, minPromoPrice)
}

// roundCents rounds the exact binary value of v to cents, ties to even.
func roundCents(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', pricePlaces, 64), 64)
	return r
}
