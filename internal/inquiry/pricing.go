package inquiry

import "math"

// Storefront pricing rates
const (
	salesTaxRate      = 0.06
	outOfStateFeeRate = 0.15
	markupRate        = 0.40
)

// DiscountBadge is the flat label shown next to the struck-through price.
// It is fixed marketing copy, not derived from the actual delta between the
// display and struck prices.
const DiscountBadge = "-40%"

// Quote is the derived price preview for a product and buyer state. All
// amounts are rounded to cents. It is display-only and never persisted.
type Quote struct {
	// DisplayPrice is the advertised price, one cent under the list price.
	DisplayPrice float64
	// StruckPrice is the crossed-out "original" price shown beside it.
	StruckPrice float64
	// Badge is the discount label rendered with the struck price.
	Badge string
	// Subtotal is the advertised price carried into the breakdown.
	Subtotal float64
	// SalesTax is the 6% sales tax line.
	SalesTax float64
	// OutOfStateFee is the 15% surcharge, charged only for New Jersey.
	OutOfStateFee float64
	// Total is the estimated total: subtotal + tax + fee.
	Total float64
}

// NewQuote computes the price preview for the given list price and buyer
// state.
func NewQuote(price float64, state string) Quote {
	q := Quote{
		DisplayPrice: round2(price - 0.01),
		StruckPrice:  round2(price + price*markupRate - 0.01),
		Badge:        DiscountBadge,
		SalesTax:     round2(price * salesTaxRate),
	}
	q.Subtotal = q.DisplayPrice
	if state == StateNJ {
		q.OutOfStateFee = round2(price * outOfStateFeeRate)
	}
	q.Total = round2(q.Subtotal + q.SalesTax + q.OutOfStateFee)
	return q
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
