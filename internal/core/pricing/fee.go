// Package pricing holds the money math used everywhere an amount is shown or
// persisted: the shipping-fee estimator, the payment-balance calculator, and
// the status classifier. Everything in here is a stateless pure function.
package pricing

// Rates applied by the auto estimator. A parcel's fee is charged per pound
// plus a percentage of the declared value, and tax is a percentage of the fee.
const (
	RatePerPound      = 3.0
	DeclaredValueRate = 0.02
	TaxRate           = 0.10
)

// Quote is the priced breakdown for a parcel. Total is what gets persisted as
// the parcel's totalAmount.
type Quote struct {
	ShippingFee float64
	Discount    float64
	TaxAmount   float64
	Total       float64
}

// EstimateFees prices a parcel from its weight (pounds) and declared value
// (auto mode). Negative inputs are not rejected here; callers treat
// unparsable input as zero before calling.
func EstimateFees(weight, declaredValue float64) Quote {
	fee := weight*RatePerPound + declaredValue*DeclaredValueRate
	tax := fee * TaxRate
	return Quote{
		ShippingFee: fee,
		Discount:    0,
		TaxAmount:   tax,
		Total:       fee + tax,
	}
}

// ManualFees builds a quote from operator-entered amounts (manual mode).
// The total is fee - discount + tax and is intentionally not clamped: a
// discount larger than fee+tax yields a negative total, which is persisted
// and displayed as entered.
func ManualFees(shippingFee, discount, taxAmount float64) Quote {
	return Quote{
		ShippingFee: shippingFee,
		Discount:    discount,
		TaxAmount:   taxAmount,
		Total:       shippingFee - discount + taxAmount,
	}
}
