package pricing

// Balance sums the given payment amounts against a parcel's persisted total.
// The balance may be negative when a parcel is overpaid; overpayment is
// displayed, not prevented.
func Balance(totalAmount float64, paymentAmounts []float64) (totalPaid, balance float64) {
	for _, amount := range paymentAmounts {
		totalPaid += amount
	}
	return totalPaid, totalAmount - totalPaid
}
