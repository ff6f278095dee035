package pricing

import "strings"

// Category is the presentation bucket a status token maps to. It drives row
// coloring and the aggregate counts on the customer detail view.
type Category string

const (
	CategoryPending   Category = "pending"
	CategoryInTransit Category = "in_transit"
	CategoryArrived   Category = "arrived"
	CategoryReady     Category = "ready"
	CategoryDelivered Category = "delivered"
	CategoryCancelled Category = "cancelled"
	CategoryNeutral   Category = "neutral"
)

// Classify maps a parcel status token to its presentation category. The
// mapping is total: unknown tokens land in the neutral category instead of
// failing, so a new backend status never breaks rendering.
func Classify(status string) Category {
	switch status {
	case "PENDING":
		return CategoryPending
	case "ARRIVED_MIAMI", "ARRIVED_HAITI":
		return CategoryArrived
	case "READY_FOR_PICKUP":
		return CategoryReady
	case "PICKED_UP", "DELIVERED":
		return CategoryDelivered
	case "CANCELLED":
		return CategoryCancelled
	}
	// DEPARTED_USA and both IN_TRANSIT_* tokens count as in transit.
	if strings.Contains(status, "TRANSIT") || status == "DEPARTED_USA" {
		return CategoryInTransit
	}
	return CategoryNeutral
}

// InTransit reports whether a status token counts toward the "in transit"
// aggregate (substring match, mirroring the dashboard counters).
func InTransit(status string) bool {
	return strings.Contains(status, "TRANSIT")
}

// Delivered reports whether a status token counts toward the "delivered"
// aggregate (exact match).
func Delivered(status string) bool {
	return status == "DELIVERED"
}

// PaymentCategory buckets for payment states.
const (
	PayCategoryPending  Category = "payment_pending"
	PayCategoryPartial  Category = "payment_partial"
	PayCategoryPaid     Category = "payment_paid"
	PayCategoryRefunded Category = "payment_refunded"
)

// ClassifyPayment maps a payment status token to its presentation category.
// Total over all inputs; unknown tokens are neutral.
func ClassifyPayment(status string) Category {
	switch status {
	case "PENDING":
		return PayCategoryPending
	case "PARTIAL":
		return PayCategoryPartial
	case "PAID":
		return PayCategoryPaid
	case "REFUNDED":
		return PayCategoryRefunded
	}
	return CategoryNeutral
}
