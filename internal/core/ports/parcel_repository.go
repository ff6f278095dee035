package ports

import (
	"context"

	"github.com/yng-express/parcel-admin/internal/core/domain"
)

// ListParcelsFilter carries the query parameters for listing parcels.
type ListParcelsFilter struct {
	Status     string // optional: exact status token
	CustomerID string // optional: scope to one customer
	Search     string // optional: partial match on tracking number, barcode, or description
}

// ParcelRepository defines persistence operations for parcels.
type ParcelRepository interface {
	Create(ctx context.Context, p *domain.Parcel) (*domain.Parcel, error)
	FindByID(ctx context.Context, id string) (*domain.Parcel, error)
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Parcel, error)
	List(ctx context.Context, filter ListParcelsFilter) ([]*domain.Parcel, error)
	// AppendStatus atomically sets the parcel's status and pushes the
	// tracking event onto its history.
	AppendStatus(ctx context.Context, id string, event domain.TrackingEvent) error
	// SetPaymentState updates the derived payment state after a payment is
	// recorded or refunded.
	SetPaymentState(ctx context.Context, id string, state domain.PaymentState) error
}
