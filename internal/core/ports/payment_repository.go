package ports

import (
	"context"

	"github.com/yng-express/parcel-admin/internal/core/domain"
)

// PaymentRepository defines persistence operations for payments.
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	FindByID(ctx context.Context, id string) (*domain.Payment, error)
	// ListByParcel returns a parcel's payments in insertion order. Empty
	// parcelID lists recent payments across all parcels.
	ListByParcel(ctx context.Context, parcelID string) ([]*domain.Payment, error)
}
