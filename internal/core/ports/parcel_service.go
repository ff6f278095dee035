package ports

import (
	"context"

	"github.com/yng-express/parcel-admin/internal/core/domain"
)

// ManualPricingInput is the operator-entered pricing override. When present
// on CreateParcelInput the auto estimator is bypassed entirely.
type ManualPricingInput struct {
	ShippingFee float64
	Discount    float64
	TaxAmount   float64
}

// CreateParcelInput carries all data needed to register a parcel.
type CreateParcelInput struct {
	CustomerID    string
	Barcode       string
	SenderName    string
	SenderAddress string
	SenderCity    string
	SenderState   string
	SenderZipCode string
	Description   string
	Weight        float64
	Length        float64
	Width         float64
	Height        float64
	DeclaredValue float64
	Notes         string
	// ManualPricing is nil in auto mode.
	ManualPricing *ManualPricingInput
}

// UpdateStatusInput carries a status change scanned or entered by an operator.
type UpdateStatusInput struct {
	ParcelID    string
	Status      string
	Location    string
	Description string
}

// ParcelService defines use-case operations for parcels.
type ParcelService interface {
	CreateParcel(ctx context.Context, input CreateParcelInput) (*domain.Parcel, error)
	GetParcel(ctx context.Context, id string) (*domain.Parcel, error)
	GetParcelByTracking(ctx context.Context, trackingNumber string) (*domain.Parcel, error)
	ListParcels(ctx context.Context, filter ListParcelsFilter) ([]*domain.Parcel, error)
	// UpdateStatus applies the change and returns the freshly reloaded
	// parcel; callers replace their view wholesale instead of merging.
	UpdateStatus(ctx context.Context, input UpdateStatusInput) (*domain.Parcel, error)
}
