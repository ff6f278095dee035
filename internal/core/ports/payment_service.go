package ports

import (
	"context"

	"github.com/yng-express/parcel-admin/internal/core/domain"
)

// RecordPaymentInput carries a payment collected against a parcel.
type RecordPaymentInput struct {
	ParcelID   string
	Amount     float64
	Method     string
	Reference  string
	ReceivedBy string
	Notes      string
}

// PaymentReceipt is the rendered receipt document for one payment.
type PaymentReceipt struct {
	Filename string
	Body     []byte
}

// PaymentService defines use-case operations for payments.
type PaymentService interface {
	// RecordPayment stores the payment and recomputes the parcel's payment
	// state from the new running total.
	RecordPayment(ctx context.Context, input RecordPaymentInput) (*domain.Payment, error)
	ListPayments(ctx context.Context, parcelID string) ([]*domain.Payment, error)
	// Receipt renders the printable receipt for a payment.
	Receipt(ctx context.Context, paymentID string) (*PaymentReceipt, error)
}
