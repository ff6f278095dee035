package ports

import (
	"context"
	"time"

	"github.com/yng-express/parcel-admin/internal/core/domain"
)

// InvoiceDetail is the full invoice view: the document itself plus the parcel
// it was derived from, the parcel's owner, and all payments to date.
type InvoiceDetail struct {
	Invoice  *domain.Invoice
	Parcel   *domain.Parcel
	Customer *domain.Customer
	Payments []*domain.Payment
	// TotalPaid and Balance are computed from the payments at read time.
	TotalPaid float64
	Balance   float64
}

// InvoiceSummary is the lightweight list item.
type InvoiceSummary struct {
	ID             string
	InvoiceNumber  string
	ParcelID       string
	TrackingNumber string
	CustomerName   string
	TotalAmount    float64
	PaymentState   string
	CreatedAt      time.Time
}

// InvoiceDocument is the rendered printable invoice.
type InvoiceDocument struct {
	Filename string
	Body     []byte
}

// InvoiceService defines use-case operations for invoices.
type InvoiceService interface {
	// CreateForParcel issues the invoice derived from a freshly created
	// parcel. Called by the parcel service, not exposed over HTTP.
	CreateForParcel(ctx context.Context, parcelID string) (*domain.Invoice, error)
	GetInvoice(ctx context.Context, id string) (*InvoiceDetail, error)
	ListInvoices(ctx context.Context) ([]InvoiceSummary, error)
	// Document renders the downloadable invoice copy.
	Document(ctx context.Context, id string) (*InvoiceDocument, error)
	// SendByEmail queues the invoice for delivery to the customer's address.
	// Delivery itself is asynchronous; this returns once the job is queued.
	SendByEmail(ctx context.Context, id string) error
}
