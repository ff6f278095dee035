package ports

import (
	"context"

	"github.com/yng-express/parcel-admin/internal/core/domain"
)

// InvoiceRepository defines persistence operations for invoices.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
	FindByID(ctx context.Context, id string) (*domain.Invoice, error)
	List(ctx context.Context) ([]*domain.Invoice, error)
	// NextSequence returns the next value of the yearly invoice counter,
	// used to build gapless-enough invoice numbers like INV-2026-000042.
	NextSequence(ctx context.Context, year int) (int64, error)
}
