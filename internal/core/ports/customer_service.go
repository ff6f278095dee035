package ports

import (
	"context"

	"github.com/yng-express/parcel-admin/internal/core/domain"
)

// CreateCustomerInput carries the data needed to register a customer. The
// mailbox code is generated server-side, never supplied.
type CreateCustomerInput struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	HaitiStreet string
	HaitiCity   string
	HaitiRegion string
}

// CustomerDetail is the customer profile view: the customer plus the parcel
// aggregates shown on the detail page header.
type CustomerDetail struct {
	Customer       *domain.Customer
	ParcelCount    int
	InTransitCount int
	DeliveredCount int
}

// CustomerService defines use-case operations for customers.
type CustomerService interface {
	CreateCustomer(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error)
	// GetCustomerDetail loads the customer together with the counts of their
	// parcels currently in transit and already delivered.
	GetCustomerDetail(ctx context.Context, id string) (*CustomerDetail, error)
	ListCustomers(ctx context.Context, search string) ([]*domain.Customer, error)
	// SearchByCode powers the autocomplete on the new-shipment form. Prefixes
	// shorter than two characters return no results rather than everything.
	SearchByCode(ctx context.Context, codePrefix string) ([]*domain.Customer, error)
}
