package ports

import (
	"context"

	"github.com/yng-express/parcel-admin/internal/core/domain"
)

// CustomerRepository defines persistence operations for customers.
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	// List returns customers matching the free-text search (name, email,
	// phone, or mailbox code), newest first. Empty search returns everyone.
	List(ctx context.Context, search string) ([]*domain.Customer, error)
	// FindByCodePrefix returns customers whose mailbox code starts with the
	// given prefix. Used by the shipment form autocomplete.
	FindByCodePrefix(ctx context.Context, prefix string) ([]*domain.Customer, error)
}
