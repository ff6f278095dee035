package main

import (
	"context"

	driver "go.mongodb.org/mongo-driver/mongo"

	"github.com/yng-express/parcel-admin/internal/infrastructure/db/mongo"
)

// ensureIndexes creates all collection indexes at startup. CreateMany is a
// no-op for indexes that already exist.
func ensureIndexes(ctx context.Context, db *driver.Database) error {
	for _, r := range []interface {
		EnsureIndexes(ctx context.Context) error
	}{
		mongo.NewAuthRepository(db),
		mongo.NewCustomerRepository(db),
		mongo.NewParcelRepository(db),
		mongo.NewPaymentRepository(db),
		mongo.NewInvoiceRepository(db),
	} {
		if err := r.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}
