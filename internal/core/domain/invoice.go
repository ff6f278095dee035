package domain

import "time"

// Invoice is a read-only financial document derived from exactly one parcel.
// It is created together with the parcel and never mutated afterwards;
// amounts and payment state are always read through the parcel.
type Invoice struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	InvoiceNumber string    `json:"invoice_number" bson:"invoice_number"`
	ParcelID      string    `json:"parcel_id" bson:"parcel_id"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}
