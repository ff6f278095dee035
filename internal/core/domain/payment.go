package domain

import "time"

// PaymentMethod is how a payment was collected.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "CASH"
	MethodMonCash      PaymentMethod = "MONCASH"
	MethodCard         PaymentMethod = "CARD"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
)

// IsValid reports whether m is a known payment method token.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCash, MethodMonCash, MethodCard, MethodBankTransfer:
		return true
	}
	return false
}

// Payment is a single amount collected against a parcel. The sum of a
// parcel's payments is expected not to exceed its total, but overpayment is
// recorded rather than rejected; the balance simply goes negative.
type Payment struct {
	ID            string        `json:"id" bson:"_id,omitempty"`
	ParcelID      string        `json:"parcel_id" bson:"parcel_id"`
	Amount        float64       `json:"amount" bson:"amount"`
	Method        PaymentMethod `json:"method" bson:"method"`
	Reference     string        `json:"reference,omitempty" bson:"reference,omitempty"`
	ReceivedBy    string        `json:"received_by" bson:"received_by"`
	Notes         string        `json:"notes,omitempty" bson:"notes,omitempty"`
	ReceiptNumber string        `json:"receipt_number" bson:"receipt_number"`
	CreatedAt     time.Time     `json:"created_at" bson:"created_at"`
}
