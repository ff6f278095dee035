package domain

import (
	"errors"
	"time"
)

// ParcelStatus represents the lifecycle state of a parcel on its way
// from the Miami warehouse to pickup in Haiti.
type ParcelStatus string

const (
	StatusPending        ParcelStatus = "PENDING"
	StatusInTransitUSA   ParcelStatus = "IN_TRANSIT_USA"
	StatusDepartedUSA    ParcelStatus = "DEPARTED_USA"
	StatusArrivedMiami   ParcelStatus = "ARRIVED_MIAMI"
	StatusInTransitHaiti ParcelStatus = "IN_TRANSIT_HAITI"
	StatusArrivedHaiti   ParcelStatus = "ARRIVED_HAITI"
	StatusReadyForPickup ParcelStatus = "READY_FOR_PICKUP"
	StatusPickedUp       ParcelStatus = "PICKED_UP"
	StatusDelivered      ParcelStatus = "DELIVERED"
	StatusCancelled      ParcelStatus = "CANCELLED"
)

// PaymentState is the aggregate payment state of a parcel, derived from the
// sum of recorded payments against the persisted total.
type PaymentState string

const (
	PaymentPending  PaymentState = "PENDING"
	PaymentPartial  PaymentState = "PARTIAL"
	PaymentPaid     PaymentState = "PAID"
	PaymentRefunded PaymentState = "REFUNDED"
)

var validParcelStatuses = map[ParcelStatus]struct{}{
	StatusPending:        {},
	StatusInTransitUSA:   {},
	StatusDepartedUSA:    {},
	StatusArrivedMiami:   {},
	StatusInTransitHaiti: {},
	StatusArrivedHaiti:   {},
	StatusReadyForPickup: {},
	StatusPickedUp:       {},
	StatusDelivered:      {},
	StatusCancelled:      {},
}

// IsValid reports whether s is one of the known parcel status tokens.
// Operators may move a parcel to any valid status; there is no transition
// state machine beyond token validity.
func (s ParcelStatus) IsValid() bool {
	_, ok := validParcelStatuses[s]
	return ok
}

var ErrParcelNotFound = errors.New("parcel not found")
var ErrCustomerNotFound = errors.New("customer not found")
var ErrPaymentNotFound = errors.New("payment not found")
var ErrInvoiceNotFound = errors.New("invoice not found")
var ErrInvalidStatus = errors.New("invalid parcel status")
var ErrInvalidAmount = errors.New("payment amount must be positive")
var ErrInvalidMethod = errors.New("unknown payment method")
var ErrForbidden = errors.New("access forbidden")

// Dimensions holds the optional physical size of a parcel, in inches.
type Dimensions struct {
	Length float64 `json:"length,omitempty" bson:"length,omitempty"`
	Width  float64 `json:"width,omitempty" bson:"width,omitempty"`
	Height float64 `json:"height,omitempty" bson:"height,omitempty"`
}

// Sender is the US-side origin of a parcel. For consolidated shipments the
// name carries the customer's mailbox code and the address is the warehouse.
type Sender struct {
	Name    string `json:"name" bson:"name"`
	Address string `json:"address" bson:"address"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	ZipCode string `json:"zip_code" bson:"zip_code"`
}

// TrackingEvent records a single status change on a parcel.
type TrackingEvent struct {
	Status      ParcelStatus `json:"status" bson:"status"`
	Location    string       `json:"location,omitempty" bson:"location,omitempty"`
	Description string       `json:"description,omitempty" bson:"description,omitempty"`
	Timestamp   time.Time    `json:"timestamp" bson:"timestamp"`
}

// Parcel is the core aggregate root. Pricing fields are computed once at
// creation time and persisted; totalAmount is never recomputed on read.
type Parcel struct {
	ID             string          `json:"id" bson:"_id,omitempty"`
	TrackingNumber string          `json:"tracking_number" bson:"tracking_number"`
	Barcode        string          `json:"barcode,omitempty" bson:"barcode,omitempty"`
	CustomerID     string          `json:"customer_id" bson:"customer_id"`
	Status         ParcelStatus    `json:"status" bson:"status"`
	Sender         Sender          `json:"sender" bson:"sender"`
	Description    string          `json:"description" bson:"description"`
	Weight         float64         `json:"weight" bson:"weight"` // pounds
	Dimensions     Dimensions      `json:"dimensions,omitempty" bson:"dimensions,omitempty"`
	DeclaredValue  float64         `json:"declared_value" bson:"declared_value"`
	ShippingFee    float64         `json:"shipping_fee" bson:"shipping_fee"`
	Discount       float64         `json:"discount" bson:"discount"`
	TaxAmount      float64         `json:"tax_amount" bson:"tax_amount"`
	TotalAmount    float64         `json:"total_amount" bson:"total_amount"`
	PaymentState   PaymentState    `json:"payment_status" bson:"payment_status"`
	Notes          string          `json:"notes,omitempty" bson:"notes,omitempty"`
	TrackingEvents []TrackingEvent `json:"tracking_events" bson:"tracking_events"`
	CreatedAt      time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" bson:"updated_at"`
}
