package handler

import "time"

type manualPricingRequest struct {
	ShippingFee float64 `json:"shipping_fee" validate:"gte=0"`
	Discount    float64 `json:"discount"     validate:"gte=0"`
	TaxAmount   float64 `json:"tax_amount"   validate:"gte=0"`
}

type createParcelRequest struct {
	CustomerID    string  `json:"customer_id"    validate:"required"`
	Barcode       string  `json:"barcode"`
	SenderName    string  `json:"sender_name"`
	SenderAddress string  `json:"sender_address"`
	SenderCity    string  `json:"sender_city"`
	SenderState   string  `json:"sender_state"`
	SenderZipCode string  `json:"sender_zip_code"`
	Description   string  `json:"description"    validate:"required"`
	Weight        float64 `json:"weight"         validate:"required,gt=0"`
	Length        float64 `json:"length"         validate:"gte=0"`
	Width         float64 `json:"width"          validate:"gte=0"`
	Height        float64 `json:"height"         validate:"gte=0"`
	DeclaredValue float64 `json:"declared_value" validate:"gte=0"`
	Notes         string  `json:"notes"`
	// ManualPricing switches the parcel to operator-entered pricing.
	ManualPricing *manualPricingRequest `json:"manual_pricing,omitempty"`
}

type updateStatusRequest struct {
	Status      string `json:"status" validate:"required"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// Response-only types owned by the transport layer.
// These are intentionally separate from domain types so the JSON contract is
// not coupled to internal model changes.

type senderResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

type dimensionsResponse struct {
	Length float64 `json:"length,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

type trackingEventResponse struct {
	Status      string    `json:"status"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

type parcelResponse struct {
	ID             string `json:"id"`
	TrackingNumber string `json:"tracking_number"`
	Barcode        string `json:"barcode,omitempty"`
	CustomerID     string `json:"customer_id"`
	Status         string `json:"status"`
	// StatusCategory is the presentation bucket for the status token; the
	// dashboard uses it for row coloring without re-deriving the mapping.
	StatusCategory        string                  `json:"status_category"`
	Sender                senderResponse          `json:"sender"`
	Description           string                  `json:"description"`
	Weight                float64                 `json:"weight"`
	Dimensions            dimensionsResponse      `json:"dimensions"`
	DeclaredValue         float64                 `json:"declared_value"`
	ShippingFee           float64                 `json:"shipping_fee"`
	Discount              float64                 `json:"discount"`
	TaxAmount             float64                 `json:"tax_amount"`
	TotalAmount           float64                 `json:"total_amount"`
	PaymentStatus         string                  `json:"payment_status"`
	PaymentStatusCategory string                  `json:"payment_status_category"`
	Notes                 string                  `json:"notes,omitempty"`
	TrackingEvents        []trackingEventResponse `json:"tracking_events"`
	CreatedAt             time.Time               `json:"created_at"`
	UpdatedAt             time.Time               `json:"updated_at"`
}
