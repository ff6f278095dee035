package client

import "time"

// User is the authenticated operator returned by Login.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	User        *User  `json:"user"`
}

// HaitiAddress is the customer's delivery-side address.
type HaitiAddress struct {
	Street string `json:"street,omitempty"`
	City   string `json:"city,omitempty"`
	Region string `json:"region,omitempty"`
}

// Customer mirrors the customer resource.
type Customer struct {
	ID            string       `json:"id"`
	FirstName     string       `json:"first_name"`
	LastName      string       `json:"last_name"`
	Email         string       `json:"email"`
	Phone         string       `json:"phone"`
	CustomAddress string       `json:"custom_address"`
	HaitiAddress  HaitiAddress `json:"haiti_address"`
	CreatedAt     time.Time    `json:"created_at"`
}

// CustomerDetail is the customer profile plus the parcel aggregates shown on
// the detail page header.
type CustomerDetail struct {
	Customer
	ParcelCount    int `json:"parcel_count"`
	InTransitCount int `json:"in_transit_count"`
	DeliveredCount int `json:"delivered_count"`
}

// CreateCustomerInput is the payload for CreateCustomer.
type CreateCustomerInput struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	HaitiStreet string `json:"haiti_street,omitempty"`
	HaitiCity   string `json:"haiti_city,omitempty"`
	HaitiRegion string `json:"haiti_region,omitempty"`
}

// Sender is the US-side origin of a parcel.
type Sender struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

// Dimensions holds the optional physical size of a parcel, in inches.
type Dimensions struct {
	Length float64 `json:"length,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// TrackingEvent is one entry in a parcel's status history.
type TrackingEvent struct {
	Status      string    `json:"status"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Parcel mirrors the parcel resource. The category fields carry the backend's
// presentation buckets so callers render without re-deriving the mapping.
type Parcel struct {
	ID                    string          `json:"id"`
	TrackingNumber        string          `json:"tracking_number"`
	Barcode               string          `json:"barcode,omitempty"`
	CustomerID            string          `json:"customer_id"`
	Status                string          `json:"status"`
	StatusCategory        string          `json:"status_category"`
	Sender                Sender          `json:"sender"`
	Description           string          `json:"description"`
	Weight                float64         `json:"weight"`
	Dimensions            Dimensions      `json:"dimensions"`
	DeclaredValue         float64         `json:"declared_value"`
	ShippingFee           float64         `json:"shipping_fee"`
	Discount              float64         `json:"discount"`
	TaxAmount             float64         `json:"tax_amount"`
	TotalAmount           float64         `json:"total_amount"`
	PaymentStatus         string          `json:"payment_status"`
	PaymentStatusCategory string          `json:"payment_status_category"`
	Notes                 string          `json:"notes,omitempty"`
	TrackingEvents        []TrackingEvent `json:"tracking_events"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// ManualPricing switches a new parcel to operator-entered pricing.
type ManualPricing struct {
	ShippingFee float64 `json:"shipping_fee"`
	Discount    float64 `json:"discount"`
	TaxAmount   float64 `json:"tax_amount"`
}

// CreateParcelInput is the payload for CreateParcel.
type CreateParcelInput struct {
	CustomerID    string         `json:"customer_id"`
	Barcode       string         `json:"barcode,omitempty"`
	SenderName    string         `json:"sender_name,omitempty"`
	SenderAddress string         `json:"sender_address,omitempty"`
	SenderCity    string         `json:"sender_city,omitempty"`
	SenderState   string         `json:"sender_state,omitempty"`
	SenderZipCode string         `json:"sender_zip_code,omitempty"`
	Description   string         `json:"description"`
	Weight        float64        `json:"weight"`
	Length        float64        `json:"length,omitempty"`
	Width         float64        `json:"width,omitempty"`
	Height        float64        `json:"height,omitempty"`
	DeclaredValue float64        `json:"declared_value"`
	Notes         string         `json:"notes,omitempty"`
	ManualPricing *ManualPricing `json:"manual_pricing,omitempty"`
}

// UpdateStatusInput is the payload for UpdateParcelStatus.
type UpdateStatusInput struct {
	Status      string `json:"status"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// ListParcelsFilter narrows ListParcels results. Zero values are omitted.
type ListParcelsFilter struct {
	Status     string
	CustomerID string
	Search     string
}

// Payment mirrors the payment resource.
type Payment struct {
	ID            string    `json:"id"`
	ParcelID      string    `json:"parcel_id"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"`
	Reference     string    `json:"reference,omitempty"`
	ReceivedBy    string    `json:"received_by"`
	Notes         string    `json:"notes,omitempty"`
	ReceiptNumber string    `json:"receipt_number"`
	CreatedAt     time.Time `json:"created_at"`
}

// RecordPaymentInput is the payload for RecordPayment.
type RecordPaymentInput struct {
	ParcelID  string  `json:"parcel_id"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Reference string  `json:"reference,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}

// InvoiceSummary is one row of the invoice list.
type InvoiceSummary struct {
	ID             string    `json:"id"`
	InvoiceNumber  string    `json:"invoice_number"`
	ParcelID       string    `json:"parcel_id"`
	TrackingNumber string    `json:"tracking_number"`
	CustomerName   string    `json:"customer_name"`
	TotalAmount    float64   `json:"total_amount"`
	PaymentStatus  string    `json:"payment_status"`
	CreatedAt      time.Time `json:"created_at"`
}

// InvoiceDetail is the full invoice view.
type InvoiceDetail struct {
	ID            string    `json:"id"`
	InvoiceNumber string    `json:"invoice_number"`
	CreatedAt     time.Time `json:"created_at"`
	Parcel        Parcel    `json:"parcel"`
	Customer      Customer  `json:"customer"`
	Payments      []Payment `json:"payments"`
	TotalPaid     float64   `json:"total_paid"`
	Balance       float64   `json:"balance"`
}

// KPIValue pairs a headline number with its growth versus the previous period.
type KPIValue struct {
	Value  float64 `json:"value"`
	Growth float64 `json:"growth"`
}

// DashboardStats feeds the KPI cards on the landing page.
type DashboardStats struct {
	TotalShipments   KPIValue `json:"totalShipments"`
	Revenue          KPIValue `json:"revenue"`
	ActiveDeliveries struct {
		Value          int64 `json:"value"`
		ReadyForPickup int64 `json:"readyForPickup"`
	} `json:"activeDeliveries"`
	PendingTasks struct {
		Value        int64 `json:"value"`
		UrgentIssues int64 `json:"urgentIssues"`
	} `json:"pendingTasks"`
}

// StatusCount is one slice of the status-breakdown pie.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// MonthlyCount is one point on a by-month growth chart.
type MonthlyCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// MonthlyAmount is one point on the revenue chart.
type MonthlyAmount struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// DailyCount is one point on the shipping-volume chart.
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// RevenueReport is the revenue tab payload.
type RevenueReport struct {
	Total   float64         `json:"total"`
	ByMonth []MonthlyAmount `json:"byMonth"`
}
