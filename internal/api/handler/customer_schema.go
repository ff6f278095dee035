package handler

import "time"

// errorResponse documents the error envelope in the generated API docs. The
// live envelope is rendered by the central HTTP error handler.
type errorResponse struct {
	Message string `json:"message"`
}

type createCustomerRequest struct {
	FirstName   string `json:"first_name"   validate:"required"`
	LastName    string `json:"last_name"    validate:"required"`
	Email       string `json:"email"        validate:"required,email"`
	Phone       string `json:"phone"        validate:"required"`
	HaitiStreet string `json:"haiti_street" validate:"omitempty"`
	HaitiCity   string `json:"haiti_city"   validate:"omitempty"`
	HaitiRegion string `json:"haiti_region" validate:"omitempty"`
}

type haitiAddressResponse struct {
	Street string `json:"street,omitempty"`
	City   string `json:"city,omitempty"`
	Region string `json:"region,omitempty"`
}

type customerResponse struct {
	ID            string               `json:"id"`
	FirstName     string               `json:"first_name"`
	LastName      string               `json:"last_name"`
	Email         string               `json:"email"`
	Phone         string               `json:"phone"`
	CustomAddress string               `json:"custom_address"`
	HaitiAddress  haitiAddressResponse `json:"haiti_address"`
	CreatedAt     time.Time            `json:"created_at"`
}

// customerDetailResponse extends the customer with the parcel aggregates the
// detail page header shows.
type customerDetailResponse struct {
	customerResponse
	ParcelCount    int `json:"parcel_count"`
	InTransitCount int `json:"in_transit_count"`
	DeliveredCount int `json:"delivered_count"`
}
