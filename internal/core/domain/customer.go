package domain

import (
	"errors"
	"time"
)

// ErrDuplicateCode signals a mailbox-code collision on insert; the caller
// regenerates and retries.
var ErrDuplicateCode = errors.New("mailbox code already assigned")

// HaitiAddress is the customer's delivery-side address.
type HaitiAddress struct {
	Street string `json:"street,omitempty" bson:"street,omitempty"`
	City   string `json:"city,omitempty" bson:"city,omitempty"`
	Region string `json:"region,omitempty" bson:"region,omitempty"`
}

// Customer owns zero or more parcels. CustomAddress is the generated unique
// US mailbox code printed on packages shipped to the warehouse for
// consolidation (e.g. "YNG-0427").
type Customer struct {
	ID            string       `json:"id" bson:"_id,omitempty"`
	FirstName     string       `json:"first_name" bson:"first_name"`
	LastName      string       `json:"last_name" bson:"last_name"`
	Email         string       `json:"email" bson:"email"`
	Phone         string       `json:"phone" bson:"phone"`
	CustomAddress string       `json:"custom_address" bson:"custom_address"`
	HaitiAddress  HaitiAddress `json:"haiti_address,omitempty" bson:"haiti_address,omitempty"`
	CreatedAt     time.Time    `json:"created_at" bson:"created_at"`
}
