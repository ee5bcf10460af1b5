package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ShippingDetails is the destination and gift-wrap preference submitted
// with an order. Constructed fresh per checkout attempt and discarded
// after processing. Line2, Line3 and State are optional; pointers keep
// "absent" distinct from an empty string so formatting can skip them.
type ShippingDetails struct {
	Name     string  `json:"name"`
	Line1    string  `json:"line1"`
	Line2    *string `json:"line2,omitempty"`
	Line3    *string `json:"line3,omitempty"`
	City     string  `json:"city"`
	State    *string `json:"state,omitempty"`
	Country  string  `json:"country"`
	Zip      string  `json:"zip"`
	GiftWrap bool    `json:"gift_wrap"`
}

// Validate enforces structural validity of the shipping details
func (d ShippingDetails) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required.Error("name is required")),
		validation.Field(&d.Line1, validation.Required.Error("the first address line is required")),
		validation.Field(&d.City, validation.Required.Error("city is required")),
		validation.Field(&d.Country, validation.Required.Error("country is required")),
		validation.Field(&d.Zip, validation.Required.Error("zip is required")),
	)
}
