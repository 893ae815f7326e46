package models

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks that every field required to place a booking is present
// and that the email is well formed. It runs before any external call is
// made, both in the workflow and at the endpoint boundary.
func (r *BookingRequest) Validate() error {
	return validate.Struct(r)
}

// Validate checks the contact-form required fields.
func (m *ContactMessage) Validate() error {
	return validate.Struct(m)
}
