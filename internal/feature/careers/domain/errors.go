// Package domain defines domain-level errors for the careers feature.
package domain

import "errors"

var (
	// ErrMissingFields indicates a submission without the required fields.
	ErrMissingFields = errors.New("full_name, email and position are required")

	// ErrInvalidEmail indicates an email that does not match the basic
	// local@domain.tld pattern.
	ErrInvalidEmail = errors.New("invalid email address")
)
