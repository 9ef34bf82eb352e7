// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrMissingFields is returned when a required field is absent or empty.
	ErrMissingFields = errors.New("all fields are mandatory")

	// ErrEmailAlreadyExists is returned when attempting to register a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("user already registered")

	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned on login when the email is unknown or the
	// password does not match. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("email or password is not valid")
)
