// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when the email/password pair does not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrCodeNotFound is returned by the repository when no code row matches.
	ErrCodeNotFound = errors.New("code not found")

	// ErrInvalidCode is returned when no code matching the email/code pair was ever issued.
	ErrInvalidCode = errors.New("invalid code")

	// ErrCodeExpired is returned when the code matches but its expiry has passed.
	// Expired codes are rejected unconditionally, even when otherwise correct.
	ErrCodeExpired = errors.New("code expired")

	// ErrCodeAlreadyUsed is returned when the code has already been consumed.
	ErrCodeAlreadyUsed = errors.New("code already used")
)
