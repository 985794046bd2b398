// Package usecase implements the business logic for the credits feature.
package usecase

import "errors"

var (
	// ErrNoCredits is returned when a consume is attempted with nothing left.
	ErrNoCredits = errors.New("no credits remaining")

	// ErrCreditNotFound is returned by the repository when no row exists for the user.
	ErrCreditNotFound = errors.New("credit record not found")
)
