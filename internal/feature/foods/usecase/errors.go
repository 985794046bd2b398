// Package usecase implements the business logic for the foods feature.
package usecase

import "errors"

var (
	// ErrEmptyQuery is returned when the search query is blank.
	ErrEmptyQuery = errors.New("search query is empty")

	// ErrUpstream is returned when the food database answers with a non-2xx
	// status. An empty result set is not an error.
	ErrUpstream = errors.New("food search upstream error")

	// ErrRecognitionUnavailable is returned when photo recognition is not
	// configured for this deployment.
	ErrRecognitionUnavailable = errors.New("food recognition is not available")
)
