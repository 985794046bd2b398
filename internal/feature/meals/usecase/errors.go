package usecase

import "errors"

var (
	// ErrInvalidPreferences is returned when the generation request fails
	// validation.
	ErrInvalidPreferences = errors.New("invalid meal preferences")
	// ErrGeneration is returned when the upstream model call fails.
	ErrGeneration = errors.New("meal generation failed")
)
