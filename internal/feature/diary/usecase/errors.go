package usecase

import "errors"

var (
	// ErrEntryNotFound is returned when no entry with the given id belongs
	// to the user.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrInvalidDate is returned when a date is not a valid "2006-01-02" day.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidEntry is returned when a new entry fails validation.
	ErrInvalidEntry = errors.New("invalid entry")
)
