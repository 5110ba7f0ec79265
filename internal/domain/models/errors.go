package models

import "errors"

var (
	// ErrDataUnavailable is returned when the rental source cannot be located
	// or parsed, or when its records break the Dataset rules.
	ErrDataUnavailable = errors.New("rental data unavailable")

	// ErrInvalidRange is returned when a date range has start after end.
	ErrInvalidRange = errors.New("invalid date range: start is after end")
)
