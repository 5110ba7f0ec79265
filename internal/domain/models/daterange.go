package models

import (
	"fmt"
	"time"
)

// DateRange is an inclusive [Start, End] calendar-day query bound.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateRange normalizes both bounds to calendar days and rejects
// start > end with ErrInvalidRange.
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: DateOnly(start), End: DateOnly(end)}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

// Validate returns ErrInvalidRange when Start is after End.
func (r DateRange) Validate() error {
	if DateOnly(r.Start).After(DateOnly(r.End)) {
		return fmt.Errorf("%w: %s > %s", ErrInvalidRange, r.Start.Format(time.DateOnly), r.End.Format(time.DateOnly))
	}
	return nil
}

// Contains reports whether the calendar day of t lies within the range.
func (r DateRange) Contains(t time.Time) bool {
	d := DateOnly(t)
	return !d.Before(DateOnly(r.Start)) && !d.After(DateOnly(r.End))
}
