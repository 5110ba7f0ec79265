package models

import (
	"fmt"
	"slices"
	"time"
)

// RentalRecord represents a single day of the rental dataset.
//
// Fields:
//   - Date: calendar day, normalized to midnight UTC. Unique in a Dataset.
//   - Season: one of SeasonOrder.
//   - Count: total rentals for the day (never negative).
type RentalRecord struct {
	Date   time.Time `json:"date"`
	Season Season    `json:"season"`
	Count  int64     `json:"count"`
}

// Dataset is the immutable, date-ascending collection of rental records.
//
// It is built once by the dataset loader and shared read-only afterwards,
// so it needs no locking.
type Dataset struct {
	records []RentalRecord
}

// NewDataset builds a Dataset from a copy of records. Dates are truncated
// to midnight UTC and sorted ascending. A duplicate date, a negative count
// or an unknown season returns an error wrapping ErrDataUnavailable.
func NewDataset(records []RentalRecord) (*Dataset, error) {
	out := make([]RentalRecord, len(records))
	for i, rec := range records {
		if rec.Count < 0 {
			return nil, fmt.Errorf("%w: %s: negative count %d", ErrDataUnavailable, rec.Date.Format(time.DateOnly), rec.Count)
		}
		if !rec.Season.Valid() {
			return nil, fmt.Errorf("%w: %s: unknown season %d", ErrDataUnavailable, rec.Date.Format(time.DateOnly), int(rec.Season))
		}
		rec.Date = DateOnly(rec.Date)
		out[i] = rec
	}

	slices.SortStableFunc(out, func(a, b RentalRecord) int { return a.Date.Compare(b.Date) })
	for i := 1; i < len(out); i++ {
		if out[i].Date.Equal(out[i-1].Date) {
			return nil, fmt.Errorf("%w: duplicate date %s", ErrDataUnavailable, out[i].Date.Format(time.DateOnly))
		}
	}
	return &Dataset{records: out}, nil
}

// Len returns the number of days in the dataset.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// Records returns the underlying records. Callers must not modify them.
func (d *Dataset) Records() []RentalRecord {
	if d == nil {
		return nil
	}
	return d.records
}

// Bounds returns the inclusive span covered by the dataset.
// ok is false for an empty dataset.
func (d *Dataset) Bounds() (r DateRange, ok bool) {
	if d.Len() == 0 {
		return DateRange{}, false
	}
	return DateRange{
		Start: d.records[0].Date,
		End:   d.records[len(d.records)-1].Date,
	}, true
}

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
