// Package dataset loads the daily rental table once per process.
//
// A Loader wraps a Source (CSV file or Postgres table), normalizes every
// row into models.RentalRecord and caches the resulting models.Dataset.
// Any malformed row fails the whole load with models.ErrDataUnavailable.
package dataset
