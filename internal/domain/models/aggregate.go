package models

import "time"

// MonthTotal is the rental sum of one calendar month present in the data.
type MonthTotal struct {
	Year  int        `json:"year" example:"2011"`
	Month time.Month `json:"month" example:"1"`
	Label string     `json:"label" example:"2011-01"`
	Total int64      `json:"total" example:"38189"`
}

// SeasonTotal is the rental sum of one season.
type SeasonTotal struct {
	Season Season `json:"season" swaggertype:"string" example:"Spring"`
	Total  int64  `json:"total" example:"471348"`
}

// WeekdayTotal is the rental sum of one weekday.
type WeekdayTotal struct {
	Weekday string `json:"weekday" example:"Monday"`
	Total   int64  `json:"total" example:"455503"`
}

// Summary holds the scalar metrics over the filtered records.
// Mean is left unrounded; rounding is up to the presentation layer.
type Summary struct {
	Sum  int64   `json:"sum" example:"3292679"`
	Mean float64 `json:"mean" example:"4504.35"`
	Max  int64   `json:"max" example:"8714"`
}

// AggregateResult is the per-query output of the aggregation engine.
//
// When Empty is true the range matched no records (the "no data" outcome):
// only Range is populated and every series plus Summary is nil.
//
// Otherwise:
//   - Records: the filtered days, ascending.
//   - Monthly: one entry per month with data, chronological.
//   - Seasonal: exactly len(SeasonOrder) entries, zero-filled.
//   - Weekday: exactly len(WeekdayOrder) entries, zero-filled.
//   - Summary: sum, mean and max of Count.
type AggregateResult struct {
	Range    DateRange
	Empty    bool
	Records  []RentalRecord
	Monthly  []MonthTotal
	Seasonal []SeasonTotal
	Weekday  []WeekdayTotal
	Summary  *Summary
}
