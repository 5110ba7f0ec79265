package service

import (
	"fmt"
	"time"

	"github.com/guttosm/bikepulse/internal/domain/models"
)

// Aggregate filters ds to the inclusive range r and computes the monthly,
// seasonal and weekday totals plus sum/mean/max of the daily counts.
//
// It is a pure function of its inputs: ds is never modified and equal
// inputs always produce deeply equal results.
//
// Returns:
//   - models.ErrInvalidRange if r.Start is after r.End, whatever ds holds.
//   - models.ErrDataUnavailable if ds is nil or empty.
//   - a result with Empty set when no record falls inside r.
func Aggregate(ds *models.Dataset, r models.DateRange) (*models.AggregateResult, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if ds.Len() == 0 {
		return nil, fmt.Errorf("%w: dataset is empty", models.ErrDataUnavailable)
	}
	r = models.DateRange{Start: models.DateOnly(r.Start), End: models.DateOnly(r.End)}

	filtered := filterRange(ds.Records(), r)
	if len(filtered) == 0 {
		return &models.AggregateResult{Range: r, Empty: true}, nil
	}

	return &models.AggregateResult{
		Range:    r,
		Records:  filtered,
		Monthly:  monthlyTotals(filtered),
		Seasonal: seasonalTotals(filtered),
		Weekday:  weekdayTotals(filtered),
		Summary:  summarize(filtered),
	}, nil
}

// filterRange copies the records inside r. Records are sorted, so the scan
// stops at the first date past the end.
func filterRange(records []models.RentalRecord, r models.DateRange) []models.RentalRecord {
	var out []models.RentalRecord
	for _, rec := range records {
		if rec.Date.After(r.End) {
			break
		}
		if rec.Date.Before(r.Start) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// monthlyTotals sums counts per calendar month. Input is ascending, so
// months come out chronological and months without data never appear.
func monthlyTotals(records []models.RentalRecord) []models.MonthTotal {
	var out []models.MonthTotal
	for _, rec := range records {
		y, m, _ := rec.Date.Date()
		if n := len(out); n > 0 && out[n-1].Year == y && out[n-1].Month == m {
			out[n-1].Total += rec.Count
			continue
		}
		out = append(out, models.MonthTotal{
			Year:  y,
			Month: m,
			Label: fmt.Sprintf("%04d-%02d", y, int(m)),
			Total: rec.Count,
		})
	}
	return out
}

// seasonalTotals always returns one entry per models.SeasonOrder element.
func seasonalTotals(records []models.RentalRecord) []models.SeasonTotal {
	sums := make(map[models.Season]int64, len(models.SeasonOrder))
	for _, rec := range records {
		sums[rec.Season] += rec.Count
	}
	out := make([]models.SeasonTotal, 0, len(models.SeasonOrder))
	for _, s := range models.SeasonOrder {
		out = append(out, models.SeasonTotal{Season: s, Total: sums[s]})
	}
	return out
}

// weekdayTotals always returns one entry per models.WeekdayOrder element.
func weekdayTotals(records []models.RentalRecord) []models.WeekdayTotal {
	var sums [7]int64
	for _, rec := range records {
		sums[rec.Date.Weekday()] += rec.Count
	}
	out := make([]models.WeekdayTotal, 0, len(models.WeekdayOrder))
	for _, wd := range models.WeekdayOrder {
		out = append(out, models.WeekdayTotal{Weekday: wd.String(), Total: sums[wd]})
	}
	return out
}

func summarize(records []models.RentalRecord) *models.Summary {
	var s models.Summary
	for i, rec := range records {
		s.Sum += rec.Count
		if i == 0 || rec.Count > s.Max {
			s.Max = rec.Count
		}
	}
	s.Mean = float64(s.Sum) / float64(len(records))
	return &s
}

// FullRange returns the dataset span, used when the caller selects nothing.
func FullRange(ds *models.Dataset) (models.DateRange, error) {
	r, ok := ds.Bounds()
	if !ok {
		return models.DateRange{}, fmt.Errorf("%w: dataset is empty", models.ErrDataUnavailable)
	}
	return r, nil
}

// resolveRange fills missing bounds from the dataset span.
func resolveRange(ds *models.Dataset, start, end *time.Time) (models.DateRange, error) {
	full, err := FullRange(ds)
	if err != nil {
		return models.DateRange{}, err
	}
	r := full
	if start != nil {
		r.Start = models.DateOnly(*start)
	}
	if end != nil {
		r.End = models.DateOnly(*end)
	}
	return r, nil
}
