package dataset

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/bikepulse/internal/domain/models"
)

// dateLayouts are tried in order for textual dates.
var dateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
}

// serialEpoch is day zero of spreadsheet serial dates (1900 date system).
var serialEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// maxSerialDay keeps serial dates within year 9999.
const maxSerialDay = 2958465

// ParseRows normalizes raw rows into records sorted ascending by date.
//
// It is STRICT: any unparseable date, season or count, a negative count,
// a duplicate date or an empty input fails the whole batch.
func ParseRows(rows []RawRow) ([]models.RentalRecord, error) {
	if len(rows) == 0 {
		return nil, errors.New("no rows")
	}

	out := make([]models.RentalRecord, 0, len(rows))
	seen := make(map[time.Time]int, len(rows))

	for _, row := range rows {
		rec, err := rowToRecord(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", row.Line, err)
		}
		if prev, ok := seen[rec.Date]; ok {
			return nil, fmt.Errorf("line %d: duplicate date %s (first seen on line %d)", row.Line, rec.Date.Format(time.DateOnly), prev)
		}
		seen[rec.Date] = row.Line
		out = append(out, rec)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// rowToRecord converts one raw row into a models.RentalRecord.
func rowToRecord(row RawRow) (models.RentalRecord, error) {
	var rec models.RentalRecord

	d, err := parseDate(row.Date)
	if err != nil {
		return rec, err
	}
	rec.Date = d

	s, err := models.ParseSeason(row.Season)
	if err != nil {
		return rec, err
	}
	rec.Season = s

	c, err := parseCount(row.Count)
	if err != nil {
		return rec, err
	}
	rec.Count = c

	return rec, nil
}

// parseDate accepts the textual layouts in dateLayouts or a spreadsheet
// serial day number. The result is truncated to midnight UTC.
func parseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return models.DateOnly(t), nil
		}
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(f) || f < 1 || f > maxSerialDay {
			return time.Time{}, fmt.Errorf("serial date out of range: %q", raw)
		}
		return serialEpoch.AddDate(0, 0, int(math.Floor(f))), nil
	}

	return time.Time{}, fmt.Errorf("invalid date: %q", raw)
}

// parseCount accepts a non-negative integer. Whole floats such as "985.0"
// (common after a spreadsheet round-trip) are accepted.
func parseCount(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, errors.New("empty count")
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt64/2 {
			return 0, fmt.Errorf("invalid count: %q", raw)
		}
		v = int64(f)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative count: %d", v)
	}
	return v, nil
}
