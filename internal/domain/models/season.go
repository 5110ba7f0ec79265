package models

import (
	"fmt"
	"strings"
	"time"
)

// Season is the categorical season of a rental day.
type Season int

const (
	Spring Season = iota + 1
	Summer
	Fall
	Winter
)

// SeasonOrder is the fixed display order of seasons. Seasonal aggregates
// always carry exactly one entry per element, in this order.
var SeasonOrder = []Season{Spring, Summer, Fall, Winter}

// WeekdayOrder is the fixed display order of weekdays (Monday first).
var WeekdayOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

func (s Season) String() string {
	switch s {
	case Spring:
		return "Spring"
	case Summer:
		return "Summer"
	case Fall:
		return "Fall"
	case Winter:
		return "Winter"
	default:
		return fmt.Sprintf("Season(%d)", int(s))
	}
}

// Valid reports whether s is one of the four known seasons.
func (s Season) Valid() bool {
	return s >= Spring && s <= Winter
}

// MarshalText encodes the season by name so JSON output reads "Spring", not 1.
func (s Season) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid season %d", int(s))
	}
	return []byte(s.String()), nil
}

// ParseSeason accepts season names (case-insensitive) and the numeric codes
// 1..4 used by the public bike-sharing dataset.
//
//	"spring", "1" → Spring
//	"summer", "2" → Summer
//	"fall", "autumn", "3" → Fall
//	"winter", "4" → Winter
func ParseSeason(raw string) (Season, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "spring", "springer", "1":
		return Spring, nil
	case "summer", "2":
		return Summer, nil
	case "fall", "autumn", "3":
		return Fall, nil
	case "winter", "4":
		return Winter, nil
	}
	return 0, fmt.Errorf("unknown season %q", raw)
}
