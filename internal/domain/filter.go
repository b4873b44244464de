package domain

import (
	"fmt"
	"strings"
)

// City identifies one of the supported bikeshare systems.
type City string

const (
	Chicago     City = "chicago"
	NewYorkCity City = "new york city"
	Washington  City = "washington"
)

// Cities lists the supported cities in prompt order.
var Cities = []City{Chicago, NewYorkCity, Washington}

// ParseCity normalises s (trimmed, case-insensitive) to a supported City.
// Returns ErrUnknownCity for anything outside the closed set.
func ParseCity(s string) (City, error) {
	c := City(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Cities {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCity, s)
}

// FilterSpec selects which rows of a city's dataset are analysed.
// Month is AllMonths and Day is AllDays when the user asked for no filter.
// Build it with NewFilterSpec and treat it as a value: it is never modified.
type FilterSpec struct {
	City  City    `json:"city"`
	Month Month   `json:"month"`
	Day   Weekday `json:"day"`
}

// NewFilterSpec parses the three raw answers collected by the CLI.
// The CLI validates each answer as it is typed, so an error here means the
// caller broke that contract.
func NewFilterSpec(city, month, day string) (FilterSpec, error) {
	c, err := ParseCity(city)
	if err != nil {
		return FilterSpec{}, err
	}
	m, ok := ParseMonth(month)
	if !ok {
		return FilterSpec{}, fmt.Errorf("%w: unknown month %q", ErrValidation, month)
	}
	d, ok := ParseWeekday(day)
	if !ok {
		return FilterSpec{}, fmt.Errorf("%w: unknown day %q", ErrValidation, day)
	}
	return FilterSpec{City: c, Month: m, Day: d}, nil
}

// Matches reports whether a record with the given derived fields passes the filter.
func (f FilterSpec) Matches(d DerivedFields) bool {
	if f.Month != AllMonths && d.Month != f.Month {
		return false
	}
	if f.Day != AllDays && d.Weekday != f.Day {
		return false
	}
	return true
}

// IsPassThrough reports whether the spec filters nothing.
func (f FilterSpec) IsPassThrough() bool {
	return f.Month == AllMonths && f.Day == AllDays
}
