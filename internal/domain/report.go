package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TimeStats holds the most frequent travel times.
// Each field lists every value tied for the highest count, ascending.
// All fields are empty (non-nil) for an empty dataset.
type TimeStats struct {
	Months   []Month   `json:"months"`
	Weekdays []Weekday `json:"weekdays"`
	Hours    []int     `json:"hours"`
}

// StationPair is the identity of a trip: ordered start and end station.
type StationPair struct {
	Start string
	End   string
}

// String renders the pair the way reports show it.
func (p StationPair) String() string {
	return fmt.Sprintf("From %s to %s", p.Start, p.End)
}

// StationStats holds the most popular stations and trips.
// Ties are listed in ascending lexical order.
type StationStats struct {
	StartStations []string `json:"start_stations"`
	EndStations   []string `json:"end_stations"`
	Trips         []string `json:"trips"`
}

// DurationStats holds trip duration aggregates in whole seconds.
// Both values are truncated, never rounded.
type DurationStats struct {
	TotalSeconds int64 `json:"total_seconds"`
	MeanSeconds  int64 `json:"mean_seconds"`
}

// CategoryCount is one entry of a value-count breakdown.
type CategoryCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// BirthYearStats holds birth-year extremes. Either field is nil when no
// value is available for it in the filtered records.
type BirthYearStats struct {
	Earliest *int `json:"earliest,omitempty"`
	// MostRecentTrip is the birth year recorded on the trip with the latest
	// start time. It is nil when that specific trip has no birth year, even if
	// other trips do.
	MostRecentTrip *int `json:"most_recent_trip,omitempty"`
}

// UserStats holds rider demographics.
// Genders is nil when the city does not track gender, and an empty non-nil
// slice when it does but no filtered trip has one. BirthYears is nil when the
// city does not track birth year.
type UserStats struct {
	UserTypes  []CategoryCount `json:"user_types"`
	Genders    []CategoryCount `json:"genders"`
	BirthYears *BirthYearStats `json:"birth_years"`
}

// SectionTimings records how long each report section took to compute.
type SectionTimings struct {
	Time     time.Duration `json:"time_ns"`
	Stations time.Duration `json:"stations_ns"`
	Duration time.Duration `json:"duration_ns"`
	Users    time.Duration `json:"users_ns"`
}

// Report is the read-only statistics snapshot for one filtered dataset.
// Sections appear in the fixed order time, stations, duration, users.
type Report struct {
	SessionID uuid.UUID  `json:"session_id"`
	Filter    FilterSpec `json:"filter"`
	Trips     int        `json:"trips"`
	// Schema carries the availability flags of the city's optional columns.
	Schema Schema `json:"schema"`

	Time     TimeStats    `json:"time"`
	Stations StationStats `json:"stations"`
	// Duration is nil when no trips matched the filter.
	Duration *DurationStats `json:"duration"`
	Users    UserStats      `json:"users"`

	Timings SectionTimings `json:"timings"`
}

// NoData reports whether no trips matched the filter.
func (r Report) NoData() bool {
	return r.Trips == 0
}
