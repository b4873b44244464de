// Package domain contains the core data types for the bikeshare explorer.
// This package depends only on the standard library and is imported by every
// other internal package (repo, service, handler).
package domain

import "time"

// TripRecord is one row of a city's trip dataset.
// Optional fields are nil when the cell is blank or the column is absent;
// check the owning Dataset's Schema to tell the two apart.
type TripRecord struct {
	StartTime    time.Time
	EndTime      *time.Time // nil when the cell is blank or the city has no End Time column
	StartStation string
	EndStation   string
	// TripDuration is in whole seconds. Fractional seconds in the source are dropped.
	TripDuration int64
	UserType     string
	Gender       string // empty when missing
	BirthYear    *int

	// Derived is computed from StartTime when the record is built and is never edited.
	Derived DerivedFields
}

// NewTripRecord returns r with its derived fields recomputed from StartTime.
// Every record that enters a Dataset goes through here so that Derived always
// agrees with StartTime.
func NewTripRecord(r TripRecord) TripRecord {
	r.Derived = Derive(r.StartTime)
	return r
}

// Schema describes which optional columns a source dataset carries.
// It is computed once at load time; aggregators read it instead of probing
// individual records.
type Schema struct {
	HasEndTime   bool `json:"has_end_time"`
	HasGender    bool `json:"has_gender"`
	HasBirthYear bool `json:"has_birth_year"`
}

// Dataset is an ordered, in-memory sequence of trip records for one city.
// Filtering produces a new Dataset sharing the same Schema; the records of a
// loaded Dataset are never mutated.
type Dataset struct {
	City    City
	Schema  Schema
	Records []TripRecord
}

// Len returns the number of records.
func (d Dataset) Len() int {
	return len(d.Records)
}

// IsEmpty reports whether the dataset has no records.
func (d Dataset) IsEmpty() bool {
	return len(d.Records) == 0
}
