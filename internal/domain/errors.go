package domain

import "errors"

// ErrUnknownCity is returned when a city key is outside the supported set.
// The CLI validates input before it gets here, so seeing this is a caller bug.
var ErrUnknownCity = errors.New("unknown city")

// ErrMissingColumn is returned by the loader when a required column
// (Start Time, Start Station, End Station, Trip Duration, User Type) is absent.
// Missing optional columns are reported through Schema instead.
var ErrMissingColumn = errors.New("missing required column")

// ErrMalformedTimestamp is returned by the loader when any row's start time
// cannot be parsed. The whole load is aborted.
var ErrMalformedTimestamp = errors.New("malformed timestamp")

// ErrMalformedValue is returned by the loader when a numeric cell (trip
// duration, birth year) cannot be coerced to an integer.
var ErrMalformedValue = errors.New("malformed value")

// ErrNoData is returned by aggregates that are undefined over zero records,
// such as mean trip duration. It means "no trips matched", which is distinct
// from a column the city does not track.
var ErrNoData = errors.New("no data")

// ErrValidation is returned when raw filter input is outside the vocabulary.
var ErrValidation = errors.New("validation error")
