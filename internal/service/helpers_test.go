package service_test

import (
	"time"

	"github.com/pkordes/bikeshare-explorer/internal/domain"
)

// ---- helpers ---------------------------------------------------------------

// at returns a UTC timestamp in 2017, the year the city datasets cover.
func at(month time.Month, day, hour int) time.Time {
	return time.Date(2017, month, day, hour, 0, 0, 0, time.UTC)
}

// trip builds a record with derived fields filled in.
func trip(start time.Time, from, to string, seconds int64) domain.TripRecord {
	return domain.NewTripRecord(domain.TripRecord{
		StartTime:    start,
		StartStation: from,
		EndStation:   to,
		TripDuration: seconds,
		UserType:     "Subscriber",
	})
}

// dataset wraps records in a Chicago dataset with every optional column present.
func dataset(records ...domain.TripRecord) domain.Dataset {
	return domain.Dataset{
		City:    domain.Chicago,
		Schema:  domain.Schema{HasEndTime: true, HasGender: true, HasBirthYear: true},
		Records: records,
	}
}

func intPtr(v int) *int { return &v }
