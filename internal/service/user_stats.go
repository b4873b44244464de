package service

import "github.com/pkordes/bikeshare-explorer/internal/domain"

// UserStats returns the rider breakdowns of ds.
// Which optional sections are computed is decided by ds.Schema, not by
// inspecting the records: a city without a Gender column yields nil Genders,
// while a city with the column but no matching values yields an empty slice.
func UserStats(ds domain.Dataset) domain.UserStats {
	userTypes := make([]string, len(ds.Records))
	for i, rec := range ds.Records {
		userTypes[i] = rec.UserType
	}
	stats := domain.UserStats{UserTypes: valueCounts(userTypes)}

	if ds.Schema.HasGender {
		genders := make([]string, len(ds.Records))
		for i, rec := range ds.Records {
			genders[i] = rec.Gender
		}
		stats.Genders = valueCounts(genders)
	}

	if ds.Schema.HasBirthYear {
		stats.BirthYears = birthYearStats(ds.Records)
	}

	return stats
}

// birthYearStats finds the earliest birth year on any record and the birth
// year on the record with the latest start time. When several records share
// the latest start time the first of them wins.
func birthYearStats(records []domain.TripRecord) *domain.BirthYearStats {
	stats := &domain.BirthYearStats{}
	latest := -1
	for i, rec := range records {
		if rec.BirthYear != nil && (stats.Earliest == nil || *rec.BirthYear < *stats.Earliest) {
			year := *rec.BirthYear
			stats.Earliest = &year
		}
		if latest < 0 || rec.StartTime.After(records[latest].StartTime) {
			latest = i
		}
	}

	// This is the birth year of whoever took the chronologically last trip,
	// not the most recent birth year among riders.
	if latest >= 0 && records[latest].BirthYear != nil {
		year := *records[latest].BirthYear
		stats.MostRecentTrip = &year
	}
	return stats
}
