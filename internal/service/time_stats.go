package service

import "github.com/pkordes/bikeshare-explorer/internal/domain"

// TimeStats returns the most common month, weekday and start hour of ds.
// Every value tied for the top count is reported, ascending.
func TimeStats(ds domain.Dataset) domain.TimeStats {
	months := make([]domain.Month, len(ds.Records))
	weekdays := make([]domain.Weekday, len(ds.Records))
	hours := make([]int, len(ds.Records))
	for i, rec := range ds.Records {
		months[i] = rec.Derived.Month
		weekdays[i] = rec.Derived.Weekday
		hours[i] = rec.Derived.Hour
	}

	return domain.TimeStats{
		Months:   modes(months),
		Weekdays: modes(weekdays),
		Hours:    modes(hours),
	}
}
