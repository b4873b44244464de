package service

import (
	"fmt"

	"github.com/pkordes/bikeshare-explorer/internal/domain"
)

// DurationStats returns the total and mean trip duration of ds in seconds.
// The mean is truncated toward zero. Returns domain.ErrNoData for an empty
// dataset because the mean is undefined.
func DurationStats(ds domain.Dataset) (domain.DurationStats, error) {
	if ds.IsEmpty() {
		return domain.DurationStats{}, fmt.Errorf("service.DurationStats: mean trip duration: %w", domain.ErrNoData)
	}

	var total int64
	for _, rec := range ds.Records {
		total += rec.TripDuration
	}
	return domain.DurationStats{
		TotalSeconds: total,
		MeanSeconds:  total / int64(len(ds.Records)),
	}, nil
}
