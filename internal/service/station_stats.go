package service

import (
	"cmp"
	"slices"

	"github.com/pkordes/bikeshare-explorer/internal/domain"
)

// StationStats returns the most common start station, end station and trip.
// A trip is the ordered (start, end) pair, so A→B and B→A are different trips.
// Blank station cells are not counted, and a trip needs both of its stations.
func StationStats(ds domain.Dataset) domain.StationStats {
	starts := make([]string, 0, len(ds.Records))
	ends := make([]string, 0, len(ds.Records))
	pairs := make([]domain.StationPair, 0, len(ds.Records))
	for _, rec := range ds.Records {
		if rec.StartStation != "" {
			starts = append(starts, rec.StartStation)
		}
		if rec.EndStation != "" {
			ends = append(ends, rec.EndStation)
		}
		if rec.StartStation != "" && rec.EndStation != "" {
			pairs = append(pairs, domain.StationPair{Start: rec.StartStation, End: rec.EndStation})
		}
	}

	top := pairModes(pairs)
	trips := make([]string, len(top))
	for i, p := range top {
		trips[i] = p.String()
	}

	return domain.StationStats{
		StartStations: modes(starts),
		EndStations:   modes(ends),
		Trips:         trips,
	}
}

// pairModes is modes for station pairs, which are compared on the pair
// itself rather than the rendered text so station names containing " to "
// cannot collide.
func pairModes(pairs []domain.StationPair) []domain.StationPair {
	counts := make(map[domain.StationPair]int)
	best := 0
	for _, p := range pairs {
		counts[p]++
		best = max(best, counts[p])
	}

	out := make([]domain.StationPair, 0)
	for p, n := range counts {
		if n == best {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b domain.StationPair) int {
		return cmp.Or(cmp.Compare(a.Start, b.Start), cmp.Compare(a.End, b.End))
	})
	return out
}
