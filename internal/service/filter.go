package service

import (
	"slices"

	"github.com/pkordes/bikeshare-explorer/internal/domain"
)

// Filter returns the records of ds that match spec, in their original order.
// The month and day predicates are combined with AND; AllMonths and AllDays
// match everything. The input dataset is never modified and an empty result
// is valid.
func Filter(ds domain.Dataset, spec domain.FilterSpec) domain.Dataset {
	out := domain.Dataset{City: ds.City, Schema: ds.Schema}
	if spec.IsPassThrough() {
		out.Records = slices.Clone(ds.Records)
		return out
	}

	out.Records = make([]domain.TripRecord, 0, len(ds.Records))
	for _, rec := range ds.Records {
		if spec.Matches(rec.Derived) {
			out.Records = append(out.Records, rec)
		}
	}
	return out
}
