package service

import (
	"cmp"
	"slices"

	"github.com/pkordes/bikeshare-explorer/internal/domain"
)

// modes returns every value in values that shares the highest frequency,
// sorted ascending. It returns an empty, non-nil slice for empty input.
func modes[T cmp.Ordered](values []T) []T {
	counts := make(map[T]int)
	best := 0
	for _, v := range values {
		counts[v]++
		best = max(best, counts[v])
	}

	out := make([]T, 0)
	for v, n := range counts {
		if n == best {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return out
}

// valueCounts counts non-empty values, ordered by count descending.
// Values with equal counts keep the order in which they were first seen.
// It returns an empty, non-nil slice when there is nothing to count.
func valueCounts(values []string) []domain.CategoryCount {
	index := make(map[string]int)
	out := make([]domain.CategoryCount, 0)
	for _, v := range values {
		if v == "" {
			continue
		}
		i, ok := index[v]
		if !ok {
			i = len(out)
			index[v] = i
			out = append(out, domain.CategoryCount{Value: v})
		}
		out[i].Count++
	}
	slices.SortStableFunc(out, func(a, b domain.CategoryCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return out
}
