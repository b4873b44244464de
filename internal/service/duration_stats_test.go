package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/bikeshare-explorer/internal/domain"
	"github.com/pkordes/bikeshare-explorer/internal/service"
)

func TestDurationStats_TotalAndMean(t *testing.T) {
	ds := dataset(
		trip(at(1, 2, 8), "A", "B", 100),
		trip(at(1, 2, 9), "A", "B", 200),
		trip(at(1, 2, 10), "A", "B", 300),
	)

	got, err := service.DurationStats(ds)

	require.NoError(t, err)
	assert.Equal(t, domain.DurationStats{TotalSeconds: 600, MeanSeconds: 200}, got)
}

func TestDurationStats_MeanIsTruncated(t *testing.T) {
	ds := dataset(
		trip(at(1, 2, 8), "A", "B", 1),
		trip(at(1, 2, 9), "A", "B", 2),
		trip(at(1, 2, 10), "A", "B", 2),
	)

	got, err := service.DurationStats(ds)

	require.NoError(t, err)
	assert.Equal(t, int64(5), got.TotalSeconds)
	assert.Equal(t, int64(1), got.MeanSeconds) // 1.67 truncated, not rounded
}

func TestDurationStats_EmptyIsNoData(t *testing.T) {
	_, err := service.DurationStats(dataset())

	require.ErrorIs(t, err, domain.ErrNoData)
}
