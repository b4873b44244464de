package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/bikeshare-explorer/internal/service"
)

func TestStationStats_TiedStartStations(t *testing.T) {
	ds := dataset(
		trip(at(1, 2, 8), "Streeter Dr", "X", 60),
		trip(at(1, 2, 9), "Clark St", "Y", 60),
		trip(at(1, 2, 10), "Streeter Dr", "Z", 60),
		trip(at(1, 2, 11), "Clark St", "X", 60),
		trip(at(1, 2, 12), "Streeter Dr", "Y", 60),
		trip(at(1, 2, 13), "Clark St", "X", 60),
		trip(at(1, 2, 14), "Lake Shore", "X", 60),
	)

	got := service.StationStats(ds)

	assert.Equal(t, []string{"Clark St", "Streeter Dr"}, got.StartStations)
	assert.Equal(t, []string{"X"}, got.EndStations)
	assert.Equal(t, []string{"From Clark St to X"}, got.Trips)
}

func TestStationStats_TripIsOrderedPair(t *testing.T) {
	ds := dataset(
		trip(at(1, 2, 8), "A", "B", 60),
		trip(at(1, 2, 9), "B", "A", 60),
		trip(at(1, 2, 10), "A", "B", 60),
	)

	got := service.StationStats(ds)

	assert.Equal(t, []string{"From A to B"}, got.Trips)
}

func TestStationStats_TripPairsDoNotCollide(t *testing.T) {
	// Rendered as text both read "From A to B to C"; as pairs they are distinct.
	ds := dataset(
		trip(at(1, 2, 8), "A", "B to C", 60),
		trip(at(1, 2, 9), "A to B", "C", 60),
	)

	got := service.StationStats(ds)

	assert.Len(t, got.Trips, 2)
}

func TestStationStats_SkipsBlankStations(t *testing.T) {
	ds := dataset(
		trip(at(1, 2, 8), "", "B", 60),
		trip(at(1, 2, 9), "", "B", 60),
		trip(at(1, 2, 10), "", "", 60),
		trip(at(1, 2, 11), "A", "", 60),
		trip(at(1, 2, 12), "C", "B", 60),
	)

	got := service.StationStats(ds)

	assert.Equal(t, []string{"A", "C"}, got.StartStations)
	assert.Equal(t, []string{"B"}, got.EndStations)
	assert.Equal(t, []string{"From C to B"}, got.Trips)
}

func TestStationStats_AllBlank(t *testing.T) {
	got := service.StationStats(dataset(trip(at(1, 2, 8), "", "", 60)))

	assert.NotNil(t, got.StartStations)
	assert.Empty(t, got.StartStations)
	assert.Empty(t, got.EndStations)
	assert.Empty(t, got.Trips)
}

func TestStationStats_Empty(t *testing.T) {
	got := service.StationStats(dataset())

	assert.NotNil(t, got.StartStations)
	assert.Empty(t, got.StartStations)
	assert.Empty(t, got.EndStations)
	assert.NotNil(t, got.Trips)
	assert.Empty(t, got.Trips)
}
