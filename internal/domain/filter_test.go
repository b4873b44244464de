package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/bikeshare-explorer/internal/domain"
)

func TestParseCity(t *testing.T) {
	got, err := domain.ParseCity("  New York City ")

	require.NoError(t, err)
	assert.Equal(t, domain.NewYorkCity, got)
}

func TestParseCity_Unknown(t *testing.T) {
	_, err := domain.ParseCity("boston")

	require.ErrorIs(t, err, domain.ErrUnknownCity)
	assert.ErrorContains(t, err, "boston")
}

func TestNewFilterSpec(t *testing.T) {
	spec, err := domain.NewFilterSpec("Chicago", "March", "all")

	require.NoError(t, err)
	assert.Equal(t, domain.FilterSpec{City: domain.Chicago, Month: 3, Day: domain.AllDays}, spec)
	assert.False(t, spec.IsPassThrough())
}

func TestNewFilterSpec_Invalid(t *testing.T) {
	_, err := domain.NewFilterSpec("washington", "smarch", "all")
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = domain.NewFilterSpec("washington", "all", "someday")
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = domain.NewFilterSpec("gotham", "all", "all")
	require.ErrorIs(t, err, domain.ErrUnknownCity)
}

func TestFilterSpec_Matches(t *testing.T) {
	fields := domain.DerivedFields{Month: 4, Weekday: 2, Hour: 12}

	assert.True(t, domain.FilterSpec{Month: domain.AllMonths, Day: domain.AllDays}.Matches(fields))
	assert.True(t, domain.FilterSpec{Month: 4, Day: domain.AllDays}.Matches(fields))
	assert.True(t, domain.FilterSpec{Month: domain.AllMonths, Day: 2}.Matches(fields))
	assert.True(t, domain.FilterSpec{Month: 4, Day: 2}.Matches(fields))
	assert.False(t, domain.FilterSpec{Month: 5, Day: 2}.Matches(fields))
	assert.False(t, domain.FilterSpec{Month: 4, Day: 0}.Matches(fields))
}

func TestStationPair_String(t *testing.T) {
	assert.Equal(t, "From Canal St to Clark St", domain.StationPair{Start: "Canal St", End: "Clark St"}.String())
}
