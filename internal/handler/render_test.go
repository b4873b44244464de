package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/bikeshare-explorer/internal/domain"
	"github.com/pkordes/bikeshare-explorer/internal/handler"
)

func year(v int) *int { return &v }

func fullReport() domain.Report {
	return domain.Report{
		Filter: domain.FilterSpec{City: domain.NewYorkCity, Month: 6, Day: domain.AllDays},
		Trips:  42,
		Schema: domain.Schema{HasEndTime: true, HasGender: true, HasBirthYear: true},
		Time: domain.TimeStats{
			Months:   []domain.Month{6},
			Weekdays: []domain.Weekday{0, 4},
			Hours:    []int{17},
		},
		Stations: domain.StationStats{
			StartStations: []string{"Pershing Square North"},
			EndStations:   []string{"W 21 St & 6 Ave"},
			Trips:         []string{"From Pershing Square North to W 21 St & 6 Ave"},
		},
		Duration: &domain.DurationStats{TotalSeconds: 600, MeanSeconds: 200},
		Users: domain.UserStats{
			UserTypes:  []domain.CategoryCount{{Value: "Subscriber", Count: 40}, {Value: "Customer", Count: 2}},
			Genders:    []domain.CategoryCount{{Value: "Male", Count: 30}, {Value: "Female", Count: 12}},
			BirthYears: &domain.BirthYearStats{Earliest: year(1885), MostRecentTrip: year(1989)},
		},
	}
}

func TestRenderReport_AllSections(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, handler.RenderReport(&buf, fullReport()))

	out := buf.String()
	assert.Contains(t, out, "Analysing 42 trips (city: New York City, month: June, day: All).")
	assert.Contains(t, out, "The most common month(s) is(are): June")
	assert.Contains(t, out, "The most common day(s) is(are): Monday, Friday")
	assert.Contains(t, out, "The most common hour(s) is(are): 17:00")
	assert.Contains(t, out, "The most common start station(s) is(are): Pershing Square North")
	assert.Contains(t, out, "From Pershing Square North to W 21 St & 6 Ave")
	assert.Contains(t, out, "Total travel time is 600 seconds.")
	assert.Contains(t, out, "Mean travel time is 200 seconds.")
	assert.Regexp(t, `Subscriber\s+40`, out)
	assert.Regexp(t, `Female\s+12`, out)
	assert.Contains(t, out, "Earliest year of birth: 1885")
	assert.Contains(t, out, "Year of birth on most recent trip: 1989")
	assert.Equal(t, 4, bytes.Count(buf.Bytes(), []byte("This took ")))
}

func TestRenderReport_SectionOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, handler.RenderReport(&buf, fullReport()))
	out := buf.String()

	timeAt := bytes.Index([]byte(out), []byte("Most Frequent Times"))
	stationsAt := bytes.Index([]byte(out), []byte("Most Popular Stations"))
	durationAt := bytes.Index([]byte(out), []byte("Calculating Trip Duration"))
	usersAt := bytes.Index([]byte(out), []byte("Calculating User Stats"))

	assert.Less(t, timeAt, stationsAt)
	assert.Less(t, stationsAt, durationAt)
	assert.Less(t, durationAt, usersAt)
}

func TestRenderReport_MissingSections(t *testing.T) {
	r := domain.Report{
		Filter: domain.FilterSpec{City: domain.Washington, Month: 2, Day: 6},
		Time:   domain.TimeStats{Months: []domain.Month{}, Weekdays: []domain.Weekday{}, Hours: []int{}},
		Users:  domain.UserStats{UserTypes: []domain.CategoryCount{}},
	}
	var buf bytes.Buffer

	require.NoError(t, handler.RenderReport(&buf, r))

	out := buf.String()
	assert.Contains(t, out, "No trips matched your filter (city: Washington, month: February, day: Sunday).")
	assert.Contains(t, out, "The most common month(s) is(are): none")
	assert.Contains(t, out, "Trip duration is not available")
	assert.Contains(t, out, "Data for gender not available.")
	assert.Contains(t, out, "Data for year of birth not available.")
}

func TestRenderReport_BirthYearPartlyAvailable(t *testing.T) {
	r := fullReport()
	r.Users.BirthYears = &domain.BirthYearStats{Earliest: year(1950)}
	var buf bytes.Buffer

	require.NoError(t, handler.RenderReport(&buf, r))

	assert.Contains(t, buf.String(), "Earliest year of birth: 1950")
	assert.Contains(t, buf.String(), "Year of birth on most recent trip: not available")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderReport_WriteError(t *testing.T) {
	err := handler.RenderReport(failingWriter{}, fullReport())

	require.ErrorContains(t, err, "disk full")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, handler.RenderJSON(&buf, fullReport()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.EqualValues(t, 42, decoded["trips"])

	filter := decoded["filter"].(map[string]any)
	assert.Equal(t, "new york city", filter["city"])
	assert.Equal(t, "june", filter["month"])
	assert.Equal(t, "all", filter["day"])

	timeStats := decoded["time"].(map[string]any)
	assert.Equal(t, []any{"monday", "friday"}, timeStats["weekdays"])

	duration := decoded["duration"].(map[string]any)
	assert.EqualValues(t, 600, duration["total_seconds"])
}
