// Package repo contains all dataset access logic for the bikeshare explorer.
// It resolves a city to its CSV file, reads the file into memory and maps
// each row to a domain.TripRecord. No statistics live here, only I/O and
// type coercion.
package repo

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/pkordes/bikeshare-explorer/internal/domain"
)

// Source column names as they appear in the CSV header row.
const (
	colStartTime    = "Start Time"
	colEndTime      = "End Time"
	colTripDuration = "Trip Duration"
	colStartStation = "Start Station"
	colEndStation   = "End Station"
	colUserType     = "User Type"
	colGender       = "Gender"
	colBirthYear    = "Birth Year"
)

// requiredColumns must all be present or the load fails with domain.ErrMissingColumn.
var requiredColumns = []string{
	colStartTime, colStartStation, colEndStation, colTripDuration, colUserType,
}

// timeLayouts are tried in order when parsing Start Time and End Time cells.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

// TripRepo loads a city's trip dataset.
// The service layer depends on this interface, not the CSV implementation,
// which allows the pipeline to be unit-tested with an in-memory mock.
type TripRepo interface {
	// Load reads the whole dataset for city into memory and derives the
	// calendar fields of every record.
	// Returns domain.ErrUnknownCity, domain.ErrMissingColumn,
	// domain.ErrMalformedTimestamp or domain.ErrMalformedValue (all wrapped)
	// and never a partial dataset.
	Load(ctx context.Context, city domain.City) (domain.Dataset, error)
}

// csvTripRepo is the CSV file implementation of TripRepo.
type csvTripRepo struct {
	registry *Registry
}

// NewTripRepo constructs a TripRepo that reads files resolved by registry.
func NewTripRepo(registry *Registry) TripRepo {
	return &csvTripRepo{registry: registry}
}

// Load resolves city, reads its CSV file and decodes every row.
func (r *csvTripRepo) Load(ctx context.Context, city domain.City) (domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return domain.Dataset{}, fmt.Errorf("repo.TripRepo.Load: %w", err)
	}

	city, err := domain.ParseCity(string(city))
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("repo.TripRepo.Load: %w", err)
	}

	path, err := r.registry.Resolve(city)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("repo.TripRepo.Load: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("repo.TripRepo.Load: %w", err)
	}
	defer f.Close()

	ds, err := ReadDataset(f)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("repo.TripRepo.Load: %s: %w", path, err)
	}
	ds.City = city
	return ds, nil
}

// ReadDataset decodes a trip CSV (header row first) from rd.
// The header is checked before any data row is read, so a file with only a
// header still reports missing columns and otherwise yields an empty Dataset.
// Every column is read as a string and coerced here, so a value gota would
// have guessed as float (e.g. "1992.0" birth years) is handled uniformly.
func ReadDataset(rd io.Reader) (domain.Dataset, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("read csv: %w", err)
	}

	header := csv.NewReader(bytes.NewReader(data))
	names, err := header.Read()
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("read csv header: %w", err)
	}
	schema, err := schemaFor(names)
	if err != nil {
		return domain.Dataset{}, err
	}
	// gota rejects a frame without rows; blank lines do not count as rows.
	if _, err := header.Read(); errors.Is(err, io.EOF) {
		return domain.Dataset{Schema: schema, Records: []domain.TripRecord{}}, nil
	}

	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return domain.Dataset{}, fmt.Errorf("read csv: %w", df.Err)
	}
	return decodeFrame(df, schema)
}

// schemaFor checks the header row for the required columns and records
// which optional ones the city provides.
func schemaFor(names []string) (domain.Schema, error) {
	present := make(map[string]bool, len(names))
	for _, name := range names {
		present[name] = true
	}

	var missing []string
	for _, name := range requiredColumns {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return domain.Schema{}, fmt.Errorf("%w: %s", domain.ErrMissingColumn, strings.Join(missing, ", "))
	}

	return domain.Schema{
		HasEndTime:   present[colEndTime],
		HasGender:    present[colGender],
		HasBirthYear: present[colBirthYear],
	}, nil
}

// decodeFrame maps every row of df into a domain.TripRecord.
func decodeFrame(df dataframe.DataFrame, schema domain.Schema) (domain.Dataset, error) {
	starts := cells(df, colStartTime)
	startStations := cells(df, colStartStation)
	endStations := cells(df, colEndStation)
	durations := cells(df, colTripDuration)
	userTypes := cells(df, colUserType)

	var ends, genders, birthYears []string
	if schema.HasEndTime {
		ends = cells(df, colEndTime)
	}
	if schema.HasGender {
		genders = cells(df, colGender)
	}
	if schema.HasBirthYear {
		birthYears = cells(df, colBirthYear)
	}

	records := make([]domain.TripRecord, df.Nrow())
	for i := range records {
		// Data rows start on line 2 of the file, after the header.
		line := i + 2

		start, err := parseTime(starts[i])
		if err != nil {
			return domain.Dataset{}, fmt.Errorf("%w: line %d: start time %q", domain.ErrMalformedTimestamp, line, starts[i])
		}

		duration, err := parseSeconds(durations[i])
		if err != nil {
			return domain.Dataset{}, fmt.Errorf("%w: line %d: trip duration %q", domain.ErrMalformedValue, line, durations[i])
		}

		rec := domain.TripRecord{
			StartTime:    start,
			StartStation: startStations[i],
			EndStation:   endStations[i],
			TripDuration: duration,
			UserType:     userTypes[i],
		}

		if ends != nil && ends[i] != "" {
			end, err := parseTime(ends[i])
			if err != nil {
				return domain.Dataset{}, fmt.Errorf("%w: line %d: end time %q", domain.ErrMalformedTimestamp, line, ends[i])
			}
			rec.EndTime = &end
		}
		if genders != nil {
			rec.Gender = genders[i]
		}
		if birthYears != nil && birthYears[i] != "" {
			year, err := parseYear(birthYears[i])
			if err != nil {
				return domain.Dataset{}, fmt.Errorf("%w: line %d: birth year %q", domain.ErrMalformedValue, line, birthYears[i])
			}
			rec.BirthYear = &year
		}

		records[i] = domain.NewTripRecord(rec)
	}

	return domain.Dataset{Schema: schema, Records: records}, nil
}

// cells returns the trimmed string values of a column, with NA cells as "".
func cells(df dataframe.DataFrame, name string) []string {
	col := df.Col(name)
	out := make([]string, col.Len())
	for i := range out {
		e := col.Elem(i)
		if e.IsNA() {
			continue
		}
		out[i] = strings.TrimSpace(e.String())
	}
	return out
}

// parseTime parses s with the first matching layout in timeLayouts.
func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	var lastErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// parseSeconds coerces a duration cell to whole seconds, truncating any
// fractional part. Negative, empty and non-finite values are rejected.
func parseSeconds(s string) (int64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, fmt.Errorf("out of range: %v", f)
	}
	return int64(f), nil
}

// parseYear coerces a birth year cell ("1992" or "1992.0") to an int.
func parseYear(s string) (int, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("out of range: %v", f)
	}
	return int(f), nil
}
