// Package service contains the statistics pipeline of the bikeshare explorer.
// It filters a loaded dataset, runs the four aggregators and packages their
// results into a domain.Report. No file access lives here; services depend on
// the repo.TripRepo interface, not the CSV implementation.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pkordes/bikeshare-explorer/internal/domain"
	"github.com/pkordes/bikeshare-explorer/internal/logging"
)

// ReportService assembles the statistics report for a filtered dataset.
type ReportService struct {
	log *slog.Logger
}

// NewReportService constructs a ReportService that logs each section's timing to log.
func NewReportService(log *slog.Logger) *ReportService {
	return &ReportService{log: log}
}

// Assemble runs the time, station, duration and user aggregators over ds, in
// that order, and returns their combined report.
// An empty dataset is not an error: the duration section is left nil and the
// other sections are empty.
func (s *ReportService) Assemble(ctx context.Context, ds domain.Dataset, spec domain.FilterSpec) (domain.Report, error) {
	report := domain.Report{
		SessionID: logging.SessionID(ctx),
		Filter:    spec,
		Trips:     ds.Len(),
		Schema:    ds.Schema,
	}

	report.Timings.Time = logging.Stage(ctx, s.log, "time_stats", func() {
		report.Time = TimeStats(ds)
	})
	if err := ctx.Err(); err != nil {
		return domain.Report{}, fmt.Errorf("service.ReportService.Assemble: %w", err)
	}

	report.Timings.Stations = logging.Stage(ctx, s.log, "station_stats", func() {
		report.Stations = StationStats(ds)
	})
	if err := ctx.Err(); err != nil {
		return domain.Report{}, fmt.Errorf("service.ReportService.Assemble: %w", err)
	}

	var durationErr error
	report.Timings.Duration = logging.Stage(ctx, s.log, "duration_stats", func() {
		var d domain.DurationStats
		d, durationErr = DurationStats(ds)
		if durationErr == nil {
			report.Duration = &d
		}
	})
	if durationErr != nil && !errors.Is(durationErr, domain.ErrNoData) {
		return domain.Report{}, fmt.Errorf("service.ReportService.Assemble: %w", durationErr)
	}
	if err := ctx.Err(); err != nil {
		return domain.Report{}, fmt.Errorf("service.ReportService.Assemble: %w", err)
	}

	report.Timings.Users = logging.Stage(ctx, s.log, "user_stats", func() {
		report.Users = UserStats(ds)
	})

	return report, nil
}
