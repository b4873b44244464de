package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pkordes/bikeshare-explorer/internal/domain"
	"github.com/pkordes/bikeshare-explorer/internal/logging"
	"github.com/pkordes/bikeshare-explorer/internal/repo"
)

// ExploreService runs the whole pipeline for one set of filter answers:
// load the city's dataset, filter it, assemble the report and hand back a
// pager over the filtered rows.
type ExploreService struct {
	trips   repo.TripRepo
	reports *ReportService
	log     *slog.Logger
}

// NewExploreService constructs an ExploreService backed by the provided repo.
func NewExploreService(trips repo.TripRepo, log *slog.Logger) *ExploreService {
	return &ExploreService{trips: trips, reports: NewReportService(log), log: log}
}

// Explore runs the pipeline from scratch. Nothing is cached between calls, so
// a restart with different filters always sees a freshly loaded dataset.
// Load errors (domain.ErrUnknownCity, domain.ErrMissingColumn,
// domain.ErrMalformedTimestamp, domain.ErrMalformedValue) are returned
// wrapped; an empty filter result is not an error.
func (s *ExploreService) Explore(ctx context.Context, spec domain.FilterSpec) (domain.Report, *Pager, error) {
	ctx = logging.WithSessionID(ctx, uuid.New())

	var (
		ds  domain.Dataset
		err error
	)
	logging.Stage(ctx, s.log, "load", func() {
		ds, err = s.trips.Load(ctx, spec.City)
	})
	if err != nil {
		logging.LogError(ctx, s.log, "load dataset", err, slog.String("city", string(spec.City)))
		return domain.Report{}, nil, fmt.Errorf("service.ExploreService.Explore: %w", err)
	}

	var filtered domain.Dataset
	logging.Stage(ctx, s.log, "filter", func() {
		filtered = Filter(ds, spec)
	})
	if s.log != nil {
		s.log.InfoContext(ctx, "filtered dataset",
			"city", string(spec.City),
			"month", spec.Month.String(),
			"day", spec.Day.String(),
			"loaded", ds.Len(),
			"matched", filtered.Len(),
			"session_id", logging.SessionID(ctx).String(),
		)
	}

	report, err := s.reports.Assemble(ctx, filtered, spec)
	if err != nil {
		return domain.Report{}, nil, fmt.Errorf("service.ExploreService.Explore: %w", err)
	}
	return report, NewPager(filtered), nil
}
