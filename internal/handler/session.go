// Package handler implements the interactive command-line front end of the
// bikeshare explorer. It collects and validates the user's filter answers,
// hands them to the pipeline, and renders the resulting report and raw rows.
// All statistics live in the service package; nothing here computes them.
package handler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/pkordes/bikeshare-explorer/internal/domain"
	"github.com/pkordes/bikeshare-explorer/internal/logging"
	"github.com/pkordes/bikeshare-explorer/internal/service"
)

// Explorer defines the pipeline operation the session depends on.
// Defining the interface here, in the consumer package, lets session tests
// inject a fake pipeline without touching any CSV files.
type Explorer interface {
	Explore(ctx context.Context, spec domain.FilterSpec) (domain.Report, *service.Pager, error)
}

// State is a step of the interactive session.
type State int

const (
	StateCollectingFilters State = iota
	StateLoaded
	StateReporting
	StatePaging
	StateAwaitingRestart
	StateDone
)

func (s State) String() string {
	switch s {
	case StateCollectingFilters:
		return "collecting_filters"
	case StateLoaded:
		return "loaded"
	case StateReporting:
		return "reporting"
	case StatePaging:
		return "paging"
	case StateAwaitingRestart:
		return "awaiting_restart"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Session drives one user through any number of filter/report/browse rounds.
//
//	CollectingFilters → Loaded → Reporting → Paging → AwaitingRestart
//	AwaitingRestart → CollectingFilters (restart) | Done
//
// A load failure goes straight from CollectingFilters to AwaitingRestart.
// Running out of input moves to Done from any state.
type Session struct {
	explorer Explorer
	prompt   *prompter
	out      io.Writer
	log      *slog.Logger

	state  State
	spec   domain.FilterSpec
	report domain.Report
	pager  *service.Pager
}

// NewSession constructs a Session reading answers from in and writing to out.
func NewSession(explorer Explorer, in io.Reader, out io.Writer, log *slog.Logger) *Session {
	return &Session{
		explorer: explorer,
		prompt:   &prompter{in: bufio.NewScanner(in), out: out},
		out:      out,
		log:      log,
		state:    StateCollectingFilters,
	}
}

// State returns the state the session is in.
func (s *Session) State() State {
	return s.state
}

// Run steps through the state machine until the user declines to restart or
// input runs out. It returns an error only for output/input failures and
// context cancellation; load errors are shown to the user instead.
func (s *Session) Run(ctx context.Context) error {
	for s.state != StateDone {
		if err := ctx.Err(); err != nil {
			return err
		}
		next, err := s.step(ctx)
		if errors.Is(err, io.EOF) {
			s.state = StateDone
			return nil
		}
		if err != nil {
			return fmt.Errorf("handler.Session.Run: %s: %w", s.state, err)
		}
		if s.log != nil {
			s.log.DebugContext(ctx, "session transition", "from", s.state.String(), "to", next.String())
		}
		s.state = next
	}
	return nil
}

// step runs the current state once and returns the next state.
func (s *Session) step(ctx context.Context) (State, error) {
	switch s.state {
	case StateCollectingFilters:
		return s.collectFilters(ctx)
	case StateLoaded:
		return s.loaded()
	case StateReporting:
		return s.reporting()
	case StatePaging:
		return s.paging()
	case StateAwaitingRestart:
		return s.awaitRestart()
	default:
		return StateDone, nil
	}
}

func (s *Session) collectFilters(ctx context.Context) (State, error) {
	if _, err := fmt.Fprintln(s.out, "Hello! Let's explore some US bikeshare data!"); err != nil {
		return s.state, err
	}

	city, err := s.prompt.choose("\nWhich city do you want to analyze data from? Chicago, New York City or Washington?\n", validCity)
	if err != nil {
		return s.state, err
	}
	if err := s.confirm(city); err != nil {
		return s.state, err
	}

	month, err := s.prompt.choose("\nWhich month do you want to analyze? January to June, or 'all' for no filter.\n", validMonth)
	if err != nil {
		return s.state, err
	}
	if err := s.confirm(month); err != nil {
		return s.state, err
	}

	day, err := s.prompt.choose("\nWhich day do you want to analyze? Monday to Sunday, or 'all' for no filter.\n", validDay)
	if err != nil {
		return s.state, err
	}
	if err := s.confirm(day); err != nil {
		return s.state, err
	}
	if _, err := fmt.Fprintln(s.out, separator); err != nil {
		return s.state, err
	}

	spec, err := domain.NewFilterSpec(city, month, day)
	if err != nil {
		// The prompts only accept vocabulary words, so this is a programming error.
		return s.state, err
	}
	s.spec = spec

	report, pager, err := s.explorer.Explore(ctx, spec)
	if err != nil {
		logging.LogError(ctx, s.log, "explore", err, slog.String("city", string(spec.City)))
		if _, werr := fmt.Fprintf(s.out, "\nCould not load the %s dataset: %v\n", titled(string(spec.City)), err); werr != nil {
			return s.state, werr
		}
		return StateAwaitingRestart, nil
	}
	s.report = report
	s.pager = pager
	return StateLoaded, nil
}

func (s *Session) confirm(answer string) error {
	_, err := fmt.Fprintf(s.out, "\nYou selected %s.\n", titled(answer))
	return err
}

func (s *Session) loaded() (State, error) {
	// A new filter round always browses from the first row.
	s.pager.Reset()
	return StateReporting, nil
}

func (s *Session) reporting() (State, error) {
	if err := RenderReport(s.out, s.report); err != nil {
		return s.state, err
	}
	return StatePaging, nil
}

func (s *Session) paging() (State, error) {
	question := fmt.Sprintf("\nDo you want to see the next %d rows of raw data? y/n: ", domain.PageSize)
	if !s.pager.Started() {
		question = fmt.Sprintf("\nDo you want to see the first %d rows of raw data? y/n: ", domain.PageSize)
	}

	more, err := s.prompt.yesNo(question)
	if err != nil {
		return s.state, err
	}
	if !more {
		return StateAwaitingRestart, nil
	}
	if err := RenderPage(s.out, s.pager.Next(), s.report.Schema); err != nil {
		return s.state, err
	}
	return StatePaging, nil
}

func (s *Session) awaitRestart() (State, error) {
	restart, err := s.prompt.ask("\nWould you like to restart? y/n.\n")
	if err != nil {
		return s.state, err
	}
	if restart != "y" {
		return StateDone, nil
	}
	return StateCollectingFilters, nil
}
