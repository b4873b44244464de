// Package main is the entry point for the bikeshare explorer CLI.
// Its sole responsibility is wiring dependencies together and starting either
// the interactive session or a one-shot report. No statistics belong here.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkordes/bikeshare-explorer/internal/config"
	"github.com/pkordes/bikeshare-explorer/internal/domain"
	"github.com/pkordes/bikeshare-explorer/internal/handler"
	"github.com/pkordes/bikeshare-explorer/internal/logging"
	"github.com/pkordes/bikeshare-explorer/internal/repo"
	"github.com/pkordes/bikeshare-explorer/internal/service"
)

func main() {
	// Ctrl-C cancels the context; the session stops at its next step.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run wires the application and blocks until the report is printed or the
// session ends. Every resource it opens is released before it returns.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	flags := flag.NewFlagSet("bikeshare", flag.ContinueOnError)
	flags.SetOutput(errOut)
	city := flags.String("city", "", "run once for this city (chicago, new york city, washington) instead of prompting")
	month := flags.String("month", "all", "month filter for -city: january..december or all")
	day := flags.String("day", "all", "day filter for -city: monday..sunday or all")
	format := flags.String("format", "text", "report format for -city: text or json")
	if err := flags.Parse(args); err != nil {
		return err
	}

	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// --- Logger -----------------------------------------------------------
	// Logs never go to stdout, which carries the report and the prompts.
	logOut := errOut
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file %s: %w", cfg.LogFile, err)
		}
		defer f.Close()
		logOut = f
	}
	logger := logging.New(logOut, cfg.LogLevel)
	slog.SetDefault(logger)

	// --- Pipeline ---------------------------------------------------------
	trips := repo.NewTripRepo(repo.NewRegistry(cfg.DataDir))
	explorer := service.NewExploreService(trips, logger)

	if *city != "" {
		return runOnce(ctx, explorer, out, *city, *month, *day, *format)
	}

	logger.Info("session starting", "data_dir", cfg.DataDir)
	session := handler.NewSession(explorer, in, out, logger)
	if err := session.Run(ctx); err != nil {
		logger.Error("session error", "error", err)
		return err
	}
	logger.Info("session finished")
	return nil
}

// runOnce builds a report for one set of filters and prints it to out.
func runOnce(ctx context.Context, explorer *service.ExploreService, out io.Writer, city, month, day, format string) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}

	spec, err := domain.NewFilterSpec(city, month, day)
	if err != nil {
		return err
	}

	report, _, err := explorer.Explore(ctx, spec)
	if err != nil {
		return err
	}

	if format == "json" {
		return handler.RenderJSON(out, report)
	}
	return handler.RenderReport(out, report)
}
