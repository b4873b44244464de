// Package logging builds the structured logger used across the bikeshare
// explorer and provides helpers for logging pipeline stages.
//
// The interactive session writes its report to stdout, so log lines are
// always written to a separate writer (stderr or a log file).
package logging

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// sessionKey is used to store the session ID in a context.
type sessionKey struct{}

// New returns a JSON slog.Logger writing to w at the given level.
// Unknown level names fall back to info.
func New(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// WithSessionID returns a copy of ctx carrying id. Every pipeline run gets
// its own ID so the log lines of one run can be grouped.
func WithSessionID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, sessionKey{}, id)
}

// SessionID returns the session ID stored in ctx, or uuid.Nil.
func SessionID(ctx context.Context) uuid.UUID {
	if id, ok := ctx.Value(sessionKey{}).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

// Stage runs fn and writes one structured line for it: stage name, duration
// and the session ID from ctx. It returns how long fn took.
func Stage(ctx context.Context, log *slog.Logger, stage string, fn func()) time.Duration {
	start := time.Now()
	fn()
	elapsed := time.Since(start)

	if log != nil {
		log.InfoContext(ctx, "stage",
			"stage", stage,
			"duration_ms", elapsed.Milliseconds(),
			"session_id", SessionID(ctx).String(),
		)
	}
	return elapsed
}

// LogError logs err with a message and any extra attributes.
// A nil logger or nil error is a no-op.
func LogError(ctx context.Context, log *slog.Logger, message string, err error, attrs ...slog.Attr) {
	if log == nil || err == nil {
		return
	}
	args := make([]any, 0, len(attrs)+2)
	args = append(args, slog.String("error", err.Error()), slog.String("session_id", SessionID(ctx).String()))
	for _, attr := range attrs {
		args = append(args, attr)
	}
	log.ErrorContext(ctx, message, args...)
}
