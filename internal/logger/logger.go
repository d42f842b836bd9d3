package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type runIDKey struct{}

// WithRunID attaches a pipeline run id that is added to every log line written with ctx.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey{}, runID)
}

type implLogger struct {
	logger zerolog.Logger
	level  zerolog.Level
}

// New creates a Logger writing to stdout. format is "json" or "text".
func New(level, format string) Logger {
	return newWithWriter(os.Stdout, level, format)
}

func newWithWriter(w io.Writer, level, format string) *implLogger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel // default to info
	}

	if !strings.EqualFold(format, "json") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime, NoColor: true}
	}

	return &implLogger{
		logger: zerolog.New(w).With().Timestamp().Logger(),
		level:  lvl,
	}
}

func (l *implLogger) shouldLog(level string) bool {
	target, err := zerolog.ParseLevel(level)
	if err != nil {
		return true
	}
	return target >= l.level
}

func (l *implLogger) event(ctx context.Context, e *zerolog.Event) *zerolog.Event {
	if ctx == nil {
		return e
	}
	if runID, ok := ctx.Value(runIDKey{}).(string); ok && runID != "" {
		e = e.Str("run", runID)
	}
	return e
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("debug") {
		l.event(ctx, l.logger.Debug()).Msgf(msg, args...)
	}
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("info") {
		l.event(ctx, l.logger.Info()).Msgf(msg, args...)
	}
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("warn") {
		l.event(ctx, l.logger.Warn()).Msgf(msg, args...)
	}
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("error") {
		l.event(ctx, l.logger.Error()).Msgf(msg, args...)
	}
}
