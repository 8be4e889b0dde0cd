// Package logging provides structured logging configuration using log/slog.
//
// Every run logs to stdout and, when a log directory is configured, to a
// timestamped file in that directory. A batch run ID stored in the context
// is attached to every entry so one run can be followed through a shared
// log file.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileTimestampLayout is the time layout used in log file names.
const FileTimestampLayout = "20060102_150405"

// Setup configures the global slog logger based on level and format.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
//
// When dir is non-empty, entries are also written to
// dir/file_transform_YYYYMMDD_HHMMSS.log; the directory is created if
// needed. The returned file is nil when dir is empty. The caller closes it.
func Setup(level, format, dir string) (*os.File, error) {
	var (
		w    io.Writer = os.Stdout
		file *os.File
	)

	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		path := filepath.Join(dir, FileName(time.Now()))
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		file = f
		w = io.MultiWriter(os.Stdout, f)
	}

	slog.SetDefault(slog.New(NewHandler(w, level, format)))
	return file, nil
}

// NewHandler builds the text or JSON handler Setup installs.
func NewHandler(w io.Writer, level, format string) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	if strings.ToLower(format) == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// FileName returns the log file name for a run started at t.
func FileName(t time.Time) string {
	return "file_transform_" + t.Format(FileTimestampLayout) + ".log"
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type runIDKey struct{}

// WithRunID returns a copy of ctx carrying the batch run ID.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunID returns the run ID stored in ctx, or "".
func RunID(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

// FromContext returns the default logger enriched with the context's run ID.
//
// Usage:
//
//	ctx = logging.WithRunID(ctx, uuid.NewString())
//	logging.FromContext(ctx).Info("scan started", "dir", dir)
func FromContext(ctx context.Context) *slog.Logger {
	logger := slog.Default()

	if id := RunID(ctx); id != "" {
		logger = logger.With("run_id", id)
	}

	return logger
}

// WithFields returns a logger with additional structured fields.
//
// Usage:
//
//	fileLogger := logging.WithFields(ctx, "file", name, "category", cat)
//	fileLogger.Info("transform applied")
func WithFields(ctx context.Context, args ...any) *slog.Logger {
	return FromContext(ctx).With(args...)
}
