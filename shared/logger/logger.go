package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

const serviceName = "goodways"

var Log *slog.Logger

type requestIdKey struct{}

func init() {
	// Auto-initialize with safe defaults for tests and development
	// Production code can override by calling Initialize() explicitly
	Initialize("info", false)
}

// Initialize sets up the global logger writing to stdout
func Initialize(level string, useJSON bool) {
	InitializeWith(os.Stdout, level, useJSON)
}

// InitializeWith is Initialize with an explicit destination.
// Every record carries service=goodways so shared log sinks can filter on it.
func InitializeWith(w io.Writer, level string, useJSON bool) {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(level),
		AddSource: true, // file:line of the call site
	}

	var handler slog.Handler
	if useJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	Log = slog.New(handler).With("service", serviceName)
	slog.SetDefault(Log) // packages logging through slog directly get the same handler
}

// Component returns the global logger tagged with a component name.
func Component(name string) *slog.Logger {
	return Log.With("component", name)
}

// WithRequestId stores the request id for FromContext and RequestId.
func WithRequestId(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIdKey{}, id)
}

// RequestId returns the id stored by WithRequestId, or "".
func RequestId(ctx context.Context) string {
	id, _ := ctx.Value(requestIdKey{}).(string)
	return id
}

// FromContext returns the global logger, tagged with the request id when
// ctx belongs to an HTTP request.
func FromContext(ctx context.Context) *slog.Logger {
	if id := RequestId(ctx); id != "" {
		return Log.With("request_id", id)
	}
	return Log
}

// parseLevel converts string log level to slog.Level
func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		// unknown levels fall back to info rather than failing startup
		return slog.LevelInfo
	}
}
