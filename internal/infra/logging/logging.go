package logging

import (
	"io"
	"log/slog"
	"os"

	"k8s.io/klog/v2"
)

// New builds the process logger, sets it as the slog default and routes
// client-go's klog output through it.
func New(logFormat, logLevel string) *slog.Logger {
	logger := newLogger(os.Stdout, logFormat, logLevel)

	slog.SetDefault(logger)
	klog.SetSlogLogger(logger.With("source", "client-go"))

	return logger
}

func newLogger(w io.Writer, logFormat, logLevel string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(logLevel),
	}

	var handler slog.Handler

	switch logFormat {
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

func parseLevel(logLevel string) slog.Level {
	switch logLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
