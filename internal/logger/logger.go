// Package logger holds the process-wide structured logger.
//
// Production builds log JSON for aggregation, everything else logs text:
//
//	logger.Info("booking approved", "booking_id", id)
package logger

import (
	"io"
	"log/slog"
	"os"
)

var L = slog.New(slog.NewTextHandler(os.Stdout, nil))

// Init replaces L according to the application environment and installs it
// as the slog default.
func Init(env string) {
	L = New(os.Stdout, env)
	slog.SetDefault(L)
}

func New(w io.Writer, env string) *slog.Logger {
	switch env {
	case "production", "prod":
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func Debug(msg string, args ...any) { L.Debug(msg, args...) }

func Info(msg string, args ...any) { L.Info(msg, args...) }

func Warn(msg string, args ...any) { L.Warn(msg, args...) }

func Error(msg string, args ...any) { L.Error(msg, args...) }
