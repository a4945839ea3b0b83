// Package logger provides a structured, levelled logger built on log/slog.
//
// The key extension over plain slog is WithCtx: it returns a logger with the
// shell session ID already attached, so every log line from one interactive
// session is automatically correlated:
//
//	log := logger.WithCtx(ctx)
//	log.Info("order recorded", "amount", "210")
//	// → time=... level=INFO msg="order recorded" session_id=a1b2c3d4 amount=210
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/shashiranjanraj/dukaan/config"
)

var L *slog.Logger

func init() {
	var level slog.Level
	var handler slog.Handler

	opts := &slog.HandlerOptions{Level: level}

	switch config.AppEnv() {
	case "production", "prod":
		level = slog.LevelInfo
		opts.Level = level
		handler = slog.NewJSONHandler(os.Stderr, opts) // structured JSON for log aggregators
	default:
		level = slog.LevelWarn
		opts.Level = level
		handler = slog.NewTextHandler(os.Stderr, opts) // keep stdout clean for the menus
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

// ctxKey is the unexported key used to store a per-session *slog.Logger.
type ctxKey struct{}

// WithCtx returns the *slog.Logger injected into ctx (pre-tagged with the
// session_id), or the base logger when none is present.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a *slog.Logger (pre-tagged with session_id) into ctx.
// Called once per interactive session by the shell.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
