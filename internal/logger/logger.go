// SPDX-License-Identifier: Unlicense OR MIT

// Package logger holds the slog logger shared by the drawing backends.
//
// Logging is silent unless SetLogger is called or the BLY_LOG
// environment variable names a level (debug, info, warn or error).
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// EnvVar is the environment variable read at startup.
const EnvVar = "BLY_LOG"

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(FromEnv(os.Getenv(EnvVar), output()))
}

// FromEnv returns the logger selected by a BLY_LOG value. Empty, "off"
// and unrecognized values select the silent logger.
func FromEnv(v string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug", "trace":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return slog.New(nopHandler{})
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// Set replaces the logger. A nil logger silences logging.
func Set(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	current.Store(l)
}

// Get returns the current logger.
func Get() *slog.Logger {
	return current.Load()
}
