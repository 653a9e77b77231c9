// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"
	"strings"
)

// parseLevel maps "debug", "info", "warn" or "error" (case-insensitive) to a
// slog level. Unknown values mean info.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// newLogger returns a leveled text logger writing to w.
func newLogger(level string, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)}))
}
