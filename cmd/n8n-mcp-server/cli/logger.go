// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

// NewCommandLogger creates a structured logger for CLI command operations
// at the default Info level. When stderr is a terminal, uses
// slog.TextHandler for human-readable output. When stderr is piped or
// redirected (CI, scripts, an MCP client), uses slog.JSONHandler for
// machine-parseable output. Logs always go to stderr: stdout belongs to
// the MCP wire and must stay clean.
//
// Callers scope the logger with command-specific context via With():
//
//	logger := cli.NewCommandLogger().With("command", "serve")
func NewCommandLogger() *slog.Logger {
	return NewCommandLoggerLevel(slog.LevelInfo)
}

// NewCommandLoggerLevel is NewCommandLogger with an explicit minimum
// level, for commands that expose a --log-level flag.
func NewCommandLoggerLevel(level slog.Level) *slog.Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}

// ParseLogLevel maps a --log-level flag value to a slog.Level.
// Accepted values: debug, info, warn, error (case-insensitive).
func ParseLogLevel(value string) (slog.Level, error) {
	switch strings.ToLower(value) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (expected debug, info, warn, or error)", value)
	}
}
