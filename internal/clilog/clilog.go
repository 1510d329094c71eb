// Package clilog builds a [slog.Handler] from the CLI's --log-level
// and --log-format flag strings, the same small adapter shape used
// across the author's other CLI tools.
package clilog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
)

// Format is a supported log output format.
type Format string

// Supported formats.
const (
	FormatJSON    Format = "json"
	FormatLogfmt  Format = "logfmt"
)

// ErrInvalidArgument wraps a bad --log-level/--log-format value.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrUnknownLogLevel indicates an unrecognized log level string.
var ErrUnknownLogLevel = errors.New("unknown log level")

// ErrUnknownLogFormat indicates an unrecognized log format string.
var ErrUnknownLogFormat = errors.New("unknown log format")

// NewHandler builds a [slog.Handler] from raw --log-level/--log-format
// flag values.
func NewHandler(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	lvl, err := Level(logLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	format, err := parseFormat(logFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}

	if format == FormatJSON {
		return slog.NewJSONHandler(w, opts), nil
	}

	return slog.NewTextHandler(w, opts), nil
}

// Level parses a log level string into a [slog.Level].
func Level(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	default:
		return 0, ErrUnknownLogLevel
	}
}

func parseFormat(format string) (Format, error) {
	if format == "" {
		return FormatLogfmt, nil
	}

	f := Format(strings.ToLower(format))
	if slices.Contains([]Format{FormatJSON, FormatLogfmt}, f) {
		return f, nil
	}

	return "", ErrUnknownLogFormat
}
