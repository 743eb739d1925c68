// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout
// memfill.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Format names accepted by [WithFormat].
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

type options struct {
	out    io.Writer
	level  zerolog.Level
	format string
}

// Option customises a logger built by [NewLogger].
type Option func(*options)

// WithOutput sets the destination writer. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithLevel sets the global minimum level. Defaults to Debug.
func WithLevel(level zerolog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithFormat selects JSON (default) or human-readable console output.
func WithFormat(format string) Option {
	return func(o *options) {
		o.format = format
	}
}

// NewLogger constructs a *Logger for the given role label (e.g. "memfill",
// "memfill-chunk").
//
// The logger is configured with:
//   - global log level set to Debug unless overridden with [WithLevel];
//   - a "role" field set to role;
//   - a timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     (instead of the default file:line format) for easier log navigation.
//
// Output is written to os.Stdout in JSON format unless overridden.
func NewLogger(role string, opts ...Option) *Logger {
	o := options{
		out:    os.Stdout,
		level:  zerolog.DebugLevel,
		format: FormatJSON,
	}
	for _, opt := range opts {
		opt(&o)
	}

	zerolog.SetGlobalLevel(o.level)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"

	out := o.out
	if o.format == FormatConsole {
		out = zerolog.ConsoleWriter{Out: o.out, TimeFormat: time.TimeOnly}
	}

	logger := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// ParseLevel converts a level name ("debug", "info", ...) into a zerolog
// level. An empty name means Debug.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.DebugLevel, nil
	}
	return zerolog.ParseLevel(name)
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithField returns a child logger carrying an extra string field.
func (l *Logger) WithField(key, value string) *Logger {
	return &Logger{l.With().Str(key, value).Logger()}
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its global logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
