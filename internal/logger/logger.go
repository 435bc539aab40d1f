// Package logger wraps zerolog.Logger with the constructors and context
// helpers used by the onboarding server and CLI.
//
// Logger embeds zerolog.Logger, so the full zerolog API is available on
// *Logger. Request handlers obtain their request-scoped logger through
// FromRequest; the trace id middleware attaches it.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

func init() {
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}

// ParseLevel converts a level name into a zerolog level. An empty name is
// treated as "info".
func ParseLevel(level string) (zerolog.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("logger: parse level %q: %w", level, err)
	}
	return parsed, nil
}

// New builds a JSON logger tagged with role, writing to w at the given level.
// A nil writer logs to stdout.
func New(role, level string, w io.Writer) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = os.Stdout
	}
	l := zerolog.New(w).Level(lvl).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()
	return &Logger{l}, nil
}

// NewConsole builds a human readable logger for interactive CLI commands.
func NewConsole(role, level string, w io.Writer) (*Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	return New(role, level, zerolog.ConsoleWriter{Out: w, NoColor: true})
}

// Nop returns a *Logger that discards all output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a logger that inherits the receiver's fields and can
// be enriched without affecting it.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx, falling back to zerolog's
// default context logger.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
