// Package logging provides structured logging for the client library and the
// ironboxdx CLI.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog. Info-level events carry the human-friendly narration
// the client emits in verbose mode; debug-level events carry raw wire
// diagnostics (status codes, response bodies).
type Logger struct {
	zlog   zerolog.Logger
	output io.Writer
}

// New creates a logger writing console-formatted output to w. Verbose maps
// to info level, debug to debug level; with neither set only warnings and
// errors surface.
func New(w io.Writer, verbose, debug bool) *Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.InfoLevel
	}
	if debug {
		level = zerolog.DebugLevel
	}

	zlog := zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Logger()

	return &Logger{zlog: zlog, output: w}
}

// NewDefault creates a logger writing to stdout. Stderr stays reserved for
// the progress bar so log lines never interleave with bar redraws.
func NewDefault(verbose, debug bool) *Logger {
	return New(os.Stdout, verbose, debug)
}

// Nop creates a logger that discards everything.
func Nop() *Logger {
	return &Logger{zlog: zerolog.Nop(), output: io.Discard}
}

// Info returns an info level event.
func (l *Logger) Info() *zerolog.Event {
	return l.zlog.Info()
}

// Debug returns a debug level event.
func (l *Logger) Debug() *zerolog.Event {
	return l.zlog.Debug()
}

// Warn returns a warn level event.
func (l *Logger) Warn() *zerolog.Event {
	return l.zlog.Warn()
}

// Error returns an error level event.
func (l *Logger) Error() *zerolog.Event {
	return l.zlog.Error()
}

// Infof logs an info message with printf-style formatting.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.zlog.Info().Msgf(format, args...)
}

// Debugf logs a debug message with printf-style formatting.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.zlog.Debug().Msgf(format, args...)
}

// DebugEnabled reports whether debug-level events are emitted.
func (l *Logger) DebugEnabled() bool {
	return l.zlog.GetLevel() <= zerolog.DebugLevel
}

// Output returns the writer the logger renders to.
func (l *Logger) Output() io.Writer {
	return l.output
}
