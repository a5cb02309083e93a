// Package logging provides the structured logger shared by the shell,
// the Wails runtime and the HTTP client.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w (stderr when nil).
func New(w io.Writer, debug bool) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	noColor := w != io.Writer(os.Stderr)
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: noColor}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Nop returns a logger that discards everything. Used by tests.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// WailsLogger adapts a zerolog.Logger to the Wails logger.Logger interface
// so runtime messages share the application's output and format.
type WailsLogger struct {
	log zerolog.Logger
}

func NewWailsLogger(log zerolog.Logger) *WailsLogger {
	return &WailsLogger{log: log.With().Str("component", "wails").Logger()}
}

func (l *WailsLogger) Print(message string)   { l.log.Log().Msg(message) }
func (l *WailsLogger) Trace(message string)   { l.log.Trace().Msg(message) }
func (l *WailsLogger) Debug(message string)   { l.log.Debug().Msg(message) }
func (l *WailsLogger) Info(message string)    { l.log.Info().Msg(message) }
func (l *WailsLogger) Warning(message string) { l.log.Warn().Msg(message) }
func (l *WailsLogger) Error(message string)   { l.log.Error().Msg(message) }
func (l *WailsLogger) Fatal(message string)   { l.log.Fatal().Msg(message) }

// LeveledLogger adapts a zerolog.Logger to retryablehttp.LeveledLogger.
type LeveledLogger struct {
	log zerolog.Logger
}

func NewLeveledLogger(log zerolog.Logger) *LeveledLogger {
	return &LeveledLogger{log: log}
}

func (l *LeveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log.Error().Fields(keysAndValues).Msg(msg)
}

func (l *LeveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Info().Fields(keysAndValues).Msg(msg)
}

// Debug is used by retryablehttp for every request; keep it at debug level.
func (l *LeveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l *LeveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.log.Warn().Fields(keysAndValues).Msg(msg)
}
