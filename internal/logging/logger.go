package logging

import (
	"io"
	"os"
	"time"

	"github.com/finvops/aplookup-mcp/internal/config"
	"github.com/rs/zerolog"
)

// Logger wraps zerolog behind the small surface the rest of the server
// needs: leveled logging with metadata maps and child loggers.
type Logger struct {
	zl zerolog.Logger
}

// NewLogger builds a logger from the logging configuration. Output defaults
// to stderr, since stdout carries the protocol stream.
func NewLogger(cfg *config.LoggingConfig) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	out := resolveOutput(cfg.Output)
	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	} else {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	}

	return &Logger{
		zl: zerolog.New(out).With().Timestamp().Logger().Level(level),
	}
}

func resolveOutput(target *string) io.Writer {
	if target == nil {
		return os.Stderr
	}
	switch *target {
	case "stdout":
		return os.Stdout
	case "stderr":
		return os.Stderr
	}
	if file, err := os.OpenFile(*target, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
		return file
	}
	return os.Stderr
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, metadata map[string]interface{}) {
	l.zl.Debug().Fields(metadata).Msg(msg)
}

// Info logs at info level.
func (l *Logger) Info(msg string, metadata map[string]interface{}) {
	l.zl.Info().Fields(metadata).Msg(msg)
}

// Warn logs at warn level.
func (l *Logger) Warn(msg string, metadata map[string]interface{}) {
	l.zl.Warn().Fields(metadata).Msg(msg)
}

// Error logs at error level with an attached error.
func (l *Logger) Error(msg string, err error, metadata map[string]interface{}) {
	l.zl.Error().Err(err).Fields(metadata).Msg(msg)
}

// Child returns a logger that carries metadata on every entry.
func (l *Logger) Child(metadata map[string]interface{}) *Logger {
	return &Logger{zl: l.zl.With().Fields(metadata).Logger()}
}
