package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger configuration.
type Config struct {
	Level  string // debug, info, warn, error
	Pretty bool   // Enable pretty console output
}

// New creates a new structured logger writing to stderr so report
// output on stdout stays clean.
func New(cfg Config) zerolog.Logger {
	level := zerolog.InfoLevel
	switch cfg.Level {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339

	var output io.Writer = os.Stderr
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: "15:04:05",
		}
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// EngineAdapter exposes a zerolog.Logger through the simulation
// engine's printf-style logging interface.
type EngineAdapter struct {
	L zerolog.Logger
}

func (a EngineAdapter) Debugf(format string, args ...any) { a.L.Debug().Msgf(format, args...) }
func (a EngineAdapter) Infof(format string, args ...any)  { a.L.Info().Msgf(format, args...) }
func (a EngineAdapter) Warnf(format string, args ...any)  { a.L.Warn().Msgf(format, args...) }
func (a EngineAdapter) Errorf(format string, args ...any) { a.L.Error().Msgf(format, args...) }
