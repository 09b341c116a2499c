package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the application-wide logger type, aliased to zerolog.Logger.
// Other packages depend on lingo/internal/logger instead of importing zerolog directly.
type Logger = zerolog.Logger

// Options controls where and how log output is written.
type Options struct {
	Level    string // trace, debug, info, warn, error
	Format   string // "console" or "json"
	Output   string // "stdout", "file" or "both"
	FilePath string // required when Output includes "file"
}

// Init initializes the global logger from the given options.
func Init(opts Options) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "console"
	}
	outputMode := strings.ToLower(strings.TrimSpace(opts.Output))
	if outputMode == "" {
		outputMode = "stdout"
	}
	filePath := strings.TrimSpace(opts.FilePath)

	writers := make([]io.Writer, 0, 2)
	deferredWarnings := make([]string, 0, 2)

	if outputMode == "stdout" || outputMode == "both" {
		writers = append(writers, formatWriter(os.Stdout, format))
	}
	if outputMode == "file" || outputMode == "both" {
		if filePath == "" {
			deferredWarnings = append(deferredWarnings, "log output requires a file but no file path is set; disabling file logging")
		} else {
			file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				deferredWarnings = append(deferredWarnings, fmt.Sprintf("Failed to open log file '%s', disabling file logging: %v", filePath, err))
			} else {
				writers = append(writers, formatWriter(file, format))
			}
		}
	}
	if len(writers) == 0 {
		writers = append(writers, formatWriter(os.Stdout, "console"))
		deferredWarnings = append(deferredWarnings, "No valid log output configured, falling back to stdout console")
	}

	var output io.Writer
	if len(writers) == 1 {
		output = writers[0]
	} else {
		output = zerolog.MultiLevelWriter(writers...)
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(opts.Level)))
	if err != nil || opts.Level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	log.Logger = log.Output(output).Level(lvl)

	for _, msg := range deferredWarnings {
		log.Warn().Msg(msg)
	}

	log.Info().
		Str("level", zerolog.GlobalLevel().String()).
		Str("format", format).
		Str("output_mode", outputMode).
		Msg("Logger initialized")
}

func formatWriter(out io.Writer, format string) io.Writer {
	if format == "json" {
		return out
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "2006-01-02 15:04:05",
	}
}

// Get returns a pointer to the configured logger instance
func Get() *zerolog.Logger {
	return &log.Logger
}

// SetOutput changes the destination for log output.
// This is useful for redirecting logs to a buffer during testing.
func SetOutput(w io.Writer) {
	log.Logger = log.Output(w)
}

// Event is an alias for zerolog.Event to allow building log entries without importing zerolog.
type Event = zerolog.Event

// HTTPEvent logs HTTP request events with standardized fields.
func HTTPEvent(method, path string, status int, durationMs float64) *zerolog.Event {
	return log.Info().
		Str("event_category", "http").
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Float64("duration_ms", durationMs)
}

// HTTPError logs HTTP error events.
func HTTPError(method, path string, status int, err error) *zerolog.Event {
	return log.Error().
		Str("event_category", "http").
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Err(err)
}

// PanicEvent logs panic recovery events.
func PanicEvent(err interface{}, stack string) *zerolog.Event {
	return log.Error().
		Str("event_category", "panic").
		Interface("error", err).
		Str("stack", stack)
}
