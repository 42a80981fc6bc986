// SPDX-License-Identifier: MIT

// Package logging configures the global zerolog logger.
//
// Logs go to stderr (or a file); stdout is reserved for the image or records.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrUnknownLevel indicates a log level name outside Levels().
var ErrUnknownLevel = errors.New("logging: unknown log level")

var levelMatches = map[string]zerolog.Level{
	"NONE":  zerolog.Disabled,
	"TRACE": zerolog.TraceLevel,
	"DEBUG": zerolog.DebugLevel,
	"INFO":  zerolog.InfoLevel,
	"WARN":  zerolog.WarnLevel,
	"ERROR": zerolog.ErrorLevel,
	"FATAL": zerolog.FatalLevel,
}

// Levels returns the accepted level names.
func Levels() []string {
	return []string{"NONE", "TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"}
}

// ParseLevel resolves a case-insensitive level name.
func ParseLevel(name string) (zerolog.Level, error) {
	l, ok := levelMatches[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return zerolog.NoLevel, fmt.Errorf("ParseLevel: %w: %q (available: %s)", ErrUnknownLevel, name, strings.Join(Levels(), ", "))
	}
	return l, nil
}

// Config selects the level and an optional log file.
type Config struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Setup installs the global logger and returns a function releasing the log
// file, if any. A terminal stderr gets the colored console format; anything
// else gets JSON lines.
func Setup(cfg Config) (func(), error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	zerolog.SetGlobalLevel(level)

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logging.Setup: opening log file: %w", err)
		}
		log.Logger = New(f, false)
		return func() { _ = f.Close() }, nil
	}
	log.Logger = New(os.Stderr, isTerminal(os.Stderr))
	return func() {}, nil
}

// New returns a timestamped logger on w, in console format when console is set.
func New(w io.Writer, console bool) zerolog.Logger {
	if console {
		w = zerolog.ConsoleWriter{
			Out:                 w,
			TimeFormat:          "2006-01-02 15:04:05",
			FormatLevel:         formatLevel(),
			FormatErrFieldName:  formatErrFieldName(),
			FormatErrFieldValue: formatErrFieldValue(),
		}
	}
	return zerolog.New(w).With().Timestamp().Logger()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) && runtime.GOOS != "windows"
}

// Warnings logs each non-fatal condition at warn level under source.
func Warnings(l *zerolog.Logger, source string, warnings []error) {
	for _, w := range warnings {
		l.Warn().Str("source", source).Err(w).Msg("warning")
	}
}
