// Package logging builds the zerolog logger shared by the session and the host.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var ErrInvalidOutput = errors.New("invalid log output")

// Config selects level, encoding and destination
type Config struct {
	Level    string `toml:"level" split_words:"true"`
	Format   string `toml:"format" split_words:"true"` // console | json
	Output   string `toml:"output" split_words:"true"` // stdout | stderr | file | discard
	FilePath string `toml:"file_path" split_words:"true"`
}

// DefaultConfig logs info and above as JSON to a file, keeping the terminal free for the grid
func DefaultConfig() Config {
	return Config{
		Level:    "info",
		Format:   "json",
		Output:   "file",
		FilePath: "logs/patternlock.log",
	}
}

// New builds a logger from cfg
// The returned closer releases the log file, if any
func New(cfg Config) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("invalid log level '%s': %w", cfg.Level, err)
	}

	var (
		output io.Writer
		closer io.Closer = nopCloser{}
	)
	switch strings.ToLower(cfg.Output) {
	case "stdout":
		output = os.Stdout
	case "stderr":
		output = os.Stderr
	case "discard", "":
		output = io.Discard
	case "file":
		if cfg.FilePath == "" {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("%w: file output without file_path", ErrInvalidOutput)
		}
		if dir := filepath.Dir(cfg.FilePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to create log directory: %w", err)
			}
		}
		file, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to open log file '%s': %w", cfg.FilePath, err)
		}
		output, closer = file, file
	default:
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("%w: %q", ErrInvalidOutput, cfg.Output)
	}

	if strings.ToLower(cfg.Format) == "console" {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339, NoColor: cfg.Output == "file"}
	}

	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return logger, closer, nil
}

// Component returns a child logger tagged with the component name
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
