// Package config loads host settings from a TOML file with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/patternlock/logging"
	"github.com/lixenwraith/patternlock/parameter"
	"github.com/lixenwraith/patternlock/session"
)

// EnvPrefix namespaces environment overrides, e.g. PATTERNLOCK_RETRY_MAX_ATTEMPTS
const EnvPrefix = "PATTERNLOCK"

var (
	ErrInvalidGrid    = errors.New("invalid grid config")
	ErrInvalidRetry   = errors.New("invalid retry config")
	ErrInvalidTiming  = errors.New("invalid timing config")
	ErrInvalidBackend = errors.New("invalid store backend")
)

// Store backends
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Config is the full host configuration
type Config struct {
	Grid   GridConfig     `toml:"grid"`
	Retry  RetryConfig    `toml:"retry"`
	Lock   LockConfig     `toml:"lock"`
	Timing TimingConfig   `toml:"timing"`
	Log    logging.Config `toml:"log"`
	Store  StoreConfig    `toml:"store"`
	Audio  AudioConfig    `toml:"audio"`
}

type GridConfig struct {
	Count int `toml:"count" split_words:"true"`
}

type RetryConfig struct {
	MaxAttempts int `toml:"max_attempts" split_words:"true"`
}

// LockConfig selects the workflow and an initial answer
// A persisted answer from the store takes precedence over Answer
type LockConfig struct {
	Mode   string `toml:"mode" split_words:"true"`
	Answer []int  `toml:"answer" split_words:"true"`
}

// TimingConfig holds result display durations as Go duration strings
type TimingConfig struct {
	SuccessDelay string `toml:"success_delay" split_words:"true"`
	FailureDelay string `toml:"failure_delay" split_words:"true"`
}

type StoreConfig struct {
	Backend  string `toml:"backend" split_words:"true"`
	Path     string `toml:"path" split_words:"true"`
	RedisURL string `toml:"redis_url" split_words:"true"`
	Key      string `toml:"key" split_words:"true"`
}

type AudioConfig struct {
	Enabled bool `toml:"enabled" split_words:"true"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Grid:  GridConfig{Count: parameter.DefaultGridCount},
		Retry: RetryConfig{MaxAttempts: parameter.DefaultMaxAttempts},
		Lock:  LockConfig{Mode: session.ModeUnlock.String()},
		Timing: TimingConfig{
			SuccessDelay: parameter.SuccessResetDelay.String(),
			FailureDelay: parameter.FailureResetDelay.String(),
		},
		Log: logging.DefaultConfig(),
		Store: StoreConfig{
			Backend: BackendFile,
			Path:    "patternlock.yaml",
			Key:     "patternlock:answer",
		},
		Audio: AudioConfig{Enabled: true},
	}
}

// Load reads path over the defaults, then applies environment overrides
// An empty path or a missing file yields the defaults plus environment
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := Parse(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config %s: %w", path, err)
			}
		case !errors.Is(err, os.ErrNotExist):
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("error processing environment configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes TOML data into cfg, keeping fields the data omits
func Parse(data []byte, cfg *Config) error {
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse toml: %w", err)
	}
	return nil
}

// Validate checks ranges and enumerations
func (c Config) Validate() error {
	if c.Grid.Count < 1 {
		return fmt.Errorf("%w: count %d must be at least 1", ErrInvalidGrid, c.Grid.Count)
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("%w: max_attempts %d must be at least 1", ErrInvalidRetry, c.Retry.MaxAttempts)
	}
	if _, err := session.ParseMode(c.Lock.Mode); err != nil {
		return fmt.Errorf("lock config: %w", err)
	}
	limit := c.Grid.Count * c.Grid.Count
	for _, id := range c.Lock.Answer {
		if id < 1 || id > limit {
			return fmt.Errorf("%w: answer cell %d outside 1..%d", ErrInvalidGrid, id, limit)
		}
	}
	if _, _, err := c.Timing.Delays(); err != nil {
		return err
	}
	switch c.Store.Backend {
	case BackendNone, BackendFile, BackendRedis:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidBackend, c.Store.Backend)
	}
	if c.Store.Backend == BackendFile && c.Store.Path == "" {
		return fmt.Errorf("%w: file backend without path", ErrInvalidBackend)
	}
	if c.Store.Backend == BackendRedis && c.Store.RedisURL == "" {
		return fmt.Errorf("%w: redis backend without redis_url", ErrInvalidBackend)
	}
	return nil
}

// Delays parses the result display durations
func (t TimingConfig) Delays() (success, failure time.Duration, err error) {
	if success, err = time.ParseDuration(t.SuccessDelay); err != nil || success <= 0 {
		return 0, 0, fmt.Errorf("%w: success_delay %q", ErrInvalidTiming, t.SuccessDelay)
	}
	if failure, err = time.ParseDuration(t.FailureDelay); err != nil || failure <= 0 {
		return 0, 0, fmt.Errorf("%w: failure_delay %q", ErrInvalidTiming, t.FailureDelay)
	}
	return success, failure, nil
}

// Session converts the configuration into session settings
func (c Config) Session() (session.Config, error) {
	mode, err := session.ParseMode(c.Lock.Mode)
	if err != nil {
		return session.Config{}, err
	}
	success, failure, err := c.Timing.Delays()
	if err != nil {
		return session.Config{}, err
	}
	return session.Config{
		Count:        c.Grid.Count,
		MaxAttempts:  c.Retry.MaxAttempts,
		Mode:         mode,
		Answer:       c.Lock.Answer,
		SuccessDelay: success,
		FailureDelay: failure,
	}, nil
}
