package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/patternlock/session"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patternlock.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	sc, err := cfg.Session()
	require.NoError(t, err)
	assert.Equal(t, 3, sc.Count)
	assert.Equal(t, 3, sc.MaxAttempts)
	assert.Equal(t, session.ModeUnlock, sc.Mode)
	assert.Equal(t, time.Second, sc.SuccessDelay)
	assert.Equal(t, 500*time.Millisecond, sc.FailureDelay)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[grid]
count = 4

[lock]
mode = "modify"
answer = [1, 6, 11, 16]

[timing]
failure_delay = "250ms"

[store]
backend = "none"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Grid.Count)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts, "untouched section keeps default")
	assert.Equal(t, "modify", cfg.Lock.Mode)
	assert.Equal(t, []int{1, 6, 11, 16}, cfg.Lock.Answer)
	assert.Equal(t, "1s", cfg.Timing.SuccessDelay)
	assert.Equal(t, BackendNone, cfg.Store.Backend)

	_, failure, err := cfg.Timing.Delays()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, failure)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PATTERNLOCK_RETRY_MAX_ATTEMPTS", "5")
	t.Setenv("PATTERNLOCK_LOCK_MODE", "lock")
	t.Setenv("PATTERNLOCK_LOCK_ANSWER", "2,5,8")
	t.Setenv("PATTERNLOCK_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Retry.MaxAttempts)
	assert.Equal(t, "lock", cfg.Lock.Mode)
	assert.Equal(t, []int{2, 5, 8}, cfg.Lock.Answer)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MalformedToml(t *testing.T) {
	_, err := Load(writeConfig(t, "[grid\ncount = 3"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero count", func(c *Config) { c.Grid.Count = 0 }, ErrInvalidGrid},
		{"negative attempts", func(c *Config) { c.Retry.MaxAttempts = -1 }, ErrInvalidRetry},
		{"zero attempts", func(c *Config) { c.Retry.MaxAttempts = 0 }, ErrInvalidRetry},
		{"unknown mode", func(c *Config) { c.Lock.Mode = "wipe" }, session.ErrUnknownMode},
		{"answer out of grid", func(c *Config) { c.Lock.Answer = []int{1, 10} }, ErrInvalidGrid},
		{"bad delay", func(c *Config) { c.Timing.SuccessDelay = "soon" }, ErrInvalidTiming},
		{"zero delay", func(c *Config) { c.Timing.FailureDelay = "0s" }, ErrInvalidTiming},
		{"unknown backend", func(c *Config) { c.Store.Backend = "s3" }, ErrInvalidBackend},
		{"file without path", func(c *Config) { c.Store.Path = "" }, ErrInvalidBackend},
		{"redis without url", func(c *Config) { c.Store.Backend = BackendRedis }, ErrInvalidBackend},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tc.want)
		})
	}
}
