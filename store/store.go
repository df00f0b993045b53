// Package store persists the confirmed answer for the host.
// The session never imports it; the host loads an answer at startup and
// saves one when a new pattern is confirmed.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/patternlock/config"
)

var (
	ErrNotFound     = errors.New("answer not found")
	ErrEmptyAnswer  = errors.New("empty answer")
	ErrUnknownStore = errors.New("unknown store backend")
)

// Store loads and saves the answer sequence
type Store interface {
	Load(ctx context.Context) ([]int, error)
	Save(ctx context.Context, answer []int) error
	Close() error
}

// Record is the persisted form of an answer
type Record struct {
	Answer    []int     `yaml:"answer" json:"answer"`
	Count     int       `yaml:"count" json:"count"`
	UpdatedAt time.Time `yaml:"updated_at" json:"updated_at"`
}

// Open builds the store selected by cfg; count is recorded alongside the answer
func Open(ctx context.Context, cfg config.StoreConfig, count int) (Store, error) {
	switch cfg.Backend {
	case config.BackendNone:
		return Nop{}, nil
	case config.BackendFile:
		return NewFileStore(cfg.Path, count), nil
	case config.BackendRedis:
		return NewRedisStore(ctx, cfg.RedisURL, cfg.Key, count)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStore, cfg.Backend)
	}
}

// Nop keeps nothing
type Nop struct{}

func (Nop) Load(context.Context) ([]int, error) { return nil, ErrNotFound }
func (Nop) Save(context.Context, []int) error   { return nil }
func (Nop) Close() error                        { return nil }

func newRecord(answer []int, count int) (Record, error) {
	if len(answer) == 0 {
		return Record{}, ErrEmptyAnswer
	}
	return Record{
		Answer:    append([]int(nil), answer...),
		Count:     count,
		UpdatedAt: time.Now().UTC(),
	}, nil
}

// check rejects records saved for a different grid
func (r Record) check(count int) error {
	if len(r.Answer) == 0 {
		return ErrNotFound
	}
	if r.Count != 0 && r.Count != count {
		return fmt.Errorf("%w: saved for a %d×%d grid", ErrNotFound, r.Count, r.Count)
	}
	return nil
}
