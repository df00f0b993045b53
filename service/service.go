// Package service runs the host's long-lived resources in order.
package service

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// Service defines the lifecycle interface for infrastructure subsystems
// Services manage long-lived resources: audio output, answer stores
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Start acquires the resource
	Start() error

	// Stop releases the resource
	// Must be idempotent - safe to call multiple times
	Stop() error
}

// Optional marks a service whose Start failure is logged and tolerated
type Optional interface {
	Optional() bool
}

// Hub starts services in registration order and stops them in reverse
type Hub struct {
	mu       sync.Mutex
	services []Service
	started  []Service
	logger   zerolog.Logger
}

// NewHub creates an empty hub
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{logger: logger}
}

// Register appends s; names must be unique
func (h *Hub) Register(s Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, existing := range h.services {
		if existing.Name() == s.Name() {
			return fmt.Errorf("service %q already registered", s.Name())
		}
	}
	h.services = append(h.services, s)
	return nil
}

// Start starts every registered service
// On a required failure the already started ones are stopped
func (h *Hub) Start() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, s := range h.services {
		if err := s.Start(); err != nil {
			if opt, ok := s.(Optional); ok && opt.Optional() {
				h.logger.Warn().Err(err).Str("service", s.Name()).Msg("optional service unavailable")
				continue
			}
			stopErr := h.stopLocked()
			return errors.Join(fmt.Errorf("failed to start %s: %w", s.Name(), err), stopErr)
		}
		h.started = append(h.started, s)
		h.logger.Debug().Str("service", s.Name()).Msg("service started")
	}
	return nil
}

// Stop stops started services in reverse order
func (h *Hub) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stopLocked()
}

func (h *Hub) stopLocked() error {
	var errs []error
	for i := len(h.started) - 1; i >= 0; i-- {
		s := h.started[i]
		if err := s.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop %s: %w", s.Name(), err))
		}
		h.logger.Debug().Str("service", s.Name()).Msg("service stopped")
	}
	h.started = h.started[:0]
	return errors.Join(errs...)
}

// Closer adapts an already open io.Closer into a service
func Closer(name string, c io.Closer) Service {
	return &closer{name: name, c: c}
}

type closer struct {
	name string
	c    io.Closer
	once sync.Once
	err  error
}

func (c *closer) Name() string { return c.name }
func (c *closer) Start() error { return nil }
func (c *closer) Stop() error {
	c.once.Do(func() { c.err = c.c.Close() })
	return c.err
}
