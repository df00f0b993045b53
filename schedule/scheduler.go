// Package schedule provides the cancellable one-shot task that returns the
// grid to idle after a result has been shown.
//
// At most one task is outstanding per Scheduler. Arming a new task replaces
// the previous one. A timer that already fired but whose callback has not yet
// been delivered is dropped by a generation check on the event thread.
package schedule

import (
	"errors"
	"time"
)

// ErrNoPoster reports a clock that fires on its own goroutine without a way back to the event thread
var ErrNoPoster = errors.New("asynchronous clock requires a poster")

// Poster delivers fn onto the event-processing thread
type Poster func(fn func())

// Direct runs fn on the calling goroutine
// Only safe with a synchronous clock, such as ManualClock
func Direct(fn func()) { fn() }

// synchronous is implemented by clocks whose callbacks run on the goroutine driving them
type synchronous interface {
	Synchronous() bool
}

// Scheduler owns the single delayed task of one session
// Arm, Cancel and Close must be called from the event thread
type Scheduler struct {
	clock Clock
	post  Poster

	timer   Timer
	gen     uint64
	pending bool
	closed  bool

	delay time.Duration // Delay of the outstanding task
}

// New creates a scheduler; nil clock uses the real clock
// A nil post delivers directly, which only a synchronous clock permits
func New(clock Clock, post Poster) (*Scheduler, error) {
	if clock == nil {
		clock = NewRealClock()
	}
	if post == nil {
		if sc, ok := clock.(synchronous); !ok || !sc.Synchronous() {
			return nil, ErrNoPoster
		}
		post = Direct
	}
	return &Scheduler{clock: clock, post: post}, nil
}

// Arm schedules fn after delay, replacing any outstanding task
// Ignored after Close
func (s *Scheduler) Arm(delay time.Duration, fn func()) {
	if s.closed {
		return
	}
	s.Cancel()

	gen := s.gen
	s.pending = true
	s.delay = delay
	s.timer = s.clock.AfterFunc(delay, func() {
		s.post(func() { s.fire(gen, fn) })
	})
}

// fire runs on the event thread; stale generations are dropped
func (s *Scheduler) fire(gen uint64, fn func()) {
	if s.closed || !s.pending || gen != s.gen {
		return
	}
	s.pending = false
	s.timer = nil
	s.gen++
	fn()
}

// Cancel stops the outstanding task, if any
func (s *Scheduler) Cancel() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pending = false
	s.gen++
}

// Close cancels the outstanding task and ignores future Arm calls
func (s *Scheduler) Close() {
	s.Cancel()
	s.closed = true
}

// Pending reports whether a task is armed and not yet delivered
func (s *Scheduler) Pending() bool {
	return s.pending
}

// Delay returns the delay of the outstanding task, zero when none
func (s *Scheduler) Delay() time.Duration {
	if !s.pending {
		return 0
	}
	return s.delay
}

// Closed reports whether Close was called
func (s *Scheduler) Closed() bool {
	return s.closed
}
