// Package session is the pattern-capture state machine.
//
// A Session consumes pointer events, hit-tests them against the grid,
// records the chosen path and, on release, evaluates it according to the
// mode: Lock (capture then confirm), Unlock (verify against the stored
// answer, retry-limited) or Modify (verify, then capture and confirm a new
// answer). Outcomes are delivered to a Listener and the grid returns to idle
// after a short delay unless the session finished or locked out.
//
// A Session is not safe for concurrent use. Pointer events and timer fires
// must arrive on one goroutine. With the real clock a schedule.Poster that
// posts onto that goroutine is required; New fails with schedule.ErrNoPoster
// without one.
package session

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/patternlock/answer"
	"github.com/lixenwraith/patternlock/event"
	"github.com/lixenwraith/patternlock/fsm"
	"github.com/lixenwraith/patternlock/geometry"
	"github.com/lixenwraith/patternlock/parameter"
	"github.com/lixenwraith/patternlock/pattern"
	"github.com/lixenwraith/patternlock/retry"
	"github.com/lixenwraith/patternlock/schedule"
	"github.com/lixenwraith/patternlock/status"
)

var ErrUnknownMode = errors.New("unknown mode")

// Config holds the values set before interaction begins
type Config struct {
	Count        int           // Cells per side
	MaxAttempts  int           // Verification budget
	Mode         Mode          // Evaluation branch
	Answer       []int         // Stored answer, ignored when empty
	SuccessDelay time.Duration // Result display before reset after success
	FailureDelay time.Duration // Result display before reset after failure
}

// DefaultConfig returns a 3×3 grid with three attempts and no mode
func DefaultConfig() Config {
	return Config{
		Count:        parameter.DefaultGridCount,
		MaxAttempts:  parameter.DefaultMaxAttempts,
		SuccessDelay: parameter.SuccessResetDelay,
		FailureDelay: parameter.FailureResetDelay,
	}
}

// Option configures a Session
type Option func(*Session)

// WithListener sets the callback receiver
func WithListener(l Listener) Option {
	return func(s *Session) { s.listener = l }
}

// WithClock sets the clock used for delayed resets
func WithClock(c schedule.Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithPoster sets how timer fires reach the event thread
func WithPoster(p schedule.Poster) Option {
	return func(s *Session) { s.poster = p }
}

// WithLogger sets the session logger
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithRegistry publishes session metrics into r
func WithRegistry(r *status.Registry) Option {
	return func(s *Session) { s.registry = r }
}

// Session owns the cell arena, chosen path and retry budget of one pattern lock
type Session struct {
	cfg Config

	mode     Mode
	phase    Phase
	detached bool
	pointer  geometry.Point

	grid    *geometry.Grid
	path    *pattern.Recorder
	answers *answer.Store
	retry   *retry.Policy
	resets  *schedule.Scheduler
	machine *fsm.Machine[*Session]

	listener Listener
	clock    schedule.Clock
	poster   schedule.Poster
	logger   zerolog.Logger
	registry *status.Registry
	metrics  metrics
}

// Cached metric pointers
type metrics struct {
	state     *status.Label
	phase     *status.Label
	mode      *status.Label
	remaining *atomic.Int64
	attempts  *atomic.Int64
	failures  *atomic.Int64
	locked    *atomic.Bool
	complete  *atomic.Bool
}

// Metric keys published to the registry
const (
	MetricState     = "session.state"
	MetricPhase     = "session.phase"
	MetricMode      = "session.mode"
	MetricRemaining = "retry.remaining"
	MetricAttempts  = "session.attempts"
	MetricFailures  = "session.failures"
	MetricLocked    = "session.locked"
	MetricComplete  = "session.complete"
)

// New creates a session; call Layout before pointer events can hit cells
func New(cfg Config, opts ...Option) (*Session, error) {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = parameter.DefaultMaxAttempts
	}
	if cfg.SuccessDelay <= 0 {
		cfg.SuccessDelay = parameter.SuccessResetDelay
	}
	if cfg.FailureDelay <= 0 {
		cfg.FailureDelay = parameter.FailureResetDelay
	}

	grid, err := geometry.NewGrid(cfg.Count)
	if err != nil {
		return nil, fmt.Errorf("session grid: %w", err)
	}

	s := &Session{
		cfg:      cfg,
		mode:     cfg.Mode,
		phase:    initialPhase(cfg.Mode),
		grid:     grid,
		path:     pattern.NewRecorder(),
		answers:  answer.New(),
		retry:    retry.New(cfg.MaxAttempts),
		listener: NopListener{},
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = status.NewRegistry()
	}
	s.bindMetrics()

	s.answers.SetStored(cfg.Answer)
	if s.resets, err = schedule.New(s.clock, s.poster); err != nil {
		return nil, fmt.Errorf("session scheduler: %w", err)
	}

	if s.machine, err = newLifecycle(s); err != nil {
		return nil, err
	}
	if err := s.machine.Init(s); err != nil {
		return nil, fmt.Errorf("session lifecycle init: %w", err)
	}

	s.logger.Debug().Stringer("mode", s.mode).Int("count", cfg.Count).Int("attempts", cfg.MaxAttempts).Msg("session created")
	return s, nil
}

func (s *Session) bindMetrics() {
	s.metrics = metrics{
		state:     s.registry.Strings.Get(MetricState),
		phase:     s.registry.Strings.Get(MetricPhase),
		mode:      s.registry.Strings.Get(MetricMode),
		remaining: s.registry.Ints.Get(MetricRemaining),
		attempts:  s.registry.Ints.Get(MetricAttempts),
		failures:  s.registry.Ints.Get(MetricFailures),
		locked:    s.registry.Bools.Get(MetricLocked),
		complete:  s.registry.Bools.Get(MetricComplete),
	}
}

// publish mirrors the current session state into the registry
func (s *Session) publish() {
	if s.machine != nil {
		s.metrics.state.Store(s.machine.StateName())
	}
	s.metrics.phase.Store(s.phase.String())
	s.metrics.mode.Store(s.mode.String())
	s.metrics.remaining.Store(int64(s.retry.Remaining()))
	s.metrics.locked.Store(s.retry.Exhausted())
	s.metrics.complete.Store(s.phase == PhaseComplete)
}

// === Configuration ===

// Layout computes cell geometry for a square area of the given width
func (s *Session) Layout(width int) error {
	if err := s.grid.Layout(width); err != nil {
		return fmt.Errorf("session layout: %w", err)
	}
	if last, ok := s.path.Last(); ok {
		s.path.SetAnchor(s.grid.Center(last))
	}
	s.logger.Debug().Int("width", width).Int("side", s.grid.Side()).Int("margin", s.grid.Margin()).Msg("grid laid out")
	return nil
}

// Measure lays out the largest square fitting width × height
func (s *Session) Measure(width, height int) error {
	return s.Layout(min(width, height))
}

// SetAnswer replaces the stored answer; empty input is ignored
func (s *Session) SetAnswer(ids []int) {
	s.answers.SetStored(ids)
}

// SetMode switches the evaluation branch and restarts its workflow
// The retry budget is kept
func (s *Session) SetMode(mode Mode) {
	s.mode = mode
	s.restart()
}

// SetMaxAttempts re-arms the retry budget, leaving a lockout
func (s *Session) SetMaxAttempts(n int) {
	s.retry.Rearm(n)
	if s.machine.StateName() == StateLockedOut {
		s.restart()
		return
	}
	s.publish()
}

// restart returns to the mode's first phase with an idle grid
func (s *Session) restart() {
	if s.detached {
		return
	}
	s.phase = initialPhase(s.mode)
	s.answers.ClearFirstCapture()
	s.resets.Cancel()
	s.clearGrid()
	if err := s.machine.Reset(s); err != nil {
		panic(fmt.Sprintf("session: lifecycle reset: %v", err))
	}
	s.logger.Debug().Stringer("mode", s.mode).Stringer("phase", s.phase).Msg("session restarted")
}

// Detach tears the session down; pending resets are cancelled and later input ignored
func (s *Session) Detach() {
	if s.detached {
		return
	}
	s.detached = true
	s.machine.Fire(s, triggerDetach)
	s.resets.Close()
	s.logger.Debug().Msg("session detached")
}

// === Pointer Input ===

// accepting reports whether pointer input is processed
func (s *Session) accepting() bool {
	return !s.detached &&
		s.mode != ModeUndefined &&
		s.phase != PhaseComplete &&
		!s.retry.Exhausted()
}

// PointerDown acknowledges the start of a capture
func (s *Session) PointerDown(x, y int) {
	if !s.accepting() {
		return
	}
	s.pointer = geometry.Point{X: x, Y: y}
	s.machine.Fire(s, triggerPointerDown)
}

// PointerMove extends the path when the pointer enters an unchosen cell
func (s *Session) PointerMove(x, y int) {
	if !s.accepting() {
		return
	}
	s.pointer = geometry.Point{X: x, Y: y}
	s.machine.Fire(s, triggerPointerMove)
	if s.machine.StateName() == StateTracking {
		s.track()
	}
}

// PointerUp ends the capture; a non-empty path is evaluated
func (s *Session) PointerUp(x, y int) {
	if !s.accepting() {
		return
	}
	s.pointer = geometry.Point{X: x, Y: y}
	s.machine.Fire(s, triggerPointerUp)
}

// HandleEvent routes pointer events from an event.Loop
func (s *Session) HandleEvent(ev event.Event) {
	switch ev.Type {
	case event.EventPointerDown:
		s.PointerDown(ev.X, ev.Y)
	case event.EventPointerMove:
		s.PointerMove(ev.X, ev.Y)
	case event.EventPointerUp:
		s.PointerUp(ev.X, ev.Y)
	}
}

// track hit-tests the current pointer and updates the guide point
func (s *Session) track() {
	if id, ok := s.grid.Locate(s.pointer.X, s.pointer.Y); ok && !s.path.Contains(id) {
		s.grid.SetStatus(id, geometry.StatusFingerOn)
		s.path.Observe(id, s.grid.Center(id))
		s.logger.Trace().Int("cell", id).Int("length", s.path.Len()).Msg("cell chosen")
	}
	s.path.SetTrail(s.pointer)
}

// clearGrid returns cells, path and guide to idle
func (s *Session) clearGrid() {
	s.path.Reset()
	s.grid.Reset()
}

// scheduleReset arms the delayed return to idle
func (s *Session) scheduleReset(delay time.Duration) {
	s.resets.Arm(delay, func() {
		s.machine.Fire(s, triggerResetFired)
	})
}

func (s *Session) announceLockout() {
	s.logger.Warn().Stringer("mode", s.mode).Int("max_attempts", s.retry.Max()).Msg("retry budget exhausted")
}

// === Rendering Output ===

// Cells returns a snapshot of every cell's bounds, status and arrow
func (s *Session) Cells() []geometry.Cell {
	return s.grid.Cells()
}

// Path returns the chosen cell ids in visiting order
func (s *Session) Path() []int {
	return s.path.IDs()
}

// LinePoints returns the centers of chosen cells for the connecting line
func (s *Session) LinePoints() []geometry.Point {
	ids := s.path.IDs()
	points := make([]geometry.Point, 0, len(ids))
	for _, id := range ids {
		points = append(points, s.grid.Center(id))
	}
	return points
}

// Guide returns the live segment from the last chosen center to the pointer
func (s *Session) Guide() (from, to geometry.Point, ok bool) {
	return s.path.Guide()
}

// State returns the lifecycle state name
func (s *Session) State() string {
	return s.machine.StateName()
}

// Phase returns the workflow phase
func (s *Session) Phase() Phase {
	return s.phase
}

// Mode returns the evaluation branch
func (s *Session) Mode() Mode {
	return s.mode
}

// Remaining returns verification attempts left
func (s *Session) Remaining() int {
	return s.retry.Remaining()
}

// MaxAttempts returns the configured verification budget
func (s *Session) MaxAttempts() int {
	return s.retry.Max()
}

// Answer returns a copy of the stored answer
func (s *Session) Answer() []int {
	return s.answers.Stored()
}

// Count returns cells per grid side
func (s *Session) Count() int {
	return s.grid.Count()
}

// Width returns the laid out grid size, zero before Layout
func (s *Session) Width() int {
	return s.grid.Width()
}

// ResetPending reports whether a delayed reset is armed
func (s *Session) ResetPending() bool {
	return s.resets.Pending()
}

// Registry returns the metrics registry the session publishes to
func (s *Session) Registry() *status.Registry {
	return s.registry
}
