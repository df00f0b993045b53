package event

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/patternlock/parameter"
)

// Handler consumes non-callback events on the loop goroutine
type Handler interface {
	HandleEvent(ev Event)
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(ev Event)

func (f HandlerFunc) HandleEvent(ev Event) { f(ev) }

// Loop is the single logical event thread
// Pointer events and timer callbacks are serialized through one Queue
type Loop struct {
	queue      *Queue
	handler    Handler
	afterBatch func()
	idle       time.Duration
	logger     zerolog.Logger
	dropped    uint64 // Queue drop count already reported
}

// LoopOption configures a Loop
type LoopOption func(*Loop)

// WithAfterBatch runs fn once after every non-empty batch, typically a redraw
func WithAfterBatch(fn func()) LoopOption {
	return func(l *Loop) { l.afterBatch = fn }
}

// WithIdleInterval bounds the wait between wakeups
func WithIdleInterval(d time.Duration) LoopOption {
	return func(l *Loop) { l.idle = d }
}

// WithLogger sets the loop logger
func WithLogger(logger zerolog.Logger) LoopOption {
	return func(l *Loop) { l.logger = logger }
}

// NewLoop creates a loop draining queue into handler
func NewLoop(queue *Queue, handler Handler, opts ...LoopOption) *Loop {
	l := &Loop{
		queue:   queue,
		handler: handler,
		idle:    parameter.EventLoopIdleInterval,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run processes events until ctx is done
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.idle)
	defer ticker.Stop()

	l.logger.Debug().Dur("idle", l.idle).Msg("event loop started")
	for {
		select {
		case <-ctx.Done():
			l.logger.Debug().Msg("event loop stopped")
			return ctx.Err()
		case <-l.queue.Wake():
		case <-ticker.C:
		}
		l.Drain()
	}
}

// Drain handles all pending events on the calling goroutine and returns how many ran
func (l *Loop) Drain() int {
	events := l.queue.Consume()
	if d := l.queue.Dropped(); d != l.dropped {
		l.logger.Warn().Uint64("lost", d-l.dropped).Uint64("total", d).Msg("event queue overflow")
		l.dropped = d
	}
	for _, ev := range events {
		if ev.Type == EventCallback {
			if ev.Fn != nil {
				ev.Fn()
			}
			continue
		}
		if l.handler != nil {
			l.handler.HandleEvent(ev)
		}
	}
	if len(events) > 0 && l.afterBatch != nil {
		l.afterBatch()
	}
	return len(events)
}
