package event

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/patternlock/parameter"
)

func TestQueue_FIFO(t *testing.T) {
	q := NewQueue()
	q.Push(Event{Type: EventPointerDown, X: 1, Y: 1})
	q.Push(Event{Type: EventPointerMove, X: 2, Y: 2})
	q.Push(Event{Type: EventPointerUp, X: 3, Y: 3})
	assert.Equal(t, 3, q.Len())

	got := q.Consume()
	require.Len(t, got, 3)
	assert.Equal(t, EventPointerDown, got[0].Type)
	assert.Equal(t, EventPointerMove, got[1].Type)
	assert.Equal(t, EventPointerUp, got[2].Type)
	assert.Nil(t, q.Consume())
	assert.Equal(t, 0, q.Len())
}

func TestQueue_OverflowKeepsNewest(t *testing.T) {
	q := NewQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(Event{Type: EventPointerMove, X: i})
	}
	assert.Equal(t, parameter.EventQueueSize, q.Len())
	assert.Equal(t, uint64(10), q.Dropped())

	got := q.Consume()
	require.Len(t, got, parameter.EventQueueSize)
	assert.Equal(t, 10, got[0].X)
	assert.Equal(t, total-1, got[len(got)-1].X)
}

func TestQueue_ConcurrentProducers(t *testing.T) {
	q := NewQueue()
	const producers, perProducer = 4, 50

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(Event{Type: EventPointerMove})
			}
		}()
	}
	wg.Wait()

	assert.Len(t, q.Consume(), producers*perProducer)
}

func TestLoop_DrainRunsCallbacksInline(t *testing.T) {
	q := NewQueue()
	var order []string
	batches := 0
	l := NewLoop(q, HandlerFunc(func(ev Event) { order = append(order, ev.Type.String()) }),
		WithAfterBatch(func() { batches++ }))

	q.Push(Event{Type: EventPointerDown})
	q.Post(func() { order = append(order, "timer") })
	q.Push(Event{Type: EventPointerUp})

	assert.Equal(t, 3, l.Drain())
	assert.Equal(t, []string{"PointerDown", "timer", "PointerUp"}, order)
	assert.Equal(t, 1, batches)

	assert.Equal(t, 0, l.Drain())
	assert.Equal(t, 1, batches, "empty drain does not trigger after-batch")
}

func TestLoop_DrainReportsOverflow(t *testing.T) {
	q := NewQueue()
	var buf bytes.Buffer
	l := NewLoop(q, nil, WithLogger(zerolog.New(&buf)))

	for i := 0; i < parameter.EventQueueSize+3; i++ {
		q.Push(Event{Type: EventPointerMove})
	}
	assert.Equal(t, parameter.EventQueueSize, l.Drain())
	assert.Contains(t, buf.String(), `"lost":3`)

	buf.Reset()
	q.Push(Event{Type: EventPointerUp})
	l.Drain()
	assert.NotContains(t, buf.String(), "overflow", "reported once")
}

func TestLoop_Run(t *testing.T) {
	q := NewQueue()
	handled := make(chan Event, 1)
	l := NewLoop(q, HandlerFunc(func(ev Event) { handled <- ev }), WithIdleInterval(10*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	q.Push(Event{Type: EventPointerDown, X: 7, Y: 9})
	select {
	case ev := <-handled:
		assert.Equal(t, 7, ev.X)
		assert.Equal(t, 9, ev.Y)
	case <-time.After(2 * time.Second):
		t.Fatal("event not handled")
	}

	cancel()
	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}
}
