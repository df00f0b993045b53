package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestArm_FiresAfterDelay(t *testing.T) {
	clock := NewManualClock(epoch)
	s, err := New(clock, nil)
	require.NoError(t, err)

	fired := 0
	s.Arm(500*time.Millisecond, func() { fired++ })
	require.True(t, s.Pending())
	assert.Equal(t, 500*time.Millisecond, s.Delay())

	clock.Advance(499 * time.Millisecond)
	assert.Equal(t, 0, fired)

	clock.Advance(time.Millisecond)
	assert.Equal(t, 1, fired)
	assert.False(t, s.Pending())
	assert.Equal(t, time.Duration(0), s.Delay())

	clock.Advance(time.Second)
	assert.Equal(t, 1, fired, "one-shot")
}

func TestArm_ReplacesOutstanding(t *testing.T) {
	clock := NewManualClock(epoch)
	s, err := New(clock, nil)
	require.NoError(t, err)

	var got []string
	s.Arm(500*time.Millisecond, func() { got = append(got, "short") })
	s.Arm(1000*time.Millisecond, func() { got = append(got, "long") })
	assert.Equal(t, 1, clock.Pending(), "replaced timer is stopped")

	clock.Advance(2 * time.Second)
	assert.Equal(t, []string{"long"}, got)
}

func TestCancel(t *testing.T) {
	clock := NewManualClock(epoch)
	s, err := New(clock, nil)
	require.NoError(t, err)

	fired := false
	s.Arm(time.Second, func() { fired = true })
	s.Cancel()
	assert.False(t, s.Pending())

	clock.Advance(2 * time.Second)
	assert.False(t, fired)
}

func TestClose_IgnoresArm(t *testing.T) {
	clock := NewManualClock(epoch)
	s, err := New(clock, nil)
	require.NoError(t, err)

	fired := 0
	s.Arm(time.Second, func() { fired++ })
	s.Close()
	s.Arm(time.Second, func() { fired++ })

	clock.Advance(3 * time.Second)
	assert.Equal(t, 0, fired)
	assert.True(t, s.Closed())
	assert.False(t, s.Pending())
}

// TestStaleDeliveryDropped covers a timer that fired but was cancelled before its post ran
func TestStaleDeliveryDropped(t *testing.T) {
	clock := NewManualClock(epoch)
	var queued []func()
	s, err := New(clock, func(fn func()) { queued = append(queued, fn) })
	require.NoError(t, err)

	fired := 0
	s.Arm(time.Second, func() { fired++ })
	clock.Advance(time.Second)
	require.Len(t, queued, 1)

	s.Cancel()
	queued[0]()
	assert.Equal(t, 0, fired)

	// A superseded delivery is dropped as well
	queued = nil
	s.Arm(time.Second, func() { fired++ })
	clock.Advance(time.Second)
	s.Arm(time.Second, func() { fired += 10 })
	queued[0]()
	assert.Equal(t, 0, fired)

	clock.Advance(time.Second)
	require.Len(t, queued, 2)
	queued[1]()
	assert.Equal(t, 10, fired)
}

func TestRealClock_PostsToEventThread(t *testing.T) {
	events := make(chan func(), 1)
	s, err := New(NewRealClock(), func(fn func()) { events <- fn })
	require.NoError(t, err)

	fired := make(chan struct{})
	s.Arm(5*time.Millisecond, func() { close(fired) })

	select {
	case fn := <-events:
		fn()
	case <-time.After(2 * time.Second):
		t.Fatal("timer never posted")
	}

	select {
	case <-fired:
	default:
		t.Fatal("posted callback did not run the task")
	}
}

func TestNew_AsynchronousClockRequiresPoster(t *testing.T) {
	_, err := New(nil, nil)
	assert.ErrorIs(t, err, ErrNoPoster)

	_, err = New(NewRealClock(), nil)
	assert.ErrorIs(t, err, ErrNoPoster)

	_, err = New(NewManualClock(epoch), nil)
	assert.NoError(t, err)
}

func TestManualClock_Order(t *testing.T) {
	clock := NewManualClock(epoch)
	var order []int
	clock.AfterFunc(300*time.Millisecond, func() { order = append(order, 3) })
	clock.AfterFunc(100*time.Millisecond, func() {
		order = append(order, 1)
		clock.AfterFunc(100*time.Millisecond, func() { order = append(order, 2) })
	})

	clock.Advance(time.Second)
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Equal(t, epoch.Add(time.Second), clock.Now())
}
