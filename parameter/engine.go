package parameter

import "time"

// Event Loop
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	// Sized so a drag burst between two drains cannot evict a pending reset callback
	EventQueueSize = 4096

	// EventBufferMask is the bitmask for fast modulo operations (4096 - 1)
	EventBufferMask = 4095

	// EventLoopIdleInterval bounds how long the loop sleeps without a wakeup signal
	EventLoopIdleInterval = 100 * time.Millisecond
)
