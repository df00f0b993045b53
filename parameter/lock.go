package parameter

import "time"

// Grid Defaults
const (
	// DefaultGridCount is the number of cells per grid side
	DefaultGridCount = 3

	// CellSideNumerator and CellSideDenominatorPerCell derive the cell side: s = 4*W / (5*N + 1)
	CellSideNumerator          = 4
	CellSideDenominatorPerCell = 5

	// MarginRatio is the inter-cell margin as a fraction of the cell side
	MarginRatio = 0.25

	// HitPaddingRatio shrinks each cell on all four sides for hit-testing
	HitPaddingRatio = 0.15
)

// Retry Defaults
const (
	// DefaultMaxAttempts is the verification budget before lockout
	DefaultMaxAttempts = 3
)

// Result Display Timing
const (
	// SuccessResetDelay keeps a successful result visible before the grid resets
	SuccessResetDelay = 1000 * time.Millisecond

	// FailureResetDelay keeps a failed result visible before the grid resets
	FailureResetDelay = 500 * time.Millisecond
)

// Arrow Hints
const (
	// ArrowNone marks a cell without a direction arrow
	ArrowNone = -1.0

	// ArrowOffsetDegrees rotates atan2 output so 0 degrees points up
	ArrowOffsetDegrees = 90.0
)
