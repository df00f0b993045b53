// Package retry tracks the remaining verification attempts before lockout.
package retry

// Policy is a decrementing attempt budget
// No automatic reset; only Rearm restores the budget
type Policy struct {
	max       int
	remaining int
}

// New creates a policy with max attempts, negative values clamp to zero
func New(max int) *Policy {
	p := &Policy{}
	p.Rearm(max)
	return p
}

// Rearm restores the budget to max attempts
func (p *Policy) Rearm(max int) {
	if max < 0 {
		max = 0
	}
	p.max = max
	p.remaining = max
}

// RecordFailure consumes one attempt, floored at zero
// Returns true when this failure exhausted the budget
func (p *Policy) RecordFailure() bool {
	if p.remaining == 0 {
		return false
	}
	p.remaining--
	return p.remaining == 0
}

// Exhausted reports whether no attempts remain
func (p *Policy) Exhausted() bool {
	return p.remaining == 0
}

// Remaining returns attempts left
func (p *Policy) Remaining() int {
	return p.remaining
}

// Max returns the configured budget
func (p *Policy) Max() int {
	return p.max
}
