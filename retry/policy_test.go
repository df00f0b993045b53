package retry

import "testing"

func TestPolicy(t *testing.T) {
	p := New(3)
	if p.Exhausted() || p.Remaining() != 3 || p.Max() != 3 {
		t.Fatalf("fresh policy: remaining=%d max=%d exhausted=%v", p.Remaining(), p.Max(), p.Exhausted())
	}

	if p.RecordFailure() {
		t.Error("first failure must not exhaust a budget of 3")
	}
	if p.RecordFailure() {
		t.Error("second failure must not exhaust a budget of 3")
	}
	if !p.RecordFailure() {
		t.Error("third failure must exhaust")
	}
	if !p.Exhausted() || p.Remaining() != 0 {
		t.Errorf("after 3 failures: remaining=%d exhausted=%v", p.Remaining(), p.Exhausted())
	}

	// Floored at zero; exhaustion reported only once
	if p.RecordFailure() {
		t.Error("failure past zero reported exhaustion again")
	}
	if p.Remaining() != 0 {
		t.Errorf("remaining went below zero: %d", p.Remaining())
	}

	p.Rearm(2)
	if p.Exhausted() || p.Remaining() != 2 {
		t.Errorf("rearm: remaining=%d exhausted=%v", p.Remaining(), p.Exhausted())
	}
}

func TestPolicy_ZeroAndNegative(t *testing.T) {
	tests := []struct {
		max  int
		want int
	}{
		{0, 0},
		{-4, 0},
		{1, 1},
	}
	for _, tc := range tests {
		p := New(tc.max)
		if p.Remaining() != tc.want {
			t.Errorf("New(%d).Remaining() = %d; want %d", tc.max, p.Remaining(), tc.want)
		}
		if p.Exhausted() != (tc.want == 0) {
			t.Errorf("New(%d).Exhausted() = %v", tc.max, p.Exhausted())
		}
	}
}
