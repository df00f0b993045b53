package status

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

func TestMetricMap_CachedPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("session.failures")
	b := r.Ints.Get("session.failures")
	if a != b {
		t.Fatal("Get returned different pointers for the same key")
	}
	a.Add(2)
	if got := b.Load(); got != 2 {
		t.Errorf("shared pointer value = %d; want 2", got)
	}
	if !r.Ints.Has("session.failures") || r.Ints.Has("missing") {
		t.Error("Has reported wrong membership")
	}
}

func TestMetricMap_ConcurrentGet(t *testing.T) {
	m := NewMetricMap[Label]()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Get("state").Store("Idle")
		}()
	}
	wg.Wait()
	if m.Count() != 1 {
		t.Errorf("Count = %d; want 1", m.Count())
	}
}

func TestSnapshot(t *testing.T) {
	r := NewRegistry()
	r.Bools.Get("session.locked").Store(true)
	r.Ints.Get("retry.remaining").Store(3)
	r.Strings.Get("session.state").Store("Tracking")

	snap := r.Snapshot()
	want := map[string]string{
		"session.locked":  "true",
		"retry.remaining": "3",
		"session.state":   "Tracking",
	}
	for k, v := range want {
		if snap[k] != v {
			t.Errorf("snapshot[%q] = %q; want %q", k, snap[k], v)
		}
	}
	if r.TotalCount() != 3 {
		t.Errorf("TotalCount = %d; want 3", r.TotalCount())
	}
}

func TestLabel_Truncates(t *testing.T) {
	var l Label
	if l.Load() != "" {
		t.Error("zero value must be empty")
	}
	l.Store(strings.Repeat("x", LabelLimit+5))
	if len(l.Load()) != LabelLimit {
		t.Errorf("len = %d; want %d", len(l.Load()), LabelLimit)
	}

	// Multi-byte rune straddling the limit is dropped whole
	l.Store(strings.Repeat("x", LabelLimit-1) + "é")
	if got := l.Load(); got != strings.Repeat("x", LabelLimit-1) {
		t.Errorf("got %q; want cut before the rune", got)
	}
}

func TestMetricMap_RangeSorted(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	m.Get("b")
	m.Get("a")
	m.Get("c")
	var keys []string
	m.Range(func(k string, _ *atomic.Int64) { keys = append(keys, k) })
	if strings.Join(keys, ",") != "a,b,c" {
		t.Errorf("keys = %v; want sorted", keys)
	}
}
