package status

import (
	"cmp"
	"slices"
	"sync"
	"sync/atomic"
	"unicode/utf8"
)

// MetricMap hands out one stable pointer per key
// Writers cache the pointer; readers walk the map for snapshots
type MetricMap[T any] struct {
	items sync.Map // string -> *T
	count atomic.Int32
}

// NewMetricMap creates an empty map
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{}
}

// Get returns the metric for key, creating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	if v, ok := m.items.Load(key); ok {
		return v.(*T)
	}
	v, loaded := m.items.LoadOrStore(key, new(T))
	if !loaded {
		m.count.Add(1)
	}
	return v.(*T)
}

// Has reports whether key was ever requested
func (m *MetricMap[T]) Has(key string) bool {
	_, ok := m.items.Load(key)
	return ok
}

// Range visits metrics ordered by key
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	type entry struct {
		key string
		ptr *T
	}
	var entries []entry
	m.items.Range(func(k, v any) bool {
		entries = append(entries, entry{k.(string), v.(*T)})
		return true
	})
	slices.SortFunc(entries, func(a, b entry) int { return cmp.Compare(a.key, b.key) })
	for _, e := range entries {
		fn(e.key, e.ptr)
	}
}

// Count returns the number of keys
func (m *MetricMap[T]) Count() int {
	return int(m.count.Load())
}

// LabelLimit bounds label length in bytes
const LabelLimit = 32

// Label is a short string metric such as a state or mode name
// The zero value is the empty label
type Label struct {
	v atomic.Value // string
}

// Store sets the label, cut to LabelLimit bytes on a rune boundary
func (l *Label) Store(s string) {
	if len(s) > LabelLimit {
		cut := LabelLimit
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	l.v.Store(s)
}

// Load returns the label
func (l *Label) Load() string {
	s, _ := l.v.Load().(string)
	return s
}
