// Package pattern records the ordered cells a pointer visits and derives the
// direction hints drawn between consecutive cells.
package pattern

import (
	"math"

	"github.com/lixenwraith/patternlock/geometry"
	"github.com/lixenwraith/patternlock/parameter"
)

// Recorder accumulates the chosen path for one capture
// The path holds each cell id at most once, in visiting order
type Recorder struct {
	ids    []int
	member map[int]struct{}

	// Live guide segment endpoint, rendering input only
	trail    geometry.Point
	hasTrail bool
	anchor   geometry.Point // Center of the last chosen cell
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{
		ids:    make([]int, 0, parameter.DefaultGridCount*parameter.DefaultGridCount),
		member: make(map[int]struct{}),
	}
}

// Observe appends id when not already chosen and reports whether it was added
// center is the cell's center, used as the new guide anchor
func (r *Recorder) Observe(id int, center geometry.Point) bool {
	if _, ok := r.member[id]; ok {
		return false
	}
	r.member[id] = struct{}{}
	r.ids = append(r.ids, id)
	r.anchor = center
	return true
}

// Contains reports whether id is already on the path
func (r *Recorder) Contains(id int) bool {
	_, ok := r.member[id]
	return ok
}

// Len returns the number of chosen cells
func (r *Recorder) Len() int {
	return len(r.ids)
}

// Empty reports whether no cell has been chosen
func (r *Recorder) Empty() bool {
	return len(r.ids) == 0
}

// IDs returns a copy of the chosen path
func (r *Recorder) IDs() []int {
	out := make([]int, len(r.ids))
	copy(out, r.ids)
	return out
}

// Last returns the most recently chosen id
func (r *Recorder) Last() (int, bool) {
	if len(r.ids) == 0 {
		return 0, false
	}
	return r.ids[len(r.ids)-1], true
}

// SetTrail moves the free end of the guide segment to the pointer location
func (r *Recorder) SetTrail(p geometry.Point) {
	r.trail = p
	r.hasTrail = true
}

// SetAnchor moves the fixed end of the guide segment after a relayout
func (r *Recorder) SetAnchor(p geometry.Point) {
	if len(r.ids) == 0 {
		return
	}
	r.anchor = p
}

// PinTrail collapses the guide segment onto the last chosen cell's center
func (r *Recorder) PinTrail() {
	if len(r.ids) == 0 {
		r.hasTrail = false
		return
	}
	r.trail = r.anchor
	r.hasTrail = true
}

// Guide returns the live guide segment from the last chosen center to the trail point
// ok is false until a cell is chosen and a trail point exists
func (r *Recorder) Guide() (from, to geometry.Point, ok bool) {
	if len(r.ids) == 0 || !r.hasTrail {
		return geometry.Point{}, geometry.Point{}, false
	}
	return r.anchor, r.trail, true
}

// Reset clears the path and the guide segment
func (r *Recorder) Reset() {
	r.ids = r.ids[:0]
	clear(r.member)
	r.trail = geometry.Point{}
	r.hasTrail = false
	r.anchor = geometry.Point{}
}

// Hint is the arrow assigned to the source cell of a consecutive pair
type Hint struct {
	ID      int
	Degrees float64
}

// Hints computes the arrow for every consecutive pair of chosen cells
// The source cell's arrow points toward the next cell; the last cell gets none
func (r *Recorder) Hints(centerOf func(id int) geometry.Point) []Hint {
	if len(r.ids) < 2 {
		return nil
	}
	hints := make([]Hint, 0, len(r.ids)-1)
	for i := 0; i+1 < len(r.ids); i++ {
		a, b := centerOf(r.ids[i]), centerOf(r.ids[i+1])
		hints = append(hints, Hint{ID: r.ids[i], Degrees: ArrowAngle(a, b)})
	}
	return hints
}

// ArrowAngle returns the rotation in degrees for an arrow at a pointing to b
// 0 points up, 90 right, 180 down, 270 left; result is in [0, 360)
// atan2+90 alone yields -90..270, so up-left is 315 here rather than -45,
// keeping every angle clear of the ArrowNone sentinel
func ArrowAngle(a, b geometry.Point) float64 {
	rad := math.Atan2(float64(b.Y-a.Y), float64(b.X-a.X))
	deg := rad*180/math.Pi + parameter.ArrowOffsetDegrees
	// Snap float noise so axis-aligned moves land exactly on 0/90/180/270
	deg = math.Round(deg*1e9) / 1e9
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
