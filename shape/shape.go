package shape

import (
	"fmt"

	"github.com/lvlgraph/pqgraph/line"
)

// Shape is the multiset (o_act, o_inact, v_act, v_inact, L, Q) of §3: a
// nonnegative count per line kind, used as the abstract complexity
// exponent of a Vertex or Linkage.
type Shape struct {
	OccActive    int
	OccInactive  int
	VirtActive   int
	VirtInactive int
	Sigma        int
	Density      int
}

// Zero is the scalar shape (no lines of any kind).
var Zero = Shape{}

// Of returns the unit shape contributed by a single line.
func Of(l line.Line) Shape {
	switch {
	case l.Sigma:
		return Shape{Sigma: 1}
	case l.Density:
		return Shape{Density: 1}
	case l.Occupied && l.Active:
		return Shape{OccActive: 1}
	case l.Occupied && !l.Active:
		return Shape{OccInactive: 1}
	case l.Active:
		return Shape{VirtActive: 1}
	default:
		return Shape{VirtInactive: 1}
	}
}

// Sum folds Of over every line, i.e. shape(Σlines) = Σshape(line).
func Sum(lines []line.Line) Shape {
	var out Shape
	for _, l := range lines {
		out = out.Add(Of(l))
	}
	return out
}

// Add returns the componentwise sum; shape(a+b) = shape(a) + shape(b).
func (a Shape) Add(b Shape) Shape {
	return Shape{
		OccActive:    a.OccActive + b.OccActive,
		OccInactive:  a.OccInactive + b.OccInactive,
		VirtActive:   a.VirtActive + b.VirtActive,
		VirtInactive: a.VirtInactive + b.VirtInactive,
		Sigma:        a.Sigma + b.Sigma,
		Density:      a.Density + b.Density,
	}
}

// Sub returns the componentwise difference, clamped so no field drops
// below zero (matching AllPositive()'s clamp-on-subtraction policy, §4.1).
func (a Shape) Sub(b Shape) Shape {
	clamp := func(x int) int {
		if x < 0 {
			return 0
		}
		return x
	}
	return Shape{
		OccActive:    clamp(a.OccActive - b.OccActive),
		OccInactive:  clamp(a.OccInactive - b.OccInactive),
		VirtActive:   clamp(a.VirtActive - b.VirtActive),
		VirtInactive: clamp(a.VirtInactive - b.VirtInactive),
		Sigma:        clamp(a.Sigma - b.Sigma),
		Density:      clamp(a.Density - b.Density),
	}
}

// Occ returns the total occupied-line count (active + inactive).
func (a Shape) Occ() int { return a.OccActive + a.OccInactive }

// Virt returns the total virtual-line count (active + inactive).
func (a Shape) Virt() int { return a.VirtActive + a.VirtInactive }

// Rank returns the total line count across every bucket.
func (a Shape) Rank() int {
	return a.OccActive + a.OccInactive + a.VirtActive + a.VirtInactive + a.Sigma + a.Density
}

// Compare returns -1 if a < b, 0 if a == b, 1 if a > b under the total
// order: total rank, then virtual count, then occupied count, then the
// individual buckets (Sigma, Density, VirtActive, VirtInactive, OccActive,
// OccInactive) in that fixed order.
func Compare(a, b Shape) int {
	if c := cmpInt(a.Rank(), b.Rank()); c != 0 {
		return c
	}
	if c := cmpInt(a.Virt(), b.Virt()); c != 0 {
		return c
	}
	if c := cmpInt(a.Occ(), b.Occ()); c != 0 {
		return c
	}
	fields := [][2]int{
		{a.Sigma, b.Sigma},
		{a.Density, b.Density},
		{a.VirtActive, b.VirtActive},
		{a.VirtInactive, b.VirtInactive},
		{a.OccActive, b.OccActive},
		{a.OccInactive, b.OccInactive},
	}
	for _, f := range fields {
		if c := cmpInt(f[0], f[1]); c != 0 {
			return c
		}
	}
	return 0
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less reports whether a is strictly cheaper than b under Compare.
func (a Shape) Less(b Shape) bool { return Compare(a, b) < 0 }

// Equal reports whether a and b carry identical counts in every bucket.
func (a Shape) Equal(b Shape) bool { return a == b }

// String renders the shape as "o{n}v{n}L{n}Q{n}", where the o and v counts
// are totals over active and inactive lines, omitting counts that are
// zero, and renders the zero shape as "scalar", for compact diagnostics.
func (a Shape) String() string {
	if a == Zero {
		return "scalar"
	}
	out := ""
	if a.OccActive+a.OccInactive > 0 {
		out += fmt.Sprintf("o%d", a.Occ())
	}
	if a.VirtActive+a.VirtInactive > 0 {
		out += fmt.Sprintf("v%d", a.Virt())
	}
	if a.Sigma > 0 {
		out += fmt.Sprintf("L%d", a.Sigma)
	}
	if a.Density > 0 {
		out += fmt.Sprintf("Q%d", a.Density)
	}
	return out
}

// Bound caps the occupied and virtual line counts an intermediate's shape
// is allowed to carry (§6 max_shape; default o:255, v:255).
type Bound struct {
	MaxOcc  int
	MaxVirt int
}

// DefaultBound is the configured default of §6.
var DefaultBound = Bound{MaxOcc: 255, MaxVirt: 255}

// Unbounded carries no limit at all: Exceeds always reports false. Used
// where a caller needs to express "no max_shape fallback should ever
// trigger" explicitly, rather than relying on the zero value (which would
// mean "occupied and virtual must both be zero").
var Unbounded = Bound{MaxOcc: -1, MaxVirt: -1}

// Exceeds reports whether s is outside the bound. A negative MaxOcc or
// MaxVirt means that dimension carries no limit.
func (b Bound) Exceeds(s Shape) bool {
	if b.MaxOcc >= 0 && s.Occ() > b.MaxOcc {
		return true
	}
	if b.MaxVirt >= 0 && s.Virt() > b.MaxVirt {
		return true
	}
	return false
}
