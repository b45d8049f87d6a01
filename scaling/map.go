package scaling

import (
	"sort"

	"github.com/lvlgraph/pqgraph/shape"
)

// Map is a histogram of Shape → occurrence count, e.g. how many flop-cost
// contractions of a given Shape appear across a Term, Equation, or graph.
type Map map[shape.Shape]int

// New returns an empty Map.
func New() Map { return make(Map) }

// Clone returns a shallow copy (Map values are plain ints, so a shallow
// copy is a deep copy).
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Add records one occurrence of s.
func (m Map) Add(s shape.Shape) { m[s]++ }

// Merge returns the elementwise sum of m and other.
func (m Map) Merge(other Map) Map {
	out := m.Clone()
	for k, v := range other {
		out[k] += v
	}
	return out
}

// Subtract returns the elementwise difference m - other, clamped to
// nonnegative counts (§4.1 AllPositive, used when removing a predicted
// savings that has already been realized by a prior substitution).
func (m Map) Subtract(other Map) Map {
	out := m.Clone()
	for k, v := range other {
		out[k] -= v
	}
	return out.AllPositive()
}

// AllPositive clamps every negative count to zero.
func (m Map) AllPositive() Map {
	out := make(Map, len(m))
	for k, v := range m {
		if v < 0 {
			v = 0
		}
		if v != 0 {
			out[k] = v
		}
	}
	return out
}

// Verdict is the outcome of comparing two ScalingMaps.
type Verdict int

const (
	// ThisBetter means the receiver of Compare has the lower cost.
	ThisBetter Verdict = iota
	// OtherBetter means the argument to Compare has the lower cost.
	OtherBetter
	// ThisSame means the two maps carry identical counts everywhere.
	ThisSame
	// Incomparable is reserved for a tie-break convention stricter than
	// the deterministic total-order walk below ever produces; see
	// SPEC_FULL.md / DESIGN.md open-question (b). Compare never returns
	// it today, but callers must handle it since it is part of the
	// documented sum type.
	Incomparable
)

// Compare walks both maps from the highest Shape downward (per the total
// order in package shape) and returns ThisBetter/OtherBetter at the first
// Shape whose counts differ — the map with the lower count there wins.
// A Shape absent from one map is treated as count zero, so "one map lacks
// a Shape the other carries" resolves through the same comparison: lacking
// it is better only if every higher-ranked Shape tied.
func Compare(a, b Map) Verdict {
	shapes := unionKeys(a, b)
	sort.Slice(shapes, func(i, j int) bool {
		// Descending: highest-cost shapes compared first.
		return shape.Compare(shapes[j], shapes[i]) < 0
	})
	for _, sh := range shapes {
		ca, cb := a[sh], b[sh]
		if ca == cb {
			continue
		}
		if ca < cb {
			return ThisBetter
		}
		return OtherBetter
	}
	return ThisSame
}

func unionKeys(a, b Map) []shape.Shape {
	seen := make(map[shape.Shape]struct{}, len(a)+len(b))
	out := make([]shape.Shape, 0, len(a)+len(b))
	for k := range a {
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	for k := range b {
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	return out
}

// Total sums every count across every shape, for coarse "how many
// contractions total" reporting in analysis.ScalingReport.
func (m Map) Total() int {
	total := 0
	for _, v := range m {
		total += v
	}
	return total
}
