package vertex

import (
	"strconv"
	"strings"

	"github.com/lvlgraph/pqgraph/line"
	"github.com/lvlgraph/pqgraph/shape"
)

// Vertex is a named tensor with an ordered sequence of indices.
//
// Invariants (§3): Shape() == Σ shape.Of(lines); Rank() == len(Lines).
type Vertex struct {
	BaseName string
	Lines    []line.Line
}

// New builds a Vertex from a base name and an ordered line list.
func New(baseName string, lines []line.Line) Vertex {
	cp := make([]line.Line, len(lines))
	copy(cp, lines)
	return Vertex{BaseName: baseName, Lines: cp}
}

// Rank is the number of lines (indices) on the vertex.
func (v Vertex) Rank() int { return len(v.Lines) }

// Shape sums the per-line shapes of every index.
func (v Vertex) Shape() shape.Shape { return shape.Sum(v.Lines) }

// HasBlock reports whether any line carries a spin/range block.
func (v Vertex) HasBlock() bool {
	for _, l := range v.Lines {
		if l.HasBlock() {
			return true
		}
	}
	return false
}

// IsSigma reports whether any line is an excited-state (sigma) index.
func (v Vertex) IsSigma() bool {
	for _, l := range v.Lines {
		if l.Sigma {
			return true
		}
	}
	return false
}

// IsDensity reports whether any line is a density-fitting index.
func (v Vertex) IsDensity() bool {
	for _, l := range v.Lines {
		if l.Density {
			return true
		}
	}
	return false
}

// IsScalar reports whether the vertex carries no indices at all.
func (v Vertex) IsScalar() bool { return len(v.Lines) == 0 }

// OVString renders each line's Kind() byte in order, e.g. "vvoo".
func (v Vertex) OVString() string {
	var b strings.Builder
	for _, l := range v.Lines {
		b.WriteByte(l.Kind())
	}
	return b.String()
}

// blockString renders each line's block character, omitted entirely if no
// line carries a block.
func (v Vertex) blockString() string {
	if !v.HasBlock() {
		return ""
	}
	var b strings.Builder
	for _, l := range v.Lines {
		if blk := l.Block(); blk != 0 {
			b.WriteByte(blk)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Name builds the formatted display name: BaseName + occ/vir string +
// block string (§3).
func (v Vertex) Name() string {
	name := v.BaseName + v.OVString()
	if blk := v.blockString(); blk != "" {
		name += "_" + blk
	}
	return name
}

// Equal reports whether v and o share the same base name and the exact
// same lines, in order, including labels.
func (v Vertex) Equal(o Vertex) bool {
	if v.BaseName != o.BaseName || len(v.Lines) != len(o.Lines) {
		return false
	}
	for i := range v.Lines {
		if !v.Lines[i].Equal(o.Lines[i]) {
			return false
		}
	}
	return true
}

// Equivalent reports whether v and o share the same base name and
// positionally equivalent lines (labels may differ).
func (v Vertex) Equivalent(o Vertex) bool {
	if v.BaseName != o.BaseName || len(v.Lines) != len(o.Lines) {
		return false
	}
	for i := range v.Lines {
		if !v.Lines[i].Equivalent(o.Lines[i]) {
			return false
		}
	}
	return true
}

// SelfLinks returns the labels that appear more than once among v's lines
// (self-contractions), in first-seen order.
func (v Vertex) SelfLinks() []string {
	count := make(map[string]int, len(v.Lines))
	for _, l := range v.Lines {
		count[l.Label]++
	}
	var out []string
	seen := make(map[string]bool)
	for _, l := range v.Lines {
		if count[l.Label] > 1 && !seen[l.Label] {
			out = append(out, l.Label)
			seen[l.Label] = true
		}
	}
	return out
}

// MakeSelfLinkages replaces every self-contracted label pair in v with a
// pair of unique fresh labels, and returns the rewritten vertex alongside
// one rank-2 identity ("Id") delta vertex per replaced pair connecting the
// fresh labels (§4.2).
func MakeSelfLinkages(v Vertex, freshLabel func(kind byte, n int) string) (Vertex, []Vertex) {
	selfLabels := v.SelfLinks()
	if len(selfLabels) == 0 {
		return v, nil
	}

	out := New(v.BaseName, v.Lines)
	var deltas []Vertex
	fresh := 0

	for _, label := range selfLabels {
		// find the two occurrence indices of this label
		var idxs []int
		for i, l := range out.Lines {
			if l.Label == label {
				idxs = append(idxs, i)
			}
		}
		if len(idxs) < 2 {
			continue
		}
		// rename in pairs, leaving any odd one out untouched (should not
		// occur for valid second-quantized input, but we stay defensive).
		for p := 0; p+1 < len(idxs); p += 2 {
			orig := out.Lines[idxs[p]]
			a := orig
			b := orig
			a.Label = freshLabel(orig.Kind(), fresh)
			fresh++
			b.Label = freshLabel(orig.Kind(), fresh)
			fresh++
			out.Lines[idxs[p]] = a
			out.Lines[idxs[p+1]] = b
			deltas = append(deltas, New("Id", []line.Line{a, b}))
		}
	}
	return out, deltas
}

// Genericize rewrites every label to a canonical "o0,o1,...,v0,v1,..."
// scheme (also L0,L1,... and Q0,Q1,... for sigma/density lines),
// preserving every other field, so that structurally identical vertices
// hash identically regardless of the original labels (§4.2, §9).
func (v Vertex) Genericize() Vertex {
	counters := map[byte]int{}
	out := New(v.BaseName, v.Lines)
	for i, l := range out.Lines {
		k := l.Kind()
		n := counters[k]
		counters[k] = n + 1
		l.Label = GenericLabel(k, n)
		out.Lines[i] = l
	}
	return out
}

// GenericLabel renders the n-th canonical label for a given line.Kind()
// byte: "o0","o1",... for occupied, "v0","v1",... for virtual, "L0","L1",
// ... for sigma, "Q0","Q1",... for density. Exported so callers genericizing
// a whole contraction tree (package linkage) can keep a single counter set
// consistent across every leaf vertex rather than restarting per vertex.
func GenericLabel(kind byte, n int) string {
	switch kind {
	case 'o':
		return "o" + strconv.Itoa(n)
	case 'v':
		return "v" + strconv.Itoa(n)
	case 'L':
		return "L" + strconv.Itoa(n)
	default:
		return "Q" + strconv.Itoa(n)
	}
}
