package linkage

import (
	"github.com/lvlgraph/pqgraph/line"
	"github.com/lvlgraph/pqgraph/vertex"
)

// Genericize rebuilds lk with every distinct line across the whole tree
// renamed to a canonical "o0,o1,...", "v0,v1,...", "L0,L1,...", "Q0,Q1,..."
// label, assigned in the pre-order leaf-vertex walk ToVector produces, the
// same line mapped to the same canonical label everywhere it recurs
// (internal or external). The resulting tree has the same shape and
// operand names as lk but is independent of how lk's dummy indices
// happened to be labeled, which is what lets CSE recognize the same
// contraction pattern across terms that summed over differently-named
// dummy indices (§4.7, §9).
func (lk *Linkage) Genericize() *Linkage {
	leaves := lk.ToVector(true)

	remap := make(map[line.Line]line.Line)
	counters := make(map[byte]int)
	for _, op := range leaves {
		for _, l := range op.Leaf.Lines {
			if _, seen := remap[l]; seen {
				continue
			}
			k := l.Kind()
			n := counters[k]
			counters[k] = n + 1
			nl := l
			nl.Label = vertex.GenericLabel(k, n)
			remap[l] = nl
		}
	}

	newLeaves := make([]vertex.Vertex, len(leaves))
	for i, op := range leaves {
		newLines := make([]line.Line, len(op.Leaf.Lines))
		for j, l := range op.Leaf.Lines {
			newLines[j] = remap[l]
		}
		newLeaves[i] = vertex.New(op.Leaf.BaseName, newLines)
	}

	idx := 0
	rebuilt := rebuildWithLeaves(Operand{Link: lk}, newLeaves, &idx)
	return rebuilt.Link
}

// rebuildWithLeaves walks o's tree in the same pre-order ToVector uses and
// substitutes each leaf in turn from newLeaves, preserving tree shape and
// addition/contraction markers exactly.
func rebuildWithLeaves(o Operand, newLeaves []vertex.Vertex, idx *int) Operand {
	if !o.IsLinked() {
		v := newLeaves[*idx]
		*idx++
		return Of(v)
	}
	left := rebuildWithLeaves(o.Link.Left, newLeaves, idx)
	right := rebuildWithLeaves(o.Link.Right, newLeaves, idx)
	return OfLinkage(New(left, right, o.Link.IsAddition))
}

// GenericEqual reports whether lk and other describe the same contraction
// topology once both are genericized, i.e. they are the same computation
// up to a consistent renaming of dummy indices. This is the comparison
// CSE candidate search and cross-term merging use; PermutedEquals, by
// contrast, compares two instances that already share the same dummy
// index labels and differ only by an index permutation (§4.6, §4.7).
func (lk *Linkage) GenericEqual(other *Linkage) bool {
	if lk == nil || other == nil {
		return lk == other
	}
	if lk.NVert != other.NVert {
		return false
	}
	return lk.Genericize().Equal(other.Genericize())
}
