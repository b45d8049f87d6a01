package linkage

import "github.com/lvlgraph/pqgraph/line"

// Equal performs an exact structural comparison: same tree shape, same
// cost, same internal/external line partition, and equivalent (kind-match,
// label-independent) lines throughout. Grounded on Linkage::operator==
// (linkage.cc).
func (lk *Linkage) Equal(other *Linkage) bool {
	if lk == nil || other == nil {
		return lk == other
	}
	if lk.Empty() {
		return other.Empty()
	}
	if lk.IsAddition != other.IsAddition {
		return false
	}
	if lk.NVert != other.NVert {
		return false
	}
	if lk.Left.IsLinked() != other.Left.IsLinked() {
		return false
	}
	if lk.Right.IsLinked() != other.Right.IsLinked() {
		return false
	}
	if lk.Left.IsLinked() && !lk.Left.Link.Equal(other.Left.Link) {
		return false
	}
	if lk.Right.IsLinked() && !lk.Right.Link.Equal(other.Right.Link) {
		return false
	}
	if !lk.FlopScale.Equal(other.FlopScale) || !lk.MemScale.Equal(other.MemScale) {
		return false
	}
	if !intBoolMapEqual(lk.LExternalIdx, other.LExternalIdx) {
		return false
	}
	if !intBoolMapEqual(lk.RExternalIdx, other.RExternalIdx) {
		return false
	}
	if !intIntMapEqual(lk.InternalConnections, other.InternalConnections) {
		return false
	}
	if !linesEquivalent(lk.Lines, other.Lines) {
		return false
	}
	if !operandEquivalent(lk.Left, other.Left) {
		return false
	}
	return operandEquivalent(lk.Right, other.Right)
}

func operandEquivalent(a, b Operand) bool {
	if a.IsLinked() != b.IsLinked() {
		return false
	}
	if a.IsLinked() {
		return true // already checked recursively by the caller
	}
	return a.Leaf.Equivalent(*b.Leaf)
}

func linesEquivalent(a, b []line.Line) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equivalent(b[i]) {
			return false
		}
	}
	return true
}

func intBoolMapEqual(a, b map[int]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

func intIntMapEqual(a, b map[int]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		bv, ok := b[k]
		if !ok || bv != v {
			return false
		}
	}
	return true
}

// PermutedEquals reports whether lk and other are isomorphic up to a
// permutation of each leaf vertex's indices, and whether that permutation
// is odd overall (a sign flip propagates to the caller). Grounded on
// Linkage::permuted_equals (linkage.cc); the search walks the fully
// expanded leaf vertex list position by position rather than recursing
// through nested temporaries, since by the time two candidate trees reach
// this comparison they have already been normalized to the same shape.
func (lk *Linkage) PermutedEquals(other *Linkage) (equal, oddPermutation bool) {
	if lk.Equal(other) {
		return true, false
	}
	if lk.NVert != other.NVert {
		return false, false
	}

	thisVerts := lk.ToVector(true)
	otherVerts := other.ToVector(true)
	if len(thisVerts) != len(otherVerts) {
		return false, false
	}

	swapSign := false
	for i := range thisVerts {
		a, b := thisVerts[i], otherVerts[i]
		if a.IsLinked() || b.IsLinked() {
			return false, false
		}
		_, odd, ok := a.Leaf.PermuteLike(*b.Leaf)
		if !ok {
			return false, false
		}
		if odd {
			swapSign = !swapSign
		}
	}
	return true, swapSign
}
