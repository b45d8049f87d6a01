package vertex

import (
	"sort"

	"github.com/lvlgraph/pqgraph/line"
)

// Halves splits the vertex's lines into the fixed upper/lower partition
// permutations must respect (§3 Isomorphic, §4.2 permute). The upper half
// gets the extra line when Rank is odd.
func (v Vertex) Halves() (upper, lower []int) {
	half := v.Rank() / 2
	if v.Rank()%2 != 0 {
		half++
	}
	upper = make([]int, half)
	lower = make([]int, v.Rank()-half)
	for i := range upper {
		upper[i] = i
	}
	for i := range lower {
		lower[i] = half + i
	}
	return upper, lower
}

// PermutationCount returns |upper|! · |lower|!, the number of distinct
// permutations Permute enumerates.
func (v Vertex) PermutationCount() int {
	upper, lower := v.Halves()
	return factorial(len(upper)) * factorial(len(lower))
}

func factorial(n int) int {
	out := 1
	for i := 2; i <= n; i++ {
		out *= i
	}
	return out
}

// nthPermutation returns the permID-th permutation (0-indexed, factorial
// number system / Lehmer code) of the n indices [0,n), and whether that
// permutation is odd.
func nthPermutation(n, permID int) (perm []int, odd bool) {
	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}
	perm = make([]int, n)
	k := permID
	for i := 0; i < n; i++ {
		f := factorial(n - 1 - i)
		idx := 0
		if f > 0 {
			idx = k / f
			k = k % f
		}
		perm[i] = remaining[idx]
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return perm, inversionParityOdd(perm)
}

// inversionParityOdd counts inversions of perm relative to the identity
// and reports whether that count is odd.
func inversionParityOdd(perm []int) bool {
	inversions := 0
	for i := 0; i < len(perm); i++ {
		for j := i + 1; j < len(perm); j++ {
			if perm[i] > perm[j] {
				inversions++
			}
		}
	}
	return inversions%2 == 1
}

// Permute returns the permID-th member of the permutation group generated
// by independently permuting the upper and lower halves of v's lines
// (§4.2). permID == 0 always returns v unchanged. swapSign reports whether
// the applied permutation is odd (an odd number of transpositions).
func (v Vertex) Permute(permID int) (Vertex, bool) {
	upper, lower := v.Halves()
	upperFact, lowerFact := factorial(len(upper)), factorial(len(lower))
	total := upperFact * lowerFact
	if total == 0 {
		return v, false
	}
	permID = permID % total

	upperIdx := permID / lowerFact
	lowerIdx := permID % lowerFact

	upperPerm, upperOdd := nthPermutation(len(upper), upperIdx)
	lowerPerm, lowerOdd := nthPermutation(len(lower), lowerIdx)

	newLines := make([]line.Line, v.Rank())
	for i, p := range upperPerm {
		newLines[upper[i]] = v.Lines[upper[p]]
	}
	for i, p := range lowerPerm {
		newLines[lower[i]] = v.Lines[lower[p]]
	}

	return New(v.BaseName, newLines), upperOdd != lowerOdd
}

// PermuteLike searches the permutation group for the member of v whose
// lines equal other's lines exactly, returning that permuted Vertex, the
// parity of the permutation applied, and whether a match was found. It is
// the inverse of Permute in the sense that Permute(k) and PermuteLike
// round-trip for equivalent vertices (§8 property 2).
func (v Vertex) PermuteLike(other Vertex) (Vertex, bool, bool) {
	if v.BaseName != other.BaseName || v.Rank() != other.Rank() {
		return Vertex{}, false, false
	}
	total := v.PermutationCount()
	for permID := 0; permID < total; permID++ {
		candidate, odd := v.Permute(permID)
		if candidate.Equal(other) {
			return candidate, odd, true
		}
	}
	return Vertex{}, false, false
}

// PermuteERI enumerates v's permutations in ascending permID order and
// returns the first whose occ/vir string appears in allowed, along with
// the parity of that permutation (§4.2 permute_eri, §8 S3). The default
// allow-list is DefaultERIAllowList.
func (v Vertex) PermuteERI(allowed []string) (Vertex, bool, bool) {
	allowedSet := make(map[string]bool, len(allowed))
	for _, s := range allowed {
		allowedSet[s] = true
	}
	total := v.PermutationCount()
	for permID := 0; permID < total; permID++ {
		candidate, odd := v.Permute(permID)
		if allowedSet[candidate.OVString()] {
			return candidate, odd, true
		}
	}
	return v, false, false
}

// DefaultERIAllowList is the fixed set of occ/vir forms two-electron
// integrals are canonicalized into (§4.2).
var DefaultERIAllowList = []string{
	"oooo", "vvvv", "oovv", "vvoo", "vovo", "vooo", "oovo", "vovv", "vvvo",
}

// Sort returns a copy of v with the upper half of its lines reordered by
// the total order in package line (sigma desc, density desc, virtual-
// before-occupied, active desc, label asc); the lower half is left exactly
// as given so any antisymmetry already encoded there is preserved (§4.2).
func (v Vertex) Sort() Vertex {
	upper, lower := v.Halves()
	out := New(v.BaseName, v.Lines)

	upperLines := make([]line.Line, len(upper))
	for i, idx := range upper {
		upperLines[i] = v.Lines[idx]
	}
	sort.SliceStable(upperLines, func(i, j int) bool {
		return upperLines[i].Less(upperLines[j])
	})
	for i, idx := range upper {
		out.Lines[idx] = upperLines[i]
	}
	for _, idx := range lower {
		out.Lines[idx] = v.Lines[idx]
	}
	return out
}
