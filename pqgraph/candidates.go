package pqgraph

import (
	"github.com/lvlgraph/pqgraph/linkage"
)

// MakeAllLinks enumerates one candidate Linkage per distinct connected
// sub-sequence of operands, up to Options.MaxDepth operands wide, across
// every term of every main (non-intermediate) equation, and returns the
// deduplicated pool (§4.6).
//
// "Connected" is approximated here as a contiguous window of the term's
// already-reordered flattened operand list (term.Reorder's greedy
// lexicographic search, §4.1, builds that order so that adjacent leaves
// in it are the ones most likely to share contracted indices) rather than
// an exhaustive enumeration of every connected subgraph of the term's
// full index-sharing hypergraph, which the pack offers no grounded
// combinatorial-subgraph pattern for (see DESIGN.md). recompute empties
// the candidate pool first; without it, candidates saved by a previous
// call stay in the pool alongside the ones found now.
func (g *PQGraph) MakeAllLinks(recompute bool) []*linkage.Linkage {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.makeAllLinksUpTo(g.Options.MaxDepth, recompute)
}

// makeAllLinksUpTo is MakeAllLinks with an explicit depth bound, letting
// the batched CSE loop (§4.7, §8 S4) grow the search window one depth at
// a time without mutating Options.MaxDepth. Callers must hold g.mu.
func (g *PQGraph) makeAllLinksUpTo(maxDepth int, recompute bool) []*linkage.Linkage {
	if recompute {
		g.savedLinkages = make(map[string]*linkage.Linkage)
	}
	if maxDepth < 2 {
		maxDepth = 2
	}

	for _, name := range g.order {
		if g.kinds[name] != kindMain {
			continue
		}
		eq := g.equations[name]
		for _, t := range eq.Terms {
			if t.Tree == nil {
				continue
			}
			leaves := t.Tree.ToVector(true)
			for width := 2; width <= maxDepth && width <= len(leaves); width++ {
				for start := 0; start+width <= len(leaves); start++ {
					window := leaves[start : start+width]
					if !g.Options.AllowNesting && g.windowReferencesIntermediate(window) {
						continue
					}
					candidate, err := linkage.Link(window)
					if err != nil {
						continue
					}
					if g.Options.MaxShape.Exceeds(candidate.MemScale) {
						continue
					}
					key := candidate.Genericize().String()
					if _, exists := g.savedLinkages[key]; !exists {
						g.savedLinkages[key] = candidate
					}
				}
			}
		}
	}

	out := make([]*linkage.Linkage, 0, len(g.savedLinkages))
	for _, lk := range g.savedLinkages {
		out = append(out, lk)
	}
	return out
}

// windowReferencesIntermediate reports whether any leaf in window is
// itself a previously-committed intermediate rather than an original
// operand, the check Options.AllowNesting=false uses to refuse building a
// new intermediate's definition out of another intermediate (§6
// allow_nesting). Callers must hold g.mu.
func (g *PQGraph) windowReferencesIntermediate(window []linkage.Operand) bool {
	for _, op := range window {
		if op.Leaf == nil {
			continue
		}
		if k, ok := g.kinds[op.Leaf.BaseName]; ok && k != kindMain {
			return true
		}
	}
	return false
}

