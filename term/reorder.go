package term

import (
	"github.com/lvlgraph/pqgraph/linkage"
	"github.com/lvlgraph/pqgraph/shape"
)

// CostFn scores a candidate pairwise contraction by the Shape it would
// produce. The default, Cost, scores by flop shape; Reorder consults mem
// shape as the tie-break, matching the engine-wide convention that memory
// is only consulted when two orders are flop-equivalent (§4.1, §9).
type CostFn func(candidate *linkage.Linkage) shape.Shape

// Cost is the default CostFn: the candidate's flop Shape.
func Cost(candidate *linkage.Linkage) shape.Shape { return candidate.FlopScale }

// Reorder greedily builds a binary contraction tree over t.Operands,
// picking the cheapest available pairwise contraction at each step
// (ascending by cost, the way Kruskal's MST construction greedily selects
// the cheapest edge that still makes progress) until every operand has
// been folded into a single Linkage. Ties in cost are broken by the
// candidates' mem Shape, then deterministically by comparing the two
// candidate Linkages' rendered names, so Reorder is fully reproducible
// across runs.
//
// If any node of the greedily-built tree stores (MemScale) a Shape that
// exceeds bound, the whole tree is rejected and Reorder falls back to the
// naive left-to-right association linkage.LinkAndScale produces over
// t.Operands in their original order (§4.4 step 5). Pass shape.Unbounded
// to disable the check entirely.
func (t Term) Reorder(cost CostFn, bound shape.Bound) (Term, error) {
	if len(t.Operands) == 0 {
		return t, ErrEmptyTerm
	}
	if len(t.Operands) == 1 {
		return t, ErrSingleOperand
	}
	if cost == nil {
		cost = Cost
	}

	original := make([]linkage.Operand, len(t.Operands))
	groups := make([]linkage.Operand, len(t.Operands))
	for i, v := range t.Operands {
		original[i] = linkage.Of(v)
		groups[i] = linkage.Of(v)
	}

	violated := false
	for len(groups) > 1 {
		bestI, bestJ := -1, -1
		var best *linkage.Linkage
		var bestCost shape.Shape
		first := true

		for i := 0; i < len(groups); i++ {
			for j := i + 1; j < len(groups); j++ {
				candidate := linkage.New(groups[i], groups[j], false)
				c := cost(candidate)
				cmp := 0
				if !first {
					cmp = shape.Compare(c, bestCost)
					if cmp == 0 {
						cmp = shape.Compare(candidate.MemScale, best.MemScale)
					}
				}
				if first || cmp < 0 || (cmp == 0 && candidate.BaseName < best.BaseName) {
					best, bestCost, bestI, bestJ, first = candidate, c, i, j, false
				}
			}
		}

		if bound.Exceeds(best.MemScale) {
			violated = true
		}

		merged := linkage.OfLinkage(best)
		next := make([]linkage.Operand, 0, len(groups)-1)
		for i, g := range groups {
			if i == bestI || i == bestJ {
				continue
			}
			next = append(next, g)
		}
		next = append(next, merged)
		groups = next
	}

	if violated {
		fallback, _, _, err := linkage.LinkAndScale(original)
		if err != nil {
			return t, err
		}
		t.Tree = fallback
		return t, nil
	}

	t.Tree = groups[0].Link
	return t, nil
}
