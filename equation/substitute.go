package equation

import (
	"github.com/lvlgraph/pqgraph/line"
	"github.com/lvlgraph/pqgraph/linkage"
	"github.com/lvlgraph/pqgraph/term"
	"github.com/lvlgraph/pqgraph/vertex"
)

// Substitute walks t's contraction tree looking for a sub-linkage that
// matches pattern up to a consistent renaming of dummy indices and, on the
// first match found in a pre-order walk, replaces that sub-tree with a
// leaf reference to intermediate — relabeled from intermediate's own
// (generic) lines onto the matched node's actual external lines via
// line.MapLines (§4.7, §4.5). It reports whether a substitution was made.
func Substitute(t term.Term, pattern *linkage.Linkage, intermediate vertex.Vertex) (term.Term, bool) {
	if t.Tree == nil {
		return t, false
	}

	// A match at the very root means the candidate is the whole term, not
	// a sub-tree of it — there is no smaller *linkage.Linkage left to
	// store, since Tree can only ever represent a binary contraction
	// node. Collapse the term down to a single-operand product instead,
	// matching how a fresh, never-reordered term is represented.
	if t.Tree.GenericEqual(pattern) {
		t.Operands = []vertex.Vertex{renameToMatch(pattern, intermediate, t.Tree.Lines)}
		t.Tree = nil
		return t, true
	}

	newOp, ok := substituteOperand(linkage.OfLinkage(t.Tree), pattern, intermediate)
	if !ok {
		return t, false
	}
	t.Tree = newOp.Link
	return t, true
}

// renameToMatch relabels intermediate's generic lines onto actual, the
// matched node's real external lines, via line.MapLines.
func renameToMatch(pattern *linkage.Linkage, intermediate vertex.Vertex, actual []line.Line) vertex.Vertex {
	mapping := line.MapLines(pattern.Lines, actual)
	renamed := make([]line.Line, len(intermediate.Lines))
	for i, l := range intermediate.Lines {
		if mapped, ok := mapping[l]; ok {
			renamed[i] = mapped
		} else {
			renamed[i] = l
		}
	}
	return vertex.New(intermediate.BaseName, renamed)
}

func substituteOperand(o linkage.Operand, pattern *linkage.Linkage, intermediate vertex.Vertex) (linkage.Operand, bool) {
	if o.Link == nil {
		return o, false
	}

	if o.Link.GenericEqual(pattern) {
		return linkage.Of(renameToMatch(pattern, intermediate, o.Link.Lines)), true
	}

	if newLeft, ok := substituteOperand(o.Link.Left, pattern, intermediate); ok {
		return linkage.OfLinkage(linkage.New(newLeft, o.Link.Right, o.Link.IsAddition)), true
	}
	if newRight, ok := substituteOperand(o.Link.Right, pattern, intermediate); ok {
		return linkage.OfLinkage(linkage.New(o.Link.Left, newRight, o.Link.IsAddition)), true
	}
	return o, false
}

// SubstituteAll applies Substitute to every term in the equation,
// returning the count of terms actually rewritten. It mutates the
// equation's own Terms backing array in place; callers holding onto e's
// original Terms slice elsewhere (e.g. a live PQGraph) see the rewrite
// too, which is exactly what the real commit step wants.
func (e Equation) SubstituteAll(pattern *linkage.Linkage, intermediate vertex.Vertex) (Equation, int) {
	count := 0
	for i, t := range e.Terms {
		rewritten, ok := Substitute(t, pattern, intermediate)
		if ok {
			count++
		}
		e.Terms[i] = rewritten
	}
	return e, count
}

// TestSubstitute tentatively runs SubstituteAll over a fresh copy of e's
// Terms, leaving e itself (and whatever backing array its caller still
// holds) untouched. This is the non-mutating test_substitute the CSE
// scoring step needs (§4.5, §4.7 step 5a): score a candidate's effect on
// an equation without committing to it, since most candidates scored in a
// round are never the ones actually chosen.
func (e Equation) TestSubstitute(pattern *linkage.Linkage, intermediate vertex.Vertex) (Equation, int) {
	terms := make([]term.Term, len(e.Terms))
	copy(terms, e.Terms)
	e.Terms = terms
	return e.SubstituteAll(pattern, intermediate)
}
