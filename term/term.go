package term

import (
	"github.com/lvlgraph/pqgraph/line"
	"github.com/lvlgraph/pqgraph/linkage"
	"github.com/lvlgraph/pqgraph/vertex"
)

// Term is a single additive piece of an Equation: a numeric coefficient
// times an unordered product of tensor operands, plus the set of
// permutation operators (e.g. P(ia,jb)) that antisymmetrize the result
// (§4.4). Permutations are carried as label pairs rather than applied
// eagerly, so reordering and CSE never need to expand them.
type Term struct {
	Coefficient  float64
	LHS          vertex.Vertex
	Operands     []vertex.Vertex
	Permutations [][2]string

	// Tree is nil until Reorder has run; it holds the chosen contraction
	// order as a binary Linkage.
	Tree *linkage.Linkage

	// IsAssignment marks a term as the first one printed under its
	// equation's LHS, rendered with "=" rather than "+=" (§3, §4.10).
	// equation.New and equation.Merge set this on the terms they build;
	// a lone Term built outside either is treated as an assignment by
	// default, matching the single-term case both of them produce.
	IsAssignment bool
}

// New builds a Term from a coefficient, a left-hand-side assignment
// target, and the right-hand-side operand product, unordered. The
// result is marked IsAssignment; a caller placing it as a later term of
// a multi-term Equation should build through equation.New instead, which
// renumbers every term's flag by position.
func New(coefficient float64, lhs vertex.Vertex, operands []vertex.Vertex) Term {
	cp := make([]vertex.Vertex, len(operands))
	copy(cp, operands)
	return Term{Coefficient: coefficient, LHS: lhs, Operands: cp, IsAssignment: true}
}

// WithPermutation returns a copy of t with an additional antisymmetrizing
// permutation pair appended.
func (t Term) WithPermutation(a, b string) Term {
	out := t
	out.Permutations = append(append([][2]string{}, t.Permutations...), [2]string{a, b})
	return out
}

// IsScalar reports whether the term's left-hand side carries no indices.
func (t Term) IsScalar() bool { return t.LHS.IsScalar() }

// ExternalLines returns the lines appearing on the left-hand side, the
// indices that must survive every valid contraction order.
func (t Term) ExternalLines() []line.Line { return t.LHS.Lines }

// Reordered reports whether Reorder has already run on this term.
func (t Term) Reordered() bool { return t.Tree != nil }
