package equation

import (
	"github.com/lvlgraph/pqgraph/shape"
	"github.com/lvlgraph/pqgraph/term"
	"github.com/lvlgraph/pqgraph/vertex"
)

// Equation is a left-hand side plus the ordered sum of Terms that define
// it (§4.5). Term order matters only for printing: reordering or merging
// terms never changes the assigned value, only how it is computed.
type Equation struct {
	LHS   vertex.Vertex
	Terms []term.Term
}

// New builds an Equation, requiring every term's LHS to equal the
// equation's own LHS so the caller cannot silently mix assignments.
func New(lhs vertex.Vertex, terms []term.Term) (Equation, error) {
	for _, t := range terms {
		if !t.LHS.Equal(lhs) {
			return Equation{}, ErrMismatchedLHS
		}
	}
	cp := make([]term.Term, len(terms))
	copy(cp, terms)
	return Equation{LHS: lhs, Terms: renumberAssignments(cp)}, nil
}

// renumberAssignments marks terms[0] as the assignment (§3, §4.10) and
// every other term as an accumulation, overriding whatever each term's
// own IsAssignment carried in — the position within the equation is
// what printing actually keys on, not how a term happened to be built.
func renumberAssignments(terms []term.Term) []term.Term {
	for i := range terms {
		terms[i].IsAssignment = i == 0
	}
	return terms
}

// Reorder runs term.Term.Reorder, with the given max_shape bound, over
// every term in the equation, replacing each with its reordered copy. It
// stops at the first term that fails to reorder. A term with fewer than
// two operands is left as it is, since there is nothing to contract, and
// a term that already carries a Tree is left
// untouched rather than rebuilt from its original Operands list, so a
// second Reorder pass after CSE substitution has rewritten that Tree in
// place does not discard the substitution.
func (e Equation) Reorder(cost term.CostFn, bound shape.Bound) (Equation, error) {
	if len(e.Terms) == 0 {
		return e, ErrNoTerms
	}
	out := make([]term.Term, len(e.Terms))
	for i, t := range e.Terms {
		if len(t.Operands) < 2 || t.Tree != nil {
			out[i] = t
			continue
		}
		reordered, err := t.Reorder(cost, bound)
		if err != nil {
			return e, err
		}
		out[i] = reordered
	}
	e.Terms = out
	return e, nil
}
