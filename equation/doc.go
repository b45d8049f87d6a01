// Package equation implements Equation, an ordered sum of term.Term
// values assigned to a common left-hand side, and the operations that
// reorder every term's contraction tree, merge structurally identical
// terms, and substitute a matched sub-contraction with a reference to an
// already-computed intermediate (§4.5-§4.8).
package equation
