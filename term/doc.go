// Package term implements Term, an unordered product of tensor operands
// (plus a numeric coefficient) and the greedy search that orders that
// product into a concrete binary contraction tree (§4.4).
//
// Reorder works the way a minimum-spanning-tree builder does: at every
// step it considers every pairwise contraction still available among the
// current set of partially-built operands, picks the cheapest one by
// Shape, and commits it before moving on. Unlike a static MST, the
// candidate costs change after every merge (contracting two operands
// changes what a third operand would cost to join next), so the search
// re-scores the remaining candidates each round rather than sorting one
// fixed edge list up front.
package term
