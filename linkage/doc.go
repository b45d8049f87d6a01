// Package linkage implements Linkage, a binary contraction tree over
// Vertex operands (§4.3). A Linkage's two operands (Left, Right) are each
// either a leaf Vertex or a nested *Linkage, so an n-way contraction is
// represented as n-1 nested binary Linkages, the same shape a term's
// reorder search builds and scores incrementally.
//
// Internal lines (indices appearing on both operands) are contracted away;
// external lines survive to the result and determine its Shape. Mem and
// flop cost accounting for the pairwise contraction is carried alongside
// the line partition so a Term can compare candidate trees without
// re-deriving cost from scratch at every step.
package linkage
