// Package vertex implements Vertex, a named tensor carrying an ordered
// sequence of Lines (§3). Vertex supports the structural operations the
// rest of the engine builds on: equality/equivalence/isomorphism testing,
// index permutation respecting the fixed upper/lower partition of a
// tensor's indices, label-independent hashing (Genericize), and
// self-contraction detection.
//
// A Vertex is an immutable value: every transformation (Permute, Sort,
// Genericize, ...) returns a new Vertex rather than mutating the receiver.
package vertex
