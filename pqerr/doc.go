// Package pqerr defines the sum-type result returned at the public
// pqgraph boundary (§7): the exported PQGraph operations that can fail
// return a Result alongside their value, so callers can distinguish malformed input
// (retry with corrected data), a reached capacity (partial result, safe
// to continue), and an internal logic error (never recovered) without
// parsing error strings.
//
// Internal invariants within pqgraph continue to use ordinary Go errors
// and panics for assertions; Result exists only at the boundary other
// packages and callers observe.
package pqerr
