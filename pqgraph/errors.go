package pqgraph

import "errors"

// ErrUnknownEquation reports an operation naming an equation the graph
// does not hold. No method returns it; Equation reports a missing name
// through its bool result.
var ErrUnknownEquation = errors.New("pqgraph: unknown equation")

// ErrDuplicateEquation is returned by AddEquation when name is already
// present.
var ErrDuplicateEquation = errors.New("pqgraph: equation already exists")

// ErrShapeExceedsBound reports a candidate or committed intermediate
// whose Shape exceeds Options.MaxShape (§6). No method returns it: a
// candidate over the bound is skipped during candidate search.
var ErrShapeExceedsBound = errors.New("pqgraph: shape exceeds configured bound")

// ErrMaxTempsReached is returned when committing a substitution would
// exceed Options.MaxTemps (§6).
var ErrMaxTempsReached = errors.New("pqgraph: maximum intermediate count reached")

// ErrMaxDepthReached reports candidate search asked to grow beyond
// Options.MaxDepth (§6). No method returns it: batched depth growth
// simply stops at Options.MaxDepth.
var ErrMaxDepthReached = errors.New("pqgraph: maximum contraction depth reached")
