package equation

import "errors"

// ErrMismatchedLHS is returned by New when the terms supplied do not all
// assign to the same left-hand side.
var ErrMismatchedLHS = errors.New("equation: all terms must share the same left-hand side")

// ErrNoTerms is returned by Reorder when the equation has no terms to
// reorder.
var ErrNoTerms = errors.New("equation: equation has no terms")
