package linkage

import "errors"

// ErrTooFewOperands is returned by Link, Links, ScaleList, and
// LinkAndScale when fewer than two operands are supplied.
var ErrTooFewOperands = errors.New("linkage: at least two operands are required")
