package term

import "errors"

// ErrEmptyTerm is returned by Reorder when the term has no operands.
var ErrEmptyTerm = errors.New("term: cannot reorder a term with no operands")

// ErrSingleOperand is returned by Reorder when the term has exactly one
// operand: there is nothing to contract, so no Linkage can be built.
var ErrSingleOperand = errors.New("term: a single operand has no contraction to reorder")
