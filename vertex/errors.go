package vertex

import "errors"

// ErrArityMismatch reports a tensor name given a number of indices
// inconsistent with the operator it names (a front-end concern). No
// function in this module checks arity or returns it.
var ErrArityMismatch = errors.New("vertex: index count does not match tensor arity")

// ErrUnknownBaseName reports a base name that cannot be classified
// against the configured tensor alphabet. No function in this module
// returns it.
var ErrUnknownBaseName = errors.New("vertex: unknown base name")
