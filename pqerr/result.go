package pqerr

import "fmt"

// Kind classifies a Result (§7).
type Kind uint8

const (
	// Ok means the operation completed with no error condition.
	Ok Kind = iota
	// MalformedInput means the caller supplied unparsable or
	// inconsistent input (unknown tensor letter, wrong arity, ...);
	// the caller should retry with corrected input.
	MalformedInput
	// CapacityReached means a configured cap (max_temps, ...) was hit;
	// the operation returned a partial result and the caller may
	// continue to emission.
	CapacityReached
	// LogicError means an internal invariant was violated (shape
	// mismatch after substitution, id collision); never recovered.
	LogicError
)

func (k Kind) String() string {
	switch k {
	case Ok:
		return "ok"
	case MalformedInput:
		return "malformed_input"
	case CapacityReached:
		return "capacity_reached"
	case LogicError:
		return "logic_error"
	default:
		return "unknown"
	}
}

// Result is the sum-type outcome carried at the pqgraph public boundary.
// The zero Result is Ok with a nil Err.
type Result struct {
	Kind Kind
	Err  error
}

// OK returns a successful Result.
func OK() Result { return Result{Kind: Ok} }

// Malformed wraps err as a MalformedInput Result.
func Malformed(err error) Result { return Result{Kind: MalformedInput, Err: err} }

// Capacity wraps err as a CapacityReached Result.
func Capacity(err error) Result { return Result{Kind: CapacityReached, Err: err} }

// Logic wraps err as a LogicError Result.
func Logic(err error) Result { return Result{Kind: LogicError, Err: err} }

// IsOk reports whether the Result carries no error condition.
func (r Result) IsOk() bool { return r.Kind == Ok }

// Error implements the error interface so a Result can be returned or
// wrapped wherever ordinary Go code expects one; it is nil-safe to call
// even on an Ok Result, returning an empty string.
func (r Result) Error() string {
	if r.Err == nil {
		return ""
	}
	return fmt.Sprintf("%s: %v", r.Kind, r.Err)
}

// Unwrap exposes the underlying error for errors.Is/errors.As.
func (r Result) Unwrap() error { return r.Err }
