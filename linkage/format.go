package linkage

import "strings"

// String renders the contraction (or addition) as an infix expression,
// e.g. "t2vvoo * v2oovv". Grounded on Linkage::tot_str(false, true)
// (linkage.cc): the non-expanding, dot-aware form used whenever a linkage
// is printed inline rather than unpacked into a standalone intermediate.
func (lk *Linkage) String() string {
	if lk.Empty() {
		return ""
	}
	left, right := lk.Left.String(), lk.Right.String()

	var out string
	if lk.IsAddition {
		out = "(" + left + " + " + right + ")"
	} else {
		out = left + " * " + right
	}

	if lk.Rank() == 0 && !lk.IsAddition {
		out = dotWrap(out)
	}
	return out
}

// dotWrap rewrites "a * b" into "dot(a, b)", the notation a fully
// contracted (rank-0) product must use so the emitted code reads as an
// inner product rather than an outer product assigned to a scalar.
// Grounded on Linkage::tot_str's make_dot branch (linkage.cc).
func dotWrap(expr string) string {
	idx := strings.LastIndex(expr, " * ")
	if idx < 0 {
		return expr
	}
	return "dot(" + expr[:idx] + ", " + expr[idx+3:] + ")"
}

// Expand renders the contraction recursively, unpacking every nested
// temporary into its own sub-expression rather than stopping at the first
// intermediate boundary. Grounded on Linkage::tot_str(true, make_dot).
func (lk *Linkage) Expand(makeDot bool) string {
	if lk.Empty() {
		return ""
	}
	left := lk.Left.String()
	if lk.Left.IsLinked() {
		left = lk.Left.Link.Expand(makeDot)
	}
	right := lk.Right.String()
	if lk.Right.IsLinked() {
		right = lk.Right.Link.Expand(makeDot)
	}

	var out string
	if lk.IsAddition {
		out = "(" + left + " + " + right + ")"
	} else {
		out = left + " * " + right
	}
	if lk.Rank() == 0 && !lk.IsAddition && makeDot {
		out = dotWrap(out)
	}
	return out
}
