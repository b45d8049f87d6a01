package equation

import "github.com/lvlgraph/pqgraph/term"

// Merge collapses terms describing the same contraction up to a
// consistent renaming of dummy indices into a single term, summing their
// coefficients (§4.6). Two comparisons apply, depending on what each term
// has: a built Tree is compared with GenericEqual; a term with no Tree but
// exactly one operand (either never reordered because it only ever had one
// operand, or collapsed to one by a CSE substitution that replaced the
// entire term with a single intermediate reference) is compared by plain
// Vertex equality on that operand. A term with no Tree and two or more
// operands has not been reordered and carries no comparable identity, so
// it is left untouched and returned as-is, appended after the merged
// terms.
func (e Equation) Merge() Equation {
	var merged []term.Term
	var unordered []term.Term

	for _, t := range e.Terms {
		switch {
		case t.Tree != nil:
			if i := findTreeMatch(merged, t); i >= 0 {
				merged[i].Coefficient += t.Coefficient
				continue
			}
			merged = append(merged, t)
		case len(t.Operands) == 1:
			if i := findOperandMatch(merged, t); i >= 0 {
				merged[i].Coefficient += t.Coefficient
				continue
			}
			merged = append(merged, t)
		default:
			unordered = append(unordered, t)
		}
	}

	// drop any merged term whose coefficient canceled to exactly zero
	var kept []term.Term
	for _, t := range merged {
		if t.Coefficient == 0 {
			continue
		}
		kept = append(kept, t)
	}
	kept = append(kept, unordered...)

	e.Terms = renumberAssignments(kept)
	return e
}

func findTreeMatch(merged []term.Term, t term.Term) int {
	for i, m := range merged {
		if m.Tree != nil && t.Tree.GenericEqual(m.Tree) {
			return i
		}
	}
	return -1
}

func findOperandMatch(merged []term.Term, t term.Term) int {
	for i, m := range merged {
		if m.Tree == nil && len(m.Operands) == 1 && m.Operands[0].Equal(t.Operands[0]) {
			return i
		}
	}
	return -1
}
