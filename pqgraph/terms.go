package pqgraph

import (
	"fmt"

	"github.com/lvlgraph/pqgraph/equation"
	"github.com/lvlgraph/pqgraph/pqerr"
	"github.com/lvlgraph/pqgraph/term"
	"github.com/lvlgraph/pqgraph/vertex"
)

// BuildTerm constructs a Term from a coefficient, an assignment target,
// and an unordered operand product. Each operand first passes through
// vertex.MakeSelfLinkages to resolve any self-contracted (repeated)
// index label within that single operand into a rewritten operand plus
// one rank-2 "Id" delta vertex per replaced pair (§4.2) — a trace-like
// tensor carrying two occurrences of the same dummy index before any
// pairing with another operand has happened. The rewritten operand is
// then canonicalized through vertex.PermuteERI when Options.PermuteERI
// is set (the default), folding any resulting sign flip into the
// coefficient (§8 S3). Callers assembling Equations by hand should
// build every Term through this rather than term.New directly, so both
// self-linkage resolution and ERI canonicalization are applied
// consistently everywhere an operand enters the graph.
func (g *PQGraph) BuildTerm(coefficient float64, lhs vertex.Vertex, operands []vertex.Vertex) term.Term {
	var resolved []vertex.Vertex
	sign := 1.0
	for opIdx, v := range operands {
		rewritten, deltas := vertex.MakeSelfLinkages(v, selfLinkLabel(opIdx))
		permuted, s := g.canonicalizeOperand(rewritten)
		sign *= s
		resolved = append(resolved, permuted)
		resolved = append(resolved, deltas...)
	}
	return term.New(coefficient*sign, lhs, resolved)
}

// selfLinkLabel returns a freshLabel func for vertex.MakeSelfLinkages
// scoped to one operand's position within a term, so replacement labels
// minted for different operands in the same BuildTerm call never
// collide with each other (§4.2).
func selfLinkLabel(opIdx int) func(kind byte, n int) string {
	return func(kind byte, n int) string {
		return fmt.Sprintf("_self%d_%d", opIdx, n)
	}
}

// AddRawEquation builds an Equation from lhs and a list of (coefficient,
// operands) term specs — the §6 input model of a named equation plus an
// ordered list of tensor strings, already parsed into Vertex values by
// the caller — canonicalizing every operand via BuildTerm, and inserts
// it into the graph under name.
func (g *PQGraph) AddRawEquation(name string, lhs vertex.Vertex, specs []TermSpec) pqerr.Result {
	terms := make([]term.Term, len(specs))
	for i, spec := range specs {
		terms[i] = g.BuildTerm(spec.Coefficient, lhs, spec.Operands)
	}
	eq, err := equation.New(lhs, terms)
	if err != nil {
		return pqerr.Malformed(err)
	}
	return g.AddEquation(name, eq)
}

// TermSpec is one additive term's raw coefficient and operand product,
// the shape a caller parsing §6's tensor-string input format builds
// before handing it to AddRawEquation.
type TermSpec struct {
	Coefficient float64
	Operands    []vertex.Vertex
}
