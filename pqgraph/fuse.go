package pqgraph

import (
	"github.com/lvlgraph/pqgraph/depgraph"
	"github.com/lvlgraph/pqgraph/equation"
	"github.com/lvlgraph/pqgraph/linkage"
	"github.com/lvlgraph/pqgraph/term"
	"github.com/lvlgraph/pqgraph/vertex"
)

// FuseIntermediates finds pairs of intermediate equations whose defining
// Linkage is GenericEqual — the same contraction up to dummy-index
// renaming — and collapses the later one into the earlier, rewriting
// every other equation's tree to reference the earlier name in place of
// the later one, then dropping the later equation entirely (§4.8). The
// later name's recorded first and last uses are carried over to the
// earlier name. Returns how many intermediates were fused away.
func (g *PQGraph) FuseIntermediates() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	var names []string
	for _, name := range g.order {
		if g.kinds[name] != kindMain {
			names = append(names, name)
		}
	}

	fused := 0
	gone := make(map[string]bool)
	into := make(map[string]string)
	for i := 0; i < len(names); i++ {
		a := names[i]
		if gone[a] {
			continue
		}
		eqA, ok := g.equations[a]
		if !ok || len(eqA.Terms) == 0 || eqA.Terms[0].Tree == nil {
			continue
		}

		for j := i + 1; j < len(names); j++ {
			b := names[j]
			if gone[b] {
				continue
			}
			eqB, ok := g.equations[b]
			if !ok || len(eqB.Terms) == 0 || eqB.Terms[0].Tree == nil {
				continue
			}
			if !eqA.Terms[0].Tree.GenericEqual(eqB.Terms[0].Tree) {
				continue
			}

			for _, other := range g.order {
				if other == b {
					continue
				}
				g.equations[other] = renameLeafInEquation(g.equations[other], b, a)
			}
			g.removeEquation(b)
			gone[b] = true
			into[b] = a
			fused++
		}
	}
	if fused > 0 {
		// Move each fused-away name's recorded uses onto the name it was
		// fused into, so declarations and destructors see only survivors.
		kept := depgraph.New()
		for _, name := range g.deps.DeclarationOrder() {
			first, _ := g.deps.FirstUse(name)
			last, _ := g.deps.LastUse(name)
			if to, ok := into[name]; ok {
				name = to
			}
			kept.RecordUse(name, first)
			kept.RecordUse(name, last)
		}
		g.deps = kept
	}
	return fused
}

// renameLeaf walks o's tree replacing every leaf Vertex whose BaseName is
// from with a copy renamed to to, keeping its Lines exactly as they
// were — the two intermediates compute the same value, so any reference
// to the fused-away name can switch names without changing any index.
func renameLeaf(o linkage.Operand, from, to string) linkage.Operand {
	if !o.IsLinked() {
		if o.Leaf != nil && o.Leaf.BaseName == from {
			return linkage.Of(vertex.New(to, o.Leaf.Lines))
		}
		return o
	}
	left := renameLeaf(o.Link.Left, from, to)
	right := renameLeaf(o.Link.Right, from, to)
	return linkage.OfLinkage(linkage.New(left, right, o.Link.IsAddition))
}

// renameLeafInTerm handles two term shapes: one with a built Tree, walked
// by renameLeaf, and the collapsed single-operand shape
// equation.Substitute's root-match branch produces (Tree == nil,
// Operands holding exactly the matched intermediate's own leaf
// reference) — the latter never reaches renameLeaf at all since there is
// no tree to walk, so it is handled directly here.
func renameLeafInTerm(t term.Term, from, to string) term.Term {
	if t.Tree == nil {
		if len(t.Operands) == 1 && t.Operands[0].BaseName == from {
			t.Operands = []vertex.Vertex{vertex.New(to, t.Operands[0].Lines)}
		}
		return t
	}
	renamed := renameLeaf(linkage.OfLinkage(t.Tree), from, to)
	t.Tree = renamed.Link
	return t
}

func renameLeafInEquation(eq equation.Equation, from, to string) equation.Equation {
	out := make([]term.Term, len(eq.Terms))
	for i, t := range eq.Terms {
		out[i] = renameLeafInTerm(t, from, to)
	}
	eq.Terms = out
	return eq
}
