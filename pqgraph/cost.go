package pqgraph

import (
	"github.com/lvlgraph/pqgraph/linkage"
	"github.com/lvlgraph/pqgraph/scaling"
	"github.com/lvlgraph/pqgraph/shape"
	"github.com/lvlgraph/pqgraph/vertex"
)

// flopOf and memOf pick out the Shape Linkage.FlopScale/MemScale records
// at a node, the two cost lenses the CSE scoring step walks a candidate's
// tree with (§9 flop_map_/mem_map_).
func flopOf(lk *linkage.Linkage) shape.Shape { return lk.FlopScale }
func memOf(lk *linkage.Linkage) shape.Shape  { return lk.MemScale }

// treeCostMap walks node's tree, collecting pick(node) for every internal
// node into a fresh scaling.Map. Every occurrence of a candidate's own
// genericized topology anywhere in the graph shares this same Map, since
// GenericEqual nodes carry identical Shapes at every corresponding
// position regardless of which actual lines they close over.
func treeCostMap(node *linkage.Linkage, pick func(*linkage.Linkage) shape.Shape) scaling.Map {
	m := scaling.New()
	collectCostMap(m, node, pick)
	return m
}

func collectCostMap(m scaling.Map, node *linkage.Linkage, pick func(*linkage.Linkage) shape.Shape) {
	if node == nil {
		return
	}
	m.Add(pick(node))
	if node.Left.IsLinked() {
		collectCostMap(m, node.Left.Link, pick)
	}
	if node.Right.IsLinked() {
		collectCostMap(m, node.Right.Link, pick)
	}
}

// candidateDelta computes the whole-graph flop/mem cost maps that would
// result from committing candidate, without mutating the graph (§4.7 step
// 5a, §4.5 test_substitute): starting from the graph's current g.flopMap/
// g.memMap baseline, it subtracts the cost of the subtree each tentative
// match would collapse away — once per match, tentatively substituted via
// Equation.TestSubstitute into every main equation — and adds back the
// candidate's own declaration cost once, unless Options.IgnoreDeclarations,
// the candidate is scalar, or Options.FormatSigma makes that declaration
// free. matched is false if the candidate would rewrite zero terms, the
// signal the caller uses to drop it before it ever reaches the filter.
func (g *PQGraph) candidateDelta(candidate *linkage.Linkage) (flop, mem scaling.Map, matched bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	probe := vertex.New("_probe", candidate.Lines)
	removedFlop := treeCostMap(candidate, flopOf)
	removedMem := treeCostMap(candidate, memOf)

	flop, mem = g.flopMap.Clone(), g.memMap.Clone()
	total := 0
	for _, name := range g.order {
		if g.kinds[name] != kindMain {
			continue
		}
		_, count := g.equations[name].TestSubstitute(candidate, probe)
		for i := 0; i < count; i++ {
			flop = flop.Subtract(removedFlop)
			mem = mem.Subtract(removedMem)
		}
		total += count
	}
	if total == 0 {
		return nil, nil, false
	}

	if !(g.Options.IgnoreDeclarations || candidate.IsScalar() || g.Options.FormatSigma) {
		flop.Add(candidate.FlopScale)
		mem.Add(candidate.MemScale)
	}
	return flop, mem, true
}

// combinedVerdict compares a against b by flop scaling first, falling
// back to mem scaling only when flop ties exactly — the same flop-first,
// mem-tie-break convention term.Reorder uses for pairwise contraction
// ordering (§4.1, §9), applied here to whole-graph scaling maps.
func combinedVerdict(aFlop, aMem, bFlop, bMem scaling.Map) scaling.Verdict {
	if v := scaling.Compare(aFlop, bFlop); v != scaling.ThisSame {
		return v
	}
	return scaling.Compare(aMem, bMem)
}
