package pqgraph

import (
	"context"
	"sort"

	"github.com/lvlgraph/pqgraph/analysis"
	"github.com/lvlgraph/pqgraph/equation"
	"github.com/lvlgraph/pqgraph/linkage"
	"github.com/lvlgraph/pqgraph/parallel"
	"github.com/lvlgraph/pqgraph/pqerr"
	"github.com/lvlgraph/pqgraph/scaling"
	"github.com/lvlgraph/pqgraph/term"
	"github.com/lvlgraph/pqgraph/vertex"
)

// scoredCandidate is a candidate Linkage paired with the whole-graph
// flop/mem cost maps committing it would produce, the quantity the
// commit step filters and sorts on (§4.7 step 5).
type scoredCandidate struct {
	link      *linkage.Linkage
	flop, mem scaling.Map
}

// SubstituteCSE runs the full common-subexpression-elimination loop
// (§4.7): reorder every term, optionally pre-merge identical terms
// (Options.AllowMerge, §8 S1) so a fully-duplicated term never reaches
// the candidate search at all, seed the graph-wide flop/mem cost maps
// from the resulting term trees, search for recurring sub-contractions,
// score candidates in parallel against a read-only snapshot, and commit
// the best ones serially, rolling a candidate back (leaving the graph
// untouched) if it turns out to rewrite zero terms. If Options.Batched,
// the search depth grows by one each round, from 2 up to
// Options.MaxDepth, stopping early once a round commits nothing. A final
// merge pass always runs after the loop regardless of Options.AllowMerge:
// combining two terms that now reference the exact same intermediate
// (e.g. "1*sc1 + 1*sc1" into "2*sc1") is basic like-term collection, not
// the optional pre-emptive merge S1 gates.
func (g *PQGraph) SubstituteCSE(ctx context.Context) (committed int, result pqerr.Result) {
	g.mu.RLock()
	cfgErr := g.configErr
	g.mu.RUnlock()
	if !cfgErr.IsOk() {
		return 0, cfgErr
	}

	if res := g.reorderAll(); !res.IsOk() {
		return 0, res
	}
	if g.Options.AllowMerge {
		g.mergeMainEquations()
	}
	g.seedCostMaps()

	depths := []int{g.Options.MaxDepth}
	if g.Options.Batched {
		depths = make([]int, 0, g.Options.MaxDepth-1)
		for d := 2; d <= g.Options.MaxDepth; d++ {
			depths = append(depths, d)
		}
	}

	total := 0
	for _, depth := range depths {
		n, err := g.cseRound(ctx, depth)
		if err != nil {
			return total, pqerr.Logic(err)
		}
		total += n
		if g.Options.Batched && n == 0 {
			break
		}
	}

	g.mergeMainEquations()
	g.FuseIntermediates()

	return total, pqerr.OK()
}

// mergeMainEquations runs Equation.Merge over every main equation.
func (g *PQGraph) mergeMainEquations() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, name := range g.order {
		if g.kinds[name] == kindMain {
			g.equations[name] = g.equations[name].Merge()
		}
	}
}

// reorderAll runs Equation.Reorder, bounded by Options.MaxShape, over
// every main equation in the graph. A term with fewer than two operands
// needs no reordering and Equation.Reorder skips those; an equation with
// no terms at all is skipped here, so ErrNoTerms never surfaces from it.
func (g *PQGraph) reorderAll() pqerr.Result {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, name := range g.order {
		if g.kinds[name] != kindMain {
			continue
		}
		eq := g.equations[name]
		if len(eq.Terms) == 0 {
			continue
		}
		reordered, err := eq.Reorder(nil, g.Options.MaxShape)
		if err != nil {
			return pqerr.Malformed(err)
		}
		g.equations[name] = reordered
	}
	return pqerr.OK()
}

// seedCostMaps resets g.flopMap/g.memMap to the cost of every node across
// every equation currently in the graph — main equations' own
// contraction trees plus every already-declared intermediate's defining
// node — the whole-graph baseline the CSE scoring step's scaling.Compare
// calls are measured against (§9 flop_map_/mem_map_). Run once per
// SubstituteCSE call, after reordering and any AllowMerge pre-merge have
// settled the term trees it walks.
func (g *PQGraph) seedCostMaps() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.flopMap = scaling.New()
	g.memMap = scaling.New()
	for _, name := range g.order {
		for _, t := range g.equations[name].Terms {
			if t.Tree == nil {
				continue
			}
			collectCostMap(g.flopMap, t.Tree, flopOf)
			collectCostMap(g.memMap, t.Tree, memOf)
		}
	}
}

// cseRound drains the candidate pool at the given search depth (§4.7
// step 5): score, filter, and commit repeatedly — re-deriving candidates
// fresh from the graph's current state each pass — until either a pass
// finds no surviving candidates or a pass with survivors still commits
// nothing (every survivor rolled back, e.g. Options.MaxTemps or
// Options.BatchSize=0), before the caller grows the search to the next
// depth. A finite Options.BatchSize limits how many candidates a single
// pass may commit, not how many the whole depth may commit in total —
// leftover survivors that didn't fit in one pass's batch are re-scored
// and re-committed on the next pass rather than dropped.
func (g *PQGraph) cseRound(ctx context.Context, depth int) (int, error) {
	total := 0
	for {
		g.mu.Lock()
		candidates := g.makeAllLinksUpTo(depth, true)
		g.mu.Unlock()

		scored, err := g.scoreCandidates(ctx, candidates)
		if err != nil {
			return total, err
		}

		survivors := g.filterSurvivors(scored)
		if len(survivors) == 0 {
			return total, nil
		}
		sort.Slice(survivors, func(i, j int) bool {
			v := combinedVerdict(survivors[i].flop, survivors[i].mem, survivors[j].flop, survivors[j].mem)
			if v != scaling.ThisSame {
				return v == scaling.ThisBetter
			}
			// Deterministic tie-break on the linkage's own string form
			// (§9 open question (b)).
			return survivors[i].link.String() < survivors[j].link.String()
		})

		committed, err := g.commitSurvivors(survivors)
		if err != nil {
			return total, err
		}
		total += committed
		if committed == 0 {
			return total, nil
		}
	}
}

// scoreCandidates runs candidateDelta for every candidate concurrently
// through package parallel (§5's read-only scoring region: each
// goroutine only reads the graph and writes its own results[i] slot),
// dropping any candidate that tentatively rewrites zero terms.
func (g *PQGraph) scoreCandidates(ctx context.Context, candidates []*linkage.Linkage) ([]scoredCandidate, error) {
	results, err := parallel.MapError(ctx, g.pool, candidates, func(ctx context.Context, i int, c *linkage.Linkage) (*scoredCandidate, error) {
		flop, mem, matched := g.candidateDelta(c)
		if !matched {
			return nil, nil
		}
		return &scoredCandidate{link: c, flop: flop, mem: mem}, nil
	})
	if err != nil {
		return nil, err
	}
	out := make([]scoredCandidate, 0, len(results))
	for _, s := range results {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out, nil
}

// filterSurvivors keeps only candidates whose tentative commit would not
// regress the graph's flop/mem scaling (§4.7 step 5b): a candidate that
// strictly improves scaling is always kept; one that strictly worsens it
// is always discarded; one that ties is kept only if Options.AllowEquality,
// the candidate is scalar, or Options.FormatSigma is set. Options.OnlyScalars
// restricts the whole pass to scalar candidates.
func (g *PQGraph) filterSurvivors(scored []scoredCandidate) []scoredCandidate {
	g.mu.RLock()
	currentFlop, currentMem := g.flopMap, g.memMap
	g.mu.RUnlock()

	out := make([]scoredCandidate, 0, len(scored))
	for _, s := range scored {
		if g.Options.OnlyScalars && !s.link.IsScalar() {
			continue
		}
		switch combinedVerdict(s.flop, s.mem, currentFlop, currentMem) {
		case scaling.ThisBetter:
			out = append(out, s)
		case scaling.ThisSame:
			if g.Options.AllowEquality || s.link.IsScalar() || g.Options.FormatSigma {
				out = append(out, s)
			}
		}
	}
	return out
}

// commitSurvivors serially commits survivors up to Options.BatchSize (or
// all of them, if negative), stopping early if Options.MaxTemps would be
// exceeded. It is the serial commit section of §5 and §9: each commitOne
// call takes the graph's write lock, so commits never overlap.
func (g *PQGraph) commitSurvivors(survivors []scoredCandidate) (int, error) {
	limit := len(survivors)
	if g.Options.BatchSize >= 0 && g.Options.BatchSize < limit {
		limit = g.Options.BatchSize
	}

	committed := 0
	for i := 0; i < limit; i++ {
		ok, err := g.commitOne(survivors[i].link)
		if err == ErrMaxTempsReached {
			break
		}
		if err != nil {
			return committed, err
		}
		if ok {
			committed++
		}
	}
	return committed, nil
}

// commitOne substitutes a single candidate across every main equation
// and, if that rewrote at least one term, declares it as a fresh
// intermediate equation. With Options.NoScalars set, a candidate that
// would classify as scalar is refused outright — left inline in every
// term that contains it — rather than committed and hidden later at
// emission time. If the substitution touches zero terms (an earlier
// commit in the same round may already have consumed every occurrence of
// this candidate's pattern), the name slot allocated for it is released
// and no equation is created — the rollback §4.7 step 6 requires.
func (g *PQGraph) commitOne(candidate *linkage.Linkage) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Options.MaxTemps > 0 && g.countIntermediates() >= g.Options.MaxTemps {
		return false, ErrMaxTempsReached
	}

	k := g.classify(candidate)
	if k == kindScalar && g.Options.NoScalars {
		return false, nil
	}
	name := g.nextName(k)
	intermediate := vertex.New(name, candidate.Lines)

	removedFlop := treeCostMap(candidate, flopOf)
	removedMem := treeCostMap(candidate, memOf)

	subCount := 0
	mainIdx := 0
	for _, eqName := range g.order {
		if g.kinds[eqName] != kindMain {
			continue
		}
		pos := mainIdx
		mainIdx++
		eq := g.equations[eqName]
		rewritten, count := eq.SubstituteAll(candidate, intermediate)
		if count == 0 {
			continue
		}
		g.equations[eqName] = rewritten
		subCount += count
		g.deps.RecordUse(name, pos)
		for i := 0; i < count; i++ {
			g.flopMap = g.flopMap.Subtract(removedFlop)
			g.memMap = g.memMap.Subtract(removedMem)
		}
	}

	if subCount == 0 {
		g.tempCounts[k]--
		return false, nil
	}

	leaves := candidate.ToVector(true)
	operands := make([]vertex.Vertex, len(leaves))
	for i, op := range leaves {
		operands[i] = *op.Leaf
	}
	t := term.New(1.0, intermediate, operands)
	t.Tree = candidate
	intermEq, err := equation.New(intermediate, []term.Term{t})
	if err != nil {
		return false, err
	}
	g.setEquation(name, intermEq, k)
	g.recordCost(candidate)

	if g.Options.Verbose {
		after := scaling.New()
		after.Add(candidate.FlopScale)
		report := analysis.Compare(name, scaling.New(), after)
		g.Reports = append(g.Reports, report)
		report.Log(g.Logger)
	}

	return true, nil
}

// countIntermediates returns how many non-main equations currently exist.
func (g *PQGraph) countIntermediates() int {
	count := 0
	for _, k := range g.kinds {
		if k != kindMain {
			count++
		}
	}
	return count
}
