package pqgraph

import (
	"fmt"
	"sync"

	"github.com/lvlgraph/pqgraph/analysis"
	"github.com/lvlgraph/pqgraph/depgraph"
	"github.com/lvlgraph/pqgraph/equation"
	"github.com/lvlgraph/pqgraph/linkage"
	"github.com/lvlgraph/pqgraph/parallel"
	"github.com/lvlgraph/pqgraph/pqerr"
	"github.com/lvlgraph/pqgraph/scaling"
	"github.com/lvlgraph/pqgraph/vertex"
)

// kind classifies how an equation was introduced, deciding which section
// of the emitted program it belongs to (§4.9, §4.10).
type kind uint8

const (
	kindMain kind = iota
	kindScalar
	kindReused
	kindTemp
)

// PQGraph holds a named, ordered set of Equations and the bookkeeping
// the substitution loop needs: a dedup pool of candidate linkages
// (§4.6), per-kind name counters for fresh intermediates (§4.9), a
// global flop/mem cost histogram (§9 flop_map_), and a dependency graph
// tracking first/last use of every intermediate for destructor
// placement (§4.10).
//
// PQGraph is safe for concurrent read access (e.g. from parallel
// candidate scoring, §5); mutation happens only through its exported
// methods, each of which takes the write lock.
type PQGraph struct {
	mu sync.RWMutex

	equations map[string]equation.Equation
	kinds     map[string]kind
	order     []string

	savedLinkages map[string]*linkage.Linkage
	tempCounts    map[kind]int

	flopMap scaling.Map
	memMap  scaling.Map

	deps *depgraph.Graph

	// configErr holds the result of validating Options at construction
	// time (§7): a non-Ok value here makes every subsequent equation-
	// processing entry point (AddEquation, SubstituteCSE) reject
	// immediately rather than build on top of a configuration the spec
	// calls out as invalid outright.
	configErr pqerr.Result

	Options Options
	Logger  analysis.Logger
	Reports []analysis.ScalingReport
	pool    *parallel.Pool
}

// New returns an empty PQGraph configured by opts over DefaultOptions. An
// invalid configuration (§7) is recorded rather than rejected here, since
// New has no error return to surface it through; AddEquation and
// SubstituteCSE both check it before doing any work.
func New(opts ...Option) *PQGraph {
	options := DefaultOptions().Apply(opts...)
	logger := analysis.Logger(analysis.Discard)
	if options.Verbose {
		logger = analysis.Default()
	}
	return &PQGraph{
		equations:     make(map[string]equation.Equation),
		kinds:         make(map[string]kind),
		savedLinkages: make(map[string]*linkage.Linkage),
		tempCounts:    make(map[kind]int),
		flopMap:       scaling.New(),
		memMap:        scaling.New(),
		deps:          depgraph.New(),
		configErr:     options.Validate(),
		Options:       options,
		Logger:        logger,
		pool:          parallel.New(options.NumThreads),
	}
}

// AddEquation inserts eq under name as a main (user-declared) equation.
func (g *PQGraph) AddEquation(name string, eq equation.Equation) pqerr.Result {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.configErr.IsOk() {
		return g.configErr
	}
	if _, exists := g.equations[name]; exists {
		return pqerr.Malformed(fmt.Errorf("%w: %q", ErrDuplicateEquation, name))
	}
	g.equations[name] = eq
	g.kinds[name] = kindMain
	g.order = append(g.order, name)
	return pqerr.OK()
}

// Equation returns a copy of the named equation.
func (g *PQGraph) Equation(name string) (equation.Equation, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	eq, ok := g.equations[name]
	return eq, ok
}

// Names returns every equation name in insertion order.
func (g *PQGraph) Names() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// MainNames returns every user-declared (non-intermediate) equation name
// in insertion order, the terms make_all_links enumerates over (§4.6).
func (g *PQGraph) MainNames() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var out []string
	for _, name := range g.order {
		if g.kinds[name] == kindMain {
			out = append(out, name)
		}
	}
	return out
}

// setEquation replaces name's equation and records its kind; used by the
// CSE commit path and by equation rewrites after substitution/merge.
func (g *PQGraph) setEquation(name string, eq equation.Equation, k kind) {
	if _, exists := g.equations[name]; !exists {
		g.order = append(g.order, name)
	}
	g.equations[name] = eq
	g.kinds[name] = k
}

// removeEquation deletes name from the graph entirely; used when fusing
// duplicate intermediates (§4.8).
func (g *PQGraph) removeEquation(name string) {
	delete(g.equations, name)
	delete(g.kinds, name)
	for i, n := range g.order {
		if n == name {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
}

// nextName allocates the next fresh intermediate name for k, matching
// §4.9's naming: "scalar_N", "reused_N", "temp_N".
func (g *PQGraph) nextName(k kind) string {
	n := g.tempCounts[k]
	g.tempCounts[k] = n + 1
	switch k {
	case kindScalar:
		return fmt.Sprintf("scalar_%d", n)
	case kindReused:
		return fmt.Sprintf("reused_%d", n)
	default:
		return fmt.Sprintf("temp_%d", n)
	}
}

// classify decides which kind a newly committed intermediate's Linkage
// belongs to (§4.9): scalar iff its mem shape is empty, reused iff
// Options.FormatSigma is set and the linkage carries no sigma line,
// temp otherwise.
func (g *PQGraph) classify(lk *linkage.Linkage) kind {
	if lk.IsScalar() {
		return kindScalar
	}
	if g.Options.FormatSigma && !lk.IsSigma {
		return kindReused
	}
	return kindTemp
}

// recordCost folds a newly committed linkage's own declaration cost into
// the graph-wide flop/mem histograms (§9 flop_map_), mirroring the same
// gating candidateDelta's scoring pass used to decide whether this
// candidate's declaration was worth charging at all (§4.7 step 5a): a
// scalar intermediate or one committed under Options.FormatSigma never
// carries this cost, nor does any intermediate when Options.IgnoreDeclarations
// is set. The subtree it replaced was already subtracted per substituted
// occurrence in commitOne, before this call.
func (g *PQGraph) recordCost(lk *linkage.Linkage) {
	if g.Options.IgnoreDeclarations || lk.IsScalar() || g.Options.FormatSigma {
		return
	}
	g.flopMap.Add(lk.FlopScale)
	g.memMap.Add(lk.MemScale)
}

// canonicalizeOperand applies vertex.PermuteERI to v when
// Options.PermuteERI is set, returning the (possibly permuted) vertex and
// a sign multiplier (-1 for an odd permutation, 1 otherwise) to fold into
// the owning term's coefficient (§4.2, §8 S3).
func (g *PQGraph) canonicalizeOperand(v vertex.Vertex) (vertex.Vertex, float64) {
	if !g.Options.PermuteERI {
		return v, 1
	}
	permuted, odd, ok := v.PermuteERI(g.Options.ERIAllow)
	if !ok {
		return v, 1
	}
	if odd {
		return permuted, -1
	}
	return permuted, 1
}
