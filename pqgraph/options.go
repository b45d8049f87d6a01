package pqgraph

import (
	"fmt"

	"github.com/lvlgraph/pqgraph/line"
	"github.com/lvlgraph/pqgraph/pqerr"
	"github.com/lvlgraph/pqgraph/shape"
	"github.com/lvlgraph/pqgraph/vertex"
)

// Options configures a PQGraph, mirroring §6's external options exactly.
// The zero value is not valid; build one with DefaultOptions and the
// With* functional options, the same pattern the teacher's builder
// package uses for its own GraphOption/EdgeOption.
type Options struct {
	MaxTemps  int
	MaxDepth  int
	MaxShape  shape.Bound
	Alphabet  line.Alphabet
	ERIAllow  []string

	PermuteERI         bool
	Batched            bool
	BatchSize          int
	AllowMerge         bool
	AllowNesting       bool
	AllowEquality      bool
	OnlyScalars        bool
	IgnoreDeclarations bool
	FormatSigma        bool
	NoScalars          bool
	PrintTrialIndex    bool
	SeparateConditions bool
	Verbose            bool
	NumThreads         int

	// Dialect selects the printed program's flavor (§4.10, §6):
	// DialectTensor produces `LHS("idx") = coef * A("ij") * B("jk");`
	// lines, DialectArray produces `LHS = coef * einsum(...)` lines.
	Dialect Dialect
}

// Dialect selects PQGraph.String's output flavor.
type Dialect int

const (
	// DialectTensor is the tensor-library dialect: `.("idx")`-indexed
	// assignment statements, e.g. `LHS("ij") = A("ik") * B("kj");`.
	DialectTensor Dialect = iota
	// DialectArray is the array-library dialect: bare assignment plus an
	// explicit einsum call, e.g. `LHS = einsum("ik,kj->ij", A, B)`.
	DialectArray
)

// DefaultOptions returns the default configuration: max_shape
// {o:255,v:255}, permute_eri true, allow_nesting true, batch_size -1
// (unbounded), nthreads 0 (every core), max_temps 1<<20, max_depth 6,
// everything else off. MaxDepth has no unlimited setting: candidate
// search always stops at MaxDepth leaves, and a value below 2 is treated
// as 2.
func DefaultOptions() Options {
	return Options{
		MaxTemps:     1 << 20,
		MaxDepth:     6,
		MaxShape:     shape.DefaultBound,
		Alphabet:     line.DefaultAlphabet,
		ERIAllow:     append([]string(nil), vertex.DefaultERIAllowList...),
		PermuteERI:   true,
		BatchSize:    -1,
		AllowNesting: true,
		Dialect:      DialectTensor,
	}
}

// Validate rejects the two configuration errors §7 calls out explicitly:
// a max_shape bound with both maxima at zero, which would reject every
// possible intermediate outright rather than express a deliberate limit
// (shape.Unbounded or a genuinely tight but nonzero bound are the valid
// ways to express "rarely" or "never" fall back), and a negative thread
// count. Zero NumThreads remains valid — it is the documented "use every
// core" sentinel package parallel's Pool.New clamps, not an error.
func (o Options) Validate() pqerr.Result {
	if o.MaxShape.MaxOcc == 0 && o.MaxShape.MaxVirt == 0 {
		return pqerr.Malformed(fmt.Errorf("pqgraph: max_shape {0,0} rejects every intermediate"))
	}
	if o.NumThreads < 0 {
		return pqerr.Malformed(fmt.Errorf("pqgraph: nthreads must not be negative, got %d", o.NumThreads))
	}
	return pqerr.OK()
}

// Option mutates an Options value; apply with Apply or pass to New.
type Option func(*Options)

// Apply runs every opt over a copy of o and returns the result.
func (o Options) Apply(opts ...Option) Options {
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMaxTemps bounds how many intermediates the CSE loop may commit.
func WithMaxTemps(n int) Option { return func(o *Options) { o.MaxTemps = n } }

// WithMaxDepth bounds how many leaf operands a candidate linkage may
// span before batched depth growth stops.
func WithMaxDepth(n int) Option { return func(o *Options) { o.MaxDepth = n } }

// WithMaxShape bounds the occupied/virtual line count any intermediate
// may carry.
func WithMaxShape(b shape.Bound) Option { return func(o *Options) { o.MaxShape = b } }

// WithPermuteERI toggles two-electron integral canonicalization (§4.2,
// §8 S3).
func WithPermuteERI(enabled bool) Option { return func(o *Options) { o.PermuteERI = enabled } }

// WithBatched toggles incremental depth growth during the CSE loop
// (§4.7, §8 S4).
func WithBatched(enabled bool) Option { return func(o *Options) { o.Batched = enabled } }

// WithBatchSize bounds how many candidates are committed per CSE round;
// -1 means unbounded.
func WithBatchSize(n int) Option { return func(o *Options) { o.BatchSize = n } }

// WithAllowMerge toggles collapsing GenericEqual terms within an
// equation into one term with a summed coefficient before SubstituteCSE's
// candidate search, rather than leaving a recurring scalar pattern to be
// factored into its own scalar intermediate (§8 S1).
func WithAllowMerge(enabled bool) Option { return func(o *Options) { o.AllowMerge = enabled } }

// WithAllowNesting permits an intermediate's definition to reference
// another intermediate rather than only leaf operands.
func WithAllowNesting(enabled bool) Option { return func(o *Options) { o.AllowNesting = enabled } }

// WithFormatSigma toggles routing non-sigma-bearing intermediates into
// their own "reused" equation kind instead of leaving them classified as
// "temp" alongside sigma-bearing ones; an intermediate whose linkage
// carries an excited-state (sigma) line is always "temp" regardless of
// this option (§4.9, §8 S5).
func WithFormatSigma(enabled bool) Option { return func(o *Options) { o.FormatSigma = enabled } }

// WithNoScalars refuses to factor out scalar (rank-0) intermediates at
// all: a candidate that would collapse to a scalar_N is left inline in
// every main equation's own term instead of being committed and then
// hidden from the printed program.
func WithNoScalars(enabled bool) Option { return func(o *Options) { o.NoScalars = enabled } }

// WithAllowEquality permits the CSE scoring filter to keep a candidate
// whose resulting flop/mem scaling ties the graph's current scaling
// exactly, rather than discarding it as not worth the added declaration
// (§4.7 step 5b). A candidate that strictly improves scaling is always
// kept regardless of this option; one that strictly worsens it is always
// discarded.
func WithAllowEquality(enabled bool) Option { return func(o *Options) { o.AllowEquality = enabled } }

// WithOnlyScalars restricts the CSE commit loop to scalar (rank-0)
// candidates, skipping every other candidate's scoring filter entirely —
// useful for a cheap first pass that factors out repeated coefficients
// before searching for larger shared tensor contractions.
func WithOnlyScalars(enabled bool) Option { return func(o *Options) { o.OnlyScalars = enabled } }

// WithIgnoreDeclarations excludes a newly committed intermediate's own
// declaration cost from the scaling comparison the CSE filter uses to
// accept or reject it (§4.7 step 5a). A scalar intermediate or one
// committed under Options.FormatSigma never carries this cost regardless
// of this option, since their declaration is considered free either way.
func WithIgnoreDeclarations(enabled bool) Option {
	return func(o *Options) { o.IgnoreDeclarations = enabled }
}

// WithVerbose toggles analysis.Logger output during the CSE loop.
func WithVerbose(enabled bool) Option { return func(o *Options) { o.Verbose = enabled } }

// WithNumThreads sets the worker count package parallel's Pool uses; 0
// means every core.
func WithNumThreads(n int) Option { return func(o *Options) { o.NumThreads = n } }

// WithDialect selects the printed program's dialect.
func WithDialect(d Dialect) Option { return func(o *Options) { o.Dialect = d } }

// WithSeparateConditions toggles a "// block:<chars>" annotation on each
// emitted tensor-dialect term whose LHS carries spin/range-blocked lines;
// the term itself is emitted once, in its own equation, either way.
func WithSeparateConditions(enabled bool) Option {
	return func(o *Options) { o.SeparateConditions = enabled }
}

// WithPrintTrialIndex toggles whether an excited-state (sigma) line's
// actual label is materialized in an emitted index string; when false,
// sigma labels are masked with a placeholder character instead (§6).
func WithPrintTrialIndex(enabled bool) Option {
	return func(o *Options) { o.PrintTrialIndex = enabled }
}
