package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool bounds how many goroutines Run allows in flight at once, matching
// Options.NumThreads (§6). A Pool is safe for concurrent use by multiple
// callers, but the work submitted through a single Run call is expected
// to be independent: Run makes no ordering guarantee between indices
// beyond index i's result landing at results[i].
type Pool struct {
	limit int
}

// New returns a Pool allowing up to workers goroutines in flight. A
// non-positive workers is clamped to runtime.NumCPU(), matching
// Options.NumThreads' documented "0 means use every core" default (§6).
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pool{limit: workers}
}

// Run calls fn(ctx, i) for every i in [0, n), running up to p.limit calls
// concurrently, and returns the first non-nil error any call returned
// (errgroup.WithContext cancels ctx for the others, but does not stop
// already-running calls mid-flight). Used for the candidate-scoring
// region (§4.7 step 5), where fn scores one candidate Linkage against a
// read-only snapshot and writes only to its own results[i] slot or a
// thread-local accumulator closed over by the caller.
func (p *Pool) Run(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	if n == 0 {
		return nil
	}
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(p.limit)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			return fn(gCtx, i)
		})
	}
	return g.Wait()
}

// MapError runs fn(ctx, i, items[i]) for every item, collecting results
// into a slice ordered by i regardless of completion order. A non-nil
// error from any call is returned from MapError once every goroutine has
// finished; other results are still populated.
func MapError[T, R any](ctx context.Context, p *Pool, items []T, fn func(ctx context.Context, i int, item T) (R, error)) ([]R, error) {
	results := make([]R, len(items))
	err := p.Run(ctx, len(items), func(ctx context.Context, i int) error {
		r, err := fn(ctx, i, items[i])
		if err != nil {
			return err
		}
		results[i] = r
		return nil
	})
	return results, err
}
