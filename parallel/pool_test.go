package parallel_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/lvlgraph/pqgraph/parallel"
)

type PoolSuite struct {
	suite.Suite
}

func TestPoolSuite(t *testing.T) {
	suite.Run(t, new(PoolSuite))
}

func (s *PoolSuite) TestRunVisitsEveryIndex() {
	r := require.New(s.T())
	var seen int32
	p := parallel.New(4)
	err := p.Run(context.Background(), 100, func(ctx context.Context, i int) error {
		atomic.AddInt32(&seen, 1)
		return nil
	})
	r.NoError(err)
	r.EqualValues(100, seen)
}

func (s *PoolSuite) TestRunPropagatesFirstError() {
	r := require.New(s.T())
	boom := errors.New("boom")
	p := parallel.New(2)
	err := p.Run(context.Background(), 10, func(ctx context.Context, i int) error {
		if i == 5 {
			return boom
		}
		return nil
	})
	r.ErrorIs(err, boom)
}

func (s *PoolSuite) TestRunOnEmptyIsNoop() {
	r := require.New(s.T())
	p := parallel.New(4)
	calls := 0
	err := p.Run(context.Background(), 0, func(ctx context.Context, i int) error {
		calls++
		return nil
	})
	r.NoError(err)
	r.Zero(calls)
}

func (s *PoolSuite) TestNewClampsNonPositiveWorkers() {
	r := require.New(s.T())
	p := parallel.New(0)
	r.NotNil(p)
}

func (s *PoolSuite) TestMapErrorPreservesOrder() {
	r := require.New(s.T())
	p := parallel.New(4)
	items := []int{10, 20, 30, 40, 50}
	results, err := parallel.MapError(context.Background(), p, items, func(ctx context.Context, i int, item int) (int, error) {
		return item * 2, nil
	})
	r.NoError(err)
	r.Equal([]int{20, 40, 60, 80, 100}, results)
}
