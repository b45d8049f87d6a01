package scaling_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/lvlgraph/pqgraph/scaling"
	"github.com/lvlgraph/pqgraph/shape"
)

type MapSuite struct {
	suite.Suite
}

func TestMapSuite(t *testing.T) {
	suite.Run(t, new(MapSuite))
}

func (s *MapSuite) TestCompareSame() {
	r := require.New(s.T())
	a := scaling.New()
	b := scaling.New()
	sh := shape.Shape{OccActive: 2, VirtActive: 2}
	a.Add(sh)
	b.Add(sh)
	r.Equal(scaling.ThisSame, scaling.Compare(a, b))
}

func (s *MapSuite) TestCompareHighestRankDecides() {
	r := require.New(s.T())
	a := scaling.New()
	b := scaling.New()
	expensive := shape.Shape{OccActive: 2, VirtActive: 4}
	cheap := shape.Shape{OccActive: 1}

	a.Add(expensive)
	a.Add(cheap)
	a.Add(cheap)

	b.Add(expensive)
	b.Add(expensive) // b is worse at the highest shape
	b.Add(cheap)

	r.Equal(scaling.ThisBetter, scaling.Compare(a, b))
	r.Equal(scaling.OtherBetter, scaling.Compare(b, a))
}

func (s *MapSuite) TestAbsentShapeTreatedAsZero() {
	r := require.New(s.T())
	a := scaling.New()
	b := scaling.New()
	sh := shape.Shape{VirtActive: 6}
	b.Add(sh) // a lacks it entirely

	r.Equal(scaling.ThisBetter, scaling.Compare(a, b))
}

func (s *MapSuite) TestSubtractClampsToZero() {
	r := require.New(s.T())
	a := scaling.New()
	b := scaling.New()
	sh := shape.Shape{OccActive: 1}
	a.Add(sh)
	b.Add(sh)
	b.Add(sh)

	diff := a.Subtract(b)
	r.Equal(0, diff[sh])
}

func (s *MapSuite) TestMergeIsElementwiseSum() {
	r := require.New(s.T())
	a := scaling.New()
	b := scaling.New()
	sh := shape.Shape{OccActive: 1}
	a.Add(sh)
	b.Add(sh)
	merged := a.Merge(b)
	r.Equal(2, merged[sh])
}
