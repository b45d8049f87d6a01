package depgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/lvlgraph/pqgraph/depgraph"
)

type GraphSuite struct {
	suite.Suite
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func (s *GraphSuite) TestFirstAndLastUseTrackExtremes() {
	r := require.New(s.T())
	g := depgraph.New()
	g.RecordUse("stage_0", 5)
	g.RecordUse("stage_0", 2)
	g.RecordUse("stage_0", 9)

	first, ok := g.FirstUse("stage_0")
	r.True(ok)
	r.Equal(2, first)

	last, ok := g.LastUse("stage_0")
	r.True(ok)
	r.Equal(9, last)
}

func (s *GraphSuite) TestUnseenNameReportsAbsent() {
	r := require.New(s.T())
	g := depgraph.New()
	_, ok := g.FirstUse("never_used")
	r.False(ok)
}

func (s *GraphSuite) TestDeclarationOrderSortsByFirstUse() {
	r := require.New(s.T())
	g := depgraph.New()
	g.RecordUse("stage_1", 10)
	g.RecordUse("stage_0", 3)
	g.RecordUse("stage_2", 7)

	r.Equal([]string{"stage_0", "stage_2", "stage_1"}, g.DeclarationOrder())
}

func (s *GraphSuite) TestDeclarationOrderBreaksTiesByInsertion() {
	r := require.New(s.T())
	g := depgraph.New()
	g.RecordUse("b", 1)
	g.RecordUse("a", 1)

	r.Equal([]string{"b", "a"}, g.DeclarationOrder())
}

func (s *GraphSuite) TestDestructorsAtReturnsNamesWhoseLastUseMatches() {
	r := require.New(s.T())
	g := depgraph.New()
	g.RecordUse("stage_0", 1)
	g.RecordUse("stage_0", 4)
	g.RecordUse("stage_1", 4)
	g.RecordUse("stage_2", 5)

	r.ElementsMatch([]string{"stage_0", "stage_1"}, g.DestructorsAt(4))
	r.Equal([]string{"stage_2"}, g.DestructorsAt(5))
	r.Empty(g.DestructorsAt(99))
}

func (s *GraphSuite) TestCloneIsIndependent() {
	r := require.New(s.T())
	g := depgraph.New()
	g.RecordUse("stage_0", 1)

	clone := g.Clone()
	clone.RecordUse("stage_1", 2)

	_, ok := g.FirstUse("stage_1")
	r.False(ok, "mutating the clone must not affect the original")

	_, ok = clone.FirstUse("stage_0")
	r.True(ok, "clone must retain the original's recorded uses")
}
