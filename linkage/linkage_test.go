package linkage_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/lvlgraph/pqgraph/line"
	"github.com/lvlgraph/pqgraph/linkage"
	"github.com/lvlgraph/pqgraph/vertex"
)

type LinkageSuite struct {
	suite.Suite
}

func TestLinkageSuite(t *testing.T) {
	suite.Run(t, new(LinkageSuite))
}

func idx(label string) line.Line { return line.Must(line.DefaultAlphabet, label, 0) }

func (s *LinkageSuite) t2() vertex.Vertex {
	return vertex.New("t2", []line.Line{idx("i"), idx("j"), idx("a"), idx("b")})
}

func (s *LinkageSuite) v() vertex.Vertex {
	return vertex.New("v", []line.Line{idx("a"), idx("b"), idx("i"), idx("j")})
}

func (s *LinkageSuite) TestContractionLeavesNoExternalLines() {
	r := require.New(s.T())
	lk := linkage.New(linkage.Of(s.t2()), linkage.Of(s.v()), false)
	r.Equal(0, lk.Rank())
	r.True(lk.IsScalar())
	r.Len(lk.InternalLines, 4)
}

func (s *LinkageSuite) TestPartialContractionLeavesExternalLines() {
	r := require.New(s.T())
	t2 := vertex.New("t2", []line.Line{idx("i"), idx("j"), idx("a"), idx("b")})
	w := vertex.New("w", []line.Line{idx("a"), idx("c")})
	lk := linkage.New(linkage.Of(t2), linkage.Of(w), false)
	r.Equal(4, lk.Rank()) // i, j, b, c survive; only a contracts
	r.Len(lk.InternalLines, 1)
}

func (s *LinkageSuite) TestCommutativeLeafOrderIsCanonicalized() {
	r := require.New(s.T())
	a := vertex.New("b_op", []line.Line{idx("i")})
	b := vertex.New("a_op", []line.Line{idx("i")})

	ab := linkage.New(linkage.Of(a), linkage.Of(b), false)
	ba := linkage.New(linkage.Of(b), linkage.Of(a), false)
	r.Equal(ab.BaseName, ba.BaseName)
}

func (s *LinkageSuite) TestDotWrappingForScalarProduct() {
	r := require.New(s.T())
	lk := linkage.New(linkage.Of(s.t2()), linkage.Of(s.v()), false)
	str := lk.String()
	r.Contains(str, "dot(")
}

func (s *LinkageSuite) TestToVectorFlattensInOrder() {
	r := require.New(s.T())
	a := vertex.New("a", []line.Line{idx("i")})
	b := vertex.New("b", []line.Line{idx("i"), idx("j")})
	c := vertex.New("c", []line.Line{idx("j")})

	lk, err := linkage.Link([]linkage.Operand{linkage.Of(a), linkage.Of(b), linkage.Of(c)})
	r.NoError(err)
	r.Equal(3, lk.NVert)

	flat := lk.ToVector(true)
	r.Len(flat, 3)
	r.Equal("a", flat[0].Leaf.BaseName)
	r.Equal("b", flat[1].Leaf.BaseName)
	r.Equal("c", flat[2].Leaf.BaseName)
}

func (s *LinkageSuite) TestEqualIsReflexive() {
	r := require.New(s.T())
	lk := linkage.New(linkage.Of(s.t2()), linkage.Of(s.v()), false)
	r.True(lk.Equal(lk))
}

func (s *LinkageSuite) TestLinksReturnsOnePerFold() {
	r := require.New(s.T())
	a := vertex.New("a", []line.Line{idx("i")})
	b := vertex.New("b", []line.Line{idx("i"), idx("j")})
	c := vertex.New("c", []line.Line{idx("j")})

	links, err := linkage.Links([]linkage.Operand{linkage.Of(a), linkage.Of(b), linkage.Of(c)})
	r.NoError(err)
	r.Len(links, 2)
	r.Equal(2, links[0].NVert)
	r.Equal(3, links[1].NVert)
}

func (s *LinkageSuite) TestLinkRejectsTooFewOperands() {
	r := require.New(s.T())
	_, err := linkage.Link([]linkage.Operand{linkage.Of(s.t2())})
	r.ErrorIs(err, linkage.ErrTooFewOperands)
}
