package term_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/lvlgraph/pqgraph/line"
	"github.com/lvlgraph/pqgraph/shape"
	"github.com/lvlgraph/pqgraph/term"
	"github.com/lvlgraph/pqgraph/vertex"
)

type TermSuite struct {
	suite.Suite
}

func TestTermSuite(t *testing.T) {
	suite.Run(t, new(TermSuite))
}

func idx(label string) line.Line { return line.Must(line.DefaultAlphabet, label, 0) }

func (s *TermSuite) TestReorderRejectsEmptyAndSingleton() {
	r := require.New(s.T())
	lhs := vertex.New("r", nil)

	_, err := term.New(1, lhs, nil).Reorder(nil, shape.Unbounded)
	r.ErrorIs(err, term.ErrEmptyTerm)

	single := term.New(1, lhs, []vertex.Vertex{vertex.New("a", nil)})
	_, err = single.Reorder(nil, shape.Unbounded)
	r.ErrorIs(err, term.ErrSingleOperand)
}

func (s *TermSuite) TestReorderBuildsCompleteTree() {
	r := require.New(s.T())
	a := vertex.New("a", []line.Line{idx("i")})
	b := vertex.New("b", []line.Line{idx("i"), idx("j")})
	c := vertex.New("c", []line.Line{idx("j")})
	lhs := vertex.New("r", nil)

	tm := term.New(1, lhs, []vertex.Vertex{a, b, c})
	tm, err := tm.Reorder(nil, shape.Unbounded)
	r.NoError(err)
	r.True(tm.Reordered())
	r.Equal(3, tm.Tree.NVert)
	r.True(tm.Tree.IsScalar())
}

func (s *TermSuite) TestReorderPrefersCheaperContraction() {
	r := require.New(s.T())
	// a-b share one contractable index (cheap); a-c share none (expensive
	// outer product). The greedy search must fold a and b together first.
	a := vertex.New("a", []line.Line{idx("i")})
	b := vertex.New("b", []line.Line{idx("i")})
	c := vertex.New("c", []line.Line{idx("a"), idx("b"), idx("c"), idx("d")})
	lhs := vertex.New("r", []line.Line{idx("a"), idx("b"), idx("c"), idx("d")})

	tm := term.New(1, lhs, []vertex.Vertex{a, b, c})
	tm, err := tm.Reorder(nil, shape.Unbounded)
	r.NoError(err)

	// the last fold (root) must involve the rank-4 operand c, since a*b
	// contracts to a scalar and should be formed first.
	r.True(tm.Tree.Left.IsLinked() || tm.Tree.Right.IsLinked())
}

// TestReorderFallsBackToNaiveAssociationWhenMaxShapeExceeded exercises
// §4.4 step 5. Operands are passed as c,a,b: a and b share index i and
// contract to a scalar cheaply, so the greedy search folds them first
// regardless of bound, then joins the result with c last — producing a
// root whose left side is the bare leaf c and whose right side is the
// linked a*b node. A bound too tight for the root's own virtual-line
// count rejects that tree entirely; the naive left-to-right fallback over
// the original c,a,b order instead folds c with a first (an outer
// product, since they share no index) and joins b last, producing the
// opposite shape: a linked left side and a bare leaf on the right.
func (s *TermSuite) TestReorderFallsBackToNaiveAssociationWhenMaxShapeExceeded() {
	r := require.New(s.T())
	a := vertex.New("a", []line.Line{idx("i")})
	b := vertex.New("b", []line.Line{idx("i")})
	c := vertex.New("c", []line.Line{idx("a"), idx("b"), idx("c"), idx("d")})
	lhs := vertex.New("r", []line.Line{idx("a"), idx("b"), idx("c"), idx("d")})

	tm := term.New(1, lhs, []vertex.Vertex{c, a, b})
	tm, err := tm.Reorder(nil, shape.Unbounded)
	r.NoError(err)
	r.False(tm.Tree.Left.IsLinked())
	r.True(tm.Tree.Right.IsLinked())

	tight := shape.Bound{MaxOcc: 0, MaxVirt: 0}
	tm2 := term.New(1, lhs, []vertex.Vertex{c, a, b})
	tm2, err = tm2.Reorder(nil, tight)
	r.NoError(err)
	r.True(tm2.Tree.Left.IsLinked())
	r.False(tm2.Tree.Right.IsLinked())
}
