package equation_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/lvlgraph/pqgraph/equation"
	"github.com/lvlgraph/pqgraph/line"
	"github.com/lvlgraph/pqgraph/linkage"
	"github.com/lvlgraph/pqgraph/shape"
	"github.com/lvlgraph/pqgraph/term"
	"github.com/lvlgraph/pqgraph/vertex"
)

type EquationSuite struct {
	suite.Suite
}

func TestEquationSuite(t *testing.T) {
	suite.Run(t, new(EquationSuite))
}

func idx(label string) line.Line { return line.Must(line.DefaultAlphabet, label, 0) }

func (s *EquationSuite) TestNewRejectsMismatchedLHS() {
	r := require.New(s.T())
	lhs := vertex.New("r", []line.Line{idx("i")})
	other := vertex.New("r", []line.Line{idx("j")})
	bad := term.New(1, other, []vertex.Vertex{vertex.New("a", []line.Line{idx("j")})})

	_, err := equation.New(lhs, []term.Term{bad})
	r.ErrorIs(err, equation.ErrMismatchedLHS)
}

func (s *EquationSuite) TestReorderAppliesToEveryMultiOperandTerm() {
	r := require.New(s.T())
	lhs := vertex.New("r", nil)
	a := vertex.New("a", []line.Line{idx("i")})
	b := vertex.New("b", []line.Line{idx("i")})
	t1 := term.New(1, lhs, []vertex.Vertex{a, b})

	eq, err := equation.New(lhs, []term.Term{t1})
	r.NoError(err)

	eq, err = eq.Reorder(nil, shape.Unbounded)
	r.NoError(err)
	r.True(eq.Terms[0].Reordered())
}

func (s *EquationSuite) TestMergeCombinesIsomorphicTerms() {
	r := require.New(s.T())
	lhs := vertex.New("r", nil)
	a := vertex.New("a", []line.Line{idx("i")})
	b := vertex.New("b", []line.Line{idx("i")})

	t1, err := term.New(1, lhs, []vertex.Vertex{a, b}).Reorder(nil, shape.Unbounded)
	r.NoError(err)

	// relabeled equivalent contraction, same topology
	a2 := vertex.New("a", []line.Line{idx("k")})
	b2 := vertex.New("b", []line.Line{idx("k")})
	t2, err := term.New(2, lhs, []vertex.Vertex{a2, b2}).Reorder(nil, shape.Unbounded)
	r.NoError(err)

	eq, err := equation.New(lhs, []term.Term{t1, t2})
	r.NoError(err)

	merged := eq.Merge()
	r.Len(merged.Terms, 1)
	r.Equal(3.0, merged.Terms[0].Coefficient)
}

func (s *EquationSuite) TestSubstituteReplacesMatchedSubtree() {
	r := require.New(s.T())
	a := vertex.New("a", []line.Line{idx("i")})
	b := vertex.New("b", []line.Line{idx("i"), idx("j")})
	c := vertex.New("c", []line.Line{idx("j")})
	lhs := vertex.New("r", nil)

	tm, err := term.New(1, lhs, []vertex.Vertex{a, b, c}).Reorder(nil, shape.Unbounded)
	r.NoError(err)

	pattern := linkage.New(linkage.Of(a), linkage.Of(b), false)
	intermediate := vertex.New("tmp0", pattern.Lines)

	rewritten, ok := equation.Substitute(tm, pattern, intermediate)
	r.True(ok)
	r.NotNil(rewritten.Tree)
}

// TestTestSubstituteDoesNotMutateOriginal exercises the non-mutating
// test_substitute scoring needs (§4.5): running it against an equation
// must leave that equation's own Terms (and the term's Tree) completely
// untouched, while still reporting the count of terms that would have
// been rewritten.
func (s *EquationSuite) TestTestSubstituteDoesNotMutateOriginal() {
	r := require.New(s.T())
	a := vertex.New("a", []line.Line{idx("i")})
	b := vertex.New("b", []line.Line{idx("i"), idx("j")})
	c := vertex.New("c", []line.Line{idx("j")})
	lhs := vertex.New("r", nil)

	tm, err := term.New(1, lhs, []vertex.Vertex{a, b, c}).Reorder(nil, shape.Unbounded)
	r.NoError(err)
	eq, err := equation.New(lhs, []term.Term{tm})
	r.NoError(err)
	originalTree := eq.Terms[0].Tree

	pattern := linkage.New(linkage.Of(a), linkage.Of(b), false)
	intermediate := vertex.New("tmp0", pattern.Lines)

	probed, count := eq.TestSubstitute(pattern, intermediate)
	r.Equal(1, count)
	r.NotNil(probed.Terms[0].Tree)

	r.Same(originalTree, eq.Terms[0].Tree)
}
