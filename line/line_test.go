package line_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/lvlgraph/pqgraph/line"
)

type LineSuite struct {
	suite.Suite
}

func TestLineSuite(t *testing.T) {
	suite.Run(t, new(LineSuite))
}

func (s *LineSuite) TestClassification() {
	r := require.New(s.T())

	occ := line.Must(line.DefaultAlphabet, "i", 0)
	r.True(occ.Occupied)
	r.False(occ.Sigma)
	r.False(occ.Density)

	virt := line.Must(line.DefaultAlphabet, "a", 0)
	r.False(virt.Occupied)

	sig := line.Must(line.DefaultAlphabet, "L", 0)
	r.True(sig.Sigma)
	r.False(sig.Occupied)

	den := line.Must(line.DefaultAlphabet, "Q", 0)
	r.True(den.Density)
	r.False(den.Occupied)
}

func (s *LineSuite) TestBlockDerivation() {
	r := require.New(s.T())

	alpha := line.Must(line.DefaultAlphabet, "i", 'a')
	r.True(alpha.HasBlock())
	r.Equal(line.BlockSpin, alpha.BlockKind)
	r.Equal(byte('a'), alpha.Block())

	rangeLine := line.Must(line.DefaultAlphabet, "i", '0')
	r.Equal(line.BlockRange, rangeLine.BlockKind)
	r.Equal(byte('0'), rangeLine.Block())

	_, err := line.New(line.DefaultAlphabet, "i", 'z')
	r.ErrorIs(err, line.ErrInvalidBlock)

	_, err = line.New(line.DefaultAlphabet, "", 0)
	r.ErrorIs(err, line.ErrEmptyLabel)
}

func (s *LineSuite) TestEqualVsEquivalent() {
	r := require.New(s.T())

	i := line.Must(line.DefaultAlphabet, "i", 0)
	j := line.Must(line.DefaultAlphabet, "j", 0)
	i2 := line.Must(line.DefaultAlphabet, "i", 0)

	r.True(i.Equal(i2))
	r.False(i.Equal(j))
	r.True(i.Equivalent(j), "both occupied, non-block lines are equivalent")
	r.False(i.Equal(j))
}

func (s *LineSuite) TestEquivalenceIsAnEquivalenceRelation() {
	r := require.New(s.T())
	lines := []line.Line{
		line.Must(line.DefaultAlphabet, "i", 0),
		line.Must(line.DefaultAlphabet, "j", 0),
		line.Must(line.DefaultAlphabet, "a", 0),
		line.Must(line.DefaultAlphabet, "L", 0),
		line.Must(line.DefaultAlphabet, "Q", 0),
	}
	for _, a := range lines {
		r.True(a.Equivalent(a), "reflexive")
	}
	for _, a := range lines {
		for _, b := range lines {
			r.Equal(a.Equivalent(b), b.Equivalent(a), "symmetric")
		}
	}
	for _, a := range lines {
		for _, b := range lines {
			for _, c := range lines {
				if a.Equivalent(b) && b.Equivalent(c) {
					r.True(a.Equivalent(c), "transitive")
				}
			}
		}
	}
}

func (s *LineSuite) TestTotalOrder() {
	r := require.New(s.T())

	sig := line.Must(line.DefaultAlphabet, "L", 0)
	den := line.Must(line.DefaultAlphabet, "Q", 0)
	virt := line.Must(line.DefaultAlphabet, "a", 0)
	occ := line.Must(line.DefaultAlphabet, "i", 0)

	r.True(sig.Less(den))
	r.True(den.Less(virt))
	r.True(virt.Less(occ))

	lines := []line.Line{occ, virt, den, sig}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Less(lines[j]) })
	r.Equal([]line.Line{sig, den, virt, occ}, lines)
}

func (s *LineSuite) TestMapLines() {
	r := require.New(s.T())

	a := line.Must(line.DefaultAlphabet, "a", 0)
	b := line.Must(line.DefaultAlphabet, "b", 0)
	i := line.Must(line.DefaultAlphabet, "i", 0)
	j := line.Must(line.DefaultAlphabet, "j", 0)
	c := line.Must(line.DefaultAlphabet, "c", 0)
	d := line.Must(line.DefaultAlphabet, "d", 0)

	m := line.MapLines([]line.Line{a, b, i, j}, []line.Line{c, d, j, i})
	r.Equal(c, m[a])
	r.Equal(d, m[b])
	r.Equal(j, m[i])
	r.Equal(i, m[j])
}
