package linkage

import (
	"strings"
	"sync"

	"github.com/lvlgraph/pqgraph/line"
	"github.com/lvlgraph/pqgraph/shape"
)

// Linkage is a binary node of a contraction (or addition) tree (§4.3).
//
// Left and Right are interchangeable (the underlying contraction is
// commutative) whenever neither operand is itself linked; New sorts such
// leaf pairs by name so that equivalent pairwise contractions always
// produce the same BaseName and hash identically.
type Linkage struct {
	Left, Right Operand
	IsAddition  bool
	BaseName    string

	// NVert is the number of leaf vertices spanned by this tree.
	NVert int

	// Lines holds the external (surviving) lines, in line-population-map
	// insertion order, mirroring the map<Line,uint8_t> walk in set_links.
	Lines []line.Line

	// InternalLines holds the contracted-away lines.
	InternalLines []line.Line

	FlopScale, MemScale shape.Shape
	IsSigma, IsDensity  bool
	HasBlock            bool

	// InternalConnections maps a left-operand line index to the matching
	// right-operand line index for every internal (contracted) line.
	InternalConnections map[int]int
	LExternalIdx        map[int]bool
	RExternalIdx        map[int]bool

	mu       sync.RWMutex
	flatCache []Operand
}

// New builds the Linkage contracting (or adding) left and right. Leaf
// operands are reordered by name so a commutative pairwise contraction has
// a canonical, order-independent BaseName (§4.3, §9).
func New(left, right Operand, isAddition bool) *Linkage {
	if !left.IsLinked() && !right.IsLinked() && left.Name() > right.Name() {
		left, right = right, left
	}

	lk := &Linkage{Left: left, Right: right, IsAddition: isAddition}

	lk.NVert = 2
	if left.IsLinked() {
		lk.NVert += left.Link.NVert - 1
	}
	if right.IsLinked() {
		lk.NVert += right.Link.NVert - 1
	}

	lk.BaseName = left.Name() + "\t" + right.Name()
	lk.setLinks()
	lk.connectLines()
	lk.HasBlock = hasBlock(left) || hasBlock(right)
	return lk
}

func hasBlock(o Operand) bool {
	if o.Link != nil {
		return o.Link.HasBlock
	}
	return o.Leaf.HasBlock()
}

// setLinks partitions left's and right's lines into external (appears
// once) and internal (appears twice) sets, accumulating flop/mem cost
// along the way. Grounded on Linkage::set_links (linkage.cc).
func (lk *Linkage) setLinks() {
	leftLines, rightLines := lk.Left.Lines(), lk.Right.Lines()

	if len(leftLines) == 0 && len(rightLines) == 0 {
		return
	}
	if len(leftLines) == 0 {
		lk.Lines = append([]line.Line{}, rightLines...)
		lk.MemScale = shape.Sum(rightLines)
		lk.FlopScale = lk.MemScale
		return
	}
	if len(rightLines) == 0 {
		lk.Lines = append([]line.Line{}, leftLines...)
		lk.MemScale = shape.Sum(leftLines)
		lk.FlopScale = lk.MemScale
		return
	}

	population := make(map[line.Line]int, len(leftLines)+len(rightLines))
	order := make([]line.Line, 0, len(leftLines)+len(rightLines))
	for _, l := range leftLines {
		if population[l] == 0 {
			order = append(order, l)
		}
		population[l]++
	}
	for _, l := range rightLines {
		if population[l] == 0 {
			order = append(order, l)
		}
		population[l]++
	}

	for _, l := range order {
		lk.FlopScale = lk.FlopScale.Add(shape.Of(l))
		if population[l] == 1 {
			lk.Lines = append(lk.Lines, l)
			lk.MemScale = lk.MemScale.Add(shape.Of(l))
			if l.Sigma {
				lk.IsSigma = true
			} else if l.Density {
				lk.IsDensity = true
			}
		} else {
			lk.InternalLines = append(lk.InternalLines, l)
		}
	}
}

// connectLines builds the left-index -> right-index map for every
// contracted line, and the complementary sets of indices that remain
// external on each side. Grounded on Linkage::connect_lines (linkage.cc):
// it searches whichever side's line list is shorter.
func (lk *Linkage) connectLines() {
	leftLines, rightLines := lk.Left.Lines(), lk.Right.Lines()
	lk.InternalConnections = make(map[int]int)
	lk.LExternalIdx = make(map[int]bool, len(leftLines))
	lk.RExternalIdx = make(map[int]bool, len(rightLines))
	for i := range leftLines {
		lk.LExternalIdx[i] = true
	}
	for i := range rightLines {
		lk.RExternalIdx[i] = true
	}

	internal := make(map[line.Line]bool, len(lk.InternalLines))
	for _, l := range lk.InternalLines {
		internal[l] = true
	}
	if len(internal) == 0 {
		return
	}

	searchLeft := len(leftLines) < len(rightLines) ||
		(len(leftLines) == len(rightLines) && lessLines(leftLines, rightLines))
	searchSize := len(rightLines)
	searchLines := rightLines
	if searchLeft {
		searchSize = len(leftLines)
		searchLines = leftLines
	}

	for i := 0; i < searchSize; i++ {
		l := searchLines[i]
		if !internal[l] {
			continue
		}
		if searchLeft {
			otherIdx := indexOf(rightLines, l)
			if otherIdx < 0 {
				continue
			}
			lk.InternalConnections[i] = otherIdx
			delete(lk.LExternalIdx, i)
			delete(lk.RExternalIdx, otherIdx)
		} else {
			otherIdx := indexOf(leftLines, l)
			if otherIdx < 0 {
				continue
			}
			lk.InternalConnections[otherIdx] = i
			delete(lk.LExternalIdx, otherIdx)
			delete(lk.RExternalIdx, i)
		}
	}
}

func indexOf(lines []line.Line, target line.Line) int {
	for i, l := range lines {
		if l.Equal(target) {
			return i
		}
	}
	return -1
}

// lessLines gives a deterministic, total ordering between two line lists
// so connectLines always searches the same side for equal-length inputs.
func lessLines(a, b []line.Line) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].Equal(b[i]) {
			continue
		}
		return a[i].Less(b[i])
	}
	return len(a) < len(b)
}

// Rank is the number of external lines.
func (lk *Linkage) Rank() int { return len(lk.Lines) }

// IsScalar reports whether every index was contracted away.
func (lk *Linkage) IsScalar() bool { return len(lk.Lines) == 0 }

// Empty reports whether lk has no operands at all.
func (lk *Linkage) Empty() bool { return lk.Left.Leaf == nil && lk.Left.Link == nil }

func (lk *Linkage) ovString() string {
	var b strings.Builder
	for _, l := range lk.Lines {
		b.WriteByte(l.Kind())
	}
	return b.String()
}
