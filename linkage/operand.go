package linkage

import (
	"github.com/lvlgraph/pqgraph/line"
	"github.com/lvlgraph/pqgraph/shape"
	"github.com/lvlgraph/pqgraph/vertex"
)

// Operand is one side of a Linkage: either a leaf Vertex or a nested
// Linkage. Exactly one of Leaf/Link is set.
type Operand struct {
	Leaf *vertex.Vertex
	Link *Linkage
}

// Of wraps a Vertex as a leaf Operand.
func Of(v vertex.Vertex) Operand { return Operand{Leaf: &v} }

// OfLinkage wraps a Linkage as a nested Operand.
func OfLinkage(l *Linkage) Operand { return Operand{Link: l} }

// IsLinked reports whether the operand is itself a contraction tree.
func (o Operand) IsLinked() bool { return o.Link != nil }

// Lines returns the operand's ordered line list: the leaf's Lines, or the
// nested linkage's external Lines.
func (o Operand) Lines() []line.Line {
	if o.Link != nil {
		return o.Link.Lines
	}
	return o.Leaf.Lines
}

// Name returns the operand's display base name.
func (o Operand) Name() string {
	if o.Link != nil {
		return o.Link.BaseName
	}
	return o.Leaf.Name()
}

// Rank returns len(Lines()).
func (o Operand) Rank() int { return len(o.Lines()) }

// Shape sums the operand's own lines.
func (o Operand) Shape() shape.Shape {
	if o.Link != nil {
		return shape.Sum(o.Link.Lines)
	}
	return o.Leaf.Shape()
}

// String renders the operand: a leaf's Name(), or a parenthesized nested
// linkage string when the nested linkage is an addition (so precedence
// reads unambiguously in the emitted expression).
func (o Operand) String() string {
	if o.Link == nil {
		return o.Leaf.Name()
	}
	if o.Link.IsAddition {
		return "(" + o.Link.String() + ")"
	}
	return o.Link.String()
}
