package linkage

import "github.com/lvlgraph/pqgraph/shape"

// Link folds operands left-to-right into a single Linkage:
// ((op[0] * op[1]) * op[2]) * ... Grounded on Linkage::link (linkage.cc).
func Link(ops []Operand) (*Linkage, error) {
	if len(ops) < 2 {
		return nil, ErrTooFewOperands
	}
	lk := New(ops[0], ops[1], false)
	for i := 2; i < len(ops); i++ {
		lk = New(OfLinkage(lk), ops[i], false)
	}
	return lk, nil
}

// Links returns every partial fold of ops, one Linkage per additional
// operand folded in: Links([a,b,c])[0] == a*b, Links([a,b,c])[1] ==
// (a*b)*c. Grounded on Linkage::links (linkage.cc); ScaleList and
// LinkAndScale are built on it, the latter being term reorder's
// max_shape fallback.
func Links(ops []Operand) ([]*Linkage, error) {
	if len(ops) < 2 {
		return nil, ErrTooFewOperands
	}
	out := make([]*Linkage, len(ops)-1)
	lk := New(ops[0], ops[1], false)
	out[0] = lk
	for i := 2; i < len(ops); i++ {
		lk = New(OfLinkage(lk), ops[i], false)
		out[i-1] = lk
	}
	return out, nil
}

// ScaleList folds ops the same way Links does, but returns only the flop
// and mem Shape at each step, avoiding the caller needing to keep the
// intermediate Linkages alive. Grounded on Linkage::scale_list (linkage.cc).
func ScaleList(ops []Operand) (flops, mems []shape.Shape, err error) {
	links, err := Links(ops)
	if err != nil {
		return nil, nil, err
	}
	flops = make([]shape.Shape, len(links))
	mems = make([]shape.Shape, len(links))
	for i, l := range links {
		flops[i] = l.FlopScale
		mems[i] = l.MemScale
	}
	return flops, mems, nil
}

// LinkAndScale is Link plus the flop/mem Shape observed at every folding
// step, so a caller can both keep the final tree and inspect how cost grew
// as each operand was added. Grounded on Linkage::link_and_scale
// (linkage.cc).
func LinkAndScale(ops []Operand) (final *Linkage, flops, mems []shape.Shape, err error) {
	links, err := Links(ops)
	if err != nil {
		return nil, nil, nil, err
	}
	flops = make([]shape.Shape, len(links))
	mems = make([]shape.Shape, len(links))
	for i, l := range links {
		flops[i] = l.FlopScale
		mems[i] = l.MemScale
	}
	return links[len(links)-1], flops, mems, nil
}
