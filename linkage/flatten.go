package linkage

// ToVector flattens the contraction tree into its NVert leaf operands, in
// left-to-right, depth-first order, caching the result under a read-write
// mutex since the same Linkage is read from many scoring goroutines during
// candidate search (§5). fullExpand forces recursion into nested
// intermediates that would otherwise be returned opaquely as a single
// Operand; pass false to stop at the first nested temporary.
//
// Grounded on Linkage::to_vector (linkage.cc), translated from a mutable
// lazy cache plus output index into an explicit recursive builder.
func (lk *Linkage) ToVector(fullExpand bool) []Operand {
	if !fullExpand {
		// Only the fully expanded flattening is cached.
		out := make([]Operand, 0, lk.NVert)
		out = appendFlattened(out, lk.Left, false)
		return appendFlattened(out, lk.Right, false)
	}
	lk.mu.RLock()
	if lk.flatCache != nil {
		cached := lk.flatCache
		lk.mu.RUnlock()
		return cached
	}
	lk.mu.RUnlock()

	lk.mu.Lock()
	defer lk.mu.Unlock()
	if lk.flatCache != nil {
		return lk.flatCache
	}

	out := make([]Operand, 0, lk.NVert)
	out = appendFlattened(out, lk.Left, fullExpand)
	out = appendFlattened(out, lk.Right, fullExpand)
	lk.flatCache = out
	return out
}

func appendFlattened(out []Operand, o Operand, fullExpand bool) []Operand {
	if !o.IsLinked() {
		return append(out, o)
	}
	if !fullExpand && o.Link.IsTemp() {
		return append(out, o)
	}
	sub := o.Link.ToVector(fullExpand)
	return append(out, sub...)
}

// IsTemp reports whether this linkage is large enough to be treated as a
// standalone reusable intermediate rather than expanded inline (§4.9). The
// threshold matches the "more than a single pairwise contraction" rule:
// any linkage with more than two leaf vertices is a temp.
func (lk *Linkage) IsTemp() bool { return lk.NVert > 2 }

// ForgetFlattening clears the cached flattening, forcing the next
// ToVector call to recompute it. Needed after any in-place edit of the
// tree; CSE substitution builds new Linkages instead and does not call it.
func (lk *Linkage) ForgetFlattening() {
	lk.mu.Lock()
	lk.flatCache = nil
	lk.mu.Unlock()
}
