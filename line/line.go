package line

import (
	"errors"
	"fmt"
)

// ErrEmptyLabel is returned by New when the supplied label is empty.
var ErrEmptyLabel = errors.New("line: label cannot be empty")

// ErrInvalidBlock is returned by New when the block character is not one
// of '\0', 'a', 'b', '0', '1'.
var ErrInvalidBlock = errors.New("line: invalid block character")

// BlockKind classifies the optional spin/range block carried by a Line.
type BlockKind uint8

const (
	// BlockNone means the line carries no block distinction.
	BlockNone BlockKind = iota
	// BlockSpin means the line was built from a spin character ('a'/'b').
	BlockSpin
	// BlockRange means the line was built from a range character ('0'/'1').
	BlockRange
)

// Alphabet classifies raw index characters into Line kinds. The zero value
// has no letters in any class, so it classifies every label as virtual;
// DefaultAlphabet carries the labels used throughout the literature
// (i,j,k,... for occupied; a,b,c,... for virtual; L,R,X,Y for sigma; Q,U
// for density fitting).
type Alphabet struct {
	Occ, Virt, Sig, Den [32]byte
}

// DefaultAlphabet reproduces the canonical label classes.
var DefaultAlphabet = Alphabet{
	Occ:  fill("ijklmnoIJKMNO"),
	Virt: fill("abcdefghvABCDEFGHV"),
	Sig:  fill("LRXY"),
	Den:  fill("QU"),
}

func fill(letters string) (out [32]byte) {
	for i := 0; i < len(letters) && i < len(out); i++ {
		out[i] = letters[i]
	}
	return out
}

func (a Alphabet) classify(c byte) (occ, sig, den bool) {
	for _, b := range a.Occ {
		if b == 0 {
			break
		}
		if b == c {
			return true, false, false
		}
	}
	for _, b := range a.Sig {
		if b == 0 {
			break
		}
		if b == c {
			return false, true, false
		}
	}
	for _, b := range a.Den {
		if b == 0 {
			break
		}
		if b == c {
			return false, false, true
		}
	}
	// Virt (or anything unrecognized) falls through as virtual.
	return false, false, false
}

// Line is a single tensor index: a label plus the kind bits that determine
// how it participates in contraction, sorting, and cost accounting.
//
// Invariant: Sigma and Density are mutually exclusive, and both imply
// Occupied == false. Two Lines are Equal iff every field matches including
// Label; they are Equivalent iff every kind bit matches regardless of
// Label.
type Line struct {
	Label     string
	Occupied  bool
	Active    bool
	BlockKind BlockKind
	Sigma     bool
	Density   bool
}

// New builds a Line from a label and an optional block character ('\0' for
// none, 'a'/'b' for spin, '0'/'1' for range). It classifies the line's kind
// from the label's first byte against alphabet.
func New(alphabet Alphabet, label string, blk byte) (Line, error) {
	if label == "" {
		return Line{}, ErrEmptyLabel
	}
	l := Line{Label: label, Active: true}

	occ, sig, den := alphabet.classify(label[0])
	l.Occupied, l.Sigma, l.Density = occ, sig, den
	if l.Sigma || l.Density {
		l.Occupied = false
	}

	switch blk {
	case 0:
		l.BlockKind = BlockNone
	case 'a':
		l.BlockKind, l.Active = BlockSpin, true
	case 'b':
		l.BlockKind, l.Active = BlockSpin, false
	case '1':
		l.BlockKind, l.Active = BlockRange, true
	case '0':
		l.BlockKind, l.Active = BlockRange, false
	default:
		return Line{}, fmt.Errorf("%w: %q", ErrInvalidBlock, blk)
	}
	return l, nil
}

// Must is New, panicking on error; for literal construction in tests and
// fixtures where the label/block are known-good at compile time.
func Must(alphabet Alphabet, label string, blk byte) Line {
	l, err := New(alphabet, label, blk)
	if err != nil {
		panic(err)
	}
	return l
}

// HasBlock reports whether the line carries a spin or range block.
func (l Line) HasBlock() bool { return l.BlockKind != BlockNone }

// Block returns the block character ('a'/'b', '0'/'1', or 0 for none).
func (l Line) Block() byte {
	switch l.BlockKind {
	case BlockSpin:
		if l.Active {
			return 'a'
		}
		return 'b'
	case BlockRange:
		if l.Active {
			return '1'
		}
		return '0'
	default:
		return 0
	}
}

// Kind returns a one-character tag for the line's occupied/virtual/sigma/
// density class: 'L' for sigma, 'Q' for density, 'o' for occupied, 'v' for
// virtual.
func (l Line) Kind() byte {
	switch {
	case l.Sigma:
		return 'L'
	case l.Density:
		return 'Q'
	case l.Occupied:
		return 'o'
	default:
		return 'v'
	}
}

// Equal reports whether every field, including Label, matches.
func (l Line) Equal(o Line) bool {
	return l.Label == o.Label && l.BlockKind == o.BlockKind && l.Equivalent(o)
}

// Equivalent reports whether the kind bits match, ignoring Label.
func (l Line) Equivalent(o Line) bool {
	return l.Occupied == o.Occupied &&
		l.Active == o.Active &&
		l.Sigma == o.Sigma &&
		l.Density == o.Density
}

// SameKind is Equivalent with a deterministic tie-break for sigma lines:
// among two equivalent sigma lines, the one with the lexicographically
// smaller label is considered "not greater" so that e.g. L always compares
// before R. Nothing else in this module calls it: Genericize and the
// candidate hash-consing classify lines through Kind instead.
func (l Line) SameKind(o Line) bool {
	if !l.Equivalent(o) {
		return false
	}
	if l.Sigma && o.Sigma {
		return l.Label <= o.Label
	}
	return true
}

// Less implements the total order: Sigma > Density > virtual-before-
// occupied > Active > Label, matching the invariant in §3.
func (l Line) Less(o Line) bool {
	if l.Sigma != o.Sigma {
		return l.Sigma
	}
	if l.Density != o.Density {
		return l.Density
	}
	if l.Occupied != o.Occupied {
		return !l.Occupied
	}
	if l.Active != o.Active {
		return l.Active
	}
	return l.Label < o.Label
}

// String renders the line as its label, with the block character appended
// if present (e.g. "ia" for an alpha-blocked occupied line "i").
func (l Line) String() string {
	if l.HasBlock() {
		return l.Label + string(l.Block())
	}
	return l.Label
}

// MapLines builds an old→new label-preserving renaming: every line in
// oldLines and newLines first maps to itself (identity), then positions
// 0..min(len(oldLines),len(newLines))-1 override old[i] -> new[i]. This
// mirrors mapping a candidate's lines onto a matched subtree's lines when
// externals-to-externals and internals-to-fresh-internals renamings are
// constructed (§4.5, §9).
func MapLines(oldLines, newLines []Line) map[Line]Line {
	out := make(map[Line]Line, len(oldLines)+len(newLines))
	for _, l := range oldLines {
		out[l] = l
	}
	for _, l := range newLines {
		out[l] = l
	}
	n := len(oldLines)
	if len(newLines) < n {
		n = len(newLines)
	}
	for i := 0; i < n; i++ {
		out[oldLines[i]] = newLines[i]
	}
	return out
}
