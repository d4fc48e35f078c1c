// Package suffixarray builds suffix arrays and LCP arrays over integer texts.
//
// Two construction strategies are provided behind the Builder interface:
// PrefixDoubling, which sorts rank pairs in O(n log^2 n), and SAIS, which
// runs induced sorting in O(n). Both return the same array for the same text
// since all suffixes of a text are distinct.
package suffixarray

import (
	"github.com/xiles84/kcommon/internal/errs"
)

// Alphabet bounds the symbols of a text to [Shift, Shift+Size).
type Alphabet struct {
	Shift int
	Size  int
}

func (a Alphabet) validate(text []int) error {
	if len(text) == 0 {
		return errs.InvalidArgumentf("empty text")
	}
	if a.Size <= 0 {
		return errs.InvalidArgumentf("alphabet size must be positive, got %d", a.Size)
	}
	for i, c := range text {
		if c < a.Shift || c >= a.Shift+a.Size {
			return errs.InvalidArgumentf("symbol %d at %d outside [%d, %d)", c, i, a.Shift, a.Shift+a.Size)
		}
	}
	return nil
}

// Builder constructs a suffix array and its LCP array.
type Builder interface {
	Build(text []int, alpha Alphabet) (*Array, error)
}

// Array holds a text with its suffix array and LCP array. It is read-only
// after construction.
type Array struct {
	text []int
	sa   []int
	lcp  []int
}

func newArray(text, sa []int) *Array {
	return &Array{
		text: text,
		sa:   sa,
		lcp:  Kasai(text, sa),
	}
}

// Len returns the length of the text.
func (a *Array) Len() int {
	return len(a.sa)
}

// Suffix returns the text position of the i-th smallest suffix.
func (a *Array) Suffix(i int) int {
	return a.sa[i]
}

// LCP returns the longest common prefix of suffixes i-1 and i; LCP(0) is 0.
func (a *Array) LCP(i int) int {
	return a.lcp[i]
}

// Symbol returns the text symbol at position pos.
func (a *Array) Symbol(pos int) int {
	return a.text[pos]
}
