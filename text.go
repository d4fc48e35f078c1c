// Package kcommon finds the longest substrings shared by at least k of a set
// of strings, using a generalized suffix array, its LCP array and a sliding
// window over suffix order.
package kcommon

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/xiles84/kcommon/internal/errs"
	"github.com/xiles84/kcommon/suffixarray"
)

// Text is the concatenation of the input strings as integer symbols, each
// string followed by its own sentinel. Sentinels occupy [0, n) for n strings
// and characters are shifted into [n, n+maxCode-minCode], so every sentinel
// sorts before every character.
type Text struct {
	symbols []int
	// owner maps each position to the string that contributed it
	owner  []int
	starts []int

	numStrings int
	shift      int
	span       int
}

// BuildText concatenates strs into a generalized text. Characters are
// Unicode code points, so every string must be valid UTF-8. Empty strings
// contribute only their sentinel, but at least one string must be non-empty.
func BuildText(strs []string) (*Text, error) {
	if len(strs) < 2 {
		return nil, errs.InvalidArgumentf("need at least 2 strings, got %d", len(strs))
	}
	for i, s := range strs {
		if !utf8.ValidString(s) {
			return nil, errs.InvalidArgumentf("string %d is not valid UTF-8", i)
		}
	}

	numStrings := len(strs)
	minCode, maxCode := math.MaxInt32, math.MinInt32
	length := numStrings
	for _, s := range strs {
		for _, r := range s {
			c := int(r)
			if c < minCode {
				minCode = c
			}
			if c > maxCode {
				maxCode = c
			}
			length++
		}
	}
	if length == numStrings {
		return nil, errs.InvalidArgumentf("%d strings hold no characters", numStrings)
	}

	t := &Text{
		symbols:    make([]int, 0, length),
		owner:      make([]int, 0, length),
		starts:     make([]int, numStrings),
		numStrings: numStrings,
		shift:      numStrings - minCode,
		span:       maxCode - minCode,
	}
	hiChar := numStrings + t.span
	for i, s := range strs {
		t.starts[i] = len(t.symbols)
		for _, r := range s {
			c := int(r) + t.shift
			if c < numStrings || c > hiChar {
				return nil, errs.Invariantf("character %d of string %d shifted to %d, want [%d, %d]", r, i, c, numStrings, hiChar)
			}
			t.symbols = append(t.symbols, c)
			t.owner = append(t.owner, i)
		}
		sentinel := i
		if sentinel < 0 || sentinel >= numStrings {
			return nil, errs.Invariantf("sentinel %d outside [0, %d)", sentinel, numStrings)
		}
		t.symbols = append(t.symbols, sentinel)
		t.owner = append(t.owner, i)
	}
	return t, nil
}

// Len returns the number of symbols, sentinels included.
func (t *Text) Len() int {
	return len(t.symbols)
}

// NumStrings returns the number of concatenated strings.
func (t *Text) NumStrings() int {
	return t.numStrings
}

// Symbol returns the symbol at pos.
func (t *Text) Symbol(pos int) int {
	return t.symbols[pos]
}

// Owner returns the index of the string that contributed pos.
func (t *Text) Owner(pos int) int {
	return t.owner[pos]
}

// Start returns the position at which string s begins.
func (t *Text) Start(s int) int {
	return t.starts[s]
}

// IsSentinel reports whether pos holds a string terminator.
func (t *Text) IsSentinel(pos int) bool {
	return t.symbols[pos] < t.numStrings
}

// Alphabet returns the bounds of all symbols in the text.
func (t *Text) Alphabet() suffixarray.Alphabet {
	return suffixarray.Alphabet{Shift: 0, Size: t.numStrings + t.span + 1}
}

// Decode returns the n characters starting at pos with the shift reversed.
// The range must not contain a sentinel.
func (t *Text) Decode(pos, n int) string {
	var b strings.Builder
	for _, c := range t.symbols[pos : pos+n] {
		b.WriteRune(rune(c - t.shift))
	}
	return b.String()
}

// encode shifts pattern into text symbols. It returns false if some
// character lies outside the text's alphabet and so cannot occur.
func (t *Text) encode(pattern string) ([]int, bool) {
	var enc []int
	for _, r := range pattern {
		c := int(r) + t.shift
		if c < t.numStrings || c > t.numStrings+t.span {
			return nil, false
		}
		enc = append(enc, c)
	}
	return enc, true
}
