package kcommon

import (
	"cmp"
	"slices"
)

// Occurrence is a match of a pattern inside one of the indexed strings.
// Offset counts characters from the start of the string.
type Occurrence struct {
	String int
	Offset int
}

// Locate returns every occurrence of pattern, ordered by string then offset.
func (x *Index) Locate(pattern string) []Occurrence {
	enc, ok := x.text.encode(pattern)
	if !ok || len(enc) == 0 {
		return nil
	}

	lo, hi := x.sa.Search(enc)
	var occs []Occurrence
	for i := lo; i < hi; i++ {
		pos := x.sa.Suffix(i)
		s := x.text.Owner(pos)
		occs = append(occs, Occurrence{String: s, Offset: pos - x.text.Start(s)})
	}

	slices.SortFunc(occs, func(a, b Occurrence) int {
		if c := cmp.Compare(a.String, b.String); c != 0 {
			return c
		}
		return cmp.Compare(a.Offset, b.Offset)
	})
	return occs
}
