package suffixarray

import (
	"cmp"
	"slices"
)

// PrefixDoubling sorts suffixes by the ranks of their length 1, 2, 4, ...
// prefixes until every rank is distinct.
type PrefixDoubling struct{}

// rankTuple ranks a suffix by the two halves of its current prefix.
type rankTuple struct {
	first, second, index int
}

func compareTuples(a, b rankTuple) int {
	if c := cmp.Compare(a.first, b.first); c != 0 {
		return c
	}
	return cmp.Compare(a.second, b.second)
}

// Build implements Builder.
func (PrefixDoubling) Build(text []int, alpha Alphabet) (*Array, error) {
	if err := alpha.validate(text); err != nil {
		return nil, err
	}
	return newArray(text, doubling(text, alpha.Shift)), nil
}

func doubling(text []int, shift int) []int {
	n := len(text)

	// rank is read each round and next is written; they swap afterwards.
	rank := make([]int, n)
	next := make([]int, n)
	tuples := make([]rankTuple, n)
	for i, c := range text {
		rank[i] = c - shift
		tuples[i].index = i
	}

	for pos := 1; pos < n; pos *= 2 {
		for i := range tuples {
			second := -1
			if i+pos < n {
				second = rank[i+pos]
			}
			tuples[i] = rankTuple{first: rank[i], second: second, index: i}
		}

		slices.SortFunc(tuples, compareTuples)

		r := 0
		next[tuples[0].index] = 0
		for i := 1; i < n; i++ {
			if compareTuples(tuples[i-1], tuples[i]) != 0 {
				r++
			}
			next[tuples[i].index] = r
		}
		rank, next = next, rank

		if r == n-1 {
			break
		}
	}

	sa := make([]int, n)
	for i, t := range tuples {
		sa[i] = t.index
	}
	return sa
}
