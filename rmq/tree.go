// Package rmq implements a compact bottom-up segment tree answering
// range-minimum queries over a fixed number of non-negative values.
package rmq

import (
	"github.com/xiles84/kcommon/internal/errs"
)

// absent marks a leaf that was never updated. It is never a real value and
// acts as the identity of the min combine.
const absent = -1

// Tree is an array-backed min segment tree. Leaves live in [n, 2n) and the
// parent of node i is i>>1.
type Tree struct {
	n    int
	tree []int
}

// New returns a tree over n leaves, all absent.
func New(n int) *Tree {
	t := &Tree{n: n, tree: make([]int, 2*n)}
	for i := range t.tree {
		t.tree[i] = absent
	}
	return t
}

// FromValues builds a tree by updating each leaf in increasing index order.
func FromValues(values []int) (*Tree, error) {
	t := New(len(values))
	for i, v := range values {
		if err := t.Update(i, v); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Len returns the number of leaves.
func (t *Tree) Len() int {
	return t.n
}

func combine(a, b int) int {
	switch {
	case a == absent:
		return b
	case b == absent:
		return a
	case a < b:
		return a
	default:
		return b
	}
}

// Update combines value into leaf i and refreshes its ancestors, O(log n).
func (t *Tree) Update(i, value int) error {
	if i < 0 || i >= t.n {
		return errs.InvalidArgumentf("leaf %d outside [0, %d)", i, t.n)
	}
	if value < 0 {
		return errs.InvalidArgumentf("negative value %d at leaf %d", value, i)
	}
	i += t.n
	t.tree[i] = combine(t.tree[i], value)
	for ; i > 1; i >>= 1 {
		t.tree[i>>1] = combine(t.tree[i], t.tree[i^1])
	}
	return nil
}

// Query returns the minimum over the half-open interval [lo, hi), O(log n).
// An empty or out-of-domain range, or one covering only absent leaves, is a
// caller bug and reported as an invariant violation.
func (t *Tree) Query(lo, hi int) (int, error) {
	if lo < 0 || hi > t.n || lo >= hi {
		return 0, errs.Invariantf("query [%d, %d) outside [0, %d)", lo, hi, t.n)
	}
	res := absent
	for l, r := lo+t.n, hi+t.n; l < r; l, r = l>>1, r>>1 {
		if l&1 != 0 {
			res = combine(res, t.tree[l])
			l++
		}
		if r&1 != 0 {
			r--
			res = combine(res, t.tree[r])
		}
	}
	if res == absent {
		return 0, errs.Invariantf("query [%d, %d) covers only absent leaves", lo, hi)
	}
	return res, nil
}
