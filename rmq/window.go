package rmq

import (
	"github.com/xiles84/kcommon/internal/errs"
)

// Window tracks the minimum of values[lo:hi) while both ends only move
// forward. Each value enters and leaves the deque once, so a full sweep
// costs O(n).
type Window struct {
	values []int
	lo, hi int
	// deque holds indices in [lo, hi) whose values never decrease
	deque []int
}

// NewWindow returns an empty window at the start of values.
func NewWindow(values []int) *Window {
	return &Window{values: values}
}

// Slide moves the window to [lo, hi). Neither end may move backwards.
func (w *Window) Slide(lo, hi int) error {
	if lo < w.lo || hi < w.hi || lo > hi || hi > len(w.values) {
		return errs.Invariantf("window [%d, %d) cannot move to [%d, %d) over %d values", w.lo, w.hi, lo, hi, len(w.values))
	}

	for ; w.hi < hi; w.hi++ {
		v := w.values[w.hi]
		for len(w.deque) > 0 && w.values[w.deque[len(w.deque)-1]] > v {
			w.deque = w.deque[:len(w.deque)-1]
		}
		w.deque = append(w.deque, w.hi)
	}

	w.lo = lo
	for len(w.deque) > 0 && w.deque[0] < lo {
		w.deque = w.deque[1:]
	}
	return nil
}

// Min returns the minimum of the current window.
func (w *Window) Min() (int, error) {
	if w.lo >= w.hi {
		return 0, errs.Invariantf("empty window at %d", w.lo)
	}
	return w.values[w.deque[0]], nil
}
