package kcommon

import (
	"maps"
	"slices"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/xiles84/kcommon/internal/errs"
	"github.com/xiles84/kcommon/rmq"
	"github.com/xiles84/kcommon/suffixarray"
)

// lcpSlack pads the range-minimum tree with absent leaves past the end of
// the LCP array.
const lcpSlack = 1

// Option configures an Index.
type Option func(*options)

type options struct {
	builder suffixarray.Builder
	logger  *zap.Logger
	sliding bool
}

// WithBuilder selects the suffix array construction strategy. The default
// is suffixarray.PrefixDoubling.
func WithBuilder(b suffixarray.Builder) Option {
	return func(o *options) {
		o.builder = b
	}
}

// WithSlidingMinimum makes Solve take window minima from a monotone deque
// instead of querying the range-minimum tree.
func WithSlidingMinimum() Option {
	return func(o *options) {
		o.sliding = true
	}
}

// WithLogger sets a logger that receives a debug trace of every evaluated
// window.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Index is a generalized suffix array over a fixed set of strings. It is
// immutable once built and safe for concurrent use.
type Index struct {
	text    *Text
	sa      *suffixarray.Array
	lcp     []int
	tree    *rmq.Tree
	sliding bool
	log     *zap.Logger
}

// Result is the set of longest substrings shared by at least k strings.
type Result struct {
	K      int
	Length int
	// Substrings is sorted and holds distinct values of Length characters.
	Substrings []string
}

// NewIndex builds the generalized text, suffix array, LCP array and
// range-minimum tree for strs.
func NewIndex(strs []string, opts ...Option) (*Index, error) {
	o := options{
		builder: suffixarray.PrefixDoubling{},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	text, err := BuildText(strs)
	if err != nil {
		return nil, err
	}

	sa, err := o.builder.Build(text.symbols, text.Alphabet())
	if err != nil {
		return nil, errors.WithMessage(err, "building suffix array")
	}

	lcp := make([]int, sa.Len())
	tree := rmq.New(sa.Len() + lcpSlack)
	for i := range lcp {
		lcp[i] = sa.LCP(i)
		if err := tree.Update(i, lcp[i]); err != nil {
			return nil, errors.WithMessage(err, "building lcp tree")
		}
	}

	o.logger.Debug("built index",
		zap.Int("strings", text.NumStrings()),
		zap.Int("symbols", text.Len()))

	return &Index{
		text:    text,
		sa:      sa,
		lcp:     lcp,
		tree:    tree,
		sliding: o.sliding,
		log:     o.logger,
	}, nil
}

// Solve is a one-shot NewIndex followed by Index.Solve.
func Solve(strs []string, k int, opts ...Option) (*Result, error) {
	idx, err := NewIndex(strs, opts...)
	if err != nil {
		return nil, err
	}
	return idx.Solve(k)
}

// Len returns the number of symbols in the generalized text.
func (x *Index) Len() int {
	return x.text.Len()
}

// NumStrings returns the number of indexed strings.
func (x *Index) NumStrings() int {
	return x.text.NumStrings()
}

// Solve returns the longest substrings that occur in at least k of the
// indexed strings. If no k strings share a character the result has length
// 0 and no substrings.
//
// A window [lo, hi] slides over suffix order. It grows until its suffixes
// come from k distinct strings, at which point the minimum LCP inside the
// window is the length of a prefix shared by all of them, and then shrinks
// from the left.
func (x *Index) Solve(k int) (*Result, error) {
	n := x.text.NumStrings()
	if k < 2 {
		return nil, errs.InvalidArgumentf("k must be at least 2, got %d", k)
	}
	if k > n {
		return nil, errs.InvalidArgumentf("k=%d exceeds the number of strings %d", k, n)
	}

	res := &Result{K: k}
	found := make(map[string]struct{})

	last := x.sa.Len() - 1
	// the first n suffixes start at sentinels; BuildText guarantees at
	// least one character suffix follows them
	lo, hi := n, n
	windowMin := x.windowMin()

	counts := make([]int, n)
	colors := 0
	add := func(i int) {
		s := x.text.owner[x.sa.Suffix(i)]
		if counts[s] == 0 {
			colors++
		}
		counts[s]++
	}
	remove := func(i int) {
		s := x.text.owner[x.sa.Suffix(i)]
		counts[s]--
		if counts[s] == 0 {
			colors--
		}
	}

	add(lo)
	for {
		if colors < k {
			if hi == last {
				break
			}
			hi++
			add(hi)
			continue
		}

		// k >= 2 colours means lo < hi
		windowLcp, err := windowMin(lo+1, hi+1)
		if err != nil {
			return nil, errors.WithMessagef(err, "window [%d, %d]", lo, hi)
		}
		x.log.Debug("window",
			zap.Int("k", k),
			zap.Int("lo", lo),
			zap.Int("hi", hi),
			zap.Int("lcp", windowLcp))

		if windowLcp > res.Length {
			res.Length = windowLcp
			clear(found)
		}
		if windowLcp == res.Length && windowLcp > 0 {
			found[x.text.Decode(x.sa.Suffix(lo), windowLcp)] = struct{}{}
		}

		remove(lo)
		lo++
	}

	res.Substrings = slices.Sorted(maps.Keys(found))
	return res, nil
}

// windowMin returns the minimum over lcp[lo:hi) for one Solve. The deque
// variant is stateful, so each Solve gets its own.
func (x *Index) windowMin() func(lo, hi int) (int, error) {
	if !x.sliding {
		return x.tree.Query
	}
	w := rmq.NewWindow(x.lcp)
	return func(lo, hi int) (int, error) {
		if err := w.Slide(lo, hi); err != nil {
			return 0, err
		}
		return w.Min()
	}
}
