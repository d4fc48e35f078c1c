package suffixarray

// SAIS builds suffix arrays by induced sorting (Nong, Zhang and Chan).
type SAIS struct{}

// Build implements Builder. The text is mapped to [1, Size] and terminated
// with a virtual 0 so that induced sorting sees a unique smallest suffix.
func (SAIS) Build(text []int, alpha Alphabet) (*Array, error) {
	if err := alpha.validate(text); err != nil {
		return nil, err
	}
	n := len(text)
	s := make([]int, n+1)
	for i, c := range text {
		s[i] = c - alpha.Shift + 1
	}

	sa := induced(s, alpha.Size+1, make([]int, n+1), make([]int, n+1))
	// sa[0] is the virtual terminator
	return newArray(text, sa[1:]), nil
}

// induced returns the suffix array of s, which must end with a unique 0 and
// hold symbols in [0, k). sa and names are scratch buffers of len(s) that
// recursive calls reuse.
func induced(s []int, k int, sa, names []int) []int {
	n := len(s)
	sa = sa[:n]
	fill(sa, -1)
	if n == 1 {
		sa[0] = 0
		return sa
	}

	stype := classify(s)
	var lms []int
	for i := 1; i < n; i++ {
		if isLMS(stype, i) {
			lms = append(lms, i)
		}
	}

	// Sort LMS substrings, then name them by order of appearance.
	b := newBuckets(s, k)
	induceSort(s, sa, stype, b, lms)
	sorted := make([]int, 0, len(lms))
	for _, pos := range sa {
		if isLMS(stype, pos) {
			sorted = append(sorted, pos)
		}
	}

	names = names[:n]
	fill(names, -1)
	name := 0
	for i, pos := range sorted {
		if i > 0 && !lmsEqual(s, stype, sorted[i-1], pos) {
			name++
		}
		names[pos] = name
	}

	reduced := make([]int, len(lms))
	for i, pos := range lms {
		reduced[i] = names[pos]
	}

	var reducedSA []int
	if name+1 < len(reduced) {
		reducedSA = induced(reduced, name+1, sa, names)
	} else {
		// names are unique, so they already order the reduced suffixes
		reducedSA = make([]int, len(reduced))
		for i, nm := range reduced {
			reducedSA[nm] = i
		}
	}

	ordered := make([]int, len(reducedSA))
	for i, idx := range reducedSA {
		ordered[i] = lms[idx]
	}

	fill(sa, -1)
	induceSort(s, sa, stype, b, ordered)
	return sa
}

// classify marks S-type positions true and L-type positions false.
func classify(s []int) []bool {
	n := len(s)
	stype := make([]bool, n)
	stype[n-1] = true
	for i := n - 2; i >= 0; i-- {
		switch {
		case s[i] < s[i+1]:
			stype[i] = true
		case s[i] > s[i+1]:
			stype[i] = false
		default:
			stype[i] = stype[i+1]
		}
	}
	return stype
}

func isLMS(stype []bool, i int) bool {
	return i > 0 && stype[i] && !stype[i-1]
}

// lmsEqual reports whether the LMS substrings starting at i and j are equal.
// The terminator is an LMS position, so the scan always stops in bounds.
func lmsEqual(s []int, stype []bool, i, j int) bool {
	for d := 0; ; d++ {
		a, b := i+d, j+d
		if s[a] != s[b] || stype[a] != stype[b] {
			return false
		}
		if d > 0 {
			aEnd, bEnd := isLMS(stype, a), isLMS(stype, b)
			if aEnd || bEnd {
				return aEnd && bEnd
			}
		}
	}
}

// buckets groups suffix array slots by first symbol. ptr is reset to the
// bucket heads or tails before each induce pass and moves as slots fill.
type buckets struct {
	sizes []int
	ptr   []int
}

func newBuckets(s []int, k int) *buckets {
	b := &buckets{sizes: make([]int, k), ptr: make([]int, k)}
	for _, c := range s {
		b.sizes[c]++
	}
	return b
}

func (b *buckets) heads() []int {
	sum := 0
	for c, size := range b.sizes {
		b.ptr[c] = sum
		sum += size
	}
	return b.ptr
}

func (b *buckets) tails() []int {
	sum := 0
	for c, size := range b.sizes {
		sum += size
		b.ptr[c] = sum - 1
	}
	return b.ptr
}

// induceSort drops lms into the bucket tails in order, then induces L-type
// suffixes left to right and S-type suffixes right to left.
func induceSort(s, sa []int, stype []bool, b *buckets, lms []int) {
	tail := b.tails()
	for i := len(lms) - 1; i >= 0; i-- {
		c := s[lms[i]]
		sa[tail[c]] = lms[i]
		tail[c]--
	}

	head := b.heads()
	for _, pos := range sa {
		if pos <= 0 || stype[pos-1] {
			continue
		}
		c := s[pos-1]
		sa[head[c]] = pos - 1
		head[c]++
	}

	tail = b.tails()
	for i := len(sa) - 1; i >= 0; i-- {
		pos := sa[i]
		if pos <= 0 || !stype[pos-1] {
			continue
		}
		c := s[pos-1]
		sa[tail[c]] = pos - 1
		tail[c]--
	}
}

func fill(xs []int, v int) {
	for i := range xs {
		xs[i] = v
	}
}
