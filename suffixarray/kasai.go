package suffixarray

// Kasai computes the LCP array of text for the suffix array sa in linear
// time. lcp[i] is the longest common prefix of suffixes sa[i-1] and sa[i].
func Kasai(text, sa []int) []int {
	n := len(sa)
	lcp := make([]int, n)
	inv := make([]int, n)
	for i, pos := range sa {
		inv[pos] = i
	}

	h := 0
	for i := 0; i < n; i++ {
		if inv[i] == 0 {
			continue
		}
		j := sa[inv[i]-1]
		for i+h < n && j+h < n && text[i+h] == text[j+h] {
			h++
		}
		lcp[inv[i]] = h
		// the next suffix shares at least h-1 symbols with its predecessor
		if h > 0 {
			h--
		}
	}
	return lcp
}
