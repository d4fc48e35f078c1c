package suffixarray

// Search returns the range [lo, hi) of suffix array indices whose suffixes
// start with pattern. The range is empty when pattern does not occur.
func (a *Array) Search(pattern []int) (int, int) {
	lo := a.lowerBound(pattern)
	hi := a.upperBound(pattern)
	if lo > hi {
		return lo, lo
	}
	return lo, hi
}

func (a *Array) lowerBound(pattern []int) int {
	lo, hi := 0, len(a.sa)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if a.compareSuffix(a.sa[mid], pattern) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

func (a *Array) upperBound(pattern []int) int {
	lo, hi := 0, len(a.sa)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if a.compareSuffix(a.sa[mid], pattern) <= 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// compareSuffix compares the suffix at pos, truncated to len(pattern),
// against pattern.
func (a *Array) compareSuffix(pos int, pattern []int) int {
	i := 0
	for i < len(pattern) && pos+i < len(a.text) {
		if c := a.text[pos+i]; c != pattern[i] {
			if c < pattern[i] {
				return -1
			}
			return 1
		}
		i++
	}
	if i < len(pattern) {
		return -1
	}
	return 0
}
