package srfd

// firstKSubset returns the lexicographically first k-subset of [0, n) as a
// sorted index slice ({0, 1, ..., k-1}).
func firstKSubset(k int) []int {
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	return idx
}

// nextKSubset advances idx to the next lexicographic k-subset of [0, n) in
// place and reports whether one exists. Standard "next combination"
// algorithm: find the rightmost index not already at its maximum value,
// increment it, then reset every index to its right to the smallest value
// consistent with strictly increasing order.
func nextKSubset(idx []int, n int) bool {
	k := len(idx)
	i := k - 1
	for i >= 0 && idx[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	idx[i]++
	for j := i + 1; j < k; j++ {
		idx[j] = idx[i] + (j - i)
	}

	return true
}
