package seed

// Identity returns 0, 1, ..., n-1. It returns nil for n <= 0.
func Identity(n int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = i
	}

	return out
}

// Random returns a permutation of 0..n-1 shuffled by a stream derived from
// seed. The same (n, seed) always yields the same permutation.
func Random(n int, seed int64) []int {
	out := Identity(n)
	shuffleIntsInPlace(out, rngFromSeed(seed))

	return out
}
