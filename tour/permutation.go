// Package tour - permutation utilities shared by the engine and seeds.
//
// These helpers operate on open permutations (len == n, closing edge
// implicit) and do not depend on distances.
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - RotateToStart: cyclic shift so the order begins at a given city.
//   - CanonicalizeOrientation: pick one of the two directions of a cycle.
//   - EqualModuloRotation / SameCycle: cycle equality.
//
// Design:
//   - Bare sentinels only (ErrInvalidTour); they sit on the commit path.
//   - O(n) time, at most one O(n) marker slice.
package tour

// ValidatePermutation checks that perm is a permutation of {0..n-1} of
// length n.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrInvalidTour
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return ErrInvalidTour
		}
		if seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}

	return nil
}

// RotateToStart returns a fresh copy of order shifted so that out[0] == start.
//
// Complexity: O(n) time, O(n) space.
func RotateToStart(order []int, start int) ([]int, error) {
	var (
		n     = len(order)
		i     int
		pivot = -1
	)
	for i = 0; i < n; i++ {
		if order[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, ErrInvalidTour
	}

	out := make([]int, n)
	for i = 0; i < n; i++ {
		out[i] = order[(pivot+i)%n]
	}

	return out, nil
}

// CanonicalizeOrientation fixes the direction of the cycle in place while
// keeping order[0]: if the right neighbor order[1] is larger than the left
// neighbor order[n-1], the segment order[1..n-1] is reversed.
//
// Complexity: O(n) time, O(1) space.
func CanonicalizeOrientation(order []int) {
	var n = len(order)
	if n < 3 || order[1] <= order[n-1] {
		return
	}
	var i, k = 1, n - 1
	for i < k {
		order[i], order[k] = order[k], order[i]
		i++
		k--
	}
}

// EqualModuloRotation reports whether a and b visit the cities in the same
// cyclic order and the same direction.
//
// Complexity: O(n).
func EqualModuloRotation(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	rb, err := RotateToStart(b, a[0])
	if err != nil {
		return false
	}
	var i int
	for i = range a {
		if a[i] != rb[i] {
			return false
		}
	}

	return true
}

// SameCycle reports whether a and b describe the same undirected cycle, i.e.
// they are equal modulo rotation in either direction.
//
// Complexity: O(n).
func SameCycle(a, b []int) bool {
	if EqualModuloRotation(a, b) {
		return true
	}
	rev := make([]int, len(b))
	var i int
	for i = range b {
		rev[len(b)-1-i] = b[i]
	}

	return EqualModuloRotation(a, rev)
}
