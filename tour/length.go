package tour

import "github.com/katalvlaran/linkern/instance"

// Length returns the cycle length of order over inst, including the closing
// edge from the last city back to the first. It is a pure query usable for
// reporting before and after improvement.
//
// Returns ErrInvalidTour if order is not a permutation of inst's cities.
//
// Complexity: O(n).
func Length(inst *instance.Instance, order []int) (int64, error) {
	if inst == nil {
		return 0, ErrInvalidTour
	}
	if err := ValidatePermutation(order, inst.N()); err != nil {
		return 0, err
	}

	return cycleLength(inst, order), nil
}

// cycleLength sums dist over consecutive pairs with wraparound; order is
// assumed valid.
func cycleLength(inst *instance.Instance, order []int) int64 {
	var (
		n   = len(order)
		sum int64
		p   int
	)
	for p = 0; p < n-1; p++ {
		sum += inst.Dist(order[p], order[p+1])
	}
	if n > 1 {
		sum += inst.Dist(order[n-1], order[0])
	}

	return sum
}
