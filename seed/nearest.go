// Package seed - greedy nearest-neighbor walks.
//
// The walk is iterative and marks visited cities in a bitset; the distance
// matrix is never written to. Each step takes the first unvisited city of the
// current city's candidate list, which is ordered by distance and then index,
// so ties resolve to the lowest index.
//
// Complexity: O(n²) worst case per walk, O(n) extra space.
package seed

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/linkern/instance"
)

// NearestNeighbor walks from start, always moving to the nearest unvisited
// city, and closes the cycle back to start.
func NearestNeighbor(inst *instance.Instance, start int) (Path, error) {
	if inst == nil {
		return Path{}, fmt.Errorf("%w: nil instance", ErrStartOutOfRange)
	}
	var n = inst.N()
	if start < 0 || start >= n {
		return Path{}, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	var (
		order   = make([]int, 1, n)
		visited = bitset.New(uint(n))
		cur     = start
		weight  int64
		c       int
	)
	order[0] = start
	visited.Set(uint(start))
	for len(order) < n {
		for _, c = range inst.Neighbors(cur) {
			if !visited.Test(uint(c)) {
				break
			}
		}
		visited.Set(uint(c))
		weight += inst.Dist(cur, c)
		order = append(order, c)
		cur = c
	}
	weight += inst.Dist(cur, start)

	return Path{Order: order, Weight: weight}, nil
}

// Farthest returns the city farthest from i, lowest index on ties.
func Farthest(inst *instance.Instance, i int) int {
	var (
		row  = inst.Row(i)
		best = -1
		j    int
	)
	for j = range row {
		if j == i {
			continue
		}
		if best < 0 || row[j] > row[best] {
			best = j
		}
	}

	return best
}
