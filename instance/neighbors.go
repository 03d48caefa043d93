package instance

import "sort"

// Neighbors returns the other cities ordered by distance from city i,
// ascending, ties broken by lower index. The first call builds the lists for
// every city; the returned slice is shared and must not be modified.
//
// Complexity: O(n² log n) on first call, O(1) afterwards.
func (in *Instance) Neighbors(i int) []int {
	in.neighborsOnce.Do(in.buildNeighbors)

	return in.neighbors[i]
}

// Nearest returns the globally nearest other city to i (lowest index on ties).
func (in *Instance) Nearest(i int) int {
	return in.Neighbors(i)[0]
}

func (in *Instance) buildNeighbors() {
	var (
		n    = in.n
		i, j int
	)
	in.neighbors = make([][]int, n)
	for i = 0; i < n; i++ {
		list := make([]int, 0, n-1)
		for j = 0; j < n; j++ {
			if j != i {
				list = append(list, j)
			}
		}
		row := in.Row(i)
		sort.SliceStable(list, func(a, b int) bool {
			da, db := row[list[a]], row[list[b]]
			if da != db {
				return da < db
			}

			return list[a] < list[b]
		})
		in.neighbors[i] = list
	}
}
