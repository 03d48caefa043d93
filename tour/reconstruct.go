// Package tour - rebuilding a permutation from an edited edge set.
//
// An exchange is described as "tour edges minus removed plus added". The
// result is valid only when every city ends up with exactly two incident
// edges and walking them visits all n cities once before returning to the
// start. Anything else (a removed edge that is not on the tour, a self-loop,
// a third edge at a city, a doubled edge, several subtours) is reported as
// ErrInfeasibleExchange.
//
// Design:
//   - Incidence is kept as two slots per city; a free slot is -1. This makes
//     removal and insertion O(1) and detects degree overflow immediately.
//   - The walk marks visited cities in a bitset instead of writing sentinels
//     into shared data, so a reconstruction never mutates its inputs.
//
// Complexity: O(n + |removed| + |added|) time, O(n) space.
package tour

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/linkern/instance"
)

const freeSlot = -1

// incidence stores up to two neighbors per city.
type incidence [][2]int

func newIncidence(n int) incidence {
	inc := make(incidence, n)
	var c int
	for c = 0; c < n; c++ {
		inc[c] = [2]int{freeSlot, freeSlot}
	}

	return inc
}

// link adds the edge u–v; it fails on self-loops, out-of-range cities or a
// city that already has two incident edges.
func (inc incidence) link(u, v int) bool {
	var n = len(inc)
	if u == v || u < 0 || v < 0 || u >= n || v >= n {
		return false
	}
	if !inc.fill(u, v) {
		return false
	}
	if !inc.fill(v, u) {
		inc.clear(u, v)
		return false
	}

	return true
}

// unlink removes one occurrence of u–v; it fails when the edge is absent.
func (inc incidence) unlink(u, v int) bool {
	var n = len(inc)
	if u < 0 || v < 0 || u >= n || v >= n {
		return false
	}
	if !inc.clear(u, v) {
		return false
	}
	if !inc.clear(v, u) {
		inc.fill(u, v)
		return false
	}

	return true
}

func (inc incidence) fill(c, nb int) bool {
	if inc[c][0] == freeSlot {
		inc[c][0] = nb
		return true
	}
	if inc[c][1] == freeSlot {
		inc[c][1] = nb
		return true
	}

	return false
}

func (inc incidence) clear(c, nb int) bool {
	if inc[c][0] == nb {
		inc[c][0] = freeSlot
		return true
	}
	if inc[c][1] == nb {
		inc[c][1] = freeSlot
		return true
	}

	return false
}

// walk follows incident edges from start, leaving through slot 0 first.
func (inc incidence) walk(start int) ([]int, error) {
	var n = len(inc)
	if start < 0 || start >= n {
		return nil, ErrInfeasibleExchange
	}

	var (
		order   = make([]int, 0, n)
		visited = bitset.New(uint(n))
		prev    = freeSlot
		cur     = start
		next    int
		i       int
	)
	for i = 0; i < n; i++ {
		if inc[cur][0] == freeSlot || inc[cur][1] == freeSlot {
			return nil, ErrInfeasibleExchange // degree < 2
		}
		if visited.Test(uint(cur)) {
			return nil, ErrInfeasibleExchange // closed a subtour early
		}
		visited.Set(uint(cur))
		order = append(order, cur)

		next = inc[cur][0]
		if next == prev {
			next = inc[cur][1]
		}
		prev, cur = cur, next
	}
	if cur != start {
		return nil, ErrInfeasibleExchange
	}

	return order, nil
}

// FromEdges returns the permutation described by an edge multiset over
// cities 0..n-1, walking from the first endpoint of edges[0]. It succeeds iff
// the edges form exactly one simple cycle through all n cities.
//
// Complexity: O(n).
func FromEdges(n int, edges []Edge) ([]int, error) {
	if n < instance.MinCities || len(edges) != n {
		return nil, ErrInfeasibleExchange
	}
	inc := newIncidence(n)
	for _, e := range edges {
		if !inc.link(e.A, e.B) {
			return nil, ErrInfeasibleExchange
		}
	}

	return inc.walk(edges[0].A)
}

// Reconstruct applies an exchange to order: the tour edges minus removed,
// plus added. On success the new permutation starts at order[0] and, where
// the edges around order[0] are untouched, keeps its direction.
//
// Errors:
//   - ErrInvalidTour if order is not a permutation.
//   - ErrInfeasibleExchange if a removed edge is not present or the edited
//     edge set is not a single Hamiltonian cycle.
//
// Complexity: O(n + |removed| + |added|).
func Reconstruct(order []int, removed, added []Edge) ([]int, error) {
	var n = len(order)
	if n < instance.MinCities {
		return nil, ErrInvalidTour
	}
	if err := ValidatePermutation(order, n); err != nil {
		return nil, err
	}

	inc := newIncidence(n)
	var p int
	for p = 0; p < n; p++ {
		inc.link(order[p], order[(p+1)%n])
	}

	var e Edge
	for _, e = range removed {
		if !inc.unlink(e.A, e.B) {
			return nil, ErrInfeasibleExchange
		}
	}
	for _, e = range added {
		if !inc.link(e.A, e.B) {
			return nil, ErrInfeasibleExchange
		}
	}

	return inc.walk(order[0])
}
