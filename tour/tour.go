// Package tour - the mutable tour handle used by the improvement loop.
//
// Tour pairs the permutation with its inverse index so both position→city and
// city→position lookups are O(1). The instance is referenced, never copied.
//
// Design:
//   - Replace is the only mutator; it validates the full permutation first and
//     swaps order and index only on success.
//   - Readers used by concurrent searches (Next, Prev, HasEdge, ...) never
//     write, so a Tour may be shared by read-only goroutines between commits.
package tour

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/linkern/instance"
)

// Tour is a cyclic permutation of the cities of an instance.
type Tour struct {
	inst  *instance.Instance
	order []int // position -> city
	pos   []int // city -> position
}

// New validates order against inst and returns a tour over a private copy.
// Returns ErrInvalidTour when order is not a permutation of 0..n-1.
//
// Complexity: O(n).
func New(inst *instance.Instance, order []int) (*Tour, error) {
	if inst == nil {
		return nil, ErrInvalidTour
	}
	t := &Tour{inst: inst}
	if err := t.Replace(order); err != nil {
		return nil, err
	}

	return t, nil
}

// Instance returns the instance the tour is defined over.
func (t *Tour) Instance() *instance.Instance { return t.inst }

// N returns the number of cities in the tour.
func (t *Tour) N() int { return len(t.order) }

// At returns the city at position p.
func (t *Tour) At(p int) int { return t.order[p] }

// Order returns a copy of the current permutation.
func (t *Tour) Order() []int {
	out := make([]int, len(t.order))
	copy(out, t.order)

	return out
}

// Successor returns the position following p, wrapping at the end.
func (t *Tour) Successor(p int) int {
	if p == len(t.order)-1 {
		return 0
	}

	return p + 1
}

// Predecessor returns the position preceding p, wrapping at the start.
func (t *Tour) Predecessor(p int) int {
	if p == 0 {
		return len(t.order) - 1
	}

	return p - 1
}

// PositionOf returns the position of city c within the tour.
func (t *Tour) PositionOf(c int) int { return t.pos[c] }

// Next returns the city visited right after city c.
func (t *Tour) Next(c int) int { return t.order[t.Successor(t.pos[c])] }

// Prev returns the city visited right before city c.
func (t *Tour) Prev(c int) int { return t.order[t.Predecessor(t.pos[c])] }

// HasEdge reports whether u and v are adjacent in the tour.
func (t *Tour) HasEdge(u, v int) bool {
	return u != v && (t.Next(u) == v || t.Prev(u) == v)
}

// DistanceBetweenPositions returns dist[order[p]][order[q]].
func (t *Tour) DistanceBetweenPositions(p, q int) int64 {
	return t.inst.Dist(t.order[p], t.order[q])
}

// Length returns the total cycle length including the closing edge.
//
// Complexity: O(n).
func (t *Tour) Length() int64 { return cycleLength(t.inst, t.order) }

// Replace installs newOrder as the tour. It fails with ErrInvalidTour, and
// leaves the tour unchanged, if newOrder is not a permutation of the same
// cities.
//
// Complexity: O(n).
func (t *Tour) Replace(newOrder []int) error {
	var n = t.inst.N()
	if err := ValidatePermutation(newOrder, n); err != nil {
		return err
	}

	order := make([]int, n)
	pos := make([]int, n)
	copy(order, newOrder)

	var p int
	for p = 0; p < n; p++ {
		pos[order[p]] = p
	}
	t.order, t.pos = order, pos

	return nil
}

// String renders the tour compactly, e.g. "[0 3 1 2 | 0]" where the bar marks
// the implicit closing edge.
func (t *Tour) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for p, c := range t.order {
		if p > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(c))
	}
	if len(t.order) > 0 {
		b.WriteString(" | ")
		b.WriteString(strconv.Itoa(t.order[0]))
	}
	b.WriteByte(']')

	return b.String()
}
