package tour

import "fmt"

// Edge is an undirected edge between two cities, canonicalized so that the
// larger city index is stored in A. Two edges are equal iff they join the same
// pair of cities, in either direction.
type Edge struct {
	A int
	B int
}

// NewEdge returns the canonical edge joining u and v.
func NewEdge(u, v int) Edge {
	if u < v {
		return Edge{A: v, B: u}
	}

	return Edge{A: u, B: v}
}

// String renders the edge as "A-B".
func (e Edge) String() string { return fmt.Sprintf("%d-%d", e.A, e.B) }

// EdgeSet is a small multiset of canonical edges. The zero value is not
// usable; create one with NewEdgeSet.
type EdgeSet struct {
	m map[Edge]int
}

// NewEdgeSet returns an empty set sized for about capacity edges.
func NewEdgeSet(capacity int) *EdgeSet {
	return &EdgeSet{m: make(map[Edge]int, capacity)}
}

// Add inserts one occurrence of the edge u–v.
func (s *EdgeSet) Add(u, v int) {
	s.m[NewEdge(u, v)]++
}

// Contains reports whether at least one occurrence of u–v is present.
func (s *EdgeSet) Contains(u, v int) bool { return s.m[NewEdge(u, v)] > 0 }

