// Package lk - the sequential edge-exchange search (one LK step).
//
// Notation: the move state is the city sequence t1, t2, t3, ... where
//
//	x_i = (t_{2i-1}, t_{2i})   removed tour edges,
//	y_i = (t_{2i}, t_{2i+1})   added edges,
//	closing edge (t_{2k}, t1)  turns k removals and k−1 additions into a tour.
//
// The running gain after x_i is G = Σ|x| − Σ|y|, and the gain of closing at
// step i is G + |x_i| − |(t_{2i}, t1)| where G is taken before x_i.
//
// Design:
//   - The search only reads the tour and the instance; all scratch state is
//     local to one call, so independent start positions may be searched
//     concurrently between commits.
//   - t3 is the globally nearest city to t2 and is checked by distance only;
//     structural problems with it surface later as infeasible closings.
//   - Feasibility of a closing is decided by actually reconstructing the
//     permutation; the reconstruction is kept for the best closing point so a
//     commit does not rebuild it.
package lk

import (
	"github.com/katalvlaran/linkern/instance"
	"github.com/katalvlaran/linkern/tour"
)

// proposal is a gain-positive exchange found from one start position.
type proposal struct {
	position int   // start position t1 was taken from
	gain     int64 // length decrease promised by the exchange
	depth    int   // number of removed (and added) edges
	order    []int // reconstructed permutation
}

// searcher runs move searches against one tour.
type searcher struct {
	inst       *instance.Instance
	t          *tour.Tour
	maxDepth   int
	candidates int
}

// fromPosition searches for an improving exchange starting at position p,
// trying the successor direction first and then the predecessor.
func (s *searcher) fromPosition(p int) (proposal, bool) {
	var (
		t1 = s.t.At(p)
		t2 int
		t3 int
	)
	for _, t2 = range [2]int{s.t.Next(t1), s.t.Prev(t1)} {
		t3 = s.inst.Nearest(t2)
		// The new edge must be strictly shorter than the one it replaces.
		if s.inst.Dist(t2, t3) >= s.inst.Dist(t1, t2) {
			continue
		}
		if pr, ok := s.sequential(t1, t2, t3); ok {
			pr.position = p
			return pr, true
		}
	}

	return proposal{}, false
}

// sequential extends the exchange t1→t2→t3 greedily and returns the best
// closing found, if its gain is positive.
func (s *searcher) sequential(t1, t2, t3 int) (proposal, bool) {
	var (
		d       = s.inst.Dist
		base    = s.t.Order()
		removed = tour.NewEdgeSet(2 * s.maxDepth)
		added   = tour.NewEdgeSet(2 * s.maxDepth)
		xs      = make([]tour.Edge, 0, s.maxDepth)
		ys      = make([]tour.Edge, 0, s.maxDepth)
		best    proposal
		g       = d(t1, t2) - d(t2, t3)
		last    = t3
		t4, t5  int
		gx      int64
		closing int64
		order   []int
		ok      bool
		step    int
	)
	xs = append(xs, tour.NewEdge(t1, t2))
	ys = append(ys, tour.NewEdge(t2, t3))
	removed.Add(t1, t2)
	added.Add(t2, t3)

	for step = 0; step < s.maxDepth; step++ {
		t4, order, ok = s.selectClose(base, t1, last, xs, ys, removed, added)
		if !ok {
			break // no feasible continuation
		}
		xs = append(xs, tour.NewEdge(last, t4))
		removed.Add(last, t4)
		gx = g + d(last, t4)

		closing = gx - d(t4, t1)
		if closing > best.gain {
			best = proposal{gain: closing, depth: len(xs), order: order}
		}

		t5, ok = s.nextY(t4, gx, removed, added)
		if !ok {
			break
		}
		ys = append(ys, tour.NewEdge(t4, t5))
		added.Add(t4, t5)
		g = gx - d(t4, t5)
		last = t5
	}

	return best, best.gain > 0
}

// selectClose picks t_{2i} among the tour neighbors of last (predecessor
// first) such that removing (last, t_{2i}) and closing with (t_{2i}, t1)
// yields a valid tour. It returns the chosen city and that tour.
func (s *searcher) selectClose(base []int, t1, last int, xs, ys []tour.Edge, removed, added *tour.EdgeSet) (int, []int, bool) {
	var (
		cand  int
		order []int
		err   error
	)
	for _, cand = range [2]int{s.t.Prev(last), s.t.Next(last)} {
		if cand == t1 {
			continue // closing edge would be a self-loop
		}
		if removed.Contains(last, cand) || added.Contains(last, cand) {
			continue // x must be an unused tour edge
		}
		if removed.Contains(cand, t1) || added.Contains(cand, t1) {
			continue // closing edge must be disjoint from the path
		}
		order, err = tour.Reconstruct(base,
			withEdge(xs, tour.NewEdge(last, cand)),
			withEdge(ys, tour.NewEdge(cand, t1)),
		)
		if err == nil {
			return cand, order, true
		}
	}

	return 0, nil, false
}

// nextY picks t_{2i+1}: the nearest candidate c of t4 such that the running
// gain stays positive, (t4, c) is neither a tour edge nor already placed, and
// c still has an unused tour edge to remove next.
func (s *searcher) nextY(t4 int, gx int64, removed, added *tour.EdgeSet) (int, bool) {
	var (
		cands = s.inst.Neighbors(t4)
		c     int
	)
	if len(cands) > s.candidates {
		cands = cands[:s.candidates]
	}
	for _, c = range cands {
		// Candidates are sorted by distance: once the gain test fails it
		// fails for every remaining candidate.
		if gx-s.inst.Dist(t4, c) <= 0 {
			break
		}
		if s.t.HasEdge(t4, c) || removed.Contains(t4, c) || added.Contains(t4, c) {
			continue
		}
		if !s.hasFreeX(c, removed, added) {
			continue
		}

		return c, true
	}

	return 0, false
}

// hasFreeX reports whether c has a tour edge not yet used by the exchange.
func (s *searcher) hasFreeX(c int, removed, added *tour.EdgeSet) bool {
	var nb int
	for _, nb = range [2]int{s.t.Prev(c), s.t.Next(c)} {
		if !removed.Contains(c, nb) && !added.Contains(c, nb) {
			return true
		}
	}

	return false
}

// withEdge returns a fresh slice holding list followed by e.
func withEdge(list []tour.Edge, e tour.Edge) []tour.Edge {
	out := make([]tour.Edge, len(list)+1)
	copy(out, list)
	out[len(list)] = e

	return out
}
