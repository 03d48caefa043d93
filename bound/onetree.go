package bound

import (
	"math"

	"github.com/katalvlaran/linkern/instance"
)

const root = 0

// engine holds the reusable state for building 1-trees on reduced costs.
type engine struct {
	inst   *instance.Instance
	n      int
	pi     []float64
	deg    []int
	inTree []bool
	parent []int
	key    []float64
}

func newEngine(inst *instance.Instance) *engine {
	n := inst.N()

	return &engine{
		inst:   inst,
		n:      n,
		pi:     make([]float64, n),
		deg:    make([]int, n),
		inTree: make([]bool, n),
		parent: make([]int, n),
		key:    make([]float64, n),
	}
}

func (e *engine) reduced(u, v int) float64 {
	return float64(e.inst.Dist(u, v)) + e.pi[u] + e.pi[v]
}

// build forms a minimum 1-tree on reduced costs, fills deg and returns its
// reduced cost. Distances are finite, so the tree always exists.
func (e *engine) build() float64 {
	var (
		inf   = math.Inf(1)
		total float64
		v     int
		best  int
		k     int
		c     float64
	)
	for v = 0; v < e.n; v++ {
		e.deg[v] = 0
		e.inTree[v] = false
		e.parent[v] = -1
		e.key[v] = inf
	}
	e.key[root+1] = 0

	// Prim over every city but the root.
	for k = 0; k < e.n-1; k++ {
		best = -1
		for v = 0; v < e.n; v++ {
			if v == root || e.inTree[v] {
				continue
			}
			if best == -1 || e.key[v] < e.key[best] {
				best = v
			}
		}
		e.inTree[best] = true
		if e.parent[best] != -1 {
			total += e.key[best]
			e.deg[best]++
			e.deg[e.parent[best]]++
		}
		for v = 0; v < e.n; v++ {
			if v == root || e.inTree[v] {
				continue
			}
			if c = e.reduced(best, v); c < e.key[v] {
				e.key[v] = c
				e.parent[v] = best
			}
		}
	}

	// Two cheapest root edges.
	var (
		m1, m2     = inf, inf
		m1To, m2To = -1, -1
	)
	for v = 0; v < e.n; v++ {
		if v == root {
			continue
		}
		c = e.reduced(root, v)
		switch {
		case c < m1:
			m2, m2To = m1, m1To
			m1, m1To = c, v
		case c < m2:
			m2, m2To = c, v
		}
	}
	total += m1 + m2
	e.deg[root] += 2
	e.deg[m1To]++
	e.deg[m2To]++

	return total
}
