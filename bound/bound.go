// Package bound computes the Held–Karp 1-tree lower bound for an instance,
// used to report how far an improved tour may be from optimal.
//
// For multipliers π the reduced cost of an edge is c'(i,j) = d(i,j) + π_i + π_j.
// A minimum 1-tree on c' is an MST over every city except the root plus the
// two cheapest root edges, and
//
//	L(π) = c'(T(π)) − 2·Σπ_i
//
// never exceeds the optimal tour length. Subgradient ascent moves π along
// deg_T(i) − 2. When the 1-tree is itself a Hamiltonian cycle the bound is
// tight and that cycle is optimal.
//
// Determinism: no RNG; Prim and root-edge selection break ties by index.
//
// Complexity: O(iterations · n²) time, O(n) extra space (the instance already
// holds the distance matrix).
package bound

import (
	"errors"
	"math"

	"github.com/katalvlaran/linkern/instance"
)

// ErrBadConfig signals a nil instance or invalid iteration parameters.
var ErrBadConfig = errors.New("bound: invalid config")

// Config controls the subgradient loop.
type Config struct {
	// Iterations caps subgradient steps (≥ 1).
	Iterations int
	// Alpha ∈ (0, 2) scales the step.
	Alpha float64
	// UpperBound is the length of a known tour. When positive the step is
	// Alpha·(UpperBound − L)/‖s‖²; otherwise a decreasing Alpha/(1+k) schedule.
	UpperBound int64
}

// DefaultConfig returns 50 iterations with Alpha 1 and no upper bound.
func DefaultConfig() Config {
	return Config{Iterations: 50, Alpha: 1}
}

// Result is the outcome of OneTree.
type Result struct {
	// Bound is the best lower bound found, rounded up: tour lengths are
	// integers, so no tour is shorter than it.
	Bound int64
	// Degrees of the final 1-tree.
	Degrees []int
	// Iterations actually run.
	Iterations int
	// Tight is true when a 1-tree was a Hamiltonian cycle.
	Tight bool
}

// OneTree computes the 1-tree bound rooted at city 0.
func OneTree(inst *instance.Instance, cfg Config) (Result, error) {
	if inst == nil || cfg.Iterations < 1 || cfg.Alpha <= 0 || cfg.Alpha >= 2 {
		return Result{}, ErrBadConfig
	}

	var (
		n    = inst.N()
		eng  = newEngine(inst)
		best = math.Inf(-1)
		res  Result
		iter int
		l    float64
		sum  float64
		norm float64
		step float64
		s    int
		i    int
	)
	for iter = 0; iter < cfg.Iterations; iter++ {
		res.Iterations++
		sum = 0
		for i = 0; i < n; i++ {
			sum += eng.pi[i]
		}
		l = eng.build() - 2*sum
		if l > best {
			best = l
		}

		norm = 0
		for i = 0; i < n; i++ {
			s = eng.deg[i] - 2
			norm += float64(s * s)
		}
		if norm == 0 {
			res.Tight = true
			break
		}

		if cfg.UpperBound > 0 {
			step = float64(cfg.UpperBound) - l
			if step < 0 {
				step = 0
			}
			step = cfg.Alpha * step / norm
		} else {
			step = cfg.Alpha / (1 + float64(iter))
		}
		if step == 0 {
			break
		}
		for i = 0; i < n; i++ {
			eng.pi[i] += step * float64(eng.deg[i]-2)
		}
	}

	res.Bound = int64(math.Ceil(best - 1e-6))
	res.Degrees = append([]int(nil), eng.deg...)

	return res, nil
}

// Gap returns (length − bound) / bound, the relative distance of a tour of
// the given length from the bound. It returns 0 when bound ≤ 0.
func Gap(length, bound int64) float64 {
	if bound <= 0 {
		return 0
	}

	return float64(length-bound) / float64(bound)
}
