// Package lk implements a greedy, nearest-neighbor guided Lin–Kernighan
// local search for the symmetric Euclidean TSP.
//
// The engine has two layers:
//
//   - Move search (one LK step). From a start city t1 it removes a tour edge
//     x1=(t1,t2), adds y1=(t2,t3) towards the globally nearest city t3, and
//     keeps alternating removed (x) and added (y) edges while the running gain
//     Σ|x| − Σ|y| stays positive. At every step it evaluates closing the
//     exchange back to t1 and remembers the best closing point. If the best
//     closing gain is positive the exchange is reconstructed into a new
//     permutation; otherwise nothing happens.
//
//   - Improvement loop. One pass runs the move search from every position and
//     applies each improving exchange immediately (first improvement). Passes
//     repeat until a pass leaves the tour length unchanged.
//
// Guarantees:
//   - Every reachable tour is a permutation of 0..n-1: exchanges go through
//     tour.Reconstruct and tour.Tour.Replace, which reject rather than repair.
//   - Each committed exchange strictly shortens the tour; a pass never makes
//     it longer; the loop stops only on a pass with zero improvement or when a
//     budget (MaxPasses, TimeLimit) is exhausted.
//   - Running Improve on a converged tour returns it unchanged.
//
// This is a heuristic: only one greedy path of exchanges is explored per start
// city and direction, so the result is a local optimum of that neighborhood,
// not an optimal tour.
//
// Options:
//
//	WithMaxPasses(k)   cap on full scans (default n²).
//	WithMaxDepth(k)    cap on exchange steps per search (default n).
//	WithCandidates(k)  y-edge candidates per city, nearest first (default all).
//	WithTimeLimit(d)   wall-clock budget; exceeded ⇒ ErrTimeLimit with the best tour so far.
//	WithWorkers(k)     evaluate k start positions concurrently per window.
//	WithLogger(l)      *slog.Logger for debug traces (default: discard).
//	WithRecorder(r)    hooks for metrics (see package metrics).
//
// Complexity (per search): O(depth · n) for reconstructions and candidate
// scans; one pass is O(n² · depth) in the worst case.
package lk
