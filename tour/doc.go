// Package tour provides the cyclic-permutation tour used by the improvement
// engine, canonical undirected edges, and reconstruction of a tour from an
// edited edge set.
//
// A tour over n cities is an open permutation order[0..n-1]; the closing edge
// order[n-1]→order[0] is implicit. Unlike closed [n+1] encodings, rotations of
// the same cycle are all valid tours, so callers compare cycles with
// EqualModuloRotation or SameCycle rather than slice equality.
//
// Invariants:
//   - Every city 0..n-1 appears exactly once (ValidatePermutation).
//   - Tour.Replace validates before swapping; a rejected replacement leaves
//     the tour untouched.
//   - Reconstruct and FromEdges either prove that an edge multiset is one
//     simple cycle covering all n cities or fail with ErrInfeasibleExchange.
//     They never return a partial or duplicated permutation.
//
// Complexity:
//   - Successor/Predecessor/PositionOf/Next/Prev/HasEdge: O(1).
//   - Length, Replace, Reconstruct, FromEdges: O(n).
package tour
