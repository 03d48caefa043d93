// Package instance holds the read-only problem data for the tour engine:
// the cities of a 2D Euclidean TSP instance and the integer distance matrix
// derived from them.
//
// Distances are rounded to the nearest integer exactly once, at construction:
//
//	dist[i][j] = round( sqrt( (x_i − x_j)² + (y_i − y_j)² ) )
//
// Every consumer (tour lengths, move gains, greedy constructors) reads the
// same int64 values, so gain arithmetic in local search is exact.
//
// Besides the matrix, an Instance lazily builds per-city candidate lists
// (other cities sorted by distance, lowest index first on ties). They are
// shared by the move search (nearest-neighbor guided y-edge selection) and
// by the greedy seed constructors.
//
// Complexity:
//   - Build:     O(n²) time, O(n²) memory.
//   - Neighbors: O(n² log n) once, on first use; O(n²) memory.
//
// Concurrency:
//   - An Instance is immutable after Build and safe for concurrent readers.
//     Neighbor lists are built under a sync.Once.
package instance
