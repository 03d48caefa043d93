// Package linkern is a Lin–Kernighan tour improver for Euclidean point sets:
// give it cities and a starting tour, get back a locally optimal tour that is
// never longer than what you started with.
//
// 🚀 What is linkern?
//
//	A small, deterministic TSP toolkit that brings together:
//		• Instances: points, rounded all-pairs distances, nearest-neighbor lists
//		• Tours: cyclic permutations with O(1) successor/predecessor lookup
//		• Reconstruction: rebuild a tour from "edges removed + edges added"
//		• Lin–Kernighan: greedy sequential edge exchanges, first improvement
//		• Seeds: identity, random, nearest-neighbor and multi-start tours
//		• Bounds: Held–Karp 1-tree lower bound to report optimality gaps
//
// ✨ Guarantees
//
//   - Every tour the engine reaches is a permutation; invalid exchanges are
//     rejected, never repaired.
//   - Each committed exchange strictly shortens the tour; the loop stops on
//     the first scan that finds nothing.
//   - Parallel evaluation (lk.WithWorkers) returns exactly the sequential
//     result.
//
// Packages:
//
//	instance/ — City, Instance, distance matrix and candidate lists
//	tour/     — Tour, Edge, permutation helpers and Reconstruct
//	lk/       — move search and improvement loop (Improve, ImproveTour)
//	seed/     — initial tour providers (NearestNeighbor, MultiStart, ...)
//	bound/    — 1-tree lower bound
//	tspio/    — plain-text instance and tour files
//	metrics/  — Prometheus recorder for lk progress
//	cmd/linkern — command-line driver
//
// Quick ASCII example:
//
//	    1───2          1───2
//	     ╲ ╱           │   │
//	     ╱ ╲    ⇒      │   │
//	    0───3          0───3
//
//	the crossing tour 0→2→1→3 of a 10×10 square (length 48) becomes the
//	perimeter (length 40) after one 2-exchange.
//
//	go install github.com/katalvlaran/linkern/cmd/linkern@latest
package linkern
