// Package seed builds initial tours for the Lin–Kernighan engine.
//
// Providers:
//
//	Identity(n)               cities in index order.
//	Random(n, seed)           deterministic shuffle; seed 0 selects a fixed stream.
//	NearestNeighbor(inst, s)  greedy walk from city s to the nearest unvisited city.
//	MultiStart(ctx, inst)     best NearestNeighbor walk over several start cities.
//
// MultiStart follows the classic multi-start scheme: for i = 0..starts-1 the
// walk begins at the city farthest from i, and the lightest closed walk wins.
// By default starts = n for n < 300 and 6 otherwise. Walks run concurrently
// but the result is deterministic: ties go to the lowest i.
//
// All providers return permutations of 0..n-1 with an implicit closing edge;
// Path.Weight is the full cycle length including that edge.
package seed
