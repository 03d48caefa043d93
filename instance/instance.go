// Package instance - construction and distance lookups.
//
// Design:
//   - The matrix is stored row-major in one []int64 of length n*n, the same
//     linearized layout local search uses for cache-friendly reads.
//   - Validation happens once in Build; accessors do not re-check indices
//     beyond what the runtime bounds checks already do.
package instance

import (
	"fmt"
	"math"
	"sync"
)

// Instance is an ordered, immutable collection of cities with its derived
// symmetric distance matrix.
type Instance struct {
	cities []City
	n      int
	dist   []int64 // dist[i*n+j]

	neighborsOnce sync.Once
	neighbors     [][]int
}

// Build validates cities and derives the distance matrix.
//
// Errors (wrapping ErrInvalidInput):
//   - fewer than MinCities cities,
//   - a NaN or ±Inf coordinate, or one beyond ±MaxCoordinate,
//   - a duplicate City.ID.
//
// Complexity: O(n²) time and memory.
func Build(cities []City) (*Instance, error) {
	var n = len(cities)
	if n < MinCities {
		return nil, fmt.Errorf("%w: need at least %d cities, got %d", ErrInvalidInput, MinCities, n)
	}

	seen := make(map[int]int, n)

	var (
		i, j int
		c    City
		prev int
		ok   bool
	)
	for i, c = range cities {
		if !finite(c.X) || !finite(c.Y) {
			return nil, fmt.Errorf("%w: city %d has a non-finite coordinate (%v, %v)", ErrInvalidInput, c.ID, c.X, c.Y)
		}
		if math.Abs(c.X) > MaxCoordinate || math.Abs(c.Y) > MaxCoordinate {
			return nil, fmt.Errorf("%w: city %d coordinate (%v, %v) exceeds ±%g", ErrInvalidInput, c.ID, c.X, c.Y, MaxCoordinate)
		}
		if prev, ok = seen[c.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate city id %d at indices %d and %d", ErrInvalidInput, c.ID, prev, i)
		}
		seen[c.ID] = i
	}

	inst := &Instance{
		cities: make([]City, n),
		n:      n,
		dist:   make([]int64, n*n),
	}
	copy(inst.cities, cities)

	// Fill the upper triangle and mirror it; the diagonal stays zero.
	var d int64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = euclid(cities[i], cities[j])
			inst.dist[i*n+j] = d
			inst.dist[j*n+i] = d
		}
	}

	return inst, nil
}

// N returns the number of cities.
func (in *Instance) N() int { return in.n }

// City returns the city stored at index i.
func (in *Instance) City(i int) City { return in.cities[i] }

// Cities returns a copy of the city slice in index order.
func (in *Instance) Cities() []City {
	out := make([]City, in.n)
	copy(out, in.cities)

	return out
}

// Dist returns the rounded distance between cities i and j.
func (in *Instance) Dist(i, j int) int64 { return in.dist[i*in.n+j] }

// Row returns the distances from city i to every city. The slice aliases the
// matrix and must not be modified.
func (in *Instance) Row(i int) []int64 { return in.dist[i*in.n : (i+1)*in.n] }

// euclid returns the Euclidean distance between a and b rounded half away
// from zero, the rounding used throughout the engine.
func euclid(a, b City) int64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return int64(math.Round(math.Sqrt(dx*dx + dy*dy)))
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
