// Package tour_test shares small fixtures across the tour tests.
package tour_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkern/instance"
	"github.com/katalvlaran/linkern/tour"
)

// square10 is the square of side 10: (0,0) (0,10) (10,10) (10,0).
// Sides measure 10 and diagonals round to 14.
func square10(t *testing.T) *instance.Instance {
	t.Helper()

	return build(t, [2]float64{0, 0}, [2]float64{0, 10}, [2]float64{10, 10}, [2]float64{10, 0})
}

// polygon returns n points on a circle of radius r, in angular order.
func polygon(t *testing.T, n int, r float64) *instance.Instance {
	t.Helper()
	pts := make([][2]float64, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{r * math.Cos(a), r * math.Sin(a)}
	}

	return build(t, pts...)
}

func build(t *testing.T, pts ...[2]float64) *instance.Instance {
	t.Helper()
	cs := make([]instance.City, len(pts))
	for i, p := range pts {
		cs[i] = instance.City{ID: i, X: p[0], Y: p[1]}
	}
	inst, err := instance.Build(cs)
	require.NoError(t, err)

	return inst
}

// cycleEdges returns the edges of an open permutation including the closing edge.
func cycleEdges(order []int) []tour.Edge {
	n := len(order)
	out := make([]tour.Edge, n)
	for p := 0; p < n; p++ {
		out[p] = tour.NewEdge(order[p], order[(p+1)%n])
	}

	return out
}

// edgeCounts returns the multiset of edges as a map.
func edgeCounts(edges []tour.Edge) map[tour.Edge]int {
	m := make(map[tour.Edge]int, len(edges))
	for _, e := range edges {
		m[e]++
	}

	return m
}
