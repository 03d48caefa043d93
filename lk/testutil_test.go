// Package lk_test shares fixtures across the lk tests.
package lk_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkern/instance"
	"github.com/katalvlaran/linkern/tour"
)

// crossing visits the corners of a square diagonally first: 0 → 2 → 1 → 3.
var crossing = []int{0, 2, 1, 3}

func build(t testing.TB, pts ...[2]float64) *instance.Instance {
	t.Helper()
	cs := make([]instance.City, len(pts))
	for i, p := range pts {
		cs[i] = instance.City{ID: i + 1, X: p[0], Y: p[1]}
	}
	inst, err := instance.Build(cs)
	require.NoError(t, err)

	return inst
}

// square returns the corners (0,0) (0,s) (s,s) (s,0).
func square(t testing.TB, s float64) *instance.Instance {
	t.Helper()

	return build(t, [2]float64{0, 0}, [2]float64{0, s}, [2]float64{s, s}, [2]float64{s, 0})
}

// polygon returns n points on a circle of radius r in angular order.
func polygon(t testing.TB, n int, r float64) *instance.Instance {
	t.Helper()
	pts := make([][2]float64, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{r * math.Cos(a), r * math.Sin(a)}
	}

	return build(t, pts...)
}

// uniform returns n points drawn uniformly from [0,1000)² with a fixed seed.
func uniform(t testing.TB, n int, seed int64) *instance.Instance {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	pts := make([][2]float64, n)
	for i := range pts {
		pts[i] = [2]float64{rng.Float64() * 1000, rng.Float64() * 1000}
	}

	return build(t, pts...)
}

// shuffled returns a seeded random permutation of 0..n-1.
func shuffled(n int, seed int64) []int {
	return rand.New(rand.NewSource(seed)).Perm(n)
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// requireTour asserts order is a permutation whose length is want.
func requireTour(t *testing.T, inst *instance.Instance, order []int, want int64) {
	t.Helper()
	require.NoError(t, tour.ValidatePermutation(order, inst.N()))
	got, err := tour.Length(inst, order)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// traceRecorder keeps every event it receives.
type traceRecorder struct {
	lengths  []int64
	gains    []int64
	depths   []int
	rejected []error
}

func (r *traceRecorder) PassCompleted(_ int, length int64) { r.lengths = append(r.lengths, length) }

func (r *traceRecorder) ExchangeCommitted(gain int64, depth int) {
	r.gains = append(r.gains, gain)
	r.depths = append(r.depths, depth)
}

func (r *traceRecorder) ExchangeRejected(err error) { r.rejected = append(r.rejected, err) }
