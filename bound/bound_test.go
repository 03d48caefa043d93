package bound_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkern/bound"
	"github.com/katalvlaran/linkern/instance"
	"github.com/katalvlaran/linkern/lk"
	"github.com/katalvlaran/linkern/seed"
)

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

func TestOneTree_TightOnSmallInstances(t *testing.T) {
	for _, tc := range []struct {
		name string
		inst *instance.Instance
		want int64
	}{
		{"square", build(t, [2]float64{0, 0}, [2]float64{0, 10}, [2]float64{10, 10}, [2]float64{10, 0}), 40},
		{"collinear", build(t, [2]float64{0, 0}, [2]float64{1, 0}, [2]float64{2, 0}), 4},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res, err := bound.OneTree(tc.inst, bound.DefaultConfig())
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Bound)
			assert.True(t, res.Tight)
			assert.Equal(t, 1, res.Iterations)
			for _, d := range res.Degrees {
				assert.Equal(t, 2, d)
			}
		})
	}
}

func TestOneTree_BelowImprovedTours(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for _, n := range []int{8, 25, 70} {
		pts := make([][2]float64, n)
		for i := range pts {
			pts[i] = [2]float64{rng.Float64() * 100, rng.Float64() * 100}
		}
		inst := build(t, pts...)

		res, err := lk.Improve(inst, seed.Identity(n))
		require.NoError(t, err)

		plain, err := bound.OneTree(inst, bound.DefaultConfig())
		require.NoError(t, err)
		assert.LessOrEqual(t, plain.Bound, res.Length, "n=%d", n)
		assert.Positive(t, plain.Bound)

		cfg := bound.DefaultConfig()
		cfg.UpperBound = res.Length
		guided, err := bound.OneTree(inst, cfg)
		require.NoError(t, err)
		assert.LessOrEqual(t, guided.Bound, res.Length, "n=%d", n)
		assert.GreaterOrEqual(t, bound.Gap(res.Length, guided.Bound), 0.0)
	}
}

func TestOneTree_BadConfig(t *testing.T) {
	inst := build(t, [2]float64{0, 0}, [2]float64{1, 0}, [2]float64{2, 0})
	for _, cfg := range []bound.Config{
		{Iterations: 0, Alpha: 1},
		{Iterations: 5, Alpha: 0},
		{Iterations: 5, Alpha: 2},
	} {
		_, err := bound.OneTree(inst, cfg)
		assert.ErrorIs(t, err, bound.ErrBadConfig)
	}
	_, err := bound.OneTree(nil, bound.DefaultConfig())
	assert.ErrorIs(t, err, bound.ErrBadConfig)
}

func TestGap(t *testing.T) {
	assert.InDelta(t, 0.25, bound.Gap(50, 40), 1e-12)
	assert.Zero(t, bound.Gap(50, 0))
	assert.Zero(t, bound.Gap(40, 40))
}
