package lk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkern/lk"
)

func TestImprove_ParallelMatchesSequential(t *testing.T) {
	for _, n := range []int{4, 9, 33, 100} {
		inst := uniform(t, n, int64(n))
		start := shuffled(n, int64(n)+1)

		want, err := lk.Improve(inst, start)
		require.NoError(t, err)

		for _, w := range []int{2, 3, 8, 200} {
			rec := &traceRecorder{}
			got, err := lk.Improve(inst, start, lk.WithWorkers(w), lk.WithRecorder(rec))
			require.NoError(t, err)
			assert.Equal(t, want, got, "n=%d workers=%d", n, w)
			assert.Len(t, rec.gains, got.Exchanges)
		}
	}
}

func TestImprove_ParallelSquare(t *testing.T) {
	inst := square(t, 10)

	res, err := lk.Improve(inst, crossing, lk.WithWorkers(4))
	require.NoError(t, err)
	assert.Equal(t, int64(40), res.Length)
	assert.Equal(t, 1, res.Exchanges)
}
