package lk

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkern/instance"
	"github.com/katalvlaran/linkern/tour"
)

// rejectLog keeps the errors passed to ExchangeRejected.
type rejectLog struct {
	nopRecorder
	errs []error
}

func (r *rejectLog) ExchangeRejected(err error) { r.errs = append(r.errs, err) }

// crossingEngine returns an engine over the 10×10 square whose tour is the
// crossing order 0 → 2 → 1 → 3 (length 48; the perimeter measures 40).
func crossingEngine(t *testing.T, rec Recorder) *engine {
	t.Helper()
	inst, err := instance.Build([]instance.City{
		{ID: 1, X: 0, Y: 0}, {ID: 2, X: 0, Y: 10}, {ID: 3, X: 10, Y: 10}, {ID: 4, X: 10, Y: 0},
	})
	require.NoError(t, err)
	tr, err := tour.New(inst, []int{0, 2, 1, 3})
	require.NoError(t, err)

	o := DefaultOptions()
	o.Recorder = rec
	e := newEngine(tr, o.resolve(inst.N()))
	e.cur = tr.Length()
	require.Equal(t, int64(48), e.cur)

	return e
}

func TestCommit_RejectsAndKeepsTour(t *testing.T) {
	rec := &rejectLog{}
	e := crossingEngine(t, rec)
	before := e.t.Order()

	cases := []struct {
		name string
		pr   proposal
		want error
	}{
		{"gain overstated", proposal{gain: 10, depth: 2, order: []int{0, 1, 2, 3}}, ErrGainMismatch},
		{"no decrease", proposal{gain: 0, depth: 2, order: []int{0, 2, 1, 3}}, ErrGainMismatch},
		{"duplicate city", proposal{gain: 8, depth: 2, order: []int{0, 1, 1, 3}}, tour.ErrInvalidTour},
		{"short order", proposal{gain: 8, depth: 2, order: []int{0, 1, 2}}, tour.ErrInvalidTour},
	}
	for i, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, e.commit(tc.pr))
			assert.Equal(t, before, e.t.Order())
			assert.Equal(t, int64(48), e.cur)
			assert.Equal(t, i+1, e.res.Rejected)
			assert.Zero(t, e.res.Exchanges)
			require.Len(t, rec.errs, i+1)
			assert.True(t, errors.Is(rec.errs[i], tc.want), "got %v", rec.errs[i])
		})
	}

	// A correct proposal still commits after the rejections.
	assert.True(t, e.commit(proposal{gain: 8, depth: 2, order: []int{0, 1, 2, 3}}))
	assert.Equal(t, []int{0, 1, 2, 3}, e.t.Order())
	assert.Equal(t, int64(40), e.cur)
	assert.Equal(t, 1, e.res.Exchanges)
	assert.Equal(t, len(cases), e.res.Rejected)
}

func TestRun_ContinuesAfterRejections(t *testing.T) {
	rec := &rejectLog{}
	e := crossingEngine(t, rec)
	e.commit(proposal{gain: 3, order: []int{0, 1, 2, 3}})
	e.commit(proposal{gain: 1, order: []int{3, 3, 3, 3}})
	require.Equal(t, 2, e.res.Rejected)

	res, err := e.run()
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, int64(40), res.Length)
	assert.Equal(t, 1, res.Exchanges)
	assert.Equal(t, 2, res.Rejected)
	assert.Len(t, rec.errs, 2)
}
