package tour_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkern/tour"
)

func TestNew_RejectsNonPermutations(t *testing.T) {
	inst := square10(t)
	cases := map[string][]int{
		"nil":          nil,
		"short":        {0, 1, 2},
		"long":         {0, 1, 2, 3, 0},
		"duplicate":    {0, 1, 1, 3},
		"out of range": {0, 1, 2, 4},
		"negative":     {0, -1, 2, 3},
	}
	for name, order := range cases {
		t.Run(name, func(t *testing.T) {
			tr, err := tour.New(inst, order)
			assert.True(t, errors.Is(err, tour.ErrInvalidTour), "got %v", err)
			assert.Nil(t, tr)
		})
	}

	_, err := tour.New(nil, []int{0, 1, 2})
	assert.ErrorIs(t, err, tour.ErrInvalidTour)
}

func TestTour_Navigation(t *testing.T) {
	inst := square10(t)
	tr, err := tour.New(inst, []int{2, 0, 3, 1})
	require.NoError(t, err)

	require.Equal(t, 4, tr.N())
	assert.Equal(t, 1, tr.Successor(0))
	assert.Equal(t, 0, tr.Successor(3))
	assert.Equal(t, 3, tr.Predecessor(0))
	assert.Equal(t, 2, tr.Predecessor(3))

	for p := 0; p < tr.N(); p++ {
		assert.Equal(t, p, tr.PositionOf(tr.At(p)))
	}
	assert.Equal(t, 3, tr.Next(0))
	assert.Equal(t, 2, tr.Prev(0))
	assert.Equal(t, 2, tr.Next(1)) // wraparound
	assert.True(t, tr.HasEdge(1, 2))
	assert.True(t, tr.HasEdge(2, 1))
	assert.False(t, tr.HasEdge(0, 1))
	assert.False(t, tr.HasEdge(0, 0))

	assert.Equal(t, int64(14), tr.DistanceBetweenPositions(0, 1)) // 2 -> 0 diagonal
	assert.Equal(t, "[2 0 3 1 | 2]", tr.String())
}

func TestTour_Length(t *testing.T) {
	inst := square10(t)

	perimeter, err := tour.New(inst, []int{0, 1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, int64(40), perimeter.Length())

	crossing, err := tour.New(inst, []int{0, 2, 1, 3})
	require.NoError(t, err)
	assert.Equal(t, int64(48), crossing.Length())

	got, err := tour.Length(inst, []int{0, 2, 1, 3})
	require.NoError(t, err)
	assert.Equal(t, crossing.Length(), got)

	_, err = tour.Length(inst, []int{0, 2, 2, 3})
	assert.ErrorIs(t, err, tour.ErrInvalidTour)
}

func TestTour_ReplaceIsAtomic(t *testing.T) {
	inst := square10(t)
	tr, err := tour.New(inst, []int{0, 1, 2, 3})
	require.NoError(t, err)

	err = tr.Replace([]int{0, 1, 1, 3})
	require.ErrorIs(t, err, tour.ErrInvalidTour)
	assert.Equal(t, []int{0, 1, 2, 3}, tr.Order(), "rejected replacement must keep the old tour")
	assert.Equal(t, 2, tr.PositionOf(2))

	require.NoError(t, tr.Replace([]int{3, 1, 0, 2}))
	assert.Equal(t, []int{3, 1, 0, 2}, tr.Order())
	assert.Equal(t, 0, tr.PositionOf(3))
	assert.Equal(t, 3, tr.PositionOf(2))
}

func TestTour_OrderIsACopy(t *testing.T) {
	inst := square10(t)
	src := []int{0, 1, 2, 3}
	tr, err := tour.New(inst, src)
	require.NoError(t, err)

	src[0] = 3
	out := tr.Order()
	out[1] = 0
	assert.Equal(t, []int{0, 1, 2, 3}, tr.Order())
}

func TestEdge_Canonical(t *testing.T) {
	assert.Equal(t, tour.NewEdge(3, 5), tour.NewEdge(5, 3))
	e := tour.NewEdge(1, 9)
	assert.Equal(t, 9, e.A)
	assert.Equal(t, 1, e.B)
	assert.Equal(t, "9-1", e.String())
}

func TestEdgeSet_Multiset(t *testing.T) {
	s := tour.NewEdgeSet(4)
	s.Add(1, 2)
	s.Add(2, 1)
	s.Add(3, 4)
	assert.True(t, s.Contains(1, 2))
	assert.True(t, s.Contains(2, 1))
	assert.True(t, s.Contains(4, 3))
	assert.False(t, s.Contains(1, 3))
	assert.False(t, s.Contains(2, 2))
}
