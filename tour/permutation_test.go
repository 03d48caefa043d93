package tour_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkern/tour"
)

func TestValidatePermutation(t *testing.T) {
	assert.NoError(t, tour.ValidatePermutation([]int{2, 0, 1}, 3))
	assert.ErrorIs(t, tour.ValidatePermutation([]int{2, 0, 1}, 4), tour.ErrInvalidTour)
	assert.ErrorIs(t, tour.ValidatePermutation([]int{2, 2, 1}, 3), tour.ErrInvalidTour)
	assert.ErrorIs(t, tour.ValidatePermutation([]int{}, 0), tour.ErrInvalidTour)
}

func TestRotateToStart(t *testing.T) {
	out, err := tour.RotateToStart([]int{4, 1, 3, 0, 2}, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 0, 2, 4, 1}, out)

	_, err = tour.RotateToStart([]int{0, 1, 2}, 7)
	assert.ErrorIs(t, err, tour.ErrInvalidTour)
}

func TestCanonicalizeOrientation(t *testing.T) {
	order := []int{0, 4, 3, 2, 1}
	tour.CanonicalizeOrientation(order)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)

	already := []int{0, 1, 2, 3, 4}
	tour.CanonicalizeOrientation(already)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, already)
}

func TestCycleEquality(t *testing.T) {
	a := []int{0, 1, 2, 3, 4}
	assert.True(t, tour.EqualModuloRotation(a, []int{2, 3, 4, 0, 1}))
	assert.False(t, tour.EqualModuloRotation(a, []int{0, 4, 3, 2, 1}))
	assert.True(t, tour.SameCycle(a, []int{0, 4, 3, 2, 1}))
	assert.True(t, tour.SameCycle(a, []int{3, 2, 1, 0, 4}))
	assert.False(t, tour.SameCycle(a, []int{0, 2, 1, 3, 4}))
	assert.False(t, tour.SameCycle(a, []int{0, 1, 2, 3}))
}
