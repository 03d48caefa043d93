package tour

import "errors"

var (
	// ErrInvalidTour indicates that a proposed order is not a permutation of
	// 0..n-1 of the expected length.
	ErrInvalidTour = errors.New("tour: not a permutation of the instance cities")

	// ErrInfeasibleExchange indicates that an edited edge set does not form a
	// single simple cycle over all cities (missing/extra incident edges,
	// self-loops, removal of a non-tour edge, or several subtours).
	ErrInfeasibleExchange = errors.New("tour: edge set is not a single Hamiltonian cycle")
)
