package instance

import "errors"

// ErrInvalidInput is returned when instance data is insufficient or malformed:
// fewer than MinCities cities, a non-finite or out-of-range coordinate, or a
// repeated city ID.
var ErrInvalidInput = errors.New("instance: invalid input")

// MinCities is the smallest instance size for which a tour is defined.
const MinCities = 3

// MaxCoordinate bounds |X| and |Y|. Edge lengths then stay below 3e12, so
// rounding to int64 is exact and cycle sums cannot overflow for any instance
// whose matrix fits in memory.
const MaxCoordinate = 1e12

// City is a point of the instance. ID is the caller's identifier (e.g. the
// first column of an input file); the engine addresses cities by their index
// in the instance, never by ID.
type City struct {
	ID int
	X  float64
	Y  float64
}
