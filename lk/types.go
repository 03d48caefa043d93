package lk

import "errors"

var (
	// ErrTimeLimit is returned when the configured wall-clock budget expires
	// before convergence. The accompanying Result still holds a valid tour.
	ErrTimeLimit = errors.New("lk: time limit exceeded")

	// ErrBadOption signals an invalid option value (negative budgets, etc.).
	ErrBadOption = errors.New("lk: invalid option")

	// ErrGainMismatch marks a proposed exchange whose reconstructed tour does
	// not shorten the current one by the promised gain. It is only reported
	// through Recorder.ExchangeRejected; the run continues.
	ErrGainMismatch = errors.New("lk: exchange gain mismatch")
)

// Result describes a finished improvement run.
type Result struct {
	// Tour is the final permutation of city indices (closing edge implicit).
	Tour []int

	// Length is the cycle length of Tour.
	Length int64

	// InitialLength is the cycle length of the starting tour.
	InitialLength int64

	// Passes counts scans that shortened the tour. An already locally optimal
	// input converges with Passes == 0.
	Passes int

	// Scans counts all full scans, including the final non-improving one.
	Scans int

	// Exchanges is the number of committed exchanges.
	Exchanges int

	// Rejected is the number of proposed exchanges that failed validation.
	Rejected int

	// Converged is true when the last scan found no improvement, false when a
	// budget stopped the loop first.
	Converged bool
}

// Recorder receives progress events from the improvement loop. Calls are made
// from the goroutine running Improve, never concurrently for one run.
type Recorder interface {
	// PassCompleted is called after every scan with the tour length.
	PassCompleted(scan int, length int64)

	// ExchangeCommitted is called for each applied exchange with its gain and
	// the number of edges it replaced.
	ExchangeCommitted(gain int64, depth int)

	// ExchangeRejected is called when a proposed exchange fails validation.
	ExchangeRejected(err error)
}

type nopRecorder struct{}

func (nopRecorder) PassCompleted(int, int64)     {}
func (nopRecorder) ExchangeCommitted(int64, int) {}
func (nopRecorder) ExchangeRejected(error)       {}
