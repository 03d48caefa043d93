package seed

import (
	"errors"
	"io"
	"log/slog"
)

var (
	// ErrStartOutOfRange is returned when a start city is not in 0..n-1.
	ErrStartOutOfRange = errors.New("seed: start out of range")

	// ErrBadOption signals an invalid MultiStart option.
	ErrBadOption = errors.New("seed: invalid option")
)

// Path is a closed walk over every city.
type Path struct {
	Order  []int // city indices; the closing edge back to Order[0] is implicit
	Weight int64 // cycle length including the closing edge
}

// Options configures MultiStart.
type Options struct {
	Starts  int // number of start cities; 0 ⇒ n if n < 300, else 6
	Workers int // concurrent walks; 0 ⇒ runtime.GOMAXPROCS(0)
	Logger  *slog.Logger
}

// Option is a functional option for MultiStart.
type Option func(*Options)

// DefaultOptions returns the classic start count with a discarding logger.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithStarts overrides the number of start cities (capped at n).
func WithStarts(k int) Option { return func(o *Options) { o.Starts = k } }

// WithWorkers bounds the number of walks run at once.
func WithWorkers(k int) Option { return func(o *Options) { o.Workers = k } }

// WithLogger routes debug traces to l. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// smallInstance is the size below which every city is tried as a start.
const smallInstance = 300

// largeStarts is the number of starts used for instances of smallInstance
// cities or more.
const largeStarts = 6
