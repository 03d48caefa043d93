package lk

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Options configures Improve. Zero values select the defaults documented on
// each field; use DefaultOptions plus Option functions rather than building
// the struct by hand.
type Options struct {
	MaxPasses  int           // scan cap; 0 ⇒ n²
	MaxDepth   int           // exchange steps per search; 0 ⇒ n (always capped at n)
	Candidates int           // y-edge candidates per city; 0 ⇒ all n-1
	TimeLimit  time.Duration // 0 ⇒ unlimited
	Workers    int           // concurrent searches per window; ≤1 ⇒ sequential
	Context    context.Context // cancellation, probed together with TimeLimit
	Logger     *slog.Logger
	Recorder   Recorder
}

// Option is a functional option for Improve.
type Option func(*Options)

// DefaultOptions returns the sequential, unbounded configuration with a
// discarding logger and no recorder.
func DefaultOptions() Options {
	return Options{
		Context:  context.Background(),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Recorder: nopRecorder{},
	}
}

// WithMaxPasses caps the number of full scans (safety cap against
// pathological non-convergence).
func WithMaxPasses(k int) Option { return func(o *Options) { o.MaxPasses = k } }

// WithMaxDepth caps the number of x/y steps explored by a single search.
func WithMaxDepth(k int) Option { return func(o *Options) { o.MaxDepth = k } }

// WithCandidates limits y-edge candidates to the k nearest cities.
func WithCandidates(k int) Option { return func(o *Options) { o.Candidates = k } }

// WithTimeLimit sets a soft wall-clock budget for the whole run.
func WithTimeLimit(d time.Duration) Option { return func(o *Options) { o.TimeLimit = d } }

// WithWorkers evaluates up to k start positions concurrently. The result is
// identical to the sequential scan.
func WithWorkers(k int) Option { return func(o *Options) { o.Workers = k } }

// WithContext stops the run when ctx is done. Improve then returns the tour
// reached so far with ctx.Err(). A nil context keeps the default.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Context = ctx
		}
	}
}

// WithLogger routes debug traces to l. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder installs progress hooks. A nil recorder keeps the default.
func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.Recorder = r
		}
	}
}

// validateOptions rejects negative budgets. It does not need the instance.
func validateOptions(o Options) error {
	if o.MaxPasses < 0 || o.MaxDepth < 0 || o.Candidates < 0 || o.Workers < 0 {
		return ErrBadOption
	}
	if o.TimeLimit < 0 {
		return ErrBadOption
	}

	return nil
}

// resolve fills size-dependent defaults for an instance of n cities.
func (o Options) resolve(n int) Options {
	if o.MaxPasses == 0 {
		o.MaxPasses = n * n
	}
	if o.MaxDepth == 0 || o.MaxDepth > n {
		o.MaxDepth = n
	}
	if o.Candidates == 0 || o.Candidates > n-1 {
		o.Candidates = n - 1
	}
	if o.Workers < 1 {
		o.Workers = 1
	}

	return o
}
