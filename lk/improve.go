// Package lk - the improvement loop (repeated first-improvement scans).
//
// Contracts:
//   - The initial order must be a permutation of 0..n-1 (tour.ErrInvalidTour).
//   - Options are validated before any work (ErrBadOption).
//   - Every commit is re-measured and re-validated; a proposal whose length
//     does not match the promised gain, or that fails tour.Replace, is
//     rejected and counted, never applied.
//
// Termination:
//   - Converged: a full scan left the length unchanged.
//   - MaxPasses: the scan cap was reached (Converged == false, nil error).
//   - TimeLimit: ErrTimeLimit together with the tour reached so far.
//   - Context: ctx.Err() together with the tour reached so far.
package lk

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/linkern/instance"
	"github.com/katalvlaran/linkern/tour"
)

// Improve runs Lin–Kernighan improvement on initial until no scan finds an
// improving exchange, or a budget expires.
//
// The returned Result is valid whenever err is nil, ErrTimeLimit or the
// error of a done WithContext context.
func Improve(inst *instance.Instance, initial []int, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := validateOptions(o); err != nil {
		return Result{}, err
	}

	t, err := tour.New(inst, initial)
	if err != nil {
		return Result{}, fmt.Errorf("lk: initial tour: %w", err)
	}
	o = o.resolve(t.N())

	e := newEngine(t, o)

	return e.run()
}

// ImproveTour is the compact form of Improve returning only the final order
// and its length.
func ImproveTour(inst *instance.Instance, initial []int, opts ...Option) ([]int, int64, error) {
	res, err := Improve(inst, initial, opts...)
	if err != nil && res.Tour == nil {
		return nil, 0, err
	}

	return res.Tour, res.Length, err
}

// engine holds the mutable state of one Improve call.
type engine struct {
	inst *instance.Instance
	t    *tour.Tour
	s    *searcher
	opts Options
	log  *slog.Logger
	rec  Recorder
	ctx  context.Context

	cur int64 // current tour length
	res Result

	useDeadline bool
	deadline    time.Time
	steps       int // sparse deadline checks counter
}

func newEngine(t *tour.Tour, o Options) *engine {
	e := &engine{
		inst: t.Instance(),
		t:    t,
		opts: o,
		log:  o.Logger,
		rec:  o.Recorder,
		ctx:  o.Context,
		s: &searcher{
			inst:       t.Instance(),
			t:          t,
			maxDepth:   o.MaxDepth,
			candidates: o.Candidates,
		},
	}
	if o.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(o.TimeLimit)
	}

	return e
}

// interrupted performs a rare budget test (every 64 start positions);
// searches themselves are short compared to the scan.
func (e *engine) interrupted() error {
	e.steps++
	if (e.steps & 63) != 0 {
		return nil
	}
	if err := e.ctx.Err(); err != nil {
		return err
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		return ErrTimeLimit
	}

	return nil
}

func (e *engine) run() (Result, error) {
	var (
		before int64
		err    error
	)
	e.cur = e.t.Length()
	e.res.InitialLength = e.cur
	// The first probe happens on the very first position so that an already
	// expired budget is noticed without scanning.
	e.steps = -1

	for e.res.Scans < e.opts.MaxPasses {
		before = e.cur
		if e.opts.Workers > 1 {
			err = e.scanParallel()
		} else {
			err = e.scan()
		}
		if err != nil {
			e.log.Debug("lk: interrupted", "scans", e.res.Scans, "length", e.cur, "err", err)
			return e.finish(), err
		}

		e.res.Scans++
		e.rec.PassCompleted(e.res.Scans, e.cur)
		e.log.Debug("lk: scan done",
			"scan", e.res.Scans, "length", e.cur, "delta", before-e.cur)
		if e.cur >= before {
			e.res.Converged = true
			break
		}
		e.res.Passes++
	}

	return e.finish(), nil
}

// scan runs the move search from every position, committing each improving
// exchange before moving on.
func (e *engine) scan() error {
	var (
		n   = e.t.N()
		p   int
		pr  proposal
		ok  bool
		err error
	)
	for p = 0; p < n; p++ {
		if err = e.interrupted(); err != nil {
			return err
		}
		if pr, ok = e.s.fromPosition(p); ok {
			e.commit(pr)
		}
	}

	return nil
}

// commit validates and applies a proposal. It reports whether the tour
// changed.
func (e *engine) commit(pr proposal) bool {
	length, err := tour.Length(e.inst, pr.order)
	if err == nil && (length != e.cur-pr.gain || length >= e.cur) {
		err = fmt.Errorf("%w: got %d, want %d", ErrGainMismatch, length, e.cur-pr.gain)
	}
	if err == nil {
		err = e.t.Replace(pr.order)
	}
	if err != nil {
		e.res.Rejected++
		e.rec.ExchangeRejected(err)
		e.log.Debug("lk: exchange rejected", "position", pr.position, "err", err)
		return false
	}

	e.cur = length
	e.res.Exchanges++
	e.rec.ExchangeCommitted(pr.gain, pr.depth)
	e.log.Debug("lk: exchange committed",
		"position", pr.position, "gain", pr.gain, "depth", pr.depth, "length", length)

	return true
}

func (e *engine) finish() Result {
	e.res.Tour = e.t.Order()
	e.res.Length = e.cur

	return e.res
}
