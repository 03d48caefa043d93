package seed

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/linkern/instance"
)

// MultiStart runs NearestNeighbor from the city farthest from each of
// i = 0..starts-1 and returns the lightest path (lowest i on ties).
//
// Walks run concurrently under an errgroup bound by Options.Workers; the
// instance is the only shared state. Cancelling ctx stops pending walks and
// returns ctx.Err() wrapped.
func MultiStart(ctx context.Context, inst *instance.Instance, opts ...Option) (Path, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Starts < 0 || o.Workers < 0 {
		return Path{}, ErrBadOption
	}
	if inst == nil {
		return Path{}, fmt.Errorf("%w: nil instance", ErrStartOutOfRange)
	}

	var (
		n      = inst.N()
		starts = o.Starts
	)
	if starts == 0 {
		starts = n
		if n >= smallInstance {
			starts = largeStarts
		}
	}
	if starts > n {
		starts = n
	}
	if o.Workers == 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}

	paths := make([]Path, starts)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i := 0; i < starts; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := NearestNeighbor(inst, Farthest(inst, i))
			if err != nil {
				return err
			}
			paths[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Path{}, fmt.Errorf("seed: multistart: %w", err)
	}

	var best, i int
	for i = 1; i < starts; i++ {
		if paths[i].Weight < paths[best].Weight {
			best = i
		}
	}
	o.Logger.Debug("seed: multistart done",
		"starts", starts, "best_start", best, "weight", paths[best].Weight)

	return paths[best], nil
}
