// Package lk - windowed parallel scan.
//
// A window of Workers consecutive start positions is searched concurrently
// against the same tour. Searches only read the tour, so no locking is
// needed while the window runs. Proposals are then committed in position
// order: the first one that commits changes the tour and makes the rest of
// the window stale, so the scan resumes right after it. A rejected proposal
// leaves the tour untouched and the next one in the window is tried. The
// outcome matches the sequential scan exactly.
package lk

import (
	"golang.org/x/sync/errgroup"
)

func (e *engine) scanParallel() error {
	var (
		n     = e.t.N()
		w     = e.opts.Workers
		props = make([]proposal, w)
		found = make([]bool, w)
		p     int
		end   int
		next  int
		i     int
		err   error
	)
	for p = 0; p < n; p = next {
		if err = e.interrupted(); err != nil {
			return err
		}
		end = p + w
		if end > n {
			end = n
		}
		if err = e.searchWindow(p, end, props, found); err != nil {
			return err
		}

		next = end
		for i = 0; i < end-p; i++ {
			if found[i] && e.commit(props[i]) {
				next = props[i].position + 1
				break
			}
		}
	}

	return nil
}

// searchWindow runs the move search from positions p..end-1 concurrently,
// storing the outcome for position q at index q-p. Searches that have not
// started when the run's context is done are skipped and the context error
// is returned.
func (e *engine) searchWindow(p, end int, props []proposal, found []bool) error {
	g, ctx := errgroup.WithContext(e.ctx)
	g.SetLimit(len(props))
	for q := p; q < end; q++ {
		q := q
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			props[q-p], found[q-p] = e.s.fromPosition(q)
			return nil
		})
	}

	return g.Wait()
}
