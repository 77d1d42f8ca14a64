// Package parallel runs order-independent passes over indexed collections on
// a bounded set of goroutines.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool bounds the number of goroutines a pass may use.
type Pool struct {
	workers int
}

// New returns a pool with the given worker limit. Zero or negative means
// GOMAXPROCS.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pool{workers: workers}
}

// Workers returns the worker limit.
func (p *Pool) Workers() int {
	return p.workers
}

// ForEach calls fn for every index in [0, n). Indices are split into
// contiguous chunks, one per worker. The first error is returned after all
// chunks finish.
func (p *Pool) ForEach(n int, fn func(i int) error) error {
	if n == 0 {
		return nil
	}
	if p.workers == 1 || n == 1 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	chunks := min(p.workers, n)
	size := (n + chunks - 1) / chunks

	var g errgroup.Group
	g.SetLimit(p.workers)
	for start := 0; start < n; start += size {
		end := min(start+size, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := fn(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// Any reports whether pred holds for at least one index, evaluated with
// ForEach.
func (p *Pool) Any(n int, pred func(i int) (bool, error)) (bool, error) {
	hits := make([]bool, n)
	err := p.ForEach(n, func(i int) error {
		ok, err := pred(i)
		hits[i] = ok
		return err
	})
	if err != nil {
		return false, err
	}
	for _, h := range hits {
		if h {
			return true, nil
		}
	}
	return false, nil
}
