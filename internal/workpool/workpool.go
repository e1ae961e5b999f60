// Package workpool runs independent units of work on a fixed number of
// goroutines.
package workpool

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Map calls fn on every item using at most workers goroutines and returns the
// results in item order. A failing unit doesn't stop the others; every
// failure is returned, joined, once all units have finished. workers <= 0
// means one per CPU.
func Map[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]R, len(items))
	errs := make([]error, len(items))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			results[i], errs[i] = fn(ctx, item)
			return nil
		})
	}
	g.Wait()

	return results, errors.Join(errs...)
}
