package keccak

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// PermuteBatch permutes every state in states independently, using at most workers
// goroutines, and returns the results in input order. The input slice is not modified.
// It stops early and returns ctx's error if ctx is cancelled.
func PermuteBatch(ctx context.Context, states []State, workers int) ([]State, error) {
	if workers < 1 {
		workers = 1
	}
	out := make([]State, len(states))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range states {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = Permute(states[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
