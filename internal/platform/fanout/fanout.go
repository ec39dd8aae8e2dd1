// Package fanout runs independent calls concurrently with a cap on how many
// are in flight at once.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Outcome is what one call returned.
type Outcome[R any] struct {
	Value R
	Err   error
}

// Map calls fn once per item, at most limit at a time, and returns the
// outcomes in item order. A call whose turn comes after ctx is done is not
// made; its outcome carries ctx.Err(). A limit below 1 runs every item at
// once. One failing call does not stop the others.
func Map[T, R any](ctx context.Context, limit int, items []T, fn func(context.Context, T) (R, error)) []Outcome[R] {
	out := make([]Outcome[R], len(items))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				out[i].Err = err
				return nil
			}
			out[i].Value, out[i].Err = fn(ctx, item)
			return nil
		})
	}
	_ = g.Wait()

	return out
}
