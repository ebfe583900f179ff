// SPDX-License-Identifier: MIT

package inverse

import (
	"context"
	"fmt"

	"github.com/katalvlaran/clifford/multivector"
	"golang.org/x/sync/errgroup"
)

// InvertBatch inverts every multivector of in, partitioning the work over at
// most WithWorkers goroutines. Result i is the inverse of in[i].
// The first failure (or ctx cancellation) stops the batch and is returned.
//
// Complexity: the sum of the per-item costs divided over the workers.
func InvertBatch(ctx context.Context, in []*multivector.Real, opts ...Option) ([]*multivector.Real, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("InvertBatch: %w", err)
	}
	o := gatherOptions(opts)
	out := make([]*multivector.Real, len(in))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, a := range in {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			inv, err := Invert(a, opts...)
			if err != nil {
				return fmt.Errorf("InvertBatch: item %d: %w", i, err)
			}
			out[i] = inv

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
