// SPDX-License-Identifier: MIT

package fill

import (
	"context"
	"fmt"

	"github.com/katalvlaran/locf/na"
	"golang.org/x/sync/errgroup"
)

// span is a half-open index range [lo, hi) of one chunk.
type span struct {
	lo, hi int
}

// Parallel computes the same result as LOCF using a two-pass segmented scan:
//
//  1. split xs into at most `workers` chunks of at least `minChunk` cells;
//  2. reduce every chunk, concurrently, to its last observation (its tail);
//  3. exclusive-scan the tails with Combine, giving each chunk its incoming carry;
//  4. fill every chunk, concurrently, starting from that carry.
//
// Chunks write disjoint ranges of a single output buffer, so no locking is
// needed. Inputs too short for two chunks, or WithWorkers(1), go straight to LOCF.
//
// Errors:
//   - ctx cancellation or deadline, wrapped as "fill: Parallel: %w".
//
// Complexity: O(n) work, O(n/workers + workers) span; one allocation of n cells.
func Parallel(ctx context.Context, xs []na.Value, opts ...Option) ([]na.Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("fill: Parallel: %w", err)
	}

	o := gatherOptions(opts...)
	spans := planSpans(len(xs), o.workers, o.minChunk)
	if len(spans) < 2 {
		return LOCF(xs), nil
	}

	// Pass 1: chunk tails.
	tails := make([]na.Value, len(spans))
	g, gctx := errgroup.WithContext(ctx)
	for c, s := range spans {
		c, s := c, s
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tails[c] = lastObservation(xs[s.lo:s.hi])

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fill: Parallel: %w", err)
	}

	// Exclusive scan over tails: O(len(spans)).
	carries := make([]na.Value, len(spans))
	carry := na.Missing()
	for c := range spans {
		carries[c] = carry
		carry = Combine(carry, tails[c])
	}

	// Pass 2: fill chunks from their incoming carry.
	out := make([]na.Value, len(xs))
	g, gctx = errgroup.WithContext(ctx)
	for c, s := range spans {
		c, s := c, s
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			carryForward(out[s.lo:s.hi], xs[s.lo:s.hi], carries[c])

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fill: Parallel: %w", err)
	}

	return out, nil
}

// planSpans splits n cells into k = min(workers, n/minChunk) near-equal chunks.
// It returns a single span when k < 2.
func planSpans(n, workers, minChunk int) []span {
	k := workers
	if byChunk := n / minChunk; byChunk < k {
		k = byChunk
	}
	if k < 2 {
		return []span{{0, n}}
	}

	size := (n + k - 1) / k
	spans := make([]span, 0, k)
	for lo := 0; lo < n; lo += size {
		spans = append(spans, span{lo: lo, hi: min(lo+size, n)})
	}

	return spans
}
