// Package keyset streams a table in key order, one bounded page at a time.
//
// A stream captures the maximum key once (the cutoff) and never reads past it,
// so rows inserted while the stream runs are not observed and already scanned
// ranges are never revisited.
package keyset

import (
	"cmp"
	"context"
	"errors"
	"iter"
)

// ErrInvalidBatchSize is yielded when the batch size is not positive.
var ErrInvalidBatchSize = errors.New("keyset: batch size must be positive")

// Stream returns a lazy sequence over every row up to the cutoff captured when
// iteration starts. Each iteration starts a new stream with its own cutoff.
//
// fetchCutoff returns the greatest stored key, or nil for an empty table.
// fetchPage returns at most limit rows ordered ascending by key with
// after < key <= cutoff; a nil after means "from the beginning".
//
// Cancellation is checked before every yielded row; a cancelled stream yields
// ctx.Err() once and stops. A fetch error is yielded once and ends the sequence.
func Stream[R any, K cmp.Ordered, T any](
	ctx context.Context,
	fetchCutoff func(ctx context.Context) (*K, error),
	fetchPage func(ctx context.Context, after *K, cutoff K, limit int) ([]R, error),
	keyOf func(R) K,
	mapFn func(R) T,
	batchSize int,
) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T

		if batchSize <= 0 {
			yield(zero, ErrInvalidBatchSize)
			return
		}

		cutoff, err := fetchCutoff(ctx)
		if err != nil {
			yield(zero, err)
			return
		}
		if cutoff == nil {
			return
		}

		var after *K
		for {
			rows, err := fetchPage(ctx, after, *cutoff, batchSize)
			if err != nil {
				yield(zero, err)
				return
			}
			if len(rows) == 0 {
				return
			}

			for _, row := range rows {
				if err := ctx.Err(); err != nil {
					yield(zero, err)
					return
				}
				if !yield(mapFn(row), nil) {
					return
				}
			}

			if len(rows) < batchSize {
				return
			}

			last := keyOf(rows[len(rows)-1])
			after = &last
		}
	}
}
