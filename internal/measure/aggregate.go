package measure

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Options tune the parallel stages. Zero values pick defaults.
type Options struct {
	Workers  int    // goroutines per stage
	Segments int    // input segments per worker
	Chunk    int    // entries per sort/render chunk, 0 = automatic
	Parse    Parser // nil = ParseValue
}

func (o Options) withDefaults() Options {
	if o.Workers < 1 {
		o.Workers = 1
	}
	if o.Segments < 1 {
		o.Segments = 1
	}
	if o.Parse == nil {
		o.Parse = ParseValue
	}
	return o
}

func doWork(ctx context.Context, segments <-chan Segment, store *InfoStore, parse Parser) error {
	for seg := range segments {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := HandleSegment(seg, store, parse); err != nil {
			return err
		}
	}
	return nil
}

// Aggregate folds every line of data into per-worker stores and
// reduces them into one. data must already be trimmed of its
// trailing newline.
func Aggregate(ctx context.Context, data []byte, opts Options) (*InfoStore, error) {
	opts = opts.withDefaults()
	workers := opts.Workers

	segments := Segments(data, workers*opts.Segments)
	if len(segments) == 0 {
		return NewInfoStore(), nil
	}
	if workers > len(segments) {
		workers = len(segments)
	}

	ch := make(chan Segment, len(segments))
	eg, ectx := errgroup.WithContext(ctx)

	stores := make([]*InfoStore, workers)
	for i := 0; i < workers; i++ {
		store := NewInfoStore()
		stores[i] = store
		eg.Go(func() error {
			return doWork(ectx, ch, store, opts.Parse)
		})
	}

	eg.Go(func() error {
		defer close(ch)
		for _, seg := range segments {
			select {
			case <-ectx.Done():
				return ectx.Err()
			case ch <- seg:
			}
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("failed to aggregate: %w", err)
	}
	return ReduceStores(ctx, stores)
}

// MergeStores folds src into dst.
func MergeStores(dst, src *InfoStore) {
	src.Each(dst.Merge)
}

// ReduceStores merges stores pairwise, one tree level per round,
// with the pairs of a round merged in parallel. The input stores
// are consumed.
func ReduceStores(ctx context.Context, stores []*InfoStore) (*InfoStore, error) {
	if len(stores) == 0 {
		return NewInfoStore(), nil
	}
	for len(stores) > 1 {
		eg := new(errgroup.Group)
		half := (len(stores) + 1) / 2
		for i := 0; i+half < len(stores); i++ {
			dst, src := stores[i], stores[i+half]
			eg.Go(func() error {
				MergeStores(dst, src)
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		stores = stores[:half]
	}
	return stores[0], nil
}
