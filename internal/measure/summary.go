// Package measure turns ';'-separated measurement lines into a sorted
// min/avg/max summary per name.
//
// The pipeline runs in three stages separated by barriers: Aggregate
// folds lines into per-worker stores and reduces them, Sorted orders
// the merged entries and Render formats them. Names are never copied
// out of the input buffer, so the buffer has to outlive the result of
// every stage.
package measure

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/zeebo/xxh3"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// Summarize runs the whole pipeline over data, which may still carry
// its trailing newline.
func Summarize(ctx context.Context, data []byte, opts Options, log *slog.Logger) ([]byte, error) {
	if log == nil {
		log = discard
	}
	data = TrimInput(data)

	start := time.Now()
	store, err := Aggregate(ctx, data, opts)
	if err != nil {
		return nil, err
	}
	log.Debug("aggregated", "bytes", len(data), "names", store.Len(), "took", time.Since(start))

	t := time.Now()
	entries, err := Sorted(ctx, store, opts)
	if err != nil {
		return nil, err
	}
	log.Debug("sorted", "entries", len(entries), "took", time.Since(t))

	t = time.Now()
	out, err := Render(ctx, entries, opts)
	if err != nil {
		return nil, err
	}
	if log.Enabled(ctx, slog.LevelDebug) {
		log.Debug("rendered", "bytes", len(out), "xxh3", xxh3.Hash(out), "took", time.Since(t))
	}

	log.Debug("summarized", "took", time.Since(start))
	return out, nil
}
