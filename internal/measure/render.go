package measure

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// name, '=', three values, two slashes and the ", " separator
const entrySizeHint = 20 + 1 + 3*5 + 2 + 2

var pairSep = []byte(", ")

func appendEntry(dst []byte, e Entry) []byte {
	dst = append(dst, e.Name...)
	dst = append(dst, '=')
	return e.Info.AppendTo(dst)
}

// RenderChunk renders entries joined by ", " with no leading or
// trailing separator.
func RenderChunk(dst []byte, entries []Entry) []byte {
	for i, e := range entries {
		if i != 0 {
			dst = append(dst, pairSep...)
		}
		dst = appendEntry(dst, e)
	}
	return dst
}

// Render formats sorted entries as {k=min/avg/max, ...}\n. Each
// chunk is rendered by its own goroutine into a private buffer that
// is stored at the chunk's index, so the output order never depends
// on which goroutine finishes first.
func Render(ctx context.Context, entries []Entry, opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	chunk := ChunkSize(len(entries), opts.Workers, opts.Chunk)

	parts := make([][]byte, (len(entries)+chunk-1)/chunk)
	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.Workers)
	for i := range parts {
		i := i
		lo := i * chunk
		part := entries[lo:min(lo+chunk, len(entries))]
		eg.Go(func() error {
			if err := ectx.Err(); err != nil {
				return err
			}
			parts[i] = RenderChunk(make([]byte, 0, len(part)*entrySizeHint), part)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	size := 3
	for _, p := range parts {
		size += len(p) + len(pairSep)
	}
	out := make([]byte, 0, size)
	out = append(out, '{')
	for i, p := range parts {
		if i != 0 {
			out = append(out, pairSep...)
		}
		out = append(out, p...)
	}
	return append(out, '}', '\n'), nil
}
