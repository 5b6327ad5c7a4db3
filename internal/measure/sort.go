package measure

import (
	"context"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
)

const maxChunk = 1_000_000

type Entry struct {
	Name string
	Info *Info
}

func compareEntries(a, b Entry) int {
	return strings.Compare(a.Name, b.Name)
}

// ChunkSize returns the number of entries each worker gets when
// n entries are spread over the given number of workers.
func ChunkSize(n, workers, chunk int) int {
	if chunk > 0 {
		return chunk
	}
	if workers < 1 {
		workers = 1
	}
	size := (n + workers - 1) / workers
	return max(min(size, maxChunk), 1)
}

// Sorted returns the entries of store ordered by name. Chunks are
// sorted in parallel, then adjacent sorted runs are merged pairwise
// until a single run is left.
func Sorted(ctx context.Context, store *InfoStore, opts Options) ([]Entry, error) {
	opts = opts.withDefaults()

	entries := make([]Entry, 0, store.Len())
	store.Each(func(name string, info *Info) {
		entries = append(entries, Entry{Name: name, Info: info})
	})
	return SortEntries(ctx, entries, ChunkSize(len(entries), opts.Workers, opts.Chunk), opts.Workers)
}

// SortEntries sorts entries in place (the final order may live in
// the returned slice instead).
func SortEntries(ctx context.Context, entries []Entry, chunk, workers int) ([]Entry, error) {
	if len(entries) < 2 {
		return entries, nil
	}
	chunk = max(chunk, 1)

	var runs [][2]int
	for lo := 0; lo < len(entries); lo += chunk {
		runs = append(runs, [2]int{lo, min(lo+chunk, len(entries))})
	}

	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(max(workers, 1))
	for _, r := range runs {
		part := entries[r[0]:r[1]]
		eg.Go(func() error {
			if err := ectx.Err(); err != nil {
				return err
			}
			slices.SortFunc(part, compareEntries)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	src := entries
	dst := make([]Entry, len(entries))
	for len(runs) > 1 {
		next := make([][2]int, 0, (len(runs)+1)/2)

		eg, ectx := errgroup.WithContext(ctx)
		eg.SetLimit(max(workers, 1))
		for i := 0; i < len(runs); i += 2 {
			if i+1 == len(runs) {
				r := runs[i]
				copy(dst[r[0]:r[1]], src[r[0]:r[1]])
				next = append(next, r)
				continue
			}
			a, b := runs[i], runs[i+1]
			eg.Go(func() error {
				if err := ectx.Err(); err != nil {
					return err
				}
				mergeRuns(dst[a[0]:b[1]], src[a[0]:a[1]], src[b[0]:b[1]])
				return nil
			})
			next = append(next, [2]int{a[0], b[1]})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}

		src, dst = dst, src
		runs = next
	}
	return src, nil
}

func mergeRuns(dst, a, b []Entry) {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if compareEntries(b[j], a[i]) < 0 {
			dst[k] = b[j]
			j++
		} else {
			dst[k] = a[i]
			i++
		}
		k++
	}
	k += copy(dst[k:], a[i:])
	copy(dst[k:], b[j:])
}
