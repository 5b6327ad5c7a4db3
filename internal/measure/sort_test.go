package measure

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomEntries(rnd *rand.Rand, n int) []Entry {
	seen := make(map[string]bool, n)
	out := make([]Entry, 0, n)
	for len(out) < n {
		name := fmt.Sprintf("%05x", rnd.Int63n(1<<20))[:1+rnd.Intn(5)]
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, Entry{Name: name, Info: NewInfo(Value(len(out)))})
	}
	return out
}

func TestSortEntriesMatchesPlainSort(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	for _, n := range []int{0, 1, 2, 3, 17, 500} {
		for _, chunk := range []int{1, 2, 7, 64, 1000} {
			entries := randomEntries(rnd, n)
			want := slices.Clone(entries)
			slices.SortFunc(want, compareEntries)

			got, err := SortEntries(context.Background(), entries, chunk, 4)
			require.NoError(t, err)
			require.Equal(t, want, got, "n=%d chunk=%d", n, chunk)

			for i := 1; i < len(got); i++ {
				require.Less(t, got[i-1].Name, got[i].Name)
			}
		}
	}
}

func TestSortedByteOrder(t *testing.T) {
	store := NewInfoStore()
	for _, name := range []string{"b", "B", "a", "ab", "\xff", "Ä", "A"} {
		store.Update(Item{name: []byte(name), value: 1})
	}
	entries, err := Sorted(context.Background(), store, Options{Workers: 3, Chunk: 2})
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"A", "B", "a", "ab", "b", "Ä", "\xff"}, names)
}

func TestChunkSize(t *testing.T) {
	assert.Equal(t, 5, ChunkSize(100, 4, 5))
	assert.Equal(t, 25, ChunkSize(100, 4, 0))
	assert.Equal(t, 26, ChunkSize(101, 4, 0))
	assert.Equal(t, 1, ChunkSize(0, 4, 0))
	assert.Equal(t, maxChunk, ChunkSize(10*maxChunk, 2, 0))
}
