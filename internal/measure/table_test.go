package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueTableMatchesParseValue(t *testing.T) {
	table := NewValueTable(MaxTenths)
	assert.Equal(t, 2*MaxTenths+2, table.Len())

	buf := make([]byte, 0, 8)
	for i := -MaxTenths; i <= MaxTenths; i++ {
		buf = AppendValue(buf[:0], Value(i))
		want, err := ParseValue(buf)
		require.NoError(t, err)
		got, err := table.Parse(buf)
		require.NoError(t, err)
		require.Equal(t, want, got, string(buf))
	}

	v, err := table.Parse([]byte("-0.0"))
	require.NoError(t, err)
	assert.Equal(t, Value(0), v)
}

func TestValueTableRejectsUnknown(t *testing.T) {
	table := NewValueTable(MaxTenths)
	for _, in := range []string{"", "100.0", "5", "05.3", "+5.3"} {
		_, err := table.Parse([]byte(in))
		assert.ErrorIs(t, err, ErrInvalidValue, "%q", in)
	}
}

func BenchmarkValueTable(b *testing.B) {
	table := NewValueTable(MaxTenths)
	tokens := [][]byte{[]byte("5.3"), []byte("-5.3"), []byte("45.3"), []byte("-45.3")}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = table.Parse(tokens[i&3])
	}
}
