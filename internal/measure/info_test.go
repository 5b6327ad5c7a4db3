package measure

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func infoOf(values ...Value) *Info {
	info := NewInfo(values[0])
	for _, v := range values[1:] {
		info.Update(v)
	}
	return info
}

func merged(a, b *Info) *Info {
	c := *a
	c.Merge(b)
	return &c
}

func TestInfoUpdate(t *testing.T) {
	info := infoOf(-50, 50)
	assert.Equal(t, Info{Min: -50, Max: 50, Sum: 0, Count: 2}, *info)
	assert.Equal(t, Value(0), info.Avg())
	assert.Equal(t, "-5.0/0.0/5.0", string(info.AppendTo(nil)))
}

func TestInfoMergeLaws(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	randomInfo := func() *Info {
		values := make([]Value, 1+rnd.Intn(20))
		for i := range values {
			values[i] = Value(rnd.Intn(2*MaxTenths+1) - MaxTenths)
		}
		return infoOf(values...)
	}

	for i := 0; i < 1000; i++ {
		a, b, c := randomInfo(), randomInfo(), randomInfo()
		assert.Equal(t, *merged(merged(a, b), c), *merged(a, merged(b, c)))
		assert.Equal(t, *merged(a, b), *merged(b, a))
	}
}

func TestInfoMergeEqualsFold(t *testing.T) {
	values := []Value{12, -7, 33, 0, 999, -999, 5}
	whole := infoOf(values...)
	for split := 1; split < len(values); split++ {
		assert.Equal(t, *whole, *merged(infoOf(values[:split]...), infoOf(values[split:]...)))
	}
}
