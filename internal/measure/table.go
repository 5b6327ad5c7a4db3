package measure

import (
	"unsafe"

	"github.com/dolthub/swiss"
)

// MaxTenths bounds the values the input grammar can express (-99.9..99.9).
const MaxTenths = 999

// ValueTable resolves value tokens by looking up their canonical text
// instead of decoding digits. It is filled once by NewValueTable and
// only read afterwards, so workers may share it.
type ValueTable struct {
	m *swiss.Map[string, Value]
}

func NewValueTable(maxTenths int) *ValueTable {
	t := &ValueTable{
		m: swiss.NewMap[string, Value](uint32(2*maxTenths + 2)),
	}
	buf := make([]byte, 0, 24)
	for i := -maxTenths; i <= maxTenths; i++ {
		buf = AppendValue(buf[:0], Value(i))
		t.m.Put(string(buf), Value(i))
	}
	t.m.Put("-0.0", 0)
	return t
}

// Parse has the same contract as ParseValue.
func (t *ValueTable) Parse(b []byte) (Value, error) {
	if len(b) == 0 {
		return 0, ErrInvalidValue
	}
	v, ok := t.m.Get(unsafe.String(&b[0], len(b)))
	if !ok {
		return 0, ErrInvalidValue
	}
	return v, nil
}

func (t *ValueTable) Len() int {
	return t.m.Count()
}
