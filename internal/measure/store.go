package measure

import (
	"unsafe"

	"github.com/dolthub/swiss"
)

const storeCapacity = 1000

// InfoStore maps names to their aggregate. Names are strings that
// alias the input buffer, so the buffer must stay alive (and mapped)
// for as long as the store or anything derived from it is in use.
type InfoStore struct {
	m *swiss.Map[string, *Info]
}

func NewInfoStore() *InfoStore {
	return &InfoStore{
		m: swiss.NewMap[string, *Info](storeCapacity),
	}
}

func (store *InfoStore) Update(item Item) {
	name := unsafeString(item.name)
	if info, ok := store.m.Get(name); ok {
		info.Update(item.value)
	} else {
		store.m.Put(name, NewInfo(item.value))
	}
}

// Merge absorbs other into the record stored under name. A record
// seen for the first time is copied, so stores never share records.
func (store *InfoStore) Merge(name string, other *Info) {
	if mine, ok := store.m.Get(name); ok {
		mine.Merge(other)
	} else {
		c := *other
		store.m.Put(name, &c)
	}
}

func (store *InfoStore) Get(name string) (*Info, bool) {
	return store.m.Get(name)
}

func (store *InfoStore) Len() int {
	return store.m.Count()
}

// Each calls fn for every entry in unspecified order.
func (store *InfoStore) Each(fn func(name string, info *Info)) {
	store.m.Iter(func(name string, info *Info) bool {
		fn(name, info)
		return false
	})
}

func unsafeString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
