package measure

import (
	"bytes"
	"math/rand"
)

var testNames = []string{
	"Hamburg", "Bulawayo", "Palembang", "St. John's", "Cracow", "Bridgetown",
	"Istanbul", "Roseau", "Conakry", "Abéché", "Zürich", "a", "ab", "abc",
	"B", "b", `{"x"}`, "x, y", "a=b/c", "\xff\xfe",
}

type testRecord struct {
	name  string
	value Value
}

func randomRecords(seed int64, n int) []testRecord {
	rnd := rand.New(rand.NewSource(seed))
	out := make([]testRecord, n)
	for i := range out {
		out[i] = testRecord{
			name:  testNames[rnd.Intn(len(testNames))],
			value: Value(rnd.Intn(2*MaxTenths+1) - MaxTenths),
		}
	}
	return out
}

func encodeRecords(records []testRecord) []byte {
	var buf bytes.Buffer
	for _, r := range records {
		buf.WriteString(r.name)
		buf.WriteByte(';')
		buf.WriteString(r.value.String())
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// foldRecords is the single-threaded left-to-right reference.
func foldRecords(records []testRecord) map[string]Info {
	out := make(map[string]Info)
	for _, r := range records {
		info, ok := out[r.name]
		if !ok {
			out[r.name] = *NewInfo(r.value)
			continue
		}
		info.Update(r.value)
		out[r.name] = info
	}
	return out
}

func storeContents(store *InfoStore) map[string]Info {
	out := make(map[string]Info, store.Len())
	store.Each(func(name string, info *Info) {
		out[name] = *info
	})
	return out
}
