package measure

import (
	"bytes"
	"errors"
	"fmt"
)

const (
	valueSep = ';'
	endLine  = '\n'
)

var ErrSeparatorNotFound = errors.New("separator not found")

type Item struct {
	name  []byte
	value Value
}

// ParseLine splits line on its first separator. The name is a
// sub-slice of line, never a copy.
func ParseLine(line []byte, parse Parser) (out Item, err error) {
	sep := bytes.IndexByte(line, valueSep)
	if sep == -1 {
		return out, ErrSeparatorNotFound
	}

	out.name = line[:sep]
	out.value, err = parse(line[sep+1:])
	return out, err
}

// TrimInput drops the single trailing newline the file is terminated with.
func TrimInput(data []byte) []byte {
	if n := len(data); n > 0 && data[n-1] == endLine {
		return data[:n-1]
	}
	return data
}

// Segment is a newline-aligned range of the input.
type Segment struct {
	Offset int
	Data   []byte
}

// Segments cuts data into at most n ranges that each end right
// before a newline (or at the end of data). Every line lands in
// exactly one segment.
func Segments(data []byte, n int) []Segment {
	if len(data) == 0 {
		return nil
	}
	if n < 1 {
		n = 1
	}
	size := len(data) / n
	if size == 0 {
		size = len(data)
	}

	out := make([]Segment, 0, n)
	start := 0
	for start < len(data) {
		end := start + size
		if end >= len(data) {
			end = len(data)
		} else if le := bytes.IndexByte(data[end:], endLine); le == -1 {
			end = len(data)
		} else {
			end += le
		}
		out = append(out, Segment{Offset: start, Data: data[start:end]})
		start = end + 1
	}
	// a cut on the final newline leaves an empty last line
	if start == len(data) {
		out = append(out, Segment{Offset: start, Data: data[start:]})
	}
	return out
}

// HandleSegment folds every line of seg into store.
func HandleSegment(seg Segment, store *InfoStore, parse Parser) error {
	buf := seg.Data
	consumed := 0

	for {
		le := bytes.IndexByte(buf[consumed:], endLine)
		if le == -1 {
			break
		}
		if err := handleLine(buf[consumed:consumed+le], seg.Offset+consumed, store, parse); err != nil {
			return err
		}
		consumed += le + 1
	}

	return handleLine(buf[consumed:], seg.Offset+consumed, store, parse)
}

func handleLine(line []byte, offset int, store *InfoStore, parse Parser) error {
	item, err := ParseLine(line, parse)
	if err != nil {
		return fmt.Errorf("failed to parse line %q at offset %d: %w", line, offset, err)
	}
	store.Update(item)
	return nil
}
