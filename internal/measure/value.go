package measure

import (
	"errors"
	"strconv"
)

// Value is a measurement with exactly one fractional digit,
// stored as a count of tenths.
//
// Sums are plain int64 additions: Go integers wrap on overflow,
// and the input domain keeps sums far from the limit in practice.
// Counts are uint64 and wrap the same way; Avg needs less headroom still.
type Value int64

var ErrInvalidValue = errors.New("invalid value")

// Parser turns a value token into a Value.
type Parser func(b []byte) (Value, error)

// ParseValue decodes d.d, dd.d, -d.d or -dd.d. The shape is known
// from the sign and the length alone, which keeps strconv.ParseFloat
// and its float rounding out of the hot loop.
func ParseValue(b []byte) (Value, error) {
	n := len(b)
	if n < 3 || n > 5 || b[n-2] != '.' {
		return 0, ErrInvalidValue
	}
	neg := b[0] == '-'

	var d1, d2, d3 byte
	switch {
	case !neg && n == 3:
		d2, d3 = b[0]-'0', b[2]-'0'
	case !neg && n == 4:
		d1, d2, d3 = b[0]-'0', b[1]-'0', b[3]-'0'
	case neg && n == 4:
		d2, d3 = b[1]-'0', b[3]-'0'
	case neg && n == 5:
		d1, d2, d3 = b[1]-'0', b[2]-'0', b[4]-'0'
	default:
		return 0, ErrInvalidValue
	}
	// bytes below '0' wrap around, so one comparison covers both ends
	if d1 > 9 || d2 > 9 || d3 > 9 {
		return 0, ErrInvalidValue
	}

	v := Value(d1)*100 + Value(d2)*10 + Value(d3)
	if neg {
		v = -v
	}
	return v, nil
}

// AppendValue appends v with exactly one fractional digit.
func AppendValue(dst []byte, v Value) []byte {
	u := uint64(v)
	if v < 0 {
		dst = append(dst, '-')
		u = uint64(-v)
	}
	dst = strconv.AppendUint(dst, u/10, 10)
	return append(dst, '.', byte('0'+u%10))
}

func (v Value) String() string {
	return string(AppendValue(make([]byte, 0, 8), v))
}

// Avg divides a sum of tenths by a count, rounding half up
// to the nearest tenth. It assumes |sum| < 2^62 and count < 2^63.
func Avg(sum Value, count uint64) Value {
	num := 2*int64(sum) + int64(count)
	den := 2 * int64(count)
	q := num / den
	if num%den != 0 && num < 0 {
		q--
	}
	return Value(q)
}
