package bitvec

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	hexUpper = "0123456789ABCDEF"
	hexLower = "0123456789abcdef"
)

// Parse reads a binary string such as "1100 1010" into a vector. The first
// character is bit 0. Whitespace is ignored; any other character than '0'
// or '1' fails with ErrInvalidFormat.
func Parse(s string) (*Vector, error) {
	return ParseN(s, -1)
}

// ParseN is like Parse but keeps only the first n bits. A negative n keeps
// every bit; an n beyond the number of bits in s fails with
// ErrInvalidLength.
func ParseN(s string, n int) (*Vector, error) {
	v := &Vector{data: make([]byte, 0, byteCount(len(s)))}
	for i, r := range s {
		switch {
		case r == '0':
			v.appendBit(false)
		case r == '1':
			v.appendBit(true)
		case unicode.IsSpace(r):
		default:
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrInvalidFormat, r, i)
		}
	}
	if n < 0 || n == v.length {
		return v, nil
	}
	if n > v.length {
		return nil, fmt.Errorf("%w: %d bits requested from %d parsed", ErrInvalidLength, n, v.length)
	}
	return v.Truncate(n), nil
}

// MustParse is like Parse but panics on malformed input. It is meant for
// package-level constants.
func MustParse(s string) *Vector {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// BinString renders v as '0' and '1' characters, bit 0 first. A positive
// group inserts a space every group characters.
func (v *Vector) BinString(group int) string {
	var b strings.Builder
	b.Grow(v.length + v.length/max(group, 1))
	for i := 0; i < v.length; i++ {
		if group > 0 && i > 0 && i%group == 0 {
			b.WriteByte(' ')
		}
		if v.data[i>>3]&(1<<(i&7)) != 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// HexString renders the backing bytes of v as two hex digits each,
// optionally separated by spaces.
func (v *Vector) HexString(spaced, upper bool) string {
	digits := hexLower
	if upper {
		digits = hexUpper
	}
	var b strings.Builder
	b.Grow(3 * len(v.data))
	for i, c := range v.data {
		if spaced && i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(digits[c>>4])
		b.WriteByte(digits[c&0x0F])
	}
	return b.String()
}

// String renders v as "(length) HEX BYTES".
func (v *Vector) String() string {
	return fmt.Sprintf("(%d) %s", v.length, v.HexString(true, true))
}
