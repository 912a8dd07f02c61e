// Package bitvec implements a packed, arbitrary-length sequence of bits.
//
// Bit i of a Vector lives in byte i/8 at bit position i%8, least significant
// bit first. This is the bit ordering FIPS 202 uses when it converts byte
// strings to bit strings, so the byte view of a Vector can be compared with
// published test vectors directly. Bits of the last byte that lie beyond
// Len() are kept at zero by every operation.
//
// Logical operations (And, Or, Xor) and Append/Prepend silently do nothing
// when the operand is nil or has a different length; they return the
// receiver unchanged. Use SameLength to check beforehand when that matters.
package bitvec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"iter"
	"strconv"
)

var (
	// ErrIndexOutOfRange is wrapped by every error and panic caused by
	// addressing a bit outside [0, Len()).
	ErrIndexOutOfRange = errors.New("bitvec: index out of range")

	// ErrInvalidFormat is returned when a textual bit representation holds
	// characters other than '0', '1' and whitespace.
	ErrInvalidFormat = errors.New("bitvec: invalid binary representation")

	// ErrInvalidLength is returned when a requested bit length does not fit
	// the data it describes.
	ErrInvalidLength = errors.New("bitvec: invalid length")
)

// IndexError describes an out-of-range bit index.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("bitvec: index %d out of range [0,%d)", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// Vector is a mutable sequence of bits backed by packed bytes.
// The zero value is an empty vector ready to use.
type Vector struct {
	data   []byte
	length int
}

// Zeroes returns a vector of n zero bits. A non-positive n yields an empty
// vector.
func Zeroes(n int) *Vector {
	if n <= 0 {
		return new(Vector)
	}
	return &Vector{data: make([]byte, byteCount(n)), length: n}
}

// Ones returns a vector of n one bits. A non-positive n yields an empty
// vector.
func Ones(n int) *Vector {
	v := Zeroes(n)
	for i := range v.data {
		v.data[i] = 0xFF
	}
	v.maskTail()
	return v
}

// One returns the single bit vector "1".
func One() *Vector { return Ones(1) }

// Zero returns the single bit vector "0".
func Zero() *Vector { return Zeroes(1) }

// FromBytes returns a vector holding the first length bits of data. A
// negative length means all 8*len(data) bits. Bits of the trailing byte
// beyond length are masked to zero. The data is copied.
func FromBytes(data []byte, length int) (*Vector, error) {
	total := len(data) << 3
	if length < 0 {
		length = total
	}
	if length > total {
		return nil, fmt.Errorf("%w: %d bits requested from %d bytes", ErrInvalidLength, length, len(data))
	}
	v := &Vector{data: make([]byte, byteCount(length)), length: length}
	copy(v.data, data)
	v.maskTail()
	return v, nil
}

// FromBools returns a vector holding the given bits in order.
func FromBools(bits []bool) *Vector {
	v := &Vector{data: make([]byte, 0, byteCount(len(bits)))}
	for _, b := range bits {
		v.appendBit(b)
	}
	return v
}

// FromSeq returns a vector holding every bit produced by seq.
func FromSeq(seq iter.Seq[bool]) *Vector {
	v := new(Vector)
	if seq == nil {
		return v
	}
	for b := range seq {
		v.appendBit(b)
	}
	return v
}

// Clone returns a deep copy of v.
func (v *Vector) Clone() *Vector {
	return &Vector{data: append([]byte(nil), v.data...), length: v.length}
}

// Len returns the number of bits in v.
func (v *Vector) Len() int { return v.length }

// ByteLen returns the number of bytes backing v, ceil(Len()/8).
func (v *Vector) ByteLen() int { return len(v.data) }

// Bytes returns the packed bytes of v. The slice aliases the vector's
// storage and is only valid until the next mutation that resizes it.
func (v *Vector) Bytes() []byte { return v.data }

// Valid reports whether i addresses a bit of v.
func (v *Vector) Valid(i int) bool { return i >= 0 && i < v.length }

// SameLength reports whether other is non-nil and has as many bits as v.
func (v *Vector) SameLength(other *Vector) bool {
	return other != nil && other.length == v.length
}

// Get returns bit i. It panics with an *IndexError if i is out of range.
func (v *Vector) Get(i int) bool {
	v.check(i)
	return v.data[i>>3]&(1<<(i&7)) != 0
}

// Set assigns bit i. It panics with an *IndexError if i is out of range.
func (v *Vector) Set(i int, bit bool) {
	v.check(i)
	if bit {
		v.data[i>>3] |= 1 << (i & 7)
	} else {
		v.data[i>>3] &^= 1 << (i & 7)
	}
}

// Toggle inverts bit i. It panics with an *IndexError if i is out of range.
func (v *Vector) Toggle(i int) {
	v.check(i)
	v.data[i>>3] ^= 1 << (i & 7)
}

// Clear zeroes every bit while keeping the length.
func (v *Vector) Clear() {
	clear(v.data)
}

// Bits returns the bits of v in index order. The sequence can be ranged
// over any number of times.
func (v *Vector) Bits() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(v.data[i>>3]&(1<<(i&7)) != 0) {
				return
			}
		}
	}
}

// And replaces v with v AND other. Nil or length-mismatched operands leave
// v unchanged.
func (v *Vector) And(other *Vector) *Vector {
	if !v.SameLength(other) {
		return v
	}
	return v.AndBytes(other.data)
}

// AndBytes replaces v with v AND data, where data must hold exactly
// ByteLen() bytes; otherwise v is left unchanged.
func (v *Vector) AndBytes(data []byte) *Vector {
	if data == nil || len(data) != len(v.data) {
		return v
	}
	for i := range v.data {
		v.data[i] &= data[i]
	}
	return v
}

// Or replaces v with v OR other. Nil or length-mismatched operands leave v
// unchanged.
func (v *Vector) Or(other *Vector) *Vector {
	if !v.SameLength(other) {
		return v
	}
	return v.OrBytes(other.data)
}

// OrBytes replaces v with v OR data, where data must hold exactly ByteLen()
// bytes; otherwise v is left unchanged.
func (v *Vector) OrBytes(data []byte) *Vector {
	if data == nil || len(data) != len(v.data) {
		return v
	}
	for i := range v.data {
		v.data[i] |= data[i]
	}
	v.maskTail()
	return v
}

// Xor replaces v with v XOR other. Nil or length-mismatched operands leave
// v unchanged.
func (v *Vector) Xor(other *Vector) *Vector {
	if !v.SameLength(other) {
		return v
	}
	return v.XorBytes(other.data)
}

// XorBytes replaces v with v XOR data, where data must hold exactly
// ByteLen() bytes; otherwise v is left unchanged.
func (v *Vector) XorBytes(data []byte) *Vector {
	if data == nil || len(data) != len(v.data) {
		return v
	}
	xorWords(v.data, data)
	v.maskTail()
	return v
}

// Append adds the bits of other after the last bit of v.
func (v *Vector) Append(other *Vector) *Vector {
	if other == nil || other.length == 0 {
		return v
	}
	if other == v {
		other = v.Clone()
	}
	if v.length&7 == 0 {
		v.data = append(v.data, other.data...)
		v.length += other.length
		return v
	}
	for i := 0; i < other.length; i++ {
		v.appendBit(other.data[i>>3]&(1<<(i&7)) != 0)
	}
	return v
}

// AppendBytes adds all bits of data after the last bit of v.
func (v *Vector) AppendBytes(data []byte) *Vector {
	if len(data) == 0 {
		return v
	}
	if v.length&7 == 0 {
		v.data = append(v.data, data...)
		v.length += len(data) << 3
		return v
	}
	other, _ := FromBytes(data, -1)
	return v.Append(other)
}

// AppendBits adds every bit produced by seq after the last bit of v.
func (v *Vector) AppendBits(seq iter.Seq[bool]) *Vector {
	if seq == nil {
		return v
	}
	for b := range seq {
		v.appendBit(b)
	}
	return v
}

// Prepend inserts the bits of other before the first bit of v.
func (v *Vector) Prepend(other *Vector) *Vector {
	if other == nil || other.length == 0 {
		return v
	}
	joined := other.Clone().Append(v)
	v.data, v.length = joined.data, joined.length
	return v
}

// PrependBytes inserts all bits of data before the first bit of v.
func (v *Vector) PrependBytes(data []byte) *Vector {
	if len(data) == 0 {
		return v
	}
	joined := make([]byte, 0, len(data)+len(v.data))
	joined = append(joined, data...)
	v.data = append(joined, v.data...)
	v.length += len(data) << 3
	return v
}

// Substring returns a copy of the n bits starting at index. The index must
// address a bit of v; n is clamped to the bits available.
func (v *Vector) Substring(index, n int) (*Vector, error) {
	if !v.Valid(index) {
		return nil, &IndexError{Index: index, Len: v.length}
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: substring of %d bits", ErrInvalidLength, n)
	}
	n = min(n, v.length-index)
	if index&7 == 0 && n&7 == 0 {
		start := index >> 3
		return &Vector{data: append([]byte(nil), v.data[start:start+(n>>3)]...), length: n}, nil
	}
	sub := &Vector{data: make([]byte, 0, byteCount(n))}
	for i := index; i < index+n; i++ {
		sub.appendBit(v.data[i>>3]&(1<<(i&7)) != 0)
	}
	return sub, nil
}

// Truncate returns a copy of the first n bits of v, with n clamped to
// [0, Len()].
func (v *Vector) Truncate(n int) *Vector {
	n = min(v.length, max(0, n))
	t := &Vector{data: append([]byte(nil), v.data[:byteCount(n)]...), length: n}
	t.maskTail()
	return t
}

// SwapBits exchanges bits i and j. Invalid indices or i == j leave v
// unchanged.
func (v *Vector) SwapBits(i, j int) *Vector {
	if !v.Valid(i) || !v.Valid(j) || i == j {
		return v
	}
	bi, bj := v.Get(i), v.Get(j)
	v.Set(i, bj)
	v.Set(j, bi)
	return v
}

// Equal reports whether v and other hold the same bits and the same length.
// Two nil vectors are equal; a nil vector differs from any non-nil one.
func (v *Vector) Equal(other *Vector) bool {
	if v == other {
		return true
	}
	if v == nil || other == nil {
		return false
	}
	if v.length != other.length || len(v.data) != len(other.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// Key returns a comparable value identifying the (length, bytes) pair of v,
// suitable as a map key.
func (v *Vector) Key() string {
	return strconv.Itoa(v.length) + ":" + string(v.data)
}

func (v *Vector) check(i int) {
	if i < 0 || i >= v.length {
		panic(&IndexError{Index: i, Len: v.length})
	}
}

func (v *Vector) appendBit(b bool) {
	if v.length&7 == 0 {
		v.data = append(v.data, 0)
	}
	if b {
		v.data[v.length>>3] |= 1 << (v.length & 7)
	}
	v.length++
}

// maskTail zeroes the bits of the last byte beyond Len().
func (v *Vector) maskTail() {
	if rem := v.length & 7; rem != 0 {
		v.data[len(v.data)-1] &= LowerMask(rem)
	}
}

// xorWords XORs src into dst eight bytes at a time. len(src) must not
// exceed len(dst).
func xorWords(dst, src []byte) {
	n := len(src) >> 3
	for i := 0; i < n; i++ {
		o := i << 3
		binary.LittleEndian.PutUint64(dst[o:], binary.LittleEndian.Uint64(dst[o:])^binary.LittleEndian.Uint64(src[o:]))
	}
	for i := n << 3; i < len(src); i++ {
		dst[i] ^= src[i]
	}
}
