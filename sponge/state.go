// Package sponge implements the Keccak state cube and the generic sponge
// construction built on top of it.
//
// A State is a b-bit vector viewed as a 5x5xw cube. Bit (x, y, z) lives at
// flat index w*(5y+x)+z. Lanes, planes, sheets, rows, columns and slices are
// coordinate views into a State; they hold no bits of their own, and writing
// through the State's Set*/Xor* methods changes the owning state.
package sponge

import (
	"errors"
	"fmt"
	"iter"

	"github.com/Giulio2002/keccakp/bitvec"
)

var (
	// ErrInvalidConfiguration reports an impossible width, rate, capacity or
	// round count.
	ErrInvalidConfiguration = errors.New("sponge: invalid configuration")

	// ErrLengthMismatch reports a bit vector whose length differs from the
	// state width it is assigned to.
	ErrLengthMismatch = errors.New("sponge: length mismatch")
)

// State is a Keccak state of a fixed width together with the rate used to
// absorb into and squeeze out of it.
type State struct {
	size Size
	rate int
	bits *bitvec.Vector
}

// NewState returns a zeroed state of the given width. The rate must lie in
// [1, b).
func NewState(size Size, rate int) (*State, error) {
	if !size.Valid() {
		return nil, fmt.Errorf("%w: width %d", ErrInvalidConfiguration, size.B())
	}
	if err := checkRate(size, rate); err != nil {
		return nil, err
	}
	return &State{size: size, rate: rate, bits: bitvec.Zeroes(size.B())}, nil
}

// StateFrom wraps an existing vector as a state. The vector length must be
// a valid Keccak width; the state takes ownership of v.
func StateFrom(v *bitvec.Vector, rate int) (*State, error) {
	if v == nil || v.Len() == 0 {
		return nil, fmt.Errorf("%w: empty state vector", ErrInvalidConfiguration)
	}
	size, err := SizeOf(v.Len())
	if err != nil {
		return nil, err
	}
	if err := checkRate(size, rate); err != nil {
		return nil, err
	}
	return &State{size: size, rate: rate, bits: v}, nil
}

func checkRate(size Size, rate int) error {
	if rate < 1 || rate >= size.B() {
		return fmt.Errorf("%w: rate %d for width %d", ErrInvalidConfiguration, rate, size.B())
	}
	return nil
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	return &State{size: s.size, rate: s.rate, bits: s.bits.Clone()}
}

// Size returns the state width.
func (s *State) Size() Size { return s.size }

// Rate returns the rate in bits.
func (s *State) Rate() int { return s.rate }

// Capacity returns b - rate.
func (s *State) Capacity() int { return s.size.B() - s.rate }

// Vector returns the bits of the state. The vector is owned by s.
func (s *State) Vector() *bitvec.Vector { return s.bits }

// SetVector replaces the bits of the state with v, which must hold exactly
// b bits. The state takes ownership of v.
func (s *State) SetVector(v *bitvec.Vector) error {
	if v == nil || v.Len() != s.size.B() {
		n := 0
		if v != nil {
			n = v.Len()
		}
		return fmt.Errorf("%w: %d bits for width %d", ErrLengthMismatch, n, s.size.B())
	}
	s.bits = v
	return nil
}

// Swap exchanges the bits of s and other, which must have the same width.
func (s *State) Swap(other *State) error {
	if other == nil || other.size != s.size {
		return fmt.Errorf("%w: cannot swap states of different widths", ErrLengthMismatch)
	}
	s.bits, other.bits = other.bits, s.bits
	return nil
}

// Clear zeroes the state.
func (s *State) Clear() { s.bits.Clear() }

// Index returns the flat bit index of (x, y, z). Coordinates are not
// wrapped; anything outside 5x5xw panics with an error wrapping
// bitvec.ErrIndexOutOfRange.
func (s *State) Index(x, y, z int) int {
	w := s.size.W()
	if uint(x) >= 5 || uint(y) >= 5 || uint(z) >= uint(w) {
		panic(fmt.Errorf("%w: (%d,%d,%d) outside 5x5x%d", bitvec.ErrIndexOutOfRange, x, y, z, w))
	}
	return w*(5*y+x) + z
}

// At returns bit (x, y, z).
func (s *State) At(x, y, z int) bool { return s.bits.Get(s.Index(x, y, z)) }

// Set assigns bit (x, y, z).
func (s *State) Set(x, y, z int, bit bool) { s.bits.Set(s.Index(x, y, z), bit) }

// Bit returns the bit at flat index i.
func (s *State) Bit(i int) bool { return s.bits.Get(i) }

// SetBit assigns the bit at flat index i.
func (s *State) SetBit(i int, bit bool) { s.bits.Set(i, bit) }

// Bits returns every bit of the state in flat index order.
func (s *State) Bits() iter.Seq[bool] { return s.bits.Bits() }

// XorBytes XORs data into the state. data must hold exactly ceil(b/8)
// bytes, otherwise the state is left unchanged.
func (s *State) XorBytes(data []byte) { s.bits.XorBytes(data) }

// BinString renders the state as a binary string, see bitvec.Vector.BinString.
func (s *State) BinString(group int) string { return s.bits.BinString(group) }

// HexString renders the state bytes, see bitvec.Vector.HexString.
func (s *State) HexString(spaced, upper bool) string { return s.bits.HexString(spaced, upper) }

func (s *State) String() string {
	return fmt.Sprintf("State (%s): %s", s.size, s.bits.HexString(true, true))
}
