package sponge

import (
	"fmt"

	"github.com/Giulio2002/keccakp/bitvec"
)

// Size is the width b of a Keccak state, one of 25, 50, 100, 200, 400, 800
// or 1600 bits. The zero value is not a valid size; use one of the
// predefined values or SizeOf.
type Size struct {
	b int
}

var (
	Size25   = Size{25}   // w=1, l=0
	Size50   = Size{50}   // w=2, l=1
	Size100  = Size{100}  // w=4, l=2
	Size200  = Size{200}  // w=8, l=3
	Size400  = Size{400}  // w=16, l=4
	Size800  = Size{800}  // w=32, l=5
	Size1600 = Size{1600} // w=64, l=6
)

// Sizes returns every valid state width in increasing order.
func Sizes() []Size {
	return []Size{Size25, Size50, Size100, Size200, Size400, Size800, Size1600}
}

// SizeOf returns the Size for a width of b bits.
func SizeOf(b int) (Size, error) {
	for _, s := range Sizes() {
		if s.b == b {
			return s, nil
		}
	}
	return Size{}, fmt.Errorf("%w: width %d is not 25*2^l for l in [0,6]", ErrInvalidConfiguration, b)
}

// B returns the total number of bits in the state.
func (s Size) B() int { return s.b }

// W returns the lane depth, the size of the z dimension.
func (s Size) W() int { return s.b / 25 }

// L returns log2(W).
func (s Size) L() int { return bitvec.Log2(s.W()) }

// Valid reports whether s is one of the seven Keccak widths.
func (s Size) Valid() bool {
	_, err := SizeOf(s.b)
	return err == nil
}

func (s Size) String() string {
	return fmt.Sprintf("B=%d, W=%d, L=%d", s.B(), s.W(), s.L())
}
