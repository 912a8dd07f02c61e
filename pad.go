package keccak

import "github.com/Giulio2002/keccakp/bitvec"

// Pad101 returns the pad10*1 bits for an m-bit message: a one, j zeros and
// a final one, with j = (-m-2) mod rate. The padded length m+j+2 is a
// multiple of rate.
func Pad101(rate, m int) *bitvec.Vector {
	j := bitvec.Mod(-m-2, rate)
	pad := bitvec.Zeroes(j + 2)
	pad.Set(0, true)
	pad.Set(j+1, true)
	return pad
}
