package bitvec

import "math/bits"

// Mod returns value modulo m, rounded towards negative infinity, so the
// result always lies in [0, m) for positive m.
func Mod(value, m int) int {
	r := value % m
	if r < 0 {
		r += m
	}
	return r
}

// Log2 returns the base-2 logarithm of a positive power of two. For other
// positive values it returns the index of the highest set bit.
func Log2(value int) int {
	if value <= 0 {
		return 0
	}
	return bits.Len(uint(value)) - 1
}

// LowerMask returns a byte whose count%8 lowest bits are set. A positive
// multiple of 8 yields 0xFF, zero or a negative count yields 0.
func LowerMask(count int) byte {
	if count <= 0 {
		return 0
	}
	count %= 8
	if count == 0 {
		return 0xFF
	}
	return byte(1<<count) - 1
}

// byteCount is the number of bytes needed to hold n bits.
func byteCount(n int) int {
	return (n + 7) >> 3
}
