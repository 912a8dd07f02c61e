package keccak

import (
	"sync"

	"github.com/Giulio2002/keccakp/bitvec"
	"github.com/Giulio2002/keccakp/sponge"
)

// rhoOffsets holds (t+1)(t+2)/2 for t = 0..23, before reduction mod w.
var rhoOffsets = func() (o [24]int) {
	for t := range o {
		o[t] = (t + 1) * (t + 2) / 2
	}
	return o
}()

// roundConstants is the output of the LFSR x^8+x^6+x^5+x^4+1 for
// t = 0..254; the sequence has period 255.
var roundConstants = sync.OnceValue(func() (rc [255]bool) {
	r := uint16(1)
	for t := range rc {
		rc[t] = r&1 == 1
		r <<= 1
		if r&0x100 != 0 {
			r ^= 0x171
		}
	}
	log.Debug("round constant table ready")
	return rc
})

// roundConstant returns rc(t). Negative t wraps like any other.
func roundConstant(t int) bool {
	return roundConstants()[bitvec.Mod(t, 255)]
}

// iotaLane returns the w-bit lane XORed into (0, 0) in the given round.
// Only bits 2^j-1 for j = 0..l can be set.
func iotaLane(size sponge.Size, round int) *bitvec.Vector {
	rc := bitvec.Zeroes(size.W())
	for j := 0; j <= size.L(); j++ {
		rc.Set(1<<j-1, roundConstant(j+7*round))
	}
	return rc
}
