// Package keccak implements the Keccak-p[b, nr] permutations and the sponge
// functions built on them: SHA3-224/256/384/512, SHAKE128/256,
// RawSHAKE128/256 and the original (pre-FIPS) Keccak padding used by
// Ethereum.
//
// Everything here works on the bit level state from package sponge, so any
// width from 25 to 1600 bits and any input length in bits is supported. It
// is a reference implementation; it is neither fast nor constant time.
package keccak

import (
	"fmt"

	"github.com/Giulio2002/keccakp/bitvec"
	"github.com/Giulio2002/keccakp/sponge"
	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("keccak")

// Permutation is Keccak-p[b, nr] wrapped in a sponge with pad10*1 and a
// domain separation suffix. The embedded Construction provides Process and
// ProcessBits.
//
// A Permutation keeps scratch state between rounds and must not be used by
// more than one goroutine at a time.
type Permutation struct {
	*sponge.Construction

	rounds     int
	first      int // index of the first round, 12+2l-nr
	outputBits int

	scratch *sponge.State
	parity  []bool           // theta column parities, x*w+z
	iota    []*bitvec.Vector // round constant lane per round
}

// New returns Keccak-p[size, rounds] over a sponge with the given rate and
// suffix. A nil suffix is the empty suffix. The default output length is
// half the capacity.
func New(size sponge.Size, rate, rounds int, suffix *bitvec.Vector) (*Permutation, error) {
	if rounds < 1 {
		return nil, fmt.Errorf("%w: %d rounds", sponge.ErrInvalidConfiguration, rounds)
	}
	scratch, err := sponge.NewState(size, rate)
	if err != nil {
		return nil, err
	}
	p := &Permutation{
		rounds:     rounds,
		first:      12 + 2*size.L() - rounds,
		outputBits: (size.B() - rate) / 2,
		scratch:    scratch,
		parity:     make([]bool, 5*size.W()),
		iota:       make([]*bitvec.Vector, rounds),
	}
	for i := range p.iota {
		p.iota[i] = iotaLane(size, p.first+i)
	}
	p.Construction, err = sponge.NewConstruction(size, rate, p, Pad101, suffix)
	if err != nil {
		return nil, err
	}
	log.Debugw("new permutation", "b", size.B(), "rate", rate, "rounds", rounds, "suffix", p.Suffix().BinString(0))
	return p, nil
}

// F returns Keccak-f[size], the permutation with the full 12+2l rounds and
// no suffix.
func F(size sponge.Size, rate int) (*Permutation, error) {
	if !size.Valid() {
		return nil, fmt.Errorf("%w: width %d", sponge.ErrInvalidConfiguration, size.B())
	}
	return New(size, rate, 12+2*size.L(), nil)
}

// F25 returns Keccak-f[25] with the given rate.
func F25(rate int) (*Permutation, error) { return F(sponge.Size25, rate) }

// F50 returns Keccak-f[50] with the given rate.
func F50(rate int) (*Permutation, error) { return F(sponge.Size50, rate) }

// F100 returns Keccak-f[100] with the given rate.
func F100(rate int) (*Permutation, error) { return F(sponge.Size100, rate) }

// F200 returns Keccak-f[200] with the given rate.
func F200(rate int) (*Permutation, error) { return F(sponge.Size200, rate) }

// F400 returns Keccak-f[400] with the given rate.
func F400(rate int) (*Permutation, error) { return F(sponge.Size400, rate) }

// F800 returns Keccak-f[800] with the given rate.
func F800(rate int) (*Permutation, error) { return F(sponge.Size800, rate) }

// F1600 returns Keccak-f[1600] with the given rate.
func F1600(rate int) (*Permutation, error) { return F(sponge.Size1600, rate) }

// Rounds returns nr.
func (p *Permutation) Rounds() int { return p.rounds }

// OutputBits returns the output length used by Sum.
func (p *Permutation) OutputBits() int { return p.outputBits }

// Sum absorbs data and returns OutputBits bits of output. nil data is the
// empty message.
func (p *Permutation) Sum(data []byte) []byte {
	return p.Process(data, p.outputBits)
}

func (p *Permutation) String() string {
	return fmt.Sprintf("Keccak-p[%d, %d] rate=%d suffix=%q",
		p.Size().B(), p.rounds, p.Rate(), p.Suffix().BinString(0))
}
