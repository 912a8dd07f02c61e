package sponge

import (
	"fmt"

	"github.com/Giulio2002/keccakp/bitvec"
)

// Function is the fixed-width transformation a sponge applies between
// blocks. Permute must leave s at the same width.
type Function interface {
	Permute(s *State)
}

// FunctionFunc adapts a plain function to Function.
type FunctionFunc func(s *State)

// Permute calls f(s).
func (f FunctionFunc) Permute(s *State) { f(s) }

// Padding returns the bits appended to an m-bit message so that the result
// is a multiple of rate.
type Padding func(rate, m int) *bitvec.Vector

// Construction is the absorb/squeeze sponge over a Function. The suffix is
// appended to every message before padding.
//
// A Construction owns its state and is not safe for concurrent use.
type Construction struct {
	state  *State
	f      Function
	pad    Padding
	suffix *bitvec.Vector
}

// NewConstruction returns a sponge of the given width and rate. A nil
// suffix is the empty suffix.
func NewConstruction(size Size, rate int, f Function, pad Padding, suffix *bitvec.Vector) (*Construction, error) {
	if f == nil || pad == nil {
		return nil, fmt.Errorf("%w: missing function or padding", ErrInvalidConfiguration)
	}
	state, err := NewState(size, rate)
	if err != nil {
		return nil, err
	}
	if suffix == nil {
		suffix = bitvec.Zeroes(0)
	}
	return &Construction{state: state, f: f, pad: pad, suffix: suffix.Clone()}, nil
}

// Size returns the permutation width.
func (c *Construction) Size() Size { return c.state.size }

// Rate returns the number of bits absorbed or squeezed per block.
func (c *Construction) Rate() int { return c.state.rate }

// Capacity returns Size().B() - Rate().
func (c *Construction) Capacity() int { return c.state.Capacity() }

// State returns the sponge state as left by the last call to Process.
func (c *Construction) State() *State { return c.state }

// Suffix returns a copy of the domain-separation suffix.
func (c *Construction) Suffix() *bitvec.Vector { return c.suffix.Clone() }

// Process absorbs every bit of data and squeezes outputBits bits. The
// result holds ceil(outputBits/8) bytes with the unused high bits of the
// last byte cleared.
//
// There is no absent input: nil and an empty slice are both the empty
// message and hash identically, as with golang.org/x/crypto/sha3.
func (c *Construction) Process(data []byte, outputBits int) []byte {
	out, err := c.ProcessBits(data, -1, max(outputBits, 0))
	if err != nil {
		panic(err)
	}
	return out
}

// ProcessBits is like Process but absorbs only the first inputBits bits of
// data. A negative inputBits absorbs all of data.
func (c *Construction) ProcessBits(data []byte, inputBits, outputBits int) ([]byte, error) {
	if outputBits < 0 {
		return nil, fmt.Errorf("%w: output length %d", bitvec.ErrInvalidLength, outputBits)
	}
	msg, err := bitvec.FromBytes(data, inputBits)
	if err != nil {
		return nil, err
	}
	c.absorb(msg)
	return c.squeeze(outputBits), nil
}

func (c *Construction) absorb(msg *bitvec.Vector) {
	c.state.Clear()
	rate := c.state.rate
	msg.Append(c.suffix)
	msg.Append(c.pad(rate, msg.Len()))
	if msg.Len()%rate != 0 {
		panic(fmt.Sprintf("sponge: padded message of %d bits is not a multiple of rate %d", msg.Len(), rate))
	}
	capacity := bitvec.Zeroes(c.state.Capacity())
	for i := 0; i < msg.Len(); i += rate {
		block, err := msg.Substring(i, rate)
		if err != nil {
			panic(err)
		}
		c.state.bits.Xor(block.Append(capacity))
		c.f.Permute(c.state)
	}
}

func (c *Construction) squeeze(outputBits int) []byte {
	rate := c.state.rate
	out := bitvec.Zeroes(0)
	for out.Len() < outputBits {
		if out.Len() > 0 {
			c.f.Permute(c.state)
		}
		out.Append(c.state.bits.Truncate(rate))
	}
	return out.Truncate(outputBits).Bytes()
}
