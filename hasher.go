package keccak

import (
	"fmt"
	"hash"
)

var _ hash.Hash = (*Hasher)(nil)

// Hasher is a streaming front end for one variant. The sponge itself
// absorbs whole messages, so Write only buffers; the permutation runs when
// a digest is requested.
type Hasher struct {
	variant    Variant
	p          *Permutation
	buf        []byte
	outputBits int
}

// NewHasher returns an empty hasher for v producing v.OutputBits() bits.
func NewHasher(v Variant) (*Hasher, error) {
	p, err := v.New()
	if err != nil {
		return nil, err
	}
	return &Hasher{variant: v, p: p, outputBits: v.OutputBits()}, nil
}

// NewXOF is like NewHasher but with an explicit output length. A zero
// outputBits keeps the default. Variants that are not XOFs only accept
// their own OutputBits and fail with ErrFixedOutput otherwise.
func NewXOF(v Variant, outputBits int) (*Hasher, error) {
	h, err := NewHasher(v)
	if err != nil {
		return nil, err
	}
	if outputBits > 0 && !v.XOF() && outputBits != v.OutputBits() {
		return nil, fmt.Errorf("%w: %s produces %d bits, not %d", ErrFixedOutput, v, v.OutputBits(), outputBits)
	}
	if outputBits > 0 {
		h.outputBits = outputBits
	}
	return h, nil
}

// Variant returns the variant h computes.
func (h *Hasher) Variant() Variant { return h.variant }

// Write buffers p. It never fails.
func (h *Hasher) Write(p []byte) (int, error) {
	h.buf = append(h.buf, p...)
	return len(p), nil
}

// Sum appends the digest of everything written so far to b. The buffered
// input is kept.
func (h *Hasher) Sum(b []byte) []byte {
	return append(b, h.p.Process(h.buf, h.outputBits)...)
}

// SumBits returns n output bits for the buffered input, packed LSB first.
func (h *Hasher) SumBits(n int) []byte {
	return h.p.Process(h.buf, n)
}

// Finalize returns the digest and resets the hasher.
func (h *Hasher) Finalize() []byte {
	out := h.Sum(nil)
	log.Debugw("finalized", "variant", h.variant, "bytes", len(h.buf))
	h.Reset()
	return out
}

// Reset discards the buffered input.
func (h *Hasher) Reset() {
	clear(h.buf)
	h.buf = h.buf[:0]
}

// Size returns the digest length in bytes.
func (h *Hasher) Size() int { return (h.outputBits + 7) / 8 }

// BlockSize returns the rate in bytes.
func (h *Hasher) BlockSize() int { return h.p.Rate() / 8 }
