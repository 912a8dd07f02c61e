package keccak

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Giulio2002/keccakp/bitvec"
	"github.com/Giulio2002/keccakp/sponge"
	"github.com/multiformats/go-multihash"
)

var (
	// ErrUnknownVariant is returned for a Variant or name outside the catalogue.
	ErrUnknownVariant = errors.New("keccak: unknown variant")
	// ErrFixedOutput is returned when a non-XOF variant is asked for an output
	// length other than its own.
	ErrFixedOutput = errors.New("keccak: fixed output length")
)

// Variant selects one of the fixed-parameter sponge functions. All of them
// run Keccak-f[1600] with 24 rounds.
type Variant int

const (
	SHA3_224 Variant = iota + 1
	SHA3_256
	SHA3_384
	SHA3_512
	SHAKE128
	SHAKE256
	RawSHAKE128
	RawSHAKE256
	Keccak224
	Keccak256
	Keccak384
	Keccak512
)

const (
	sha3Suffix     = "01"
	shakeSuffix    = "1111"
	rawShakeSuffix = "11"
)

type variantInfo struct {
	name       string
	capacity   int
	suffix     string
	outputBits int
	multihash  uint64 // 0 when there is no registered code
}

var variants = map[Variant]variantInfo{
	SHA3_224:    {"sha3-224", 448, sha3Suffix, 224, multihash.SHA3_224},
	SHA3_256:    {"sha3-256", 512, sha3Suffix, 256, multihash.SHA3_256},
	SHA3_384:    {"sha3-384", 768, sha3Suffix, 384, multihash.SHA3_384},
	SHA3_512:    {"sha3-512", 1024, sha3Suffix, 512, multihash.SHA3_512},
	SHAKE128:    {"shake-128", 256, shakeSuffix, 256, multihash.SHAKE_128},
	SHAKE256:    {"shake-256", 512, shakeSuffix, 512, multihash.SHAKE_256},
	RawSHAKE128: {"rawshake-128", 256, rawShakeSuffix, 256, 0},
	RawSHAKE256: {"rawshake-256", 512, rawShakeSuffix, 512, 0},
	Keccak224:   {"keccak-224", 448, "", 224, multihash.KECCAK_224},
	Keccak256:   {"keccak-256", 512, "", 256, multihash.KECCAK_256},
	Keccak384:   {"keccak-384", 768, "", 384, multihash.KECCAK_384},
	Keccak512:   {"keccak-512", 1024, "", 512, multihash.KECCAK_512},
}

// Variants returns the catalogue in declaration order.
func Variants() []Variant {
	out := make([]Variant, 0, len(variants))
	for v := SHA3_224; v <= Keccak512; v++ {
		out = append(out, v)
	}
	return out
}

// ParseVariant looks a variant up by name, e.g. "sha3-256" or "shake-128".
// Matching ignores case, and the dash may be left out.
func ParseVariant(name string) (Variant, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for v, info := range variants {
		if key == info.name || key == strings.ReplaceAll(info.name, "-", "") {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

func (v Variant) info() (variantInfo, bool) {
	info, ok := variants[v]
	return info, ok
}

// Valid reports whether v is a known variant.
func (v Variant) Valid() bool {
	_, ok := v.info()
	return ok
}

func (v Variant) String() string {
	if info, ok := v.info(); ok {
		return info.name
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// Capacity returns c in bits; the rate is 1600-c.
func (v Variant) Capacity() int {
	info, _ := v.info()
	return info.capacity
}

// Rate returns 1600 minus the capacity, or 0 for an unknown variant.
func (v Variant) Rate() int {
	if !v.Valid() {
		return 0
	}
	return sponge.Size1600.B() - v.Capacity()
}

// Suffix returns the domain separation bits appended before padding.
func (v Variant) Suffix() *bitvec.Vector {
	info, _ := v.info()
	return bitvec.MustParse(info.suffix)
}

// OutputBits returns the digest length, or the default output length of
// the SHAKE and RawSHAKE functions.
func (v Variant) OutputBits() int {
	info, _ := v.info()
	return info.outputBits
}

// XOF reports whether v is an extendable output function.
func (v Variant) XOF() bool {
	switch v {
	case SHAKE128, SHAKE256, RawSHAKE128, RawSHAKE256:
		return true
	}
	return false
}

// MultihashCode returns the multicodec of v. RawSHAKE has none.
func (v Variant) MultihashCode() (uint64, bool) {
	info, ok := v.info()
	if !ok || info.multihash == 0 {
		return 0, false
	}
	return info.multihash, true
}

// New returns a fresh Keccak-f[1600] sponge configured for v.
func (v Variant) New() (*Permutation, error) {
	info, ok := v.info()
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
	p, err := New(sponge.Size1600, sponge.Size1600.B()-info.capacity, 24, bitvec.MustParse(info.suffix))
	if err != nil {
		return nil, err
	}
	p.outputBits = info.outputBits
	return p, nil
}

func mustNew(v Variant) *Permutation {
	p, err := v.New()
	if err != nil {
		panic(err)
	}
	return p
}

// New224 returns the SHA3-224 permutation.
func New224() *Permutation { return mustNew(SHA3_224) }

// New256 returns the SHA3-256 permutation.
func New256() *Permutation { return mustNew(SHA3_256) }

// New384 returns the SHA3-384 permutation.
func New384() *Permutation { return mustNew(SHA3_384) }

// New512 returns the SHA3-512 permutation.
func New512() *Permutation { return mustNew(SHA3_512) }

// NewShake128 returns the SHAKE128 permutation.
func NewShake128() *Permutation { return mustNew(SHAKE128) }

// NewShake256 returns the SHAKE256 permutation.
func NewShake256() *Permutation { return mustNew(SHAKE256) }

// NewRawShake128 returns the RawSHAKE128 permutation.
func NewRawShake128() *Permutation { return mustNew(RawSHAKE128) }

// NewRawShake256 returns the RawSHAKE256 permutation.
func NewRawShake256() *Permutation { return mustNew(RawSHAKE256) }

// NewLegacyKeccak224 returns Keccak[448] without a suffix, the padding used
// before FIPS 202.
func NewLegacyKeccak224() *Permutation { return mustNew(Keccak224) }

// NewLegacyKeccak256 returns Keccak[512] without a suffix, as used by
// Ethereum.
func NewLegacyKeccak256() *Permutation { return mustNew(Keccak256) }

// NewLegacyKeccak384 returns Keccak[768] without a suffix.
func NewLegacyKeccak384() *Permutation { return mustNew(Keccak384) }

// NewLegacyKeccak512 returns Keccak[1024] without a suffix.
func NewLegacyKeccak512() *Permutation { return mustNew(Keccak512) }
