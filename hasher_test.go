package keccak

import (
	"bytes"
	"errors"
	"hash"
	"testing"

	"golang.org/x/crypto/sha3"
)

func TestHasherStreaming(t *testing.T) {
	data := []byte("hello world, this is a longer test string for streaming keccak")
	want := Sum256(data)

	h, err := NewHasher(SHA3_256)
	if err != nil {
		t.Fatal(err)
	}
	for _, b := range data {
		h.Write([]byte{b})
	}
	if got := h.Sum(nil); !bytes.Equal(got, want[:]) {
		t.Fatalf("streaming byte-by-byte: %x vs %x", got, want)
	}
}

func TestHasherMultiBlock(t *testing.T) {
	// two full blocks plus a partial one, written in chunks of 37
	const rate = 136
	data := make([]byte, rate*2+50)
	for i := range data {
		data[i] = byte(i * 7)
	}
	want := LegacySum256(data)

	h, err := NewHasher(Keccak256)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < len(data); i += 37 {
		h.Write(data[i:min(i+37, len(data))])
	}
	if got := h.Sum(nil); !bytes.Equal(got, want[:]) {
		t.Fatalf("multi-block streaming: %x vs %x", got, want)
	}
}

func TestHasherSumKeepsInput(t *testing.T) {
	h, _ := NewHasher(SHA3_224)
	h.Write([]byte("ab"))
	first := h.Sum([]byte("prefix"))
	if !bytes.HasPrefix(first, []byte("prefix")) || len(first) != 6+28 {
		t.Fatalf("Sum must append: %x", first)
	}
	h.Write([]byte("c"))
	want := Sum224([]byte("abc"))
	if got := h.Sum(nil); !bytes.Equal(got, want[:]) {
		t.Fatalf("Sum after more writes: %x vs %x", got, want)
	}
}

func TestHasherFinalizeResets(t *testing.T) {
	h, _ := NewHasher(SHA3_512)
	h.Write([]byte("abc"))
	want := Sum512([]byte("abc"))
	if got := h.Finalize(); !bytes.Equal(got, want[:]) {
		t.Fatalf("Finalize: %x vs %x", got, want)
	}
	empty := Sum512(nil)
	if got := h.Sum(nil); !bytes.Equal(got, empty[:]) {
		t.Fatalf("after Finalize: %x vs %x", got, empty)
	}
}

func TestHasherSizes(t *testing.T) {
	ref := map[Variant]func() hash.Hash{
		SHA3_224:  sha3.New224,
		SHA3_256:  sha3.New256,
		SHA3_384:  sha3.New384,
		SHA3_512:  sha3.New512,
		Keccak256: sha3.NewLegacyKeccak256,
	}
	tests := []struct {
		v               Variant
		size, blockSize int
	}{
		{SHA3_224, 28, 144},
		{SHA3_256, 32, 136},
		{SHA3_384, 48, 104},
		{SHA3_512, 64, 72},
		{SHAKE128, 32, 168},
		{SHAKE256, 64, 136},
		{Keccak256, 32, 136},
	}
	for _, tt := range tests {
		h, err := NewHasher(tt.v)
		if err != nil {
			t.Fatal(err)
		}
		if h.Size() != tt.size || h.BlockSize() != tt.blockSize {
			t.Fatalf("%s: Size %d BlockSize %d, want %d %d", tt.v, h.Size(), h.BlockSize(), tt.size, tt.blockSize)
		}
		if r, ok := ref[tt.v]; ok {
			if want := r(); want.BlockSize() != h.BlockSize() || want.Size() != h.Size() {
				t.Fatalf("%s: x/crypto says Size %d BlockSize %d", tt.v, want.Size(), want.BlockSize())
			}
		}
	}
}

func TestXOF(t *testing.T) {
	h, err := NewXOF(SHAKE256, 8*200)
	if err != nil {
		t.Fatal(err)
	}
	h.Write([]byte("abc"))
	want := make([]byte, 200)
	sha3.ShakeSum256(want, []byte("abc"))
	if got := h.Sum(nil); !bytes.Equal(got, want) {
		t.Fatalf("SHAKE256 200 bytes: %x vs %x", got, want)
	}
	if got := h.SumBits(12); !bytes.Equal(got, []byte{want[0], want[1] & 0x0F}) {
		t.Fatalf("SumBits(12) = %x", got)
	}
}

func TestXOFFixedOutput(t *testing.T) {
	if _, err := NewXOF(SHA3_256, 128); !errors.Is(err, ErrFixedOutput) {
		t.Fatalf("SHA3-256 with 128 bits: err = %v", err)
	}
	if _, err := NewXOF(Keccak256, 512); !errors.Is(err, ErrFixedOutput) {
		t.Fatalf("Keccak-256 with 512 bits: err = %v", err)
	}
	for _, bits := range []int{0, 256} {
		h, err := NewXOF(SHA3_256, bits)
		if err != nil {
			t.Fatalf("SHA3-256 with %d bits: %v", bits, err)
		}
		if h.Size() != 32 {
			t.Fatalf("SHA3-256 with %d bits: Size %d", bits, h.Size())
		}
	}
}

func TestNewHasherUnknown(t *testing.T) {
	if _, err := NewHasher(Variant(99)); err == nil {
		t.Fatal("expected error")
	}
}
