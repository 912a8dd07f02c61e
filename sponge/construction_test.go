package sponge

import (
	"testing"

	"github.com/Giulio2002/keccakp/bitvec"
	"github.com/stretchr/testify/require"
)

// pad101 is the multi-rate padding rule, duplicated here so the sponge can
// be tested without a real permutation.
func pad101(rate, m int) *bitvec.Vector {
	j := bitvec.Mod(-m-2, rate)
	p := bitvec.Zeroes(j + 2)
	p.Set(0, true)
	p.Set(j+1, true)
	return p
}

type countingFunction struct{ calls int }

func (f *countingFunction) Permute(*State) { f.calls++ }

func TestConstructionIdentity(t *testing.T) {
	f := new(countingFunction)
	c, err := NewConstruction(Size25, 5, f, pad101, nil)
	require.NoError(t, err)
	require.Equal(t, Size25, c.Size())
	require.Equal(t, 5, c.Rate())
	require.Equal(t, 20, c.Capacity())
	require.Equal(t, 0, c.Suffix().Len())

	// "100" pads to the single block "10011"
	out, err := c.ProcessBits([]byte{0x01}, 3, 5)
	require.NoError(t, err)
	require.Equal(t, []byte{0x19}, out)
	require.Equal(t, 1, f.calls)
	require.Equal(t, "10011"+"00000000000000000000", c.State().BinString(0))

	// squeezing 12 bits takes three blocks of an unchanged state
	f.calls = 0
	out, err = c.ProcessBits([]byte{0x01}, 3, 12)
	require.NoError(t, err)
	require.Equal(t, []byte{0x39, 0x07}, out)
	require.Equal(t, 3, f.calls)
}

func TestConstructionSuffix(t *testing.T) {
	c, err := NewConstruction(Size25, 5, FunctionFunc(func(*State) {}), pad101, bitvec.MustParse("01"))
	require.NoError(t, err)
	require.Equal(t, "01", c.Suffix().BinString(0))

	// "1" + "01" + pad "11" is one block
	out, err := c.ProcessBits([]byte{0x01}, 1, 5)
	require.NoError(t, err)
	require.Equal(t, "10111", mustVector(t, out, 5).BinString(0))
}

func TestConstructionAbsorbsEveryBlock(t *testing.T) {
	f := new(countingFunction)
	c, err := NewConstruction(Size200, 64, f, pad101, nil)
	require.NoError(t, err)
	// 24 bytes + 2 padding bits need four 64-bit blocks
	c.Process(make([]byte, 24), 64)
	require.Equal(t, 4, f.calls)
}

func TestConstructionEmptyInput(t *testing.T) {
	c, err := NewConstruction(Size1600, 1088, FunctionFunc(func(*State) {}), pad101, nil)
	require.NoError(t, err)
	require.Equal(t, c.Process(nil, 256), c.Process([]byte{}, 256))
	require.Empty(t, c.Process(nil, 0))

	fromNil, err := c.ProcessBits(nil, -1, 256)
	require.NoError(t, err)
	fromEmpty, err := c.ProcessBits([]byte{}, 0, 256)
	require.NoError(t, err)
	require.Len(t, fromNil, 32)
	require.Equal(t, fromEmpty, fromNil)
}

func TestConstructionMasksOutputTail(t *testing.T) {
	c, err := NewConstruction(Size25, 10, FunctionFunc(func(s *State) {
		_ = s.SetVector(bitvec.Ones(25))
	}), pad101, nil)
	require.NoError(t, err)
	out := c.Process([]byte{0xAA}, 13)
	require.Equal(t, []byte{0xFF, 0x1F}, out)
}

func TestConstructionErrors(t *testing.T) {
	nop := FunctionFunc(func(*State) {})
	_, err := NewConstruction(Size25, 25, nop, pad101, nil)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	_, err = NewConstruction(Size25, 5, nil, pad101, nil)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	_, err = NewConstruction(Size25, 5, nop, nil, nil)
	require.ErrorIs(t, err, ErrInvalidConfiguration)

	c, err := NewConstruction(Size25, 5, nop, pad101, nil)
	require.NoError(t, err)
	_, err = c.ProcessBits([]byte{0x01}, 9, 5)
	require.ErrorIs(t, err, bitvec.ErrInvalidLength)
	_, err = c.ProcessBits([]byte{0x01}, 8, -1)
	require.ErrorIs(t, err, bitvec.ErrInvalidLength)
}

func TestConstructionBadPaddingPanics(t *testing.T) {
	noPad := func(int, int) *bitvec.Vector { return bitvec.Zeroes(0) }
	c, err := NewConstruction(Size25, 5, FunctionFunc(func(*State) {}), noPad, nil)
	require.NoError(t, err)
	require.Panics(t, func() { c.ProcessBits([]byte{0x01}, 3, 5) })
}

func mustVector(t *testing.T, data []byte, n int) *bitvec.Vector {
	t.Helper()
	v, err := bitvec.FromBytes(data, n)
	require.NoError(t, err)
	return v
}
