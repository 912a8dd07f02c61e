package sponge

import (
	"strings"
	"testing"

	"github.com/Giulio2002/keccakp/bitvec"
	"github.com/stretchr/testify/require"
)

// alternating returns a 50-bit state holding "1010...", so every bit at
// z=0 is set and every bit at z=1 is clear.
func alternating(t *testing.T) *State {
	t.Helper()
	s, err := StateFrom(bitvec.MustParse(strings.Repeat("10", 25)), 25)
	require.NoError(t, err)
	return s
}

func TestSizes(t *testing.T) {
	want := []struct{ b, w, l int }{
		{25, 1, 0}, {50, 2, 1}, {100, 4, 2}, {200, 8, 3},
		{400, 16, 4}, {800, 32, 5}, {1600, 64, 6},
	}
	sizes := Sizes()
	require.Len(t, sizes, len(want))
	for i, tt := range want {
		s := sizes[i]
		require.Equal(t, tt.b, s.B())
		require.Equal(t, tt.w, s.W())
		require.Equal(t, tt.l, s.L())
		require.True(t, s.Valid())

		got, err := SizeOf(tt.b)
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
	require.Equal(t, "B=1600, W=64, L=6", Size1600.String())
}

func TestSizeOfInvalid(t *testing.T) {
	for _, b := range []int{0, 24, 30, 3200, -25} {
		_, err := SizeOf(b)
		require.ErrorIs(t, err, ErrInvalidConfiguration, "b=%d", b)
	}
	require.False(t, Size{}.Valid())
}

func TestNewState(t *testing.T) {
	s, err := NewState(Size1600, 1400)
	require.NoError(t, err)
	require.Equal(t, 1600, s.Size().B())
	require.Equal(t, 1400, s.Rate())
	require.Equal(t, 200, s.Capacity())
	require.Equal(t, 1600, s.Vector().Len())
	for bit := range s.Bits() {
		require.False(t, bit)
	}
}

func TestNewStateInvalidRate(t *testing.T) {
	for _, rate := range []int{0, -1, 1600, 2000} {
		_, err := NewState(Size1600, rate)
		require.ErrorIs(t, err, ErrInvalidConfiguration, "rate=%d", rate)
	}
	_, err := NewState(Size{}, 10)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestStateFrom(t *testing.T) {
	s, err := StateFrom(bitvec.Zeroes(50), 32)
	require.NoError(t, err)
	require.Equal(t, 50, s.Size().B())
	require.Equal(t, 32, s.Rate())
	require.Equal(t, 18, s.Capacity())

	_, err = StateFrom(bitvec.Zeroes(0), 1)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	_, err = StateFrom(nil, 1)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	_, err = StateFrom(bitvec.Zeroes(48), 10)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	_, err = StateFrom(bitvec.Zeroes(50), 0)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	_, err = StateFrom(bitvec.Zeroes(50), 50)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestSetVector(t *testing.T) {
	s := alternating(t)
	require.ErrorIs(t, s.SetVector(bitvec.Zeroes(48)), ErrLengthMismatch)
	require.ErrorIs(t, s.SetVector(nil), ErrLengthMismatch)
	require.Equal(t, strings.Repeat("10", 25), s.BinString(0))

	require.NoError(t, s.SetVector(bitvec.Ones(50)))
	require.Equal(t, strings.Repeat("1", 50), s.BinString(0))
}

func TestCloneIsIndependent(t *testing.T) {
	s := alternating(t)
	c := s.Clone()
	c.Clear()
	require.Equal(t, strings.Repeat("10", 25), s.BinString(0))
	require.Equal(t, strings.Repeat("0", 50), c.BinString(0))
	require.Equal(t, s.Rate(), c.Rate())
}

func TestSwap(t *testing.T) {
	a := alternating(t)
	b, err := NewState(Size50, 25)
	require.NoError(t, err)

	require.NoError(t, a.Swap(b))
	require.Equal(t, strings.Repeat("0", 50), a.BinString(0))
	require.Equal(t, strings.Repeat("10", 25), b.BinString(0))

	other, err := NewState(Size100, 25)
	require.NoError(t, err)
	require.ErrorIs(t, a.Swap(other), ErrLengthMismatch)
	require.ErrorIs(t, a.Swap(nil), ErrLengthMismatch)
}

func TestIndex(t *testing.T) {
	s, err := NewState(Size25, 10)
	require.NoError(t, err)
	for y := range 5 {
		for x := range 5 {
			require.Equal(t, 5*y+x, s.Index(x, y, 0))
		}
	}

	s, err = NewState(Size1600, 1088)
	require.NoError(t, err)
	require.Equal(t, 64*(5*2+3)+17, s.Index(3, 2, 17))
}

func TestIndexOutOfRange(t *testing.T) {
	s := alternating(t)
	for _, c := range [][3]int{{5, 0, 0}, {0, 5, 0}, {0, 0, 2}, {-1, 0, 0}, {0, 0, -1}} {
		require.Panics(t, func() { s.Index(c[0], c[1], c[2]) }, "%v", c)
	}
	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		require.ErrorIs(t, err, bitvec.ErrIndexOutOfRange)
	}()
	s.At(0, 0, 2)
}

func TestAtSet(t *testing.T) {
	s := alternating(t)
	require.True(t, s.At(4, 4, 0))
	require.False(t, s.At(4, 4, 1))

	s.Set(4, 4, 1, true)
	require.True(t, s.Bit(49))
	s.SetBit(49, false)
	require.False(t, s.At(4, 4, 1))
}

func TestBitAt(t *testing.T) {
	s, err := NewState(Size200, 100)
	require.NoError(t, err)
	for i := 0; i < s.Size().B(); i++ {
		b := s.BitAt(i)
		require.Equal(t, i, s.Index(b.X, b.Y, b.Z))
	}
	require.Panics(t, func() { s.BitAt(200) })
	require.Panics(t, func() { s.BitAt(-1) })
}

func TestStateXorBytes(t *testing.T) {
	s := alternating(t)
	s.XorBytes([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF})
	require.Equal(t, strings.Repeat("01", 25), s.BinString(0))

	// wrong length leaves the state alone
	s.XorBytes([]byte{0xFF})
	require.Equal(t, strings.Repeat("01", 25), s.BinString(0))
}

func TestStateString(t *testing.T) {
	s, err := NewState(Size25, 10)
	require.NoError(t, err)
	s.SetBit(0, true)
	require.Equal(t, "State (B=25, W=1, L=0): 01 00 00 00", s.String())
}
