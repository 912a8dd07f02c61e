package sponge

import (
	"fmt"
	"iter"

	"github.com/Giulio2002/keccakp/bitvec"
)

// Canonical traversal orders:
//
//	Lane(x,y)    z
//	Plane(y)     x, then z
//	Sheet(x)     y, then z
//	Row(y,z)     x
//	Column(x,z)  y
//	Slice(z)     y, then x
//
// The state-wide Set*/Xor* variants consume bits in the order of the
// corresponding enumeration (Lanes, Planes, ...) followed by each view's own
// order, which gives b bits per kind.

// Bit is a single-bit view of a state.
type Bit struct {
	state   *State
	X, Y, Z int
}

// Value returns the current value of the bit.
func (b Bit) Value() bool { return b.state.At(b.X, b.Y, b.Z) }

func (b Bit) String() string {
	return fmt.Sprintf("Bit (X=%d, Y=%d, Z=%d) : %t", b.X, b.Y, b.Z, b.Value())
}

// Lane is the w bits at fixed (x, y).
type Lane struct {
	state *State
	X, Y  int
}

// Depth returns w.
func (l Lane) Depth() int { return l.state.size.W() }

// Bits yields the lane bits for z = 0..w-1.
func (l Lane) Bits() iter.Seq[bool] {
	return viewBits(l.state, l.Depth(), l.index)
}

func (l Lane) index(k int) int { return l.state.Index(l.X, l.Y, k) }

func (l Lane) String() string { return fmt.Sprintf("Lane (X=%d, Y=%d)", l.X, l.Y) }

// Plane is the five lanes sharing y.
type Plane struct {
	state *State
	Y     int
}

// Depth returns w.
func (p Plane) Depth() int { return p.state.size.W() }

// Bits yields the lanes of the plane one after another, x ascending.
func (p Plane) Bits() iter.Seq[bool] {
	return viewBits(p.state, 5*p.Depth(), p.index)
}

func (p Plane) index(k int) int {
	w := p.Depth()
	return p.state.Index(k/w, p.Y, k%w)
}

// Lanes returns the lanes of p for x = 0..4.
func (p Plane) Lanes() iter.Seq[Lane] {
	return func(yield func(Lane) bool) {
		for x := 0; x < 5; x++ {
			if !yield(Lane{p.state, x, p.Y}) {
				return
			}
		}
	}
}

// Rows returns the rows of p for z = 0..w-1.
func (p Plane) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for z := 0; z < p.Depth(); z++ {
			if !yield(Row{p.state, p.Y, z}) {
				return
			}
		}
	}
}

func (p Plane) String() string { return fmt.Sprintf("Plane (Y=%d)", p.Y) }

// Sheet is the five lanes sharing x.
type Sheet struct {
	state *State
	X     int
}

// Depth returns w.
func (s Sheet) Depth() int { return s.state.size.W() }

// Bits yields the lanes of the sheet one after another, y ascending.
func (s Sheet) Bits() iter.Seq[bool] {
	return viewBits(s.state, 5*s.Depth(), s.index)
}

func (s Sheet) index(k int) int {
	w := s.Depth()
	return s.state.Index(s.X, k/w, k%w)
}

// Lanes returns the lanes of s for y = 0..4.
func (s Sheet) Lanes() iter.Seq[Lane] {
	return func(yield func(Lane) bool) {
		for y := 0; y < 5; y++ {
			if !yield(Lane{s.state, s.X, y}) {
				return
			}
		}
	}
}

// Columns returns the columns of s for z = 0..w-1.
func (s Sheet) Columns() iter.Seq[Column] {
	return func(yield func(Column) bool) {
		for z := 0; z < s.Depth(); z++ {
			if !yield(Column{s.state, s.X, z}) {
				return
			}
		}
	}
}

func (s Sheet) String() string { return fmt.Sprintf("Sheet (X=%d)", s.X) }

// Row is the five bits at fixed (y, z).
type Row struct {
	state *State
	Y, Z  int
}

// Bits yields the row bits for x = 0..4.
func (r Row) Bits() iter.Seq[bool] { return viewBits(r.state, 5, r.index) }

func (r Row) index(k int) int { return r.state.Index(k, r.Y, r.Z) }

func (r Row) String() string { return fmt.Sprintf("Row (Y=%d, Z=%d)", r.Y, r.Z) }

// Column is the five bits at fixed (x, z).
type Column struct {
	state *State
	X, Z  int
}

// Bits yields the column bits for y = 0..4.
func (c Column) Bits() iter.Seq[bool] { return viewBits(c.state, 5, c.index) }

func (c Column) index(k int) int { return c.state.Index(c.X, k, c.Z) }

func (c Column) String() string { return fmt.Sprintf("Column (X=%d, Z=%d)", c.X, c.Z) }

// Slice is the 25 bits at fixed z.
type Slice struct {
	state *State
	Z     int
}

// Bits yields the slice row by row, x varying fastest.
func (s Slice) Bits() iter.Seq[bool] { return viewBits(s.state, 25, s.index) }

func (s Slice) index(k int) int { return s.state.Index(k%5, k/5, s.Z) }

// Rows returns the rows of s for y = 0..4.
func (s Slice) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for y := 0; y < 5; y++ {
			if !yield(Row{s.state, y, s.Z}) {
				return
			}
		}
	}
}

// Columns returns the columns of s for x = 0..4.
func (s Slice) Columns() iter.Seq[Column] {
	return func(yield func(Column) bool) {
		for x := 0; x < 5; x++ {
			if !yield(Column{s.state, x, s.Z}) {
				return
			}
		}
	}
}

func (s Slice) String() string { return fmt.Sprintf("Slice (Z=%d)", s.Z) }

func viewBits(s *State, n int, index func(int) int) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for k := 0; k < n; k++ {
			if !yield(s.bits.Get(index(k))) {
				return
			}
		}
	}
}

// BitAt returns the coordinate view of flat index i.
func (s *State) BitAt(i int) Bit {
	w := s.size.W()
	if i < 0 || i >= s.size.B() {
		panic(&bitvec.IndexError{Index: i, Len: s.size.B()})
	}
	sheet := i / w
	return Bit{state: s, X: sheet % 5, Y: sheet / 5, Z: i % w}
}

// Lane returns the lane at (x, y).
func (s *State) Lane(x, y int) Lane { return Lane{s, x, y} }

// Plane returns the plane at y.
func (s *State) Plane(y int) Plane { return Plane{s, y} }

// Sheet returns the sheet at x.
func (s *State) Sheet(x int) Sheet { return Sheet{s, x} }

// Row returns the row at (y, z).
func (s *State) Row(y, z int) Row { return Row{s, y, z} }

// Column returns the column at (x, z).
func (s *State) Column(x, z int) Column { return Column{s, x, z} }

// Slice returns the slice at z.
func (s *State) Slice(z int) Slice { return Slice{s, z} }

// Lanes returns every lane, y outer and x inner.
func (s *State) Lanes() iter.Seq[Lane] {
	return func(yield func(Lane) bool) {
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				if !yield(Lane{s, x, y}) {
					return
				}
			}
		}
	}
}

// Planes returns every plane for y = 0..4.
func (s *State) Planes() iter.Seq[Plane] {
	return func(yield func(Plane) bool) {
		for y := 0; y < 5; y++ {
			if !yield(Plane{s, y}) {
				return
			}
		}
	}
}

// Sheets returns every sheet for x = 0..4.
func (s *State) Sheets() iter.Seq[Sheet] {
	return func(yield func(Sheet) bool) {
		for x := 0; x < 5; x++ {
			if !yield(Sheet{s, x}) {
				return
			}
		}
	}
}

// Rows returns every row, y outer and z inner.
func (s *State) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for y := 0; y < 5; y++ {
			for z := 0; z < s.size.W(); z++ {
				if !yield(Row{s, y, z}) {
					return
				}
			}
		}
	}
}

// Columns returns every column, x outer and z inner.
func (s *State) Columns() iter.Seq[Column] {
	return func(yield func(Column) bool) {
		for x := 0; x < 5; x++ {
			for z := 0; z < s.size.W(); z++ {
				if !yield(Column{s, x, z}) {
					return
				}
			}
		}
	}
}

// Slices returns every slice for z = 0..w-1.
func (s *State) Slices() iter.Seq[Slice] {
	return func(yield func(Slice) bool) {
		for z := 0; z < s.size.W(); z++ {
			if !yield(Slice{s, z}) {
				return
			}
		}
	}
}
