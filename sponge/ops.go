package sponge

import "iter"

// The Set* and Xor* methods write a bit sequence into the state through a
// view. They consume at most as many bits as the view holds; a shorter
// sequence updates only a prefix of the view. The view coordinates are
// resolved against s, not against the state the view was taken from.

type bitOp func(old, bit bool) bool

func opSet(_, bit bool) bool { return bit }

func opXor(old, bit bool) bool { return old != bit }

func (s *State) apply(n int, index func(int) int, bits iter.Seq[bool], op bitOp) {
	if bits == nil || n <= 0 {
		return
	}
	k := 0
	for bit := range bits {
		i := index(k)
		s.bits.Set(i, op(s.bits.Get(i), bit))
		if k++; k == n {
			return
		}
	}
}

func (s *State) laneIndex(l Lane) func(int) int {
	return func(k int) int { return s.Index(l.X, l.Y, k) }
}

func (s *State) planeIndex(p Plane) func(int) int {
	w := s.size.W()
	return func(k int) int { return s.Index(k/w, p.Y, k%w) }
}

func (s *State) sheetIndex(sh Sheet) func(int) int {
	w := s.size.W()
	return func(k int) int { return s.Index(sh.X, k/w, k%w) }
}

func (s *State) rowIndex(r Row) func(int) int {
	return func(k int) int { return s.Index(k, r.Y, r.Z) }
}

func (s *State) columnIndex(c Column) func(int) int {
	return func(k int) int { return s.Index(c.X, k, c.Z) }
}

func (s *State) sliceIndex(sl Slice) func(int) int {
	return func(k int) int { return s.Index(k%5, k/5, sl.Z) }
}

// SetLane overwrites the bits of the given lane with bits, in view order.
func (s *State) SetLane(l Lane, bits iter.Seq[bool]) {
	s.apply(s.size.W(), s.laneIndex(l), bits, opSet)
}

// XorLane xors the bits of the given lane with bits, in view order.
func (s *State) XorLane(l Lane, bits iter.Seq[bool]) {
	s.apply(s.size.W(), s.laneIndex(l), bits, opXor)
}

// SetPlane overwrites the bits of the given plane with bits, in view order.
func (s *State) SetPlane(p Plane, bits iter.Seq[bool]) {
	s.apply(5*s.size.W(), s.planeIndex(p), bits, opSet)
}

// XorPlane xors the bits of the given plane with bits, in view order.
func (s *State) XorPlane(p Plane, bits iter.Seq[bool]) {
	s.apply(5*s.size.W(), s.planeIndex(p), bits, opXor)
}

// SetSheet overwrites the bits of the given sheet with bits, in view order.
func (s *State) SetSheet(sh Sheet, bits iter.Seq[bool]) {
	s.apply(5*s.size.W(), s.sheetIndex(sh), bits, opSet)
}

// XorSheet xors the bits of the given sheet with bits, in view order.
func (s *State) XorSheet(sh Sheet, bits iter.Seq[bool]) {
	s.apply(5*s.size.W(), s.sheetIndex(sh), bits, opXor)
}

// SetRow overwrites the bits of the given row with bits, in view order.
func (s *State) SetRow(r Row, bits iter.Seq[bool]) {
	s.apply(5, s.rowIndex(r), bits, opSet)
}

// XorRow xors the bits of the given row with bits, in view order.
func (s *State) XorRow(r Row, bits iter.Seq[bool]) {
	s.apply(5, s.rowIndex(r), bits, opXor)
}

// SetColumn overwrites the bits of the given column with bits, in view order.
func (s *State) SetColumn(c Column, bits iter.Seq[bool]) {
	s.apply(5, s.columnIndex(c), bits, opSet)
}

// XorColumn xors the bits of the given column with bits, in view order.
func (s *State) XorColumn(c Column, bits iter.Seq[bool]) {
	s.apply(5, s.columnIndex(c), bits, opXor)
}

// SetSlice overwrites the bits of the given slice with bits, in view order.
func (s *State) SetSlice(sl Slice, bits iter.Seq[bool]) {
	s.apply(25, s.sliceIndex(sl), bits, opSet)
}

// XorSlice xors the bits of the given slice with bits, in view order.
func (s *State) XorSlice(sl Slice, bits iter.Seq[bool]) {
	s.apply(25, s.sliceIndex(sl), bits, opXor)
}

// Whole-state variants. Lanes and planes both walk the state in flat index
// order.

func flatIndex(k int) int { return k }

func (s *State) rowsIndex(k int) int {
	w := s.size.W()
	return s.Index(k%5, k/(5*w), (k/5)%w)
}

func (s *State) columnsIndex(k int) int {
	w := s.size.W()
	return s.Index(k/(5*w), k%5, (k/5)%w)
}

func (s *State) sheetsIndex(k int) int {
	w := s.size.W()
	return s.Index(k/(5*w), (k/w)%5, k%w)
}

func (s *State) slicesIndex(k int) int {
	return s.Index(k%5, (k/5)%5, k/25)
}

// SetLanes overwrites the whole state with bits, taking lanes in order.
func (s *State) SetLanes(bits iter.Seq[bool]) { s.apply(s.size.B(), flatIndex, bits, opSet) }

// XorLanes xors the whole state with bits, taking lanes in order.
func (s *State) XorLanes(bits iter.Seq[bool]) { s.apply(s.size.B(), flatIndex, bits, opXor) }

// SetPlanes overwrites the whole state with bits, taking planes in order.
func (s *State) SetPlanes(bits iter.Seq[bool]) { s.apply(s.size.B(), flatIndex, bits, opSet) }

// XorPlanes xors the whole state with bits, taking planes in order.
func (s *State) XorPlanes(bits iter.Seq[bool]) { s.apply(s.size.B(), flatIndex, bits, opXor) }

// SetSheets overwrites the whole state with bits, taking sheets in order.
func (s *State) SetSheets(bits iter.Seq[bool]) { s.apply(s.size.B(), s.sheetsIndex, bits, opSet) }

// XorSheets xors the whole state with bits, taking sheets in order.
func (s *State) XorSheets(bits iter.Seq[bool]) { s.apply(s.size.B(), s.sheetsIndex, bits, opXor) }

// SetRows overwrites the whole state with bits, taking rows in order.
func (s *State) SetRows(bits iter.Seq[bool]) { s.apply(s.size.B(), s.rowsIndex, bits, opSet) }

// XorRows xors the whole state with bits, taking rows in order.
func (s *State) XorRows(bits iter.Seq[bool]) { s.apply(s.size.B(), s.rowsIndex, bits, opXor) }

// SetColumns overwrites the whole state with bits, taking columns in order.
func (s *State) SetColumns(bits iter.Seq[bool]) { s.apply(s.size.B(), s.columnsIndex, bits, opSet) }

// XorColumns xors the whole state with bits, taking columns in order.
func (s *State) XorColumns(bits iter.Seq[bool]) { s.apply(s.size.B(), s.columnsIndex, bits, opXor) }

// SetSlices overwrites the whole state with bits, taking slices in order.
func (s *State) SetSlices(bits iter.Seq[bool]) { s.apply(s.size.B(), s.slicesIndex, bits, opSet) }

// XorSlices xors the whole state with bits, taking slices in order.
func (s *State) XorSlices(bits iter.Seq[bool]) { s.apply(s.size.B(), s.slicesIndex, bits, opXor) }
