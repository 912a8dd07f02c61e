package keccak

import (
	"fmt"

	"github.com/Giulio2002/keccakp/bitvec"
	"github.com/Giulio2002/keccakp/sponge"
)

var columnOnes = bitvec.Ones(5)

// Permute applies the nr rounds of Keccak-p to s, which must have the width
// the permutation was built for.
func (p *Permutation) Permute(s *sponge.State) {
	if s.Size() != p.scratch.Size() {
		panic(fmt.Sprintf("keccak: permuting a %s state with a %s permutation", s.Size(), p.scratch.Size()))
	}
	for i := range p.rounds {
		p.theta(s)
		p.rho(s)
		p.pi(s)
		p.khi(s)
		p.iotaStep(s, i)
	}
}

// theta XORs every bit with the parities of two neighbouring columns.
func (p *Permutation) theta(s *sponge.State) {
	w := s.Size().W()
	for c := range s.Columns() {
		sum := false
		for b := range c.Bits() {
			sum = sum != b
		}
		p.parity[c.X*w+c.Z] = sum
	}
	for c := range s.Columns() {
		left := p.parity[bitvec.Mod(c.X-1, 5)*w+c.Z]
		right := p.parity[bitvec.Mod(c.X+1, 5)*w+bitvec.Mod(c.Z-1, w)]
		if left != right {
			s.XorColumn(c, columnOnes.Bits())
		}
	}
}

// rho rotates each lane along z by its triangular offset.
func (p *Permutation) rho(s *sponge.State) {
	w := s.Size().W()
	p.scratch.SetLane(p.scratch.Lane(0, 0), s.Lane(0, 0).Bits())
	x, y := 1, 0
	for t := range len(rhoOffsets) {
		u := rhoOffsets[t] % w
		for z := range w {
			p.scratch.Set(x, y, z, s.At(x, y, bitvec.Mod(z-u, w)))
		}
		x, y = y, (2*x+3*y)%5
	}
	p.swap(s)
}

// pi moves lane ((x+3y) mod 5, x) to (x, y).
func (p *Permutation) pi(s *sponge.State) {
	for l := range p.scratch.Lanes() {
		p.scratch.SetLane(l, s.Lane((l.X+3*l.Y)%5, l.X).Bits())
	}
	p.swap(s)
}

// khi is the only non-linear step, applied row by row.
func (p *Permutation) khi(s *sponge.State) {
	var row [5]bool
	for r := range s.Rows() {
		x := 0
		for b := range r.Bits() {
			row[x] = b
			x++
		}
		for x := range 5 {
			p.scratch.Set(x, r.Y, r.Z, row[x] != (!row[(x+1)%5] && row[(x+2)%5]))
		}
	}
	p.swap(s)
}

// iotaStep XORs the round constant of round i into lane (0, 0).
func (p *Permutation) iotaStep(s *sponge.State, i int) {
	s.XorLane(s.Lane(0, 0), p.iota[i].Bits())
}

func (p *Permutation) swap(s *sponge.State) {
	if err := s.Swap(p.scratch); err != nil {
		panic(err)
	}
}
