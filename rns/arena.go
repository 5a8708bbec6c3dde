package rns

import (
	"fmt"

	"github.com/sarchlab/rnspim/pim"
	"github.com/tuneinsight/lattigo/v4/ring"
)

// Handle refers to a polynomial owned by an Arena.
type Handle int

type entry struct {
	params *ParamSet
	poly   *ring.Poly
}

// An Arena owns polynomials and hands out stable handles to them. Growing
// the arena never moves a polynomial's coefficients.
type Arena struct {
	entries []entry
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// NewPoly allocates a zero polynomial over the ring of ps.
func (a *Arena) NewPoly(ps *ParamSet) Handle {
	a.entries = append(a.entries, entry{
		params: ps,
		poly:   ps.Ring.NewPoly(),
	})

	return Handle(len(a.entries) - 1)
}

// Clone allocates a copy of the polynomial h.
func (a *Arena) Clone(h Handle) Handle {
	e := a.get(h)
	c := a.NewPoly(e.params)
	a.CopyInto(c, h)

	return c
}

// CopyInto overwrites dst with the coefficients of src.
func (a *Arena) CopyInto(dst, src Handle) {
	d, s := a.get(dst), a.get(src)
	if d.params != s.params {
		panic("copying between polynomials of different rings")
	}

	for i := range s.poly.Coeffs {
		copy(d.poly.Coeffs[i], s.poly.Coeffs[i])
	}
}

// Len returns the number of polynomials in the arena.
func (a *Arena) Len() int {
	return len(a.entries)
}

// Poly returns the polynomial h.
func (a *Arena) Poly(h Handle) *ring.Poly {
	return a.get(h).poly
}

// Params returns the parameters of the polynomial h.
func (a *Arena) Params(h Handle) *ParamSet {
	return a.get(h).params
}

// Operand returns a view of h for the fleet. The towers share the
// polynomial's coefficients, so results copied back land in h.
func (a *Arena) Operand(h Handle) pim.Operand {
	e := a.get(h)
	moduli := e.params.Moduli()
	op := make(pim.Operand, e.params.Towers)

	for i := range op {
		op[i] = pim.Tower{
			Coeffs:  e.poly.Coeffs[i],
			Modulus: moduli[i],
		}
	}

	return op
}

func (a *Arena) get(h Handle) entry {
	if h < 0 || int(h) >= len(a.entries) {
		panic(fmt.Sprintf("invalid handle %d", h))
	}

	return a.entries[h]
}
