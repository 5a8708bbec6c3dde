// Package kernel defines the programs that run on every PIM unit of a fleet.
//
// A kernel streams two operand buffers that live in a unit's bulk memory
// through a small scratch region, one window at a time, and applies a lane
// operation to every 64-bit word of the window.
package kernel

import (
	"math/bits"
)

const (
	// WordBytes is the width of one lane.
	WordBytes = 8

	// DMAAlignment is the alignment required by bulk-to-scratch transfers.
	DMAAlignment = 8

	// ScratchBytes is the scratch (WRAM) budget of one unit.
	ScratchBytes = 64 << 10

	// DefaultWindowBytes is the scratch window used by the built-in images.
	DefaultWindowBytes = 2048
)

// LaneFunc combines the lanes a and b of the two operands under modulus m.
// Inputs are expected to be reduced modulo m.
type LaneFunc func(a, b, m uint64) uint64

// ModAdd returns (a + b) mod m. It requires m < 2^63 so that a + b never
// wraps the 64-bit accumulator.
func ModAdd(a, b, m uint64) uint64 {
	s := a + b
	if s >= m {
		s -= m
	}

	return s
}

// ModMul returns (a * b) mod m using the full 128-bit product.
func ModMul(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}

// Identity keeps the first operand. It is the copy-only kernel.
func Identity(a, _, _ uint64) uint64 {
	return a
}

var lanes = map[string]LaneFunc{
	"modadd":   ModAdd,
	"modmul":   ModMul,
	"identity": Identity,
}

// Lookup returns the lane operation registered under op.
func Lookup(op string) (LaneFunc, bool) {
	f, ok := lanes[op]
	return f, ok
}
