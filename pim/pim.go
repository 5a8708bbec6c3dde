// Package pim defines the commonly used data structures for PIM fleets.
package pim

import (
	"github.com/sarchlab/rnspim/kernel"
)

const (
	// BufferBytes is the size of one operand buffer in a unit's bulk memory.
	BufferBytes = 1 << 16

	// BufferWords is BufferBytes counted in lanes.
	BufferWords = BufferBytes / kernel.WordBytes

	// DefaultNumUnits is the size of the reference fleet.
	DefaultNumUnits = 256
)

// Buffer names one of the two operand buffers of a unit's bulk memory.
type Buffer int

const (
	// BufferA holds the first operand and, after execution, the result.
	BufferA Buffer = iota
	// BufferB holds the second operand.
	BufferB
)

// Name returns the name of the buffer.
func (b Buffer) Name() string {
	switch b {
	case BufferA:
		return "A"
	case BufferB:
		return "B"
	default:
		panic("invalid buffer")
	}
}

// UnitStats counts the cycles a unit spent in each phase of its last run.
type UnitStats struct {
	Windows       int
	DMAInCycles   uint64
	ComputeCycles uint64
	DMAOutCycles  uint64
}

// Total returns all cycles of the run.
func (s UnitStats) Total() uint64 {
	return s.DMAInCycles + s.ComputeCycles + s.DMAOutCycles
}

// Add accumulates other into s.
func (s *UnitStats) Add(other UnitStats) {
	s.Windows += other.Windows
	s.DMAInCycles += other.DMAInCycles
	s.ComputeCycles += other.ComputeCycles
	s.DMAOutCycles += other.DMAOutCycles
}

// Unit is one PIM unit of a fleet.
type Unit interface {
	Index() int

	// Capacity returns the number of words one bulk buffer can hold.
	Capacity() int

	LoadKernel(img *kernel.Image)
	SetModulus(m uint64)
	WriteBulk(buf Buffer, offset int, data []uint64)
	ReadBulk(buf Buffer, offset int, data []uint64)

	// Launch starts the loaded kernel over the first words of the buffers.
	// The run happens while the simulation engine runs.
	Launch(words int)
	Done() bool
	Stats() UnitStats
}

// A Fleet is an ordered set of PIM units.
type Fleet interface {
	NumUnits() int
	Unit(i int) Unit
}
