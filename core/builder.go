package core

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/rnspim/dma"
	"github.com/sarchlab/rnspim/pim"
)

// Builder can create new units.
type Builder struct {
	engine        sim.Engine
	freq          sim.Freq
	index         int
	bufferBytes   int
	bytesPerCycle int64
	setupCycles   int
}

// NewBuilder returns a builder with the reference unit parameters.
func NewBuilder() Builder {
	return Builder{
		freq:          350 * sim.MHz,
		bufferBytes:   pim.BufferBytes,
		bytesPerCycle: 8,
		setupCycles:   16,
	}
}

// WithEngine sets the engine.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the unit.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithIndex sets the position of the unit in its fleet.
func (b Builder) WithIndex(index int) Builder {
	b.index = index
	return b
}

// WithBufferBytes sets the size of each bulk operand buffer.
func (b Builder) WithBufferBytes(bytes int) Builder {
	if bytes <= 0 || bytes%8 != 0 {
		panic("buffer size must be a positive multiple of 8")
	}

	b.bufferBytes = bytes
	return b
}

// WithDMA sets the bulk-to-scratch DMA bandwidth and setup latency.
func (b Builder) WithDMA(bytesPerCycle int64, setupCycles int) Builder {
	b.bytesPerCycle = bytesPerCycle
	b.setupCycles = setupCycles
	return b
}

// Build creates a unit.
func (b Builder) Build(name string) *Unit {
	u := &Unit{
		dma: dma.NewController(b.bytesPerCycle, b.setupCycles),
	}

	u.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, u)
	u.emu = kernelEmulator{dma: u.dma}
	u.state = unitState{
		Index: b.index,
	}

	words := b.bufferBytes / 8
	for i := range u.state.Bulk {
		u.state.Bulk[i] = make([]uint64, words)
	}

	return u
}
