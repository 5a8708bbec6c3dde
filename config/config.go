// Package config provides the default configuration of a PIM fleet.
package config

import (
	"fmt"

	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/rnspim/core"
	"github.com/sarchlab/rnspim/pim"
)

// FleetBuilder can build PIM fleets.
type FleetBuilder struct {
	engine        sim.Engine
	freq          sim.Freq
	numUnits      int
	bufferBytes   int
	bytesPerCycle int64
	setupCycles   int
	monitor       *monitoring.Monitor
}

// NewFleetBuilder returns a builder for the reference 256-unit fleet.
func NewFleetBuilder() FleetBuilder {
	return FleetBuilder{
		freq:          350 * sim.MHz,
		numUnits:      pim.DefaultNumUnits,
		bufferBytes:   pim.BufferBytes,
		bytesPerCycle: 8,
		setupCycles:   16,
	}
}

// WithEngine sets the engine that drives the fleet simulation.
func (b FleetBuilder) WithEngine(engine sim.Engine) FleetBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of every unit.
func (b FleetBuilder) WithFreq(freq sim.Freq) FleetBuilder {
	b.freq = freq
	return b
}

// WithNumUnits sets the number of units in the fleet.
func (b FleetBuilder) WithNumUnits(n int) FleetBuilder {
	b.numUnits = n
	return b
}

// WithBufferBytes sets the size of each bulk operand buffer.
func (b FleetBuilder) WithBufferBytes(bytes int) FleetBuilder {
	b.bufferBytes = bytes
	return b
}

// WithDMABandwidth sets the bulk-to-scratch DMA model of every unit.
func (b FleetBuilder) WithDMABandwidth(
	bytesPerCycle int64,
	setupCycles int,
) FleetBuilder {
	b.bytesPerCycle = bytesPerCycle
	b.setupCycles = setupCycles
	return b
}

// WithMonitor registers every unit with the given monitor.
func (b FleetBuilder) WithMonitor(m *monitoring.Monitor) FleetBuilder {
	b.monitor = m
	return b
}

// WithConfig applies the fleet section of a configuration.
func (b FleetBuilder) WithConfig(c Config) FleetBuilder {
	b.numUnits = c.NumUnits
	b.freq = sim.Freq(c.FreqMHz) * sim.MHz
	b.bufferBytes = c.BufferBytes
	b.bytesPerCycle = c.DMABytesPerCycle
	b.setupCycles = c.DMASetupCycles

	return b
}

// Build creates a fleet.
func (b FleetBuilder) Build(name string) pim.Fleet {
	if b.numUnits <= 0 {
		panic("fleet must have at least one unit")
	}

	f := &fleet{
		Name:  name,
		Units: make([]*core.Unit, b.numUnits),
	}

	unitBuilder := core.NewBuilder().
		WithEngine(b.engine).
		WithFreq(b.freq).
		WithBufferBytes(b.bufferBytes).
		WithDMA(b.bytesPerCycle, b.setupCycles)

	for i := 0; i < b.numUnits; i++ {
		u := unitBuilder.
			WithIndex(i).
			Build(fmt.Sprintf("%s.Unit[%d]", name, i))
		f.Units[i] = u

		if b.monitor != nil {
			b.monitor.RegisterComponent(u)
		}
	}

	return f
}
