package api

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/rnspim/dma"
	"github.com/sarchlab/rnspim/pim"
)

// OrchestratorBuilder creates a new instance of Orchestrator.
type OrchestratorBuilder struct {
	fleet  pim.Fleet
	engine Engine

	freq          sim.Freq
	bytesPerCycle int64
	setupCycles   int
}

// WithFleet sets the fleet that the orchestrator drives.
func (b OrchestratorBuilder) WithFleet(f pim.Fleet) OrchestratorBuilder {
	b.fleet = f
	return b
}

// WithEngine sets the engine that simulates the fleet.
func (b OrchestratorBuilder) WithEngine(e Engine) OrchestratorBuilder {
	b.engine = e
	return b
}

// WithFreq sets the clock that host transfers are timed with.
func (b OrchestratorBuilder) WithFreq(freq sim.Freq) OrchestratorBuilder {
	b.freq = freq
	return b
}

// WithHostDMA sets the throughput and setup latency of the link between the
// host and the bulk memories.
func (b OrchestratorBuilder) WithHostDMA(
	bytesPerCycle int64,
	setupCycles int,
) OrchestratorBuilder {
	b.bytesPerCycle = bytesPerCycle
	b.setupCycles = setupCycles

	return b
}

// Build creates an orchestrator.
func (b OrchestratorBuilder) Build(name string) Orchestrator {
	if b.fleet == nil || b.fleet.NumUnits() == 0 {
		panic("orchestrator needs a fleet with at least one unit")
	}

	if b.engine == nil {
		panic("orchestrator needs an engine")
	}

	freq := b.freq
	if freq <= 0 {
		freq = 350 * sim.MHz
	}

	return &orchestratorImpl{
		name:   name,
		fleet:  b.fleet,
		engine: b.engine,
		freq:   freq,
		host:   dma.NewController(b.bytesPerCycle, b.setupCycles),
	}
}
