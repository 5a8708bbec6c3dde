package core

import (
	"github.com/sarchlab/rnspim/dma"
	"github.com/sarchlab/rnspim/kernel"
	"github.com/sarchlab/rnspim/pim"
)

// stage is the step of the window loop a unit is in.
type stage int

const (
	stageIdle stage = iota
	stageLoadA
	stageLoadB
	stageCompute
	stageStore
)

func (s stage) String() string {
	return [...]string{"Idle", "LoadA", "LoadB", "Compute", "Store"}[s]
}

type unitState struct {
	Index int

	Image  *kernel.Image
	Window kernel.Window

	Bulk    [2][]uint64
	Scratch [2][]uint64

	Modulus    uint64
	ModulusSet bool

	Length    int
	Cursor    int
	Span      int
	Stage     stage
	Countdown int

	Stats pim.UnitStats
}

// kernelEmulator steps the window loop of the loaded kernel. Each stage
// costs a number of cycles; its data effect lands when the stage ends.
type kernelEmulator struct {
	dma *dma.Controller
}

func (e kernelEmulator) start(s *unitState, words int) {
	if e.running(s) {
		panic("launching a unit that is still running")
	}

	if s.Image == nil {
		panic("no kernel loaded")
	}

	if !s.ModulusSet {
		panic("modulus is not set")
	}

	if words < 0 || words > len(s.Bulk[pim.BufferA]) {
		panic("launch length exceeds the bulk buffer")
	}

	s.Length = words
	s.Cursor = 0
	s.Stats = pim.UnitStats{}
	e.dma.Reset()

	if words == 0 {
		s.Stage = stageIdle
		return
	}

	e.enter(s, stageLoadA)
}

func (e kernelEmulator) running(s *unitState) bool {
	return s.Stage != stageIdle
}

// step advances the state by one cycle.
func (e kernelEmulator) step(s *unitState) {
	if s.Countdown > 1 {
		s.Countdown--
		return
	}

	switch s.Stage {
	case stageLoadA:
		s.Window.Load(s.Scratch[pim.BufferA], s.Bulk[pim.BufferA], s.Cursor, s.Span)
		e.dma.Record(dma.BulkToScratch, int64(s.Span*kernel.WordBytes))
		e.enter(s, stageLoadB)
	case stageLoadB:
		s.Window.Load(s.Scratch[pim.BufferB], s.Bulk[pim.BufferB], s.Cursor, s.Span)
		e.dma.Record(dma.BulkToScratch, int64(s.Span*kernel.WordBytes))
		e.enter(s, stageCompute)
	case stageCompute:
		s.Window.Apply(s.Scratch[pim.BufferA], s.Scratch[pim.BufferB], s.Modulus, s.Span)
		e.enter(s, stageStore)
	case stageStore:
		s.Window.Store(s.Bulk[pim.BufferA], s.Scratch[pim.BufferA], s.Cursor, s.Span)
		e.dma.Record(dma.ScratchToBulk, int64(s.Span*kernel.WordBytes))
		s.Stats.Windows++
		s.Cursor += s.Span

		if s.Cursor >= s.Length {
			s.Stage = stageIdle
			s.Countdown = 0
			return
		}

		e.enter(s, stageLoadA)
	default:
		panic("stepping an idle unit")
	}
}

func (e kernelEmulator) enter(s *unitState, next stage) {
	s.Stage = next
	s.Span = s.Window.Span(s.Cursor, s.Length)

	bytes := int64(s.Span * kernel.WordBytes)

	switch next {
	case stageLoadA, stageLoadB:
		s.Countdown = e.dma.EstimateCycles(bytes)
		s.Stats.DMAInCycles += uint64(s.Countdown)
	case stageCompute:
		s.Countdown = s.Span * s.Image.CyclesPerLane
		if s.Countdown < 1 {
			s.Countdown = 1
		}
		s.Stats.ComputeCycles += uint64(s.Countdown)
	case stageStore:
		s.Countdown = e.dma.EstimateCycles(bytes)
		s.Stats.DMAOutCycles += uint64(s.Countdown)
	}
}
