package core

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/rnspim/dma"
	"github.com/sarchlab/rnspim/kernel"
	"github.com/sarchlab/rnspim/pim"
)

// Unit is a PIM unit. It owns a bulk memory with two operand buffers and a
// scratch region, and runs the loaded kernel as the engine ticks it.
type Unit struct {
	*sim.TickingComponent

	dma   *dma.Controller
	state unitState
	emu   kernelEmulator
}

// Index returns the position of the unit in its fleet.
func (u *Unit) Index() int {
	return u.state.Index
}

// Capacity returns the number of words one bulk buffer holds.
func (u *Unit) Capacity() int {
	return len(u.state.Bulk[pim.BufferA])
}

// LoadKernel installs a kernel image, replacing the previous one. Scratch
// buffers are sized to the image's window.
func (u *Unit) LoadKernel(img *kernel.Image) {
	if u.emu.running(&u.state) {
		panic(fmt.Sprintf("%s: loading a kernel while running", u.Name()))
	}

	u.state.Image = img
	u.state.Window = img.Window()

	for i := range u.state.Scratch {
		if len(u.state.Scratch[i]) != u.state.Window.Words {
			u.state.Scratch[i] = make([]uint64, u.state.Window.Words)
		}
	}

	Trace("Kernel",
		"Behavior", "Load",
		"Unit", u.Name(),
		"Image", img.Name,
		"WindowBytes", img.WindowBytes,
	)
}

// SetModulus sets the modulus scalar the kernel reduces with.
func (u *Unit) SetModulus(m uint64) {
	if m == 0 {
		panic(fmt.Sprintf("%s: modulus must not be zero", u.Name()))
	}

	u.state.Modulus = m
	u.state.ModulusSet = true
}

// WriteBulk copies data into a bulk buffer at the given word offset.
func (u *Unit) WriteBulk(buf pim.Buffer, offset int, data []uint64) {
	bulk := u.state.Bulk[buf]
	if offset < 0 || offset+len(data) > len(bulk) {
		panic(fmt.Sprintf("%s: write of %d words at %d overflows buffer %s",
			u.Name(), len(data), offset, buf.Name()))
	}

	copy(bulk[offset:], data)

	Trace("Memory",
		"Behavior", "WriteBulk",
		"Unit", u.Name(),
		"Buffer", buf.Name(),
		"Offset", offset,
		"Words", len(data),
	)
}

// ReadBulk copies words out of a bulk buffer at the given word offset.
func (u *Unit) ReadBulk(buf pim.Buffer, offset int, data []uint64) {
	bulk := u.state.Bulk[buf]
	if offset < 0 || offset+len(data) > len(bulk) {
		panic(fmt.Sprintf("%s: read of %d words at %d overflows buffer %s",
			u.Name(), len(data), offset, buf.Name()))
	}

	copy(data, bulk[offset:offset+len(data)])
}

// Launch starts the kernel over the first words of the buffers. The kernel
// runs as the engine ticks the unit.
func (u *Unit) Launch(words int) {
	u.emu.start(&u.state, words)

	Trace("Kernel",
		"Behavior", "Launch",
		"Unit", u.Name(),
		"Words", words,
		"Windows", u.state.Window.Count(words),
	)

	// The previous run may have ended at the current time, so the first tick
	// goes to the next cycle.
	if u.emu.running(&u.state) {
		u.TickLater()
	}
}

// Done reports whether the last launch has finished.
func (u *Unit) Done() bool {
	return !u.emu.running(&u.state)
}

// Stats returns the cycle breakdown of the last launch.
func (u *Unit) Stats() pim.UnitStats {
	return u.state.Stats
}

// Tick runs the kernel for one cycle and then sleeps until the current stage
// ends.
func (u *Unit) Tick() (madeProgress bool) {
	if !u.emu.running(&u.state) {
		return false
	}

	u.emu.step(&u.state)

	if !u.emu.running(&u.state) {
		Trace("Kernel",
			"Behavior", "Done",
			"Unit", u.Name(),
			"Time", float64(u.Engine.CurrentTime()),
			"Cycles", u.state.Stats.Total(),
		)
		LogState(u)

		return true
	}

	// Nothing changes until the stage ends, so wake up on its last cycle.
	if wait := u.state.Countdown; wait > 1 {
		u.state.Countdown = 1
		u.Engine.Schedule(sim.MakeTickEvent(u.TickingComponent,
			u.Freq.NCyclesLater(wait, u.Engine.CurrentTime())))

		return false
	}

	return true
}
