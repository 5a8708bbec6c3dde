// Package api defines the host API that drives a PIM fleet.
package api

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/rnspim/dma"
	"github.com/sarchlab/rnspim/kernel"
	"github.com/sarchlab/rnspim/pim"
)

var (
	// ErrNoKernel is returned when executing before a binary is loaded.
	ErrNoKernel = errors.New("no kernel loaded")

	// ErrNoData is returned when executing or copying back before any
	// operand was copied to the fleet.
	ErrNoData = errors.New("no data on device")

	// ErrIncomplete is returned when the engine stops while a unit is still
	// running.
	ErrIncomplete = errors.New("units did not finish")
)

// Orchestrator provides the interface to offload elementwise operations onto
// a PIM fleet.
type Orchestrator interface {
	// LoadBinary installs the kernel image at the given path on every unit,
	// replacing the previous one. Loading the same image again does nothing.
	LoadBinary(path string) error

	// CopyToDevice partitions two operands of equal shape over the fleet.
	// Unit i receives the i-th equal slice of the towers laid end to end,
	// together with the modulus of the tower the slice belongs to.
	CopyToDevice(a, b pim.Operand) error

	// Execute runs the loaded kernel on every unit and returns when all of
	// them are done.
	Execute() error

	// CopyFromDevice gathers the result slices back into a, in unit order.
	CopyFromDevice(a pim.Operand) error

	// LastExecution reports the simulated cost of the last Execute.
	LastExecution() ExecStats

	// LastCopy reports the host traffic of the last copy in either
	// direction.
	LastCopy() CopyStats
}

// Engine is the part of a simulation engine that an orchestrator drives.
type Engine interface {
	Run() error
	CurrentTime() sim.VTimeInSec
}

// ExecStats describes one execution of the fleet.
type ExecStats struct {
	DeviceSeconds float64
	Units         pim.UnitStats
}

// CopyStats describes the host traffic of one copy. DeviceSeconds is the
// time the transfers take on the host link, one after another.
type CopyStats struct {
	Transfers     int64
	Bytes         int64
	DeviceSeconds float64
}

type orchestratorImpl struct {
	name   string
	fleet  pim.Fleet
	engine Engine
	freq   sim.Freq
	host   *dma.Controller

	imagePath string
	image     *kernel.Image
	layout    *layout

	last ExecStats
}

func (o *orchestratorImpl) LoadBinary(path string) error {
	img, err := kernel.LoadImage(path)
	if err != nil {
		return fmt.Errorf("load binary %s: %w", path, err)
	}

	if o.image != nil && o.imagePath == path && *o.image == *img {
		return nil
	}

	for i := 0; i < o.fleet.NumUnits(); i++ {
		o.fleet.Unit(i).LoadKernel(img)
	}

	o.image = img
	o.imagePath = path

	slog.Debug("LoadBinary",
		"orchestrator", o.name, "path", path, "kernel", img.Name)

	return nil
}

func (o *orchestratorImpl) CopyToDevice(a, b pim.Operand) error {
	if !a.SameShape(b) {
		return fmt.Errorf("copy to device: %w", ErrShape)
	}

	l, err := partition(a, o.fleet.NumUnits(), o.fleet.Unit(0).Capacity())
	if err != nil {
		return fmt.Errorf("copy to device: %w", err)
	}

	o.host.Reset()
	sliceBytes := int64(l.perUnit * kernel.WordBytes)

	for i, s := range l.slices {
		u := o.fleet.Unit(i)
		tower := s.tower

		u.SetModulus(a[tower].Modulus)
		u.WriteBulk(pim.BufferA, 0, a[tower].Coeffs[s.offset:s.offset+l.perUnit])
		u.WriteBulk(pim.BufferB, 0, b[tower].Coeffs[s.offset:s.offset+l.perUnit])
		o.host.Record(dma.HostToBulk, sliceBytes)
		o.host.Record(dma.HostToBulk, sliceBytes)
	}

	o.layout = &l

	slog.Debug("CopyToDevice",
		"orchestrator", o.name, "towers", len(a),
		"words", l.length, "per_unit", l.perUnit)

	return nil
}

func (o *orchestratorImpl) Execute() error {
	if o.image == nil {
		return fmt.Errorf("execute: %w", ErrNoKernel)
	}

	if o.layout == nil {
		return fmt.Errorf("execute: %w", ErrNoData)
	}

	start := o.engine.CurrentTime()

	for i := 0; i < o.fleet.NumUnits(); i++ {
		o.fleet.Unit(i).Launch(o.layout.perUnit)
	}

	if err := o.engine.Run(); err != nil {
		return fmt.Errorf("execute: %w", err)
	}

	stats := ExecStats{
		DeviceSeconds: float64(o.engine.CurrentTime() - start),
	}

	for i := 0; i < o.fleet.NumUnits(); i++ {
		u := o.fleet.Unit(i)
		if !u.Done() {
			return fmt.Errorf("execute: unit %d: %w", i, ErrIncomplete)
		}

		stats.Units.Add(u.Stats())
	}

	o.last = stats

	slog.Debug("Execute",
		"orchestrator", o.name, "kernel", o.image.Name,
		"device_seconds", stats.DeviceSeconds,
		"windows", stats.Units.Windows)

	return nil
}

func (o *orchestratorImpl) CopyFromDevice(a pim.Operand) error {
	if o.layout == nil {
		return fmt.Errorf("copy from device: %w", ErrNoData)
	}

	if !o.layout.matches(a) {
		return fmt.Errorf("copy from device: %w", ErrShape)
	}

	l := o.layout
	o.host.Reset()

	for i, s := range l.slices {
		o.fleet.Unit(i).ReadBulk(pim.BufferA, 0,
			a[s.tower].Coeffs[s.offset:s.offset+l.perUnit])
		o.host.Record(dma.BulkToHost, int64(l.perUnit*kernel.WordBytes))
	}

	return nil
}

func (o *orchestratorImpl) LastExecution() ExecStats {
	return o.last
}

func (o *orchestratorImpl) LastCopy() CopyStats {
	transfers, bytes := o.host.Totals()

	return CopyStats{
		Transfers:     transfers,
		Bytes:         bytes,
		DeviceSeconds: float64(o.host.Cycles()) * float64(o.freq.Period()),
	}
}
