// Package dma models the bandwidth of the transfers that move operand data
// around a PIM fleet: host to bulk memory, and bulk memory to scratch.
package dma

// TransferKind distinguishes the directions of a transfer.
type TransferKind int

const (
	HostToBulk TransferKind = iota
	BulkToHost
	BulkToScratch
	ScratchToBulk
)

// Name returns a short name of the transfer kind.
func (k TransferKind) Name() string {
	switch k {
	case HostToBulk:
		return "HostToBulk"
	case BulkToHost:
		return "BulkToHost"
	case BulkToScratch:
		return "BulkToScratch"
	case ScratchToBulk:
		return "ScratchToBulk"
	default:
		panic("invalid transfer kind")
	}
}

// Controller tracks the throughput of one DMA engine and the traffic it has
// carried.
type Controller struct {
	bytesPerCycle int64
	setupCycles   int

	transfers int64
	cycles    int64
	bytes     [4]int64
}

// NewController creates a controller that moves bytesPerCycle bytes per
// cycle after a fixed setup latency.
func NewController(bytesPerCycle int64, setupCycles int) *Controller {
	if bytesPerCycle <= 0 {
		bytesPerCycle = 8
	}

	if setupCycles < 0 {
		setupCycles = 0
	}

	return &Controller{
		bytesPerCycle: bytesPerCycle,
		setupCycles:   setupCycles,
	}
}

// EstimateCycles returns the number of cycles a transfer of the given size
// takes. Every transfer takes at least one cycle.
func (c *Controller) EstimateCycles(bytes int64) int {
	if bytes < 0 {
		bytes = 0
	}

	cycles := int((bytes+c.bytesPerCycle-1)/c.bytesPerCycle) + c.setupCycles
	if cycles <= 0 {
		cycles = 1
	}

	return cycles
}

// Record registers a completed transfer and returns the cycles it took.
func (c *Controller) Record(kind TransferKind, bytes int64) int {
	if c == nil {
		return 0
	}

	if bytes < 0 {
		bytes = 0
	}

	cycles := c.EstimateCycles(bytes)

	c.transfers++
	c.cycles += int64(cycles)
	c.bytes[kind] += bytes

	return cycles
}

// Cycles returns the cycles spent on the recorded transfers, one transfer
// after another.
func (c *Controller) Cycles() int64 {
	if c == nil {
		return 0
	}

	return c.cycles
}

// Bytes returns the bytes moved in one direction.
func (c *Controller) Bytes(kind TransferKind) int64 {
	if c == nil {
		return 0
	}

	return c.bytes[kind]
}

// Totals returns the number of transfers and the bytes moved overall.
func (c *Controller) Totals() (transfers int64, bytes int64) {
	if c == nil {
		return 0, 0
	}

	for _, b := range c.bytes {
		bytes += b
	}

	return c.transfers, bytes
}

// Reset clears the traffic statistics.
func (c *Controller) Reset() {
	c.transfers = 0
	c.cycles = 0
	c.bytes = [4]int64{}
}
