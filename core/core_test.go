package core_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/rnspim/core"
	"github.com/sarchlab/rnspim/kernel"
	"github.com/sarchlab/rnspim/pim"
)

func mustImage(p string) *kernel.Image {
	img, err := kernel.LoadImage(p)
	Expect(err).NotTo(HaveOccurred())
	return img
}

type eventCounter struct {
	events int
}

func (c *eventCounter) Func(ctx sim.HookCtx) {
	if ctx.Pos == sim.HookPosBeforeEvent {
		c.events++
	}
}

var _ = Describe("Unit", func() {
	const (
		modulus = uint64((1 << 31) - 1)
		words   = 1024
	)

	var (
		engine sim.Engine
		unit   *core.Unit
		a, b   []uint64
	)

	BeforeEach(func() {
		engine = sim.NewSerialEngine()
		unit = core.NewBuilder().
			WithEngine(engine).
			WithFreq(1*sim.GHz).
			WithIndex(3).
			WithBufferBytes(words*8).
			WithDMA(8, 16).
			Build("Unit")

		a = make([]uint64, words)
		b = make([]uint64, words)
		for i := range a {
			a[i] = uint64(i) * 2654435761 % modulus
			b[i] = modulus - 1 - uint64(i)
		}
	})

	It("should report its index and capacity", func() {
		Expect(unit.Index()).To(Equal(3))
		Expect(unit.Capacity()).To(Equal(words))
		Expect(unit.Done()).To(BeTrue())
	})

	It("should round trip bulk memory", func() {
		unit.WriteBulk(pim.BufferB, 10, a[:20])

		out := make([]uint64, 20)
		unit.ReadBulk(pim.BufferB, 10, out)

		Expect(out).To(Equal(a[:20]))
	})

	It("should panic on a write past the buffer", func() {
		Expect(func() { unit.WriteBulk(pim.BufferA, words-1, a[:2]) }).
			To(Panic())
	})

	It("should panic when launched without a kernel", func() {
		unit.SetModulus(modulus)
		Expect(func() { unit.Launch(words) }).To(Panic())
	})

	It("should panic when launched without a modulus", func() {
		unit.LoadKernel(mustImage(kernel.AddPath))
		Expect(func() { unit.Launch(words) }).To(Panic())
	})

	It("should reject a zero modulus", func() {
		Expect(func() { unit.SetModulus(0) }).To(Panic())
	})

	It("should add the buffers window by window", func() {
		unit.LoadKernel(mustImage(kernel.AddPath))
		unit.SetModulus(modulus)
		unit.WriteBulk(pim.BufferA, 0, a)
		unit.WriteBulk(pim.BufferB, 0, b)

		unit.Launch(words)
		Expect(unit.Done()).To(BeFalse())
		Expect(engine.Run()).To(Succeed())
		Expect(unit.Done()).To(BeTrue())

		out := make([]uint64, words)
		unit.ReadBulk(pim.BufferA, 0, out)
		for i := range out {
			Expect(out[i]).To(Equal(kernel.ModAdd(a[i], b[i], modulus)))
		}

		stats := unit.Stats()
		Expect(stats.Windows).To(Equal(4))
		Expect(stats.DMAInCycles).To(Equal(uint64(2 * 4 * (256 + 16))))
		Expect(stats.ComputeCycles).To(Equal(uint64(4 * 256)))
		Expect(stats.DMAOutCycles).To(Equal(uint64(4 * (256 + 16))))
		Expect(float64(engine.CurrentTime())).To(BeNumerically(">", 0))
	})

	It("should panic when launched while running", func() {
		unit.LoadKernel(mustImage(kernel.AddPath))
		unit.SetModulus(modulus)

		unit.Launch(words)

		Expect(func() { unit.Launch(words) }).To(Panic())
		Expect(engine.Run()).To(Succeed())
		Expect(unit.Done()).To(BeTrue())
		Expect(unit.Stats().Windows).To(Equal(4))
	})

	It("should end at the cycle count of its stages", func() {
		unit.LoadKernel(mustImage(kernel.MulPath))
		unit.SetModulus(modulus)
		unit.WriteBulk(pim.BufferA, 0, a)
		unit.WriteBulk(pim.BufferB, 0, b)

		counter := &eventCounter{}
		engine.AcceptHook(counter)

		unit.Launch(words)
		Expect(engine.Run()).To(Succeed())

		total := float64(unit.Stats().Total())
		Expect(float64(engine.CurrentTime())).
			To(BeNumerically("~", (total+1)*1e-9, 1e-10))
		Expect(counter.events).To(BeNumerically("<", 4*4+4))
	})

	It("should only process the launched words", func() {
		unit.LoadKernel(mustImage(kernel.MulPath))
		unit.SetModulus(modulus)
		unit.WriteBulk(pim.BufferA, 0, a)
		unit.WriteBulk(pim.BufferB, 0, b)

		unit.Launch(300)
		Expect(engine.Run()).To(Succeed())

		out := make([]uint64, words)
		unit.ReadBulk(pim.BufferA, 0, out)
		for i := 0; i < 300; i++ {
			Expect(out[i]).To(Equal(kernel.ModMul(a[i], b[i], modulus)))
		}
		Expect(out[300:]).To(Equal(a[300:]))
		Expect(unit.Stats().Windows).To(Equal(2))
	})

	It("should finish immediately on an empty launch", func() {
		unit.LoadKernel(mustImage(kernel.AddPath))
		unit.SetModulus(modulus)

		unit.Launch(0)

		Expect(unit.Done()).To(BeTrue())
		Expect(engine.Run()).To(Succeed())
		Expect(unit.Stats().Windows).To(BeZero())
	})

	It("should run again after reloading another kernel", func() {
		unit.SetModulus(modulus)
		unit.WriteBulk(pim.BufferA, 0, a)
		unit.WriteBulk(pim.BufferB, 0, b)

		unit.LoadKernel(mustImage(kernel.AddPath))
		unit.Launch(words)
		Expect(engine.Run()).To(Succeed())

		sum := make([]uint64, words)
		unit.ReadBulk(pim.BufferA, 0, sum)

		unit.LoadKernel(mustImage(kernel.MulPath))
		unit.Launch(words)
		Expect(engine.Run()).To(Succeed())

		out := make([]uint64, words)
		unit.ReadBulk(pim.BufferA, 0, out)
		for i := range out {
			Expect(out[i]).To(Equal(kernel.ModMul(sum[i], b[i], modulus)))
		}
	})
})
