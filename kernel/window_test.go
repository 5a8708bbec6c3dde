package kernel_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/rnspim/kernel"
)

func randomOperands(n int, m uint64, seed int64) ([]uint64, []uint64) {
	rng := rand.New(rand.NewSource(seed))
	a := make([]uint64, n)
	b := make([]uint64, n)

	for i := range a {
		a[i] = rng.Uint64() % m
		b[i] = rng.Uint64() % m
	}

	return a, b
}

func unchunked(a, b []uint64, m uint64, lane kernel.LaneFunc) []uint64 {
	out := make([]uint64, len(a))
	for i := range a {
		out[i] = lane(a[i], b[i], m)
	}

	return out
}

// stream walks the buffer window by window the way a unit does.
func stream(
	w kernel.Window,
	a, b []uint64,
	length int,
	m uint64,
	scratchA, scratchB []uint64,
) {
	for cursor := 0; cursor < length; cursor += w.Words {
		n := w.Span(cursor, length)

		w.Load(scratchA, a, cursor, n)
		w.Load(scratchB, b, cursor, n)
		w.Apply(scratchA, scratchB, m, n)
		w.Store(a, scratchA, cursor, n)
	}
}

var _ = Describe("Window", func() {
	const m = uint64(1152921504606830593)

	It("should reject windows that are not whole words", func() {
		Expect(func() { kernel.NewWindow(12, kernel.ModAdd) }).To(Panic())
		Expect(func() { kernel.NewWindow(0, kernel.ModAdd) }).To(Panic())
	})

	It("should count windows including a partial one", func() {
		w := kernel.NewWindow(64, kernel.ModAdd)

		Expect(w.Words).To(Equal(8))
		Expect(w.Count(64)).To(Equal(8))
		Expect(w.Count(65)).To(Equal(9))
		Expect(w.Span(64, 65)).To(Equal(1))
		Expect(w.Span(80, 65)).To(Equal(0))
	})

	DescribeTable("chunked streaming matches an unchunked pass",
		func(windowBytes, length int) {
			for _, lane := range []kernel.LaneFunc{kernel.ModAdd, kernel.ModMul} {
				a, b := randomOperands(length, m, int64(windowBytes+length))
				want := unchunked(a, b, m, lane)
				bCopy := append([]uint64(nil), b...)

				w := kernel.NewWindow(windowBytes, lane)
				scratchA := make([]uint64, w.Words)
				scratchB := make([]uint64, w.Words)
				stream(w, a, b, length, m, scratchA, scratchB)

				Expect(a).To(Equal(want))
				Expect(b).To(Equal(bCopy))
			}
		},
		Entry("one word windows", 8, 32),
		Entry("reference 2 KiB windows over 8 chunks", 2048, 8*256),
		Entry("window larger than the buffer", 2048, 10),
		Entry("partial last window", 64, 37),
	)

	It("should only touch the first length words", func() {
		a := []uint64{1, 2, 3, 4}
		b := []uint64{1, 1, 1, 1}
		w := kernel.NewWindow(16, kernel.ModAdd)

		stream(w, a, b, 3, 97, make([]uint64, 2), make([]uint64, 2))

		Expect(a).To(Equal([]uint64{2, 3, 4, 4}))
	})
})
