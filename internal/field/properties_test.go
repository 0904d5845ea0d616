package field

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Field properties", func() {
	DescribeTable("particle count follows the viewport area",
		func(w, h int) {
			f, err := New(testVariant(), Viewport{W: w, H: h}, 11)
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Len()).To(Equal(int(math.Floor(float64(w*h) / 3000))))
		},
		Entry("desktop", 1200, 800),
		Entry("phone", 390, 844),
		Entry("sliver", 1, 2999),
		Entry("square", 3000, 1),
		Entry("empty", 0, 0),
	)

	Context("with the wrap policy", func() {
		It("keeps every particle inside [0, W) x [0, H)", func() {
			v := testVariant()
			v.Speed = 7
			f, err := New(v, Viewport{W: 640, H: 360}, 5)
			Expect(err).NotTo(HaveOccurred())

			for frame := 0; frame < 500; frame++ {
				p := NoPointer
				if frame%2 == 0 {
					p = At(float64(frame%640), float64(frame%360))
				}
				Advance(f, 1, p)
			}

			for _, p := range f.Particles() {
				Expect(p.X).To(BeNumerically(">=", 0))
				Expect(p.X).To(BeNumerically("<", 640))
				Expect(p.Y).To(BeNumerically(">=", 0))
				Expect(p.Y).To(BeNumerically("<", 360))
			}
		})
	})

	Context("with the bounce policy", func() {
		It("flips velocity only on crossing and conserves its magnitude", func() {
			v := testVariant()
			v.Boundary = Bounce
			v.Speed = 5
			f, err := New(v, Viewport{W: 200, H: 100}, 9)
			Expect(err).NotTo(HaveOccurred())

			for frame := 0; frame < 300; frame++ {
				before := append([]Particle(nil), f.Particles()...)
				Advance(f, 1, NoPointer)
				for i, p := range f.Particles() {
					b := before[i]
					crossedX := b.X+b.VX < 0 || b.X+b.VX > 200
					crossedY := b.Y+b.VY < 0 || b.Y+b.VY > 100
					Expect(p.VX == -b.VX).To(Equal(crossedX || b.VX == 0))
					Expect(p.VY == -b.VY).To(Equal(crossedY || b.VY == 0))
					Expect(math.Abs(p.VX)).To(Equal(math.Abs(b.VX)))
					Expect(math.Abs(p.VY)).To(Equal(math.Abs(b.VY)))
				}
			}
		})
	})

	Context("with the pointer set", func() {
		It("pushes a particle sitting on the pointer by the full amount", func() {
			dx, dy := Displacement(100, 100, At(100, 100), 180, 2)
			Expect(dx).To(BeNumerically("~", 2, 1e-12))
			Expect(dy).To(BeZero())
		})

		It("leaves a particle on the interaction radius untouched", func() {
			dx, dy := Displacement(100, 280, At(100, 100), 180, 2)
			Expect(dx).To(BeZero())
			Expect(dy).To(BeZero())
		})
	})

	Context("proximity links", func() {
		It("connects a pair iff it is closer than the link distance", func() {
			f, err := New(testVariant(), Viewport{W: 500, H: 500}, 3)
			Expect(err).NotTo(HaveOccurred())

			linked := map[[2]int]bool{}
			for _, l := range f.Connections() {
				linked[[2]int{l.I, l.J}] = true
				Expect(l.Opacity).To(BeNumerically(">", 0))
			}

			ps := f.Particles()
			for i := range ps {
				for j := i + 1; j < len(ps); j++ {
					d := math.Hypot(ps[i].X-ps[j].X, ps[i].Y-ps[j].Y)
					Expect(linked[[2]int{i, j}]).To(Equal(d < 100))
				}
			}
		})
	})
})
