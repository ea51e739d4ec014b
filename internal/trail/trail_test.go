package trail_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orbitviz/internal/scene"
	"github.com/san-kum/orbitviz/internal/trail"
)

var _ = Describe("Buffer", func() {
	point := func(i int) scene.Vec3 {
		return scene.Vec3{X: float64(i), Y: float64(i) * 2, Z: float64(i) * 3}
	}

	It("starts with every slot at the origin", func() {
		b := trail.NewBuffer(4)
		Expect(b.Capacity()).To(Equal(4))
		Expect(b.Vertices()).To(HaveLen(12))
		Expect(b.Vertices()).To(HaveEach(0.0))
		Expect(b.Cursor()).To(Equal(0))
	})

	It("holds exactly the written sequence after capacity writes", func() {
		b := trail.NewBuffer(3)
		for i := 1; i <= 3; i++ {
			b.Record(point(i))
		}
		Expect(b.Vertices()).To(Equal([]float64{1, 2, 3, 2, 4, 6, 3, 6, 9}))
		Expect(b.Cursor()).To(Equal(0))
	})

	It("overwrites the oldest slot once wrapped", func() {
		b := trail.NewBuffer(3)
		for i := 1; i <= 4; i++ {
			b.Record(point(i))
		}
		// slot 0 now holds the 4th point while slot 1 still holds the 2nd
		Expect(b.At(0)).To(Equal(point(4)))
		Expect(b.At(1)).To(Equal(point(2)))
		Expect(b.At(2)).To(Equal(point(3)))
		Expect(b.Cursor()).To(Equal(1))
	})

	It("never changes length or backing storage", func() {
		b := trail.NewBuffer(5)
		first := &b.Vertices()[0]
		for i := 0; i < 137; i++ {
			b.Record(point(i))
			Expect(b.Vertices()).To(HaveLen(15))
		}
		Expect(&b.Vertices()[0]).To(BeIdenticalTo(first))
	})

	It("falls back to the default capacity", func() {
		Expect(trail.NewBuffer(0).Capacity()).To(Equal(trail.DefaultCapacity))
		Expect(trail.NewBuffer(-3).Capacity()).To(Equal(trail.DefaultCapacity))
	})
})
