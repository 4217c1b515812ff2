package coverage

import (
	"testing"

	"go.viam.com/test"
)

func pv(x, y int) projectedVertex {
	return projectedVertex{x: x, y: y, valid: true}
}

func newTestMask(t *testing.T, w, h int) *Mask {
	t.Helper()
	m, err := NewMask(w, h)
	test.That(t, err, test.ShouldBeNil)
	return m
}

func TestRasterizeTriangle(t *testing.T) {
	t.Run("right triangle on 4x4 grid", func(t *testing.T) {
		m := newTestMask(t, 4, 4)
		rasterizeTriangle(m, pv(0, 0), pv(3, 0), pv(0, 3))

		// boundary is inclusive: exactly the cells with x+y <= 3
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				want := Uncovered
				if x+y <= 3 {
					want = Covered
				}
				test.That(t, m.At(x, y), test.ShouldEqual, want)
			}
		}
	})

	t.Run("winding independence", func(t *testing.T) {
		cw := newTestMask(t, 4, 4)
		ccw := newTestMask(t, 4, 4)
		rasterizeTriangle(cw, pv(0, 0), pv(3, 0), pv(0, 3))
		rasterizeTriangle(ccw, pv(0, 0), pv(0, 3), pv(3, 0))
		test.That(t, cw.Export(), test.ShouldResemble, ccw.Export())
	})

	t.Run("marking is idempotent", func(t *testing.T) {
		once := newTestMask(t, 8, 8)
		twice := newTestMask(t, 8, 8)
		rasterizeTriangle(once, pv(1, 1), pv(6, 2), pv(3, 6))
		rasterizeTriangle(twice, pv(1, 1), pv(6, 2), pv(3, 6))
		rasterizeTriangle(twice, pv(1, 1), pv(6, 2), pv(3, 6))
		test.That(t, twice.Export(), test.ShouldResemble, once.Export())
	})

	t.Run("order independence", func(t *testing.T) {
		ab := newTestMask(t, 8, 8)
		ba := newTestMask(t, 8, 8)
		rasterizeTriangle(ab, pv(0, 0), pv(5, 0), pv(0, 5))
		rasterizeTriangle(ab, pv(7, 7), pv(2, 7), pv(7, 2))
		rasterizeTriangle(ba, pv(7, 7), pv(2, 7), pv(7, 2))
		rasterizeTriangle(ba, pv(0, 0), pv(5, 0), pv(0, 5))
		test.That(t, ba.Export(), test.ShouldResemble, ab.Export())
	})

	t.Run("fully off-grid marks nothing", func(t *testing.T) {
		m := newTestMask(t, 4, 4)
		rasterizeTriangle(m, pv(-10, -10), pv(-2, -10), pv(-10, -2))
		test.That(t, m.CoveredCount(), test.ShouldEqual, 0)

		rasterizeTriangle(m, pv(10, 10), pv(20, 10), pv(10, 20))
		test.That(t, m.CoveredCount(), test.ShouldEqual, 0)
	})

	t.Run("straddling triangle marks only in-bounds cells", func(t *testing.T) {
		m := newTestMask(t, 4, 4)
		// covers the whole grid and then some
		rasterizeTriangle(m, pv(-10, -10), pv(20, -10), pv(-10, 20))
		test.That(t, m.CoveredCount(), test.ShouldEqual, 16)
	})
}
