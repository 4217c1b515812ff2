package coverage

import (
	"image"
	"testing"

	"go.viam.com/test"
)

func TestNewMask(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		m, err := NewMask(4, 8)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, m.Width(), test.ShouldEqual, 4)
		test.That(t, m.Height(), test.ShouldEqual, 8)
		test.That(t, m.Bounds(), test.ShouldResemble, image.Rect(0, 0, 4, 8))
		for _, v := range m.Export() {
			test.That(t, v, test.ShouldEqual, Uncovered)
		}
	})

	t.Run("bad dimensions", func(t *testing.T) {
		_, err := NewMask(0, 8)
		test.That(t, err, test.ShouldNotBeNil)
		_, err = NewMask(4, -1)
		test.That(t, err, test.ShouldNotBeNil)
	})
}

func TestMaskMarkAndClear(t *testing.T) {
	m, err := NewMask(3, 3)
	test.That(t, err, test.ShouldBeNil)

	m.mark(1, 2)
	test.That(t, m.At(1, 2), test.ShouldEqual, Covered)
	test.That(t, m.At(2, 1), test.ShouldEqual, Uncovered)
	test.That(t, m.CoveredCount(), test.ShouldEqual, 1)

	// out-of-bounds reads are uncovered, not panics
	test.That(t, m.At(-1, 0), test.ShouldEqual, Uncovered)
	test.That(t, m.At(3, 3), test.ShouldEqual, Uncovered)

	m.Clear()
	test.That(t, m.At(1, 2), test.ShouldEqual, Uncovered)
	test.That(t, m.CoveredCount(), test.ShouldEqual, 0)
}

func TestMaskExportSnapshot(t *testing.T) {
	m, err := NewMask(2, 2)
	test.That(t, err, test.ShouldBeNil)
	m.mark(0, 0)

	snapshot := m.Export()
	test.That(t, snapshot, test.ShouldResemble, []byte{255, 0, 0, 0})

	// a later mutation must not show up in the snapshot
	m.mark(1, 1)
	test.That(t, snapshot, test.ShouldResemble, []byte{255, 0, 0, 0})
}

func TestMaskExportInverted(t *testing.T) {
	m, err := NewMask(2, 3)
	test.That(t, err, test.ShouldBeNil)
	m.mark(0, 0)
	m.mark(1, 2)

	raw := m.Export()
	inverted := m.ExportInverted()
	test.That(t, len(inverted), test.ShouldEqual, len(raw))
	for i := range raw {
		test.That(t, inverted[i], test.ShouldEqual, 255-raw[i])
	}
}
