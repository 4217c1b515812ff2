package coverage

import (
	"image"

	"github.com/pkg/errors"
)

// Default mask resolution, portrait 9:16. Deliberately much lower than the
// viewport: the mask trades visual fidelity for full-recompute speed.
const (
	DefaultMaskWidth  = 270
	DefaultMaskHeight = 480
)

// Cell values. A cell is always exactly one of the two; there is no partial
// coverage.
const (
	Uncovered byte = 0
	Covered   byte = 255
)

// Mask is a fixed-size coverage bitmap, one byte per cell, row-major from the
// top-left. It is fully overwritten on every admitted pipeline update, never
// incrementally patched.
type Mask struct {
	width  int
	height int
	data   []byte
}

// NewMask allocates an all-uncovered mask of the given dimensions.
func NewMask(width, height int) (*Mask, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("mask dimensions must be positive, got %dx%d", width, height)
	}
	return &Mask{
		width:  width,
		height: height,
		data:   make([]byte, width*height),
	}, nil
}

// Width returns the mask width in cells.
func (m *Mask) Width() int {
	return m.width
}

// Height returns the mask height in cells.
func (m *Mask) Height() int {
	return m.height
}

// Bounds returns the mask's cell grid as a rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// At returns the cell value at (x, y). Out-of-bounds reads return Uncovered.
func (m *Mask) At(x, y int) byte {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return Uncovered
	}
	return m.data[y*m.width+x]
}

func (m *Mask) mark(x, y int) {
	m.data[y*m.width+x] = Covered
}

// Clear resets every cell to Uncovered.
func (m *Mask) Clear() {
	for i := range m.data {
		m.data[i] = Uncovered
	}
}

// Export returns a snapshot copy of the raw cell grid. The snapshot does not
// alias the live buffer; later updates cannot mutate it.
func (m *Mask) Export() []byte {
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out
}

// ExportInverted returns a snapshot with every cell complemented (255 - v),
// so a display overlay can emphasize uncovered regions and suppress covered
// ones.
func (m *Mask) ExportInverted() []byte {
	out := make([]byte, len(m.data))
	for i, v := range m.data {
		out[i] = 255 - v
	}
	return out
}

// CoveredCount returns the number of covered cells. Diagnostic only.
func (m *Mask) CoveredCount() int {
	n := 0
	for _, v := range m.data {
		if v == Covered {
			n++
		}
	}
	return n
}
