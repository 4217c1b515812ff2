package coverage

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Image renders the mask as a grayscale image, covered cells white on black.
func (m *Mask) Image() image.Image {
	return m.render(Covered)
}

// InvertedImage renders the complement: uncovered cells white on black. This
// is the form a display overlay consumes to highlight what still needs
// scanning.
func (m *Mask) InvertedImage() image.Image {
	return m.render(Uncovered)
}

func (m *Mask) render(emphasize byte) image.Image {
	dc := gg.NewContext(m.width, m.height)
	dc.SetColor(color.Black)
	dc.Clear()
	dc.SetColor(color.White)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.data[y*m.width+x] == emphasize {
				dc.SetPixel(x, y)
			}
		}
	}
	return dc.Image()
}

// OverlayImage upscales the inverted mask to the given viewport size with
// nearest-neighbor sampling, preserving the hard covered/uncovered boundary
// for compositing over the camera feed.
func (m *Mask) OverlayImage(viewport image.Point) image.Image {
	return imaging.Resize(m.InvertedImage(), viewport.X, viewport.Y, imaging.NearestNeighbor)
}
