package coverage

import (
	"image"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"

	"github.com/roomscan/roomscan/spatialmath"
)

// Clip-space w at or below this is treated as behind the camera plane. Also
// guards the perspective divide against blow-up.
const minClipW = 0.001

// projectedVertex is a fragment vertex mapped into mask-cell coordinates.
// Invalid means behind the camera or beyond the capture range; any triangle
// touching an invalid vertex is dropped whole, never clipped.
type projectedVertex struct {
	x, y  int
	valid bool
}

// projectPoint maps a point in a fragment's local space to integer mask
// coordinates for the current camera, or declares it invalid.
//
// The screen mapping assumes a fixed portrait orientation: NDC y grows up,
// screen y grows down, so y is flipped. Mask coordinates may land outside the
// mask; the rasterizer's bounding-box clamp rejects those, not this function.
func projectPoint(
	local r3.Vector,
	meshToWorld, viewProjection mgl64.Mat4,
	cameraPos r3.Vector,
	maxRangeSq float64,
	viewport image.Point,
	maskWidth, maskHeight int,
) projectedVertex {
	world := spatialmath.TransformPoint(meshToWorld, local)

	// Squared comparison avoids a square root on the hot path.
	if world.Sub(cameraPos).Norm2() > maxRangeSq {
		return projectedVertex{}
	}

	clip := spatialmath.TransformPointH(viewProjection, world)
	w := clip.W()
	if w <= minClipW {
		return projectedVertex{}
	}

	ndcX := clip.X() / w
	ndcY := clip.Y() / w

	screenX := (ndcX + 1) / 2 * float64(viewport.X)
	screenY := (1 - ndcY) / 2 * float64(viewport.Y)

	return projectedVertex{
		x:     int(screenX * float64(maskWidth) / float64(viewport.X)),
		y:     int(screenY * float64(maskHeight) / float64(viewport.Y)),
		valid: true,
	}
}
