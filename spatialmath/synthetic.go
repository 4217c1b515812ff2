package spatialmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// Vertices of a unit quad in the local XY plane, centered on the origin.
var quadVertices = [4]r3.Vector{
	{X: -0.5, Y: -0.5, Z: 0},
	{X: 0.5, Y: -0.5, Z: 0},
	{X: 0.5, Y: 0.5, Z: 0},
	{X: -0.5, Y: 0.5, Z: 0},
}

// The two triangles tiling the quad.
var quadFaces = []int{0, 1, 2, 0, 2, 3}

// NewQuadFragment builds a rectangular two-triangle fragment of the given
// width and height, lying in the local XY plane and placed by pose. Synthetic
// stand-in for reconstructed wall and floor patches in tests and demos.
func NewQuadFragment(pose mgl64.Mat4, width, height float64) *Fragment {
	vertices := make([]r3.Vector, len(quadVertices))
	for i, v := range quadVertices {
		vertices[i] = r3.Vector{X: v.X * width, Y: v.Y * height, Z: 0}
	}
	frag, err := NewTriangleFragment(pose, vertices, quadFaces)
	if err != nil {
		// static geometry tables, cannot fail
		panic(err)
	}
	return frag
}

// WallPose places a quad fragment upright at center, facing along the world
// Z axis. The quad is already vertical in its local frame, so this is a pure
// translation.
func WallPose(center r3.Vector) mgl64.Mat4 {
	return mgl64.Translate3D(center.X, center.Y, center.Z)
}

// FloorPose places a quad fragment horizontally at center, normal up along
// the world Y axis.
func FloorPose(center r3.Vector) mgl64.Mat4 {
	return mgl64.Translate3D(center.X, center.Y, center.Z).
		Mul4(mgl64.HomogRotate3DX(-mgl64.DegToRad(90)))
}
