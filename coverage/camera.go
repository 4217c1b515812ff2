// Package coverage turns reconstructed room geometry into a live screen-space
// coverage mask: a low resolution bitmap marking which parts of the current
// camera view correspond to already captured surfaces.
package coverage

import (
	"image"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"

	"github.com/roomscan/roomscan/spatialmath"
)

// Near and far plane distances of the capture camera, in meters.
const (
	CameraNearPlane = 0.001
	CameraFarPlane  = 100.0
)

// CameraFrame describes the capture camera for a single update: its view and
// projection transforms, its world transform, and the viewport the display
// renders into. All transforms are for a fixed portrait screen orientation.
// A fresh frame is supplied by the tracking subsystem on every call.
type CameraFrame struct {
	View       mgl64.Mat4
	Projection mgl64.Mat4
	World      mgl64.Mat4
	Viewport   image.Point
}

// ViewProjection returns the combined transform mapping world-space points to
// clip space.
func (f *CameraFrame) ViewProjection() mgl64.Mat4 {
	return f.Projection.Mul4(f.View)
}

// WorldPosition returns the camera's position in world space.
func (f *CameraFrame) WorldPosition() r3.Vector {
	return spatialmath.TranslationOf(f.World)
}

// NewPerspectiveFrame builds a camera frame looking from eye toward target
// with the given vertical field of view (radians) and viewport, using the
// capture camera's near/far planes. Intended for tests and synthetic scenes;
// live frames come from the tracking subsystem.
func NewPerspectiveFrame(eye, target r3.Vector, fovY float64, viewport image.Point) CameraFrame {
	aspect := float64(viewport.X) / float64(viewport.Y)
	view := mgl64.LookAtV(
		spatialmath.VectorToMGL(eye),
		spatialmath.VectorToMGL(target),
		mgl64.Vec3{0, 1, 0},
	)
	return CameraFrame{
		View:       view,
		Projection: mgl64.Perspective(fovY, aspect, CameraNearPlane, CameraFarPlane),
		World:      view.Inv(),
		Viewport:   viewport,
	}
}
