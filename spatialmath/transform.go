// Package spatialmath defines the 3D geometry consumed by the coverage
// pipeline: points, rigid transforms, and reconstructed mesh fragments.
package spatialmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// TransformPoint applies a 4x4 transform to a point, treating it as a
// homogeneous coordinate with w=1. The result is not perspective-divided;
// use TransformPointH when the w component matters.
func TransformPoint(m mgl64.Mat4, p r3.Vector) r3.Vector {
	v := m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return r3.Vector{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// TransformPointH applies a 4x4 transform to a point with w=1 and returns the
// full homogeneous result, preserving w for perspective division by the caller.
func TransformPointH(m mgl64.Mat4, p r3.Vector) mgl64.Vec4 {
	return m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
}

// TranslationOf extracts the translation component of a rigid or affine
// 4x4 transform.
func TranslationOf(m mgl64.Mat4) r3.Vector {
	col := m.Col(3)
	return r3.Vector{X: col.X(), Y: col.Y(), Z: col.Z()}
}

// VectorToMGL converts an r3.Vector to its mgl64 representation.
func VectorToMGL(p r3.Vector) mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

// MGLToVector converts an mgl64 vector to its r3 representation.
func MGLToVector(v mgl64.Vec3) r3.Vector {
	return r3.Vector{X: v.X(), Y: v.Y(), Z: v.Z()}
}
