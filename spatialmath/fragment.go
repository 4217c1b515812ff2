package spatialmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// TriangleArity is the number of vertex indices per face in a triangle mesh.
const TriangleArity = 3

// Fragment is one incrementally reconstructed chunk of surface geometry: a
// dense vertex array in the fragment's local space, a dense face index array,
// and a transform mapping local space to world space. Fragments are produced
// and mutated by the tracking subsystem; consumers receive a frozen snapshot
// per call and must not retain it across calls.
type Fragment struct {
	pose            mgl64.Mat4
	vertices        []r3.Vector
	faces           []int
	verticesPerFace int
}

// NewFragment validates and assembles a mesh fragment. Faces must be a dense
// array of vertex indices, verticesPerFace indices per face; every index must
// address a vertex. Non-triangular arities are legal here (the pipeline skips
// them downstream).
func NewFragment(pose mgl64.Mat4, vertices []r3.Vector, faces []int, verticesPerFace int) (*Fragment, error) {
	if verticesPerFace <= 0 {
		return nil, errors.Errorf("vertices per face must be positive, got %d", verticesPerFace)
	}
	if len(faces)%verticesPerFace != 0 {
		return nil, errors.Errorf("face index array length %d not divisible by arity %d", len(faces), verticesPerFace)
	}
	for _, idx := range faces {
		if idx < 0 || idx >= len(vertices) {
			return nil, errors.Errorf("face index %d out of range for %d vertices", idx, len(vertices))
		}
	}
	return &Fragment{
		pose:            pose,
		vertices:        vertices,
		faces:           faces,
		verticesPerFace: verticesPerFace,
	}, nil
}

// NewTriangleFragment is NewFragment with the standard triangle arity.
func NewTriangleFragment(pose mgl64.Mat4, vertices []r3.Vector, faces []int) (*Fragment, error) {
	return NewFragment(pose, vertices, faces, TriangleArity)
}

// Pose returns the local-to-world transform of the fragment.
func (f *Fragment) Pose() mgl64.Mat4 {
	return f.pose
}

// Vertices returns the local-space vertex positions.
func (f *Fragment) Vertices() []r3.Vector {
	return f.vertices
}

// Faces returns the dense face index array.
func (f *Fragment) Faces() []int {
	return f.faces
}

// VerticesPerFace returns the primitive arity of the fragment.
func (f *Fragment) VerticesPerFace() int {
	return f.verticesPerFace
}

// FaceCount returns the number of faces in the fragment.
func (f *Fragment) FaceCount() int {
	return len(f.faces) / f.verticesPerFace
}

// Transform returns a fragment sharing this one's geometry with the given
// transform composed ahead of its pose.
func (f *Fragment) Transform(m mgl64.Mat4) *Fragment {
	return &Fragment{
		pose:            m.Mul4(f.pose),
		vertices:        f.vertices,
		faces:           f.faces,
		verticesPerFace: f.verticesPerFace,
	}
}
