package core

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// FaceID identifies a face within one Mesh instance. IDs are mesh-local,
// allocated monotonically, and never reused.
type FaceID uint32

// VisibilityEpsilon is the strict threshold for CanSee: a point sees a face
// only when it lies farther than this beyond the face's plane. Absorbs
// floating-point error in incremental hull construction.
const VisibilityEpsilon = 1e-7

// Face is a triangular mesh face: one boundary half-edge plus derived
// attributes (unit normal and centroid). The attributes are consistent with
// the boundary only immediately after ComputeAttrs; any edit that changes
// the boundary or moves an incident vertex must re-invoke it.
type Face struct {
	id       FaceID
	edge     EdgePtr
	normal   r3.Vec
	centroid r3.Vec
	alive    bool
}

// NewFace returns a face with the given identity, a null edge link, and
// zero attributes.
func NewFace(id FaceID) *Face {
	return &Face{id: id, alive: true}
}

// NewFaceWithEdge returns a face already linked to a boundary edge.
func NewFaceWithEdge(id FaceID, edge EdgePtr) *Face {
	return &Face{id: id, edge: edge, alive: true}
}

func (f *Face) live() bool { return f.alive }

// ID returns the face identity.
func (f *Face) ID() FaceID { return f.id }

// SetEdge installs the boundary-edge link. Unconditional replacement with no
// validation; correctness is the calling algorithm's responsibility.
func (f *Face) SetEdge(edge EdgePtr) { f.edge = edge }

// EdgePtr returns the boundary-edge handle without resolving it.
func (f *Face) EdgePtr() EdgePtr { return f.edge }

// Edge resolves the boundary half-edge.
func (f *Face) Edge() (*Edge, bool) { return f.edge.Resolve() }

// Normal returns the unit normal computed by the last ComputeAttrs.
func (f *Face) Normal() r3.Vec { return f.normal }

// Centroid returns the centroid computed by the last ComputeAttrs.
func (f *Face) Centroid() r3.Vec { return f.centroid }

// VertexCount walks the boundary and counts its vertices.
func (f *Face) VertexCount() int {
	n := 0
	for range f.AdjacentVerts() {
		n++
	}

	return n
}

// IsValid is a shallow check that the face's own link resolves. It does not
// imply the surrounding mesh is consistent.
func (f *Face) IsValid() bool { return f.edge.IsValid() }

// ComputeAttrs derives the centroid and unit normal from the current
// boundary loop: the centroid is the mean of the 3 corner positions, the
// normal is the normalized cross product of the edge vectors from the first
// corner to the second and third, in the face's winding order.
//
// The boundary must be fully wired and triangular; otherwise
// ErrFaceNotTriangle is returned and the attributes are left untouched.
func (f *Face) ComputeAttrs() error {
	var corners [3]r3.Vec
	n := 0
	for v := range f.AdjacentVerts() {
		if n == len(corners) {
			return ErrFaceNotTriangle
		}
		corners[n] = v.Pos()
		n++
	}
	if n != len(corners) {
		return ErrFaceNotTriangle
	}

	sum := r3.Add(corners[0], r3.Add(corners[1], corners[2]))
	f.centroid = r3.Scale(1.0/3.0, sum)

	s1 := r3.Sub(corners[1], corners[0])
	s2 := r3.Sub(corners[2], corners[0])
	f.normal = r3.Unit(r3.Cross(s1, s2))

	return nil
}

// DistanceTo returns the distance from the face centroid to point.
func (f *Face) DistanceTo(point r3.Vec) float64 {
	return r3.Norm(r3.Sub(point, f.centroid))
}

// DirectedDistanceTo returns the signed distance from the face plane to
// point, positive on the outward (normal) side.
func (f *Face) DirectedDistanceTo(point r3.Vec) float64 {
	return r3.Dot(r3.Sub(point, f.centroid), f.normal)
}

// CanSee reports whether point lies strictly on the outward side of the
// face's plane — the visibility predicate driving incremental convex-hull
// construction.
func (f *Face) CanSee(point r3.Vec) bool {
	return f.DirectedDistanceTo(point) > VisibilityEpsilon
}
