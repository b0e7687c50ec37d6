package core

import "gonum.org/v1/gonum/spatial/r3"

// Triangle bundles the entities created by MakeTriangle: one face and its
// three boundary half-edges, in winding order.
type Triangle struct {
	Face *Face
	E1   *Edge
	E2   *Edge
	E3   *Edge
}

// MakeTriangle creates 3 fresh half-edges and 1 face and wires the boundary
// loop v1→v2→v3→v1, pointing each vertex at its outgoing new edge and
// computing the face attributes. The created entities are returned without
// being registered, and since a lone triangle has no neighbors, the pair
// links are still empty. Registration (AddTriangle) and pairing
// (ConnectPairs) are separate, explicit follow-up steps.
func (m *Mesh) MakeTriangle(v1, v2, v3 *Vert) (Triangle, error) {
	if v1 == nil || v2 == nil || v3 == nil {
		return Triangle{}, ErrNilEntity
	}

	// 1. Create the triangle edges, each anchored at its origin vertex.
	e1 := NewEdgeWithOrigin(m.NewEdgeID(), PtrTo(v1))
	e2 := NewEdgeWithOrigin(m.NewEdgeID(), PtrTo(v2))
	e3 := NewEdgeWithOrigin(m.NewEdgeID(), PtrTo(v3))

	// 2. Vertex connectivity. It doesn't matter which edge a vertex points
	// to, so long as that edge points back to the vertex.
	v1.SetEdge(PtrTo(e1))
	v2.SetEdge(PtrTo(e2))
	v3.SetEdge(PtrTo(e3))

	// 3. Close the boundary loop.
	e1.SetNext(PtrTo(e2))
	e2.SetNext(PtrTo(e3))
	e3.SetNext(PtrTo(e1))

	// 4. Create the face and link the edges to it.
	f := NewFaceWithEdge(m.NewFaceID(), PtrTo(e1))
	e1.SetFace(PtrTo(f))
	e2.SetFace(PtrTo(f))
	e3.SetFace(PtrTo(f))

	// 5. Vertices and edges are connected now, so this is the right time.
	if err := f.ComputeAttrs(); err != nil {
		return Triangle{}, err
	}

	return Triangle{Face: f, E1: e1, E2: e2, E3: e3}, nil
}

// AddTriangle registers the face and edges created by MakeTriangle. The
// vertices are registered separately (they may be shared among triangles).
func (m *Mesh) AddTriangle(tri Triangle) {
	m.faces[tri.Face.id] = tri.Face
	m.edges[tri.E1.id] = tri.E1
	m.edges[tri.E2.id] = tri.E2
	m.edges[tri.E3.id] = tri.E3
}

// FacesAdjacent reports whether some boundary edge of a has a pair edge
// owned by b.
func (m *Mesh) FacesAdjacent(a, b *Face) bool {
	if a == nil || b == nil {
		return false
	}
	for e := range a.AdjacentEdges() {
		if across, ok := e.PairFace(); ok && across == b {
			return true
		}
	}

	return false
}

// FacesAdjacentPtr is FacesAdjacent over handles, false if either fails to
// resolve.
func (m *Mesh) FacesAdjacentPtr(a, b FacePtr) bool {
	ra, rb, ok := MergeResolve(a, b)
	if !ok {
		return false
	}

	return m.FacesAdjacent(ra, rb)
}

// TriangulateFace replaces target with three faces fanned around a fresh
// apex vertex at point: each original boundary edge is reused as the base of
// one new face, joined to the apex by a new leading and trailing edge.
// Net effect: +1 vertex, +6 half-edges, +2 faces.
//
// Returns ErrStaleEntity if target is not registered and ErrFaceNotTriangle
// if its boundary is not exactly 3 edges and vertices; nothing is mutated on
// error.
func (m *Mesh) TriangulateFace(point r3.Vec, target *Face) error {
	// 1. Structural preconditions, checked before any mutation.
	if target == nil {
		return ErrNilEntity
	}
	if cur, ok := m.faces[target.id]; !ok || cur != target {
		return ErrStaleEntity
	}
	var faceEdges []*Edge
	var faceVerts []*Vert
	for e := range target.AdjacentEdges() {
		faceEdges = append(faceEdges, e)
	}
	for v := range target.AdjacentVerts() {
		faceVerts = append(faceVerts, v)
	}
	if len(faceEdges) != 3 || len(faceVerts) != 3 {
		return ErrFaceNotTriangle
	}

	apex := NewVert(m.NewVertID(), point)

	// 2. One new face per original boundary edge, each with a new leading
	// edge to the next boundary vertex and a new trailing edge from the apex.
	leads := make([]*Edge, 0, 3)
	trails := make([]*Edge, 0, 3)
	for i, base := range faceEdges {
		base.SetOrigin(PtrTo(faceVerts[i]))
		faceVerts[i].SetEdge(PtrTo(base))

		nf := NewFaceWithEdge(m.NewFaceID(), PtrTo(base))
		leading := NewEdgeWithOrigin(m.NewEdgeID(), PtrTo(faceVerts[(i+1)%len(faceVerts)]))
		trailing := NewEdgeWithOrigin(m.NewEdgeID(), PtrTo(apex))

		base.SetFace(PtrTo(nf))
		leading.SetFace(PtrTo(nf))
		trailing.SetFace(PtrTo(nf))

		base.SetNext(PtrTo(leading))
		leading.SetNext(PtrTo(trailing))
		trailing.SetNext(PtrTo(base))

		apex.SetEdge(PtrTo(trailing))

		leads = append(leads, leading)
		trails = append(trails, trailing)

		m.AddEdge(leading)
		m.AddEdge(trailing)
		if err := m.AddFace(nf); err != nil {
			return err
		}
	}

	m.AddVert(apex)

	// 3. Pair the new edges around the apex: leading[i] with trailing[(i+1)%3].
	for i, leading := range leads {
		trailing := trails[(i+1)%len(trails)]
		leading.SetPair(PtrTo(trailing))
		trailing.SetPair(PtrTo(leading))
	}

	// 4. The original face is gone; its edges live on in the new faces.
	m.removeFace(target)

	return nil
}
