package core

import (
	"cmp"
	"slices"
)

// Mesh is the half-edge mesh container. It owns one table per entity kind,
// keyed by mesh-local identity, and allocates identities from one
// monotonically increasing counter per kind. The tables are the sole owners
// of the entities; every other reference is a weak Ptr.
//
// While it is possible to register non-triangular faces, every topology
// algorithm here requires triangular ones and validates that up front.
type Mesh struct {
	verts map[VertID]*Vert
	edges map[EdgeID]*Edge
	faces map[FaceID]*Face

	// Identity counters. IDs are never reused after removal. The counters
	// can wrap after exhausting uint32, at which point identity uniqueness
	// is no longer guaranteed; treated as an accepted hazard, not handled.
	curVertID VertID
	curEdgeID EdgeID
	curFaceID FaceID
}

// NewMesh returns an empty mesh. A half-edge mesh requires at least a
// tetrahedron to be a valid closed surface.
func NewMesh() *Mesh {
	return &Mesh{
		verts: make(map[VertID]*Vert),
		edges: make(map[EdgeID]*Edge),
		faces: make(map[FaceID]*Face),
	}
}

// NewVertID allocates a fresh vertex identity. The first allocated ID is 1.
func (m *Mesh) NewVertID() VertID {
	m.curVertID++

	return m.curVertID
}

// NewEdgeID allocates a fresh half-edge identity. The first allocated ID is 1.
func (m *Mesh) NewEdgeID() EdgeID {
	m.curEdgeID++

	return m.curEdgeID
}

// NewFaceID allocates a fresh face identity. The first allocated ID is 1.
func (m *Mesh) NewFaceID() FaceID {
	m.curFaceID++

	return m.curFaceID
}

// AddVert registers a vertex in the mesh.
func (m *Mesh) AddVert(v *Vert) {
	m.verts[v.id] = v
}

// AddVerts registers several vertices in the mesh.
func (m *Mesh) AddVerts(vs ...*Vert) {
	for _, v := range vs {
		m.verts[v.id] = v
	}
}

// AddEdge registers a half-edge in the mesh.
func (m *Mesh) AddEdge(e *Edge) {
	m.edges[e.id] = e
}

// AddEdges registers several half-edges in the mesh.
func (m *Mesh) AddEdges(es ...*Edge) {
	for _, e := range es {
		m.edges[e.id] = e
	}
}

// AddFace registers a face in the mesh, recomputing its attributes first.
// Ensuring the attributes are correct before the face is queried is
// essential, so the boundary must be fully wired when AddFace runs.
func (m *Mesh) AddFace(f *Face) error {
	if err := f.ComputeAttrs(); err != nil {
		return err
	}
	m.faces[f.id] = f

	return nil
}

// AddFaces registers several faces without recomputing attributes. Use for
// bulk moves of faces whose attributes are already correct.
func (m *Mesh) AddFaces(fs ...*Face) {
	for _, f := range fs {
		m.faces[f.id] = f
	}
}

// Unregistration tombstones the entity so every surviving Ptr to it stops
// resolving. Removal happens only inside topology algorithms; the entity
// must be the one registered under its ID.

func (m *Mesh) removeVert(v *Vert) {
	if cur, ok := m.verts[v.id]; ok && cur == v {
		delete(m.verts, v.id)
		v.alive = false
	}
}

func (m *Mesh) removeEdge(e *Edge) {
	if cur, ok := m.edges[e.id]; ok && cur == e {
		delete(m.edges, e.id)
		e.alive = false
	}
}

func (m *Mesh) removeFace(f *Face) {
	if cur, ok := m.faces[f.id]; ok && cur == f {
		delete(m.faces, f.id)
		f.alive = false
	}
}

// Vert looks up a registered vertex by identity.
func (m *Mesh) Vert(id VertID) (*Vert, bool) {
	v, ok := m.verts[id]

	return v, ok
}

// Edge looks up a registered half-edge by identity.
func (m *Mesh) Edge(id EdgeID) (*Edge, bool) {
	e, ok := m.edges[id]

	return e, ok
}

// Face looks up a registered face by identity.
func (m *Mesh) Face(id FaceID) (*Face, bool) {
	f, ok := m.faces[id]

	return f, ok
}

// VertCount returns the number of registered vertices.
func (m *Mesh) VertCount() int { return len(m.verts) }

// EdgeCount returns the number of registered half-edges.
func (m *Mesh) EdgeCount() int { return len(m.edges) }

// FaceCount returns the number of registered faces.
func (m *Mesh) FaceCount() int { return len(m.faces) }

// Verts returns the registered vertices sorted by identity, for
// deterministic iteration.
func (m *Mesh) Verts() []*Vert {
	out := make([]*Vert, 0, len(m.verts))
	for _, v := range m.verts {
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b *Vert) int { return cmp.Compare(a.id, b.id) })

	return out
}

// Edges returns the registered half-edges sorted by identity, for
// deterministic iteration.
func (m *Mesh) Edges() []*Edge {
	out := make([]*Edge, 0, len(m.edges))
	for _, e := range m.edges {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b *Edge) int { return cmp.Compare(a.id, b.id) })

	return out
}

// Faces returns the registered faces sorted by identity, for deterministic
// iteration.
func (m *Mesh) Faces() []*Face {
	out := make([]*Face, 0, len(m.faces))
	for _, f := range m.faces {
		out = append(out, f)
	}
	slices.SortFunc(out, func(a, b *Face) int { return cmp.Compare(a.id, b.id) })

	return out
}
