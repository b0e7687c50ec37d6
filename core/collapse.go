package core

import (
	"fmt"
	"slices"
)

// RemoveVert collapses a valence-3 vertex: the three incident edges, their
// pairs, and the three incident faces are removed, and the triangle of
// surrounding vertices becomes one new face. This is the inverse-style
// counterpart of TriangulateFace.
//
// Returns ErrStaleEntity if v is not registered and ErrVertValence if v does
// not have exactly 3 incident edges; nothing is mutated on error.
func (m *Mesh) RemoveVert(v *Vert) error {
	// 1. Structural preconditions, checked before any mutation.
	if v == nil {
		return ErrNilEntity
	}
	if cur, ok := m.verts[v.id]; !ok || cur != v {
		return ErrStaleEntity
	}

	var ring []*Edge
	for e := range v.AdjacentEdges() {
		ring = append(ring, e)
	}
	// Must be 3, so that the surrounding faces combine to one triangle.
	if len(ring) != 3 {
		return ErrVertValence
	}

	// 2. The ring arrives in clockwise order, but the surviving boundary
	// needs counterclockwise order to establish correct next links.
	slices.Reverse(ring)

	// The incident faces must be collected before edges start disappearing.
	var oldFaces []*Face
	for f := range v.AdjacentFaces() {
		oldFaces = append(oldFaces, f)
	}

	// 3. Each incident edge's next edge survives as one side of the new
	// face: reassign its face, skip its next pointer past the removed
	// structure, repoint its origin, then drop the incident edge and pair.
	nf := NewFace(m.NewFaceID())
	for i, e := range ring {
		if n, ok := e.Next(); ok {
			n.SetFace(PtrTo(nf))
			n.SetNext(ring[(i+1)%len(ring)].NextPtr())
			nf.SetEdge(PtrTo(n))
			if o, ok := n.Origin(); ok {
				o.SetEdge(PtrTo(n))
			}
		}
		if p, ok := e.Pair(); ok {
			m.removeEdge(p)
		}
		m.removeEdge(e)
	}

	// 4. The new boundary is fully wired now.
	if err := m.AddFace(nf); err != nil {
		return fmt.Errorf("RemoveVert: %w", err)
	}

	// 5. Drop the three old faces and the vertex itself.
	for _, f := range oldFaces {
		m.removeFace(f)
	}
	m.removeVert(v)

	return nil
}

// RemoveVertPtr is RemoveVert over a handle; a handle that no longer
// resolves yields ErrStaleEntity.
func (m *Mesh) RemoveVertPtr(v VertPtr) error {
	rv, ok := v.Resolve()
	if !ok {
		return ErrStaleEntity
	}

	return m.RemoveVert(rv)
}
