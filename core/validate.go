package core

import "fmt"

// Validate runs a full structural check over the mesh:
//
//   - every entity's direct links resolve to entities registered in this
//     mesh's tables;
//   - pair is involutive: e.pair.pair resolves back to e;
//   - next forms a closed 3-edge loop per face, and every edge on the loop
//     names the same owning face;
//   - every vertex's outgoing edge originates at that vertex;
//   - every face's boundary edge names the face back.
//
// Returns the first violation found, wrapped with the offending identity,
// or nil for a structurally valid mesh.
func Validate(m *Mesh) error {
	if m == nil {
		return ErrNilEntity
	}

	for _, v := range m.Verts() {
		e, ok := v.Edge()
		if !ok {
			return fmt.Errorf("vert %d edge: %w", v.id, ErrDanglingRef)
		}
		if reg, ok := m.edges[e.id]; !ok || reg != e {
			return fmt.Errorf("vert %d edge: %w", v.id, ErrDanglingRef)
		}
		if o, ok := e.Origin(); !ok || o != v {
			return fmt.Errorf("vert %d edge origin: %w", v.id, ErrDanglingRef)
		}
	}

	for _, e := range m.Edges() {
		o, ok := e.Origin()
		if !ok {
			return fmt.Errorf("edge %d origin: %w", e.id, ErrDanglingRef)
		}
		if reg, ok := m.verts[o.id]; !ok || reg != o {
			return fmt.Errorf("edge %d origin: %w", e.id, ErrDanglingRef)
		}
		f, ok := e.Face()
		if !ok {
			return fmt.Errorf("edge %d face: %w", e.id, ErrDanglingRef)
		}
		if reg, ok := m.faces[f.id]; !ok || reg != f {
			return fmt.Errorf("edge %d face: %w", e.id, ErrDanglingRef)
		}

		p, ok := e.Pair()
		if !ok {
			return fmt.Errorf("edge %d pair: %w", e.id, ErrDanglingRef)
		}
		if reg, ok := m.edges[p.id]; !ok || reg != p {
			return fmt.Errorf("edge %d pair: %w", e.id, ErrDanglingRef)
		}
		if pp, ok := p.Pair(); !ok || pp != e {
			return fmt.Errorf("edge %d: %w", e.id, ErrPairMismatch)
		}

		// Walking next three times must return to e without leaving the face.
		cur := e
		for i := 0; i < 3; i++ {
			n, ok := cur.Next()
			if !ok {
				return fmt.Errorf("edge %d next: %w", e.id, ErrDanglingRef)
			}
			if reg, ok := m.edges[n.id]; !ok || reg != n {
				return fmt.Errorf("edge %d next: %w", e.id, ErrDanglingRef)
			}
			if nf, ok := n.Face(); !ok || nf != f {
				return fmt.Errorf("edge %d loop face: %w", e.id, ErrBrokenLoop)
			}
			cur = n
		}
		if cur != e {
			return fmt.Errorf("edge %d: %w", e.id, ErrBrokenLoop)
		}
	}

	for _, f := range m.Faces() {
		e, ok := f.Edge()
		if !ok {
			return fmt.Errorf("face %d edge: %w", f.id, ErrDanglingRef)
		}
		if reg, ok := m.edges[e.id]; !ok || reg != e {
			return fmt.Errorf("face %d edge: %w", f.id, ErrDanglingRef)
		}
		if ef, ok := e.Face(); !ok || ef != f {
			return fmt.Errorf("face %d edge face: %w", f.id, ErrDanglingRef)
		}
	}

	return nil
}
