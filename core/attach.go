package core

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// AttachPoint replaces a connected group of faces with a fan of new
// triangles joining the group's horizon loop to a fresh apex vertex at
// point. This is the horizon-stitching step of incremental convex-hull
// construction: removeFaces is the region visible from point, and the
// horizon is the closed loop of edges separating it from the kept surface.
//
// The removal set must be connected and must not cover the whole surface.
// ErrNoHorizon (degenerate removal set) and ErrHorizonBroken (the horizon
// does not form one closed loop) are detected before any mutation, leaving
// the mesh exactly as it was. On success the newly created faces are
// returned.
func (m *Mesh) AttachPoint(point r3.Vec, removeFaces []*Face) ([]*Face, error) {
	// 1. Classify every boundary edge of the removal set. An edge whose
	// pair's face is also being removed (or cannot be resolved) is interior
	// and goes too; an edge bordering a kept face is part of the horizon.
	// Likewise classify boundary vertices: removable iff every incident face
	// is in the removal set.
	outgoing := make(map[FaceID]bool, len(removeFaces))
	for _, f := range removeFaces {
		if f != nil {
			outgoing[f.id] = true
		}
	}

	horizon := make(map[EdgeID]*Edge)
	var interiorEdges []*Edge
	var removableVerts []*Vert
	seenVerts := make(map[VertID]bool)
	var firstHorizon *Edge

	for _, outFace := range removeFaces {
		if outFace == nil {
			continue
		}
		for e := range outFace.AdjacentEdges() {
			interior := true
			if across, ok := e.PairFace(); ok {
				interior = outgoing[across.id]
			}
			if interior {
				interiorEdges = append(interiorEdges, e)
				continue
			}
			if firstHorizon == nil {
				firstHorizon = e
			}
			horizon[e.id] = e
		}
		for v := range outFace.AdjacentVerts() {
			if seenVerts[v.id] {
				continue
			}
			removable := true
			for vf := range v.AdjacentFaces() {
				if !outgoing[vf.id] {
					removable = false
					break
				}
			}
			if removable {
				seenVerts[v.id] = true
				removableVerts = append(removableVerts, v)
			}
		}
	}

	// 2. No horizon edges means the removal set is empty, covers the whole
	// surface, or is otherwise degenerate.
	if firstHorizon == nil {
		return nil, ErrNoHorizon
	}

	// 3. For every horizon edge, the unique other horizon edge among the
	// edges incident to its target vertex is its successor around the loop.
	succ := make(map[EdgeID]EdgeID, len(horizon))
	for id, h := range horizon {
		target, ok := h.Target()
		if !ok {
			continue
		}
		for adj := range target.AdjacentEdges() {
			if _, isHorizon := horizon[adj.id]; isHorizon {
				succ[id] = adj.id
				break
			}
		}
	}

	// 4. The successor relation must be a permutation of the horizon edges:
	// domain and range exactly equal, and the walk from any edge must cover
	// the entire horizon in one loop.
	if len(succ) != len(horizon) {
		return nil, ErrHorizonBroken
	}
	rangeSet := make(map[EdgeID]bool, len(succ))
	for _, id := range succ {
		rangeSet[id] = true
	}
	if len(rangeSet) != len(succ) {
		return nil, ErrHorizonBroken
	}
	for id := range succ {
		if !rangeSet[id] {
			return nil, ErrHorizonBroken
		}
	}

	loop := make([]*Edge, 0, len(horizon))
	for id := firstHorizon.id; ; {
		loop = append(loop, horizon[id])
		id = succ[id]
		if id == firstHorizon.id {
			break
		}
	}
	if len(loop) != len(horizon) {
		return nil, ErrHorizonBroken
	}

	// 5. Validation passed; commit. Each horizon edge's origin is a kept
	// vertex whose incident-edge pointer may reference an edge about to be
	// removed, so redirect it to the horizon edge first. Then drop the
	// marked faces, the enclosed vertices, and the interior edges.
	for _, h := range loop {
		if o, ok := h.Origin(); ok {
			o.SetEdge(PtrTo(h))
		}
	}
	for _, f := range removeFaces {
		if f != nil {
			m.removeFace(f)
		}
	}
	for _, v := range removableVerts {
		m.removeVert(v)
	}
	for _, e := range interiorEdges {
		m.removeEdge(e)
	}

	// 6. Walk the horizon in successor order, building one new face per
	// horizon edge: base→leading→trailing→base, where the leading edge
	// starts at the next horizon edge's origin and the trailing edge starts
	// at the apex.
	apex := NewVert(m.NewVertID(), point)
	newFaces := make([]*Face, 0, len(loop))
	for i, base := range loop {
		next := loop[(i+1)%len(loop)]
		nextOrigin, ok := next.Origin()
		if !ok {
			return nil, fmt.Errorf("AttachPoint: horizon origin: %w", ErrEdgeUnresolved)
		}

		nf := NewFaceWithEdge(m.NewFaceID(), PtrTo(base))
		leading := NewEdgeWithOrigin(m.NewEdgeID(), PtrTo(nextOrigin))
		trailing := NewEdgeWithOrigin(m.NewEdgeID(), PtrTo(apex))

		// Repeated every round, but the apex must end up pointing at one of
		// its outgoing edges.
		apex.SetEdge(PtrTo(trailing))

		base.SetNext(PtrTo(leading))
		leading.SetNext(PtrTo(trailing))
		trailing.SetNext(PtrTo(base))

		base.SetFace(PtrTo(nf))
		leading.SetFace(PtrTo(nf))
		trailing.SetFace(PtrTo(nf))

		m.AddEdge(leading)
		m.AddEdge(trailing)
		if err := m.AddFace(nf); err != nil {
			return nil, fmt.Errorf("AttachPoint: %w", err)
		}
		newFaces = append(newFaces, nf)
	}
	m.AddVert(apex)

	// 7. Close the fan: each base's leading edge pairs with the trailing
	// edge of the next face around the loop.
	for i, base := range loop {
		next := loop[(i+1)%len(loop)]
		leading, lok := base.Next()
		trailing, tok := next.NextNext()
		if !lok || !tok {
			return nil, fmt.Errorf("AttachPoint: fan pairing: %w", ErrEdgeUnresolved)
		}
		leading.SetPair(PtrTo(trailing))
		trailing.SetPair(PtrTo(leading))
	}

	return newFaces, nil
}

// AttachPointPtr is AttachPoint over face handles; handles that no longer
// resolve are dropped from the removal set.
func (m *Mesh) AttachPointPtr(point r3.Vec, faces []FacePtr) ([]*Face, error) {
	resolved := make([]*Face, 0, len(faces))
	for _, fp := range faces {
		if f, ok := fp.Resolve(); ok {
			resolved = append(resolved, f)
		}
	}

	return m.AttachPoint(point, resolved)
}
