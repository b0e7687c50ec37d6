package core

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// edgeWings resolves the full neighborhood of an edge shared by two
// triangles: the pair, both faces, the four outer boundary edges, and the
// four corner vertices of the quadrilateral the triangles form.
//
//	      c
//	     / \
//	   en   enn        f1 = (e: a→b, en: b→c, enn: c→a)
//	   /  f1 \
//	  b———e———a        f2 = (p: b→a, pn: a→d, pnn: d→b)
//	   \  f2 /
//	   pnn  pn
//	     \ /
//	      d
type edgeWings struct {
	e, p             *Edge
	en, enn, pn, pnn *Edge
	f1, f2           *Face
	a, b, c, d       *Vert
}

func (m *Mesh) resolveWings(e *Edge) (edgeWings, error) {
	var w edgeWings
	if e == nil {
		return w, ErrNilEntity
	}
	if cur, ok := m.edges[e.id]; !ok || cur != e {
		return w, ErrStaleEntity
	}

	p, ok := e.Pair()
	if !ok {
		return w, fmt.Errorf("edge %d pair: %w", e.id, ErrEdgeUnresolved)
	}
	f1, ok1 := e.Face()
	f2, ok2 := p.Face()
	if !ok1 || !ok2 {
		return w, fmt.Errorf("edge %d face: %w", e.id, ErrEdgeUnresolved)
	}

	en, ok1 := e.Next()
	pn, ok2 := p.Next()
	if !ok1 || !ok2 {
		return w, fmt.Errorf("edge %d next: %w", e.id, ErrEdgeUnresolved)
	}
	enn, ok1 := en.Next()
	pnn, ok2 := pn.Next()
	if !ok1 || !ok2 {
		return w, fmt.Errorf("edge %d boundary: %w", e.id, ErrEdgeUnresolved)
	}
	// Both boundary loops must close in exactly 3 steps.
	if n3, ok := enn.Next(); !ok || n3 != e {
		return w, ErrFaceNotTriangle
	}
	if n3, ok := pnn.Next(); !ok || n3 != p {
		return w, ErrFaceNotTriangle
	}

	a, ok1 := e.Origin()
	b, ok2 := en.Origin()
	c, ok3 := enn.Origin()
	d, ok4 := pnn.Origin()
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return w, fmt.Errorf("edge %d corner: %w", e.id, ErrEdgeUnresolved)
	}

	w = edgeWings{e: e, p: p, en: en, enn: enn, pn: pn, pnn: pnn, f1: f1, f2: f2, a: a, b: b, c: c, d: d}

	return w, nil
}

// FlipEdge swaps an edge shared by two triangles for the other diagonal of
// the quadrilateral they form. Both half-edges and both faces are reused;
// the four outer edges keep their pairs, and both faces' attributes are
// recomputed. Behavior on geometrically degenerate (flat) configurations is
// unspecified; only structural preconditions are checked, before any
// mutation.
func (m *Mesh) FlipEdge(e *Edge) error {
	// 1. Resolve and validate the whole neighborhood up front.
	w, err := m.resolveWings(e)
	if err != nil {
		return err
	}

	// 2. Rewire the diagonal: e becomes d→c, its pair becomes c→d.
	w.e.SetOrigin(PtrTo(w.d))
	w.p.SetOrigin(PtrTo(w.c))

	// 3. New boundary loops: (a→d, d→c, c→a) and (d→b, b→c, c→d).
	w.pn.SetNext(PtrTo(w.e))
	w.e.SetNext(PtrTo(w.enn))
	w.enn.SetNext(PtrTo(w.pn))
	w.pn.SetFace(PtrTo(w.f1))
	w.e.SetFace(PtrTo(w.f1))
	w.enn.SetFace(PtrTo(w.f1))
	w.f1.SetEdge(PtrTo(w.e))

	w.en.SetNext(PtrTo(w.p))
	w.p.SetNext(PtrTo(w.pnn))
	w.pnn.SetNext(PtrTo(w.en))
	w.en.SetFace(PtrTo(w.f2))
	w.p.SetFace(PtrTo(w.f2))
	w.pnn.SetFace(PtrTo(w.f2))
	w.f2.SetEdge(PtrTo(w.p))

	// 4. Every corner must point at one of its outgoing edges.
	w.a.SetEdge(PtrTo(w.pn))
	w.b.SetEdge(PtrTo(w.en))
	w.c.SetEdge(PtrTo(w.p))
	w.d.SetEdge(PtrTo(w.e))

	// 5. Both boundaries changed.
	if err := w.f1.ComputeAttrs(); err != nil {
		return fmt.Errorf("FlipEdge: %w", err)
	}
	if err := w.f2.ComputeAttrs(); err != nil {
		return fmt.Errorf("FlipEdge: %w", err)
	}

	return nil
}

// SplitEdge inserts a new vertex at parameter t along e (position
// origin + t·(target−origin)) and replaces each of the two incident
// triangles with two triangles sharing the new vertex. Both half-edges of e
// and both faces are reused; net effect: +1 vertex, +6 half-edges, +2 faces.
// Returns the new vertex. Degenerate t values are geometric, not
// topological, and are not validated.
func (m *Mesh) SplitEdge(e *Edge, t float64) (*Vert, error) {
	// 1. Resolve and validate the whole neighborhood up front.
	w, err := m.resolveWings(e)
	if err != nil {
		return nil, err
	}

	// 2. The new vertex sits at parameter t along a→b.
	pos := r3.Add(w.a.Pos(), r3.Scale(t, r3.Sub(w.b.Pos(), w.a.Pos())))
	mid := NewVert(m.NewVertID(), pos)

	// 3. Six new half-edges radiate around mid: its pairs with the reused
	// e (now a→mid) and p (now b→mid), plus both halves of the two
	// diagonals mid—c and mid—d.
	mc := NewEdgeWithOrigin(m.NewEdgeID(), PtrTo(mid))
	cm := NewEdgeWithOrigin(m.NewEdgeID(), PtrTo(w.c))
	mb := NewEdgeWithOrigin(m.NewEdgeID(), PtrTo(mid))
	ma := NewEdgeWithOrigin(m.NewEdgeID(), PtrTo(mid))
	md := NewEdgeWithOrigin(m.NewEdgeID(), PtrTo(mid))
	dm := NewEdgeWithOrigin(m.NewEdgeID(), PtrTo(w.d))

	// 4. Four boundary loops. f1 and f2 are reused on the two triangles
	// keeping e and p; f3 and f4 are fresh.
	f3 := NewFaceWithEdge(m.NewFaceID(), PtrTo(mb))
	f4 := NewFaceWithEdge(m.NewFaceID(), PtrTo(ma))

	// (a→mid, mid→c, c→a)
	w.e.SetNext(PtrTo(mc))
	mc.SetNext(PtrTo(w.enn))
	w.enn.SetNext(PtrTo(w.e))
	mc.SetFace(PtrTo(w.f1))
	w.f1.SetEdge(PtrTo(w.e))

	// (mid→b, b→c, c→mid)
	mb.SetNext(PtrTo(w.en))
	w.en.SetNext(PtrTo(cm))
	cm.SetNext(PtrTo(mb))
	mb.SetFace(PtrTo(f3))
	w.en.SetFace(PtrTo(f3))
	cm.SetFace(PtrTo(f3))

	// (b→mid, mid→d, d→b)
	w.p.SetNext(PtrTo(md))
	md.SetNext(PtrTo(w.pnn))
	w.pnn.SetNext(PtrTo(w.p))
	md.SetFace(PtrTo(w.f2))
	w.f2.SetEdge(PtrTo(w.p))

	// (mid→a, a→d, d→mid)
	ma.SetNext(PtrTo(w.pn))
	w.pn.SetNext(PtrTo(dm))
	dm.SetNext(PtrTo(ma))
	ma.SetFace(PtrTo(f4))
	w.pn.SetFace(PtrTo(f4))
	dm.SetFace(PtrTo(f4))

	// 5. Pairs: the outer edges keep theirs; the split edge and the two
	// diagonals pair around mid.
	w.e.SetPair(PtrTo(ma))
	ma.SetPair(PtrTo(w.e))
	w.p.SetPair(PtrTo(mb))
	mb.SetPair(PtrTo(w.p))
	mc.SetPair(PtrTo(cm))
	cm.SetPair(PtrTo(mc))
	md.SetPair(PtrTo(dm))
	dm.SetPair(PtrTo(md))

	// 6. Vertex incident-edge pointers.
	mid.SetEdge(PtrTo(mc))
	w.a.SetEdge(PtrTo(w.e))
	w.b.SetEdge(PtrTo(w.p))
	w.c.SetEdge(PtrTo(cm))
	w.d.SetEdge(PtrTo(dm))

	// 7. Register and refresh attributes on all four faces.
	m.AddVert(mid)
	m.AddEdges(mc, cm, mb, ma, md, dm)
	if err := m.AddFace(f3); err != nil {
		return nil, fmt.Errorf("SplitEdge: %w", err)
	}
	if err := m.AddFace(f4); err != nil {
		return nil, fmt.Errorf("SplitEdge: %w", err)
	}
	if err := w.f1.ComputeAttrs(); err != nil {
		return nil, fmt.Errorf("SplitEdge: %w", err)
	}
	if err := w.f2.ComputeAttrs(); err != nil {
		return nil, fmt.Errorf("SplitEdge: %w", err)
	}

	return mid, nil
}
