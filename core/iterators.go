package core

import "iter"

// Adjacency traversals. Each producer is a lazy, finite, single-pass walk
// over the live topology; ranging over the same Seq again starts a fresh
// walk. Two failure modes are distinguished on every step:
//
//   - a broken link at the cursor position (the link needed to keep walking)
//     terminates the walk early rather than failing;
//   - a broken link at the yield position only skips that element.
//
// "Around an anchor" walks hold the starting half-edge and a moving cursor,
// re-resolve the cursor's pair/next link on each step, and compare the
// result against the start to detect one full revolution.

// AdjacentVerts yields the neighboring vertices of v, one full revolution
// in clockwise order.
func (v *Vert) AdjacentVerts() iter.Seq[*Vert] {
	return func(yield func(*Vert) bool) {
		startPtr := v.edge
		cur, ok := startPtr.Resolve()
		if !ok {
			return
		}
		for {
			pair, ok := cur.Pair()
			if !ok {
				return
			}
			// The neighbor along cur is the origin of its twin.
			if o, ok := pair.Origin(); ok {
				if !yield(o) {
					return
				}
			}
			next, start, ok := MergeResolve(pair.NextPtr(), startPtr)
			if !ok || next == start {
				return
			}
			cur = next
		}
	}
}

// AdjacentEdges yields the outgoing half-edges incident to v, one full
// revolution in clockwise order.
func (v *Vert) AdjacentEdges() iter.Seq[*Edge] {
	return func(yield func(*Edge) bool) {
		startPtr := v.edge
		cur, ok := startPtr.Resolve()
		if !ok {
			return
		}
		if !yield(cur) {
			return
		}
		for {
			pair, ok := cur.Pair()
			if !ok {
				return
			}
			next, start, ok := MergeResolve(pair.NextPtr(), startPtr)
			if !ok || next == start {
				return
			}
			if !yield(next) {
				return
			}
			cur = next
		}
	}
}

// AdjacentFaces yields the faces incident to v, one full revolution in
// clockwise order.
func (v *Vert) AdjacentFaces() iter.Seq[*Face] {
	return func(yield func(*Face) bool) {
		startPtr := v.edge
		cur, ok := startPtr.Resolve()
		if !ok {
			return
		}
		for {
			if f, ok := cur.Face(); ok {
				if !yield(f) {
					return
				}
			}
			pair, ok := cur.Pair()
			if !ok {
				return
			}
			next, start, ok := MergeResolve(pair.NextPtr(), startPtr)
			if !ok || next == start {
				return
			}
			cur = next
		}
	}
}

// AdjacentVerts yields the source of the half-edge, then its target.
func (e *Edge) AdjacentVerts() iter.Seq[*Vert] {
	return func(yield func(*Vert) bool) {
		if o, ok := e.Origin(); ok {
			if !yield(o) {
				return
			}
		}
		n, ok := e.Next()
		if !ok {
			return
		}
		if t, ok := n.Origin(); ok {
			yield(t)
		}
	}
}

// AdjacentEdges yields the half-edges around the source vertex first
// (clockwise), then the half-edges around the target vertex (clockwise).
// Either side is silently absent if its anchor does not resolve.
func (e *Edge) AdjacentEdges() iter.Seq[*Edge] {
	return func(yield func(*Edge) bool) {
		if o, ok := e.Origin(); ok {
			for adj := range o.AdjacentEdges() {
				if !yield(adj) {
					return
				}
			}
		}
		if t, ok := e.Target(); ok {
			for adj := range t.AdjacentEdges() {
				if !yield(adj) {
					return
				}
			}
		}
	}
}

// AdjacentFaces yields the half-edge's own face, then its pair's face.
func (e *Edge) AdjacentFaces() iter.Seq[*Face] {
	return func(yield func(*Face) bool) {
		if f, ok := e.Face(); ok {
			if !yield(f) {
				return
			}
		}
		p, ok := e.Pair()
		if !ok {
			return
		}
		if f, ok := p.Face(); ok {
			yield(f)
		}
	}
}

// AdjacentVerts yields the boundary vertices of f in counterclockwise order.
func (f *Face) AdjacentVerts() iter.Seq[*Vert] {
	return func(yield func(*Vert) bool) {
		startPtr := f.edge
		cur, ok := startPtr.Resolve()
		if !ok {
			return
		}
		if o, ok := cur.Origin(); ok {
			if !yield(o) {
				return
			}
		}
		for {
			next, start, ok := MergeResolve(cur.NextPtr(), startPtr)
			if !ok || next == start {
				return
			}
			if o, ok := next.Origin(); ok {
				if !yield(o) {
					return
				}
			}
			cur = next
		}
	}
}

// AdjacentEdges yields the boundary half-edges of f in counterclockwise
// order.
func (f *Face) AdjacentEdges() iter.Seq[*Edge] {
	return func(yield func(*Edge) bool) {
		startPtr := f.edge
		cur, ok := startPtr.Resolve()
		if !ok {
			return
		}
		if !yield(cur) {
			return
		}
		for {
			next, start, ok := MergeResolve(cur.NextPtr(), startPtr)
			if !ok || next == start {
				return
			}
			if !yield(next) {
				return
			}
			cur = next
		}
	}
}

// AdjacentFaces yields the faces across each boundary edge's pair in
// counterclockwise order. A boundary edge whose pair does not resolve
// terminates the walk.
func (f *Face) AdjacentFaces() iter.Seq[*Face] {
	return func(yield func(*Face) bool) {
		startPtr := f.edge
		cur, ok := startPtr.Resolve()
		if !ok {
			return
		}
		for {
			pair, ok := cur.Pair()
			if !ok {
				return
			}
			if across, ok := pair.Face(); ok {
				if !yield(across) {
					return
				}
			}
			next, start, ok := MergeResolve(cur.NextPtr(), startPtr)
			if !ok || next == start {
				return
			}
			cur = next
		}
	}
}
