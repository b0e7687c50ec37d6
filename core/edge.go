package core

// EdgeID identifies a half-edge within one Mesh instance. IDs are
// mesh-local, allocated monotonically, and never reused.
type EdgeID uint32

// Edge is a directed half-edge owned by exactly one face. It links to its
// origin vertex, the next half-edge in its face's boundary loop, its
// oppositely-directed pair on the neighboring face, and its owning face.
type Edge struct {
	id     EdgeID
	next   EdgePtr
	pair   EdgePtr
	origin VertPtr
	face   FacePtr
	alive  bool
}

// NewEdge returns a half-edge with the given identity and all links null.
func NewEdge(id EdgeID) *Edge {
	return &Edge{id: id, alive: true}
}

// NewEdgeWithOrigin returns a half-edge already linked to its origin vertex.
func NewEdgeWithOrigin(id EdgeID, origin VertPtr) *Edge {
	return &Edge{id: id, origin: origin, alive: true}
}

func (e *Edge) live() bool { return e.alive }

// ID returns the half-edge identity.
func (e *Edge) ID() EdgeID { return e.id }

// Setters install links unconditionally, with no validation; correctness is
// the calling algorithm's responsibility.

// SetNext installs the boundary-loop successor link.
func (e *Edge) SetNext(next EdgePtr) { e.next = next }

// SetPair installs the twin link.
func (e *Edge) SetPair(pair EdgePtr) { e.pair = pair }

// SetOrigin installs the origin-vertex link.
func (e *Edge) SetOrigin(origin VertPtr) { e.origin = origin }

// SetFace installs the owning-face link.
func (e *Edge) SetFace(face FacePtr) { e.face = face }

// Handle accessors return links without resolving them.

// NextPtr returns the successor handle.
func (e *Edge) NextPtr() EdgePtr { return e.next }

// PairPtr returns the twin handle.
func (e *Edge) PairPtr() EdgePtr { return e.pair }

// OriginPtr returns the origin handle.
func (e *Edge) OriginPtr() VertPtr { return e.origin }

// FacePtr returns the owning-face handle.
func (e *Edge) FacePtr() FacePtr { return e.face }

// Next resolves the next half-edge in the boundary loop.
func (e *Edge) Next() (*Edge, bool) { return e.next.Resolve() }

// Pair resolves the paired half-edge.
func (e *Edge) Pair() (*Edge, bool) { return e.pair.Resolve() }

// Origin resolves the origin vertex.
func (e *Edge) Origin() (*Vert, bool) { return e.origin.Resolve() }

// Face resolves the owning face.
func (e *Edge) Face() (*Face, bool) { return e.face.Resolve() }

// NextNext resolves next.next, the third edge of a triangular boundary.
func (e *Edge) NextNext() (*Edge, bool) {
	n, ok := e.Next()
	if !ok {
		return nil, false
	}

	return n.Next()
}

// NextPair resolves next.pair.
func (e *Edge) NextPair() (*Edge, bool) {
	n, ok := e.Next()
	if !ok {
		return nil, false
	}

	return n.Pair()
}

// Target resolves the vertex this half-edge points at (next.origin).
func (e *Edge) Target() (*Vert, bool) {
	n, ok := e.Next()
	if !ok {
		return nil, false
	}

	return n.Origin()
}

// PairFace resolves the face on the other side of this half-edge
// (pair.face). Note that face is not connected to this edge but to its pair.
func (e *Edge) PairFace() (*Face, bool) {
	p, ok := e.Pair()
	if !ok {
		return nil, false
	}

	return p.Face()
}

// IsValid is a shallow check that the edge's own links resolve, tested in
// order of subjective likeliness of being invalid.
func (e *Edge) IsValid() bool {
	return e.pair.IsValid() && e.face.IsValid() && e.origin.IsValid() && e.next.IsValid()
}
