package core

import "gonum.org/v1/gonum/spatial/r3"

// VertID identifies a vertex within one Mesh instance. IDs are mesh-local,
// allocated monotonically, and never reused for the mesh's lifetime.
type VertID uint32

// Vert is a mesh vertex: a position plus one outgoing incident half-edge.
// All structure of the mesh revolves around vertex positions and their
// connectivity (faces are just an abstraction), so every vertex carries a
// concrete position from construction.
type Vert struct {
	id    VertID
	pos   r3.Vec
	edge  EdgePtr
	alive bool
}

// NewVert returns a vertex with the given identity and position and a null
// edge link.
func NewVert(id VertID, pos r3.Vec) *Vert {
	return &Vert{id: id, pos: pos, alive: true}
}

// NewVertWithEdge returns a vertex already linked to an incident edge.
func NewVertWithEdge(id VertID, pos r3.Vec, edge EdgePtr) *Vert {
	return &Vert{id: id, pos: pos, edge: edge, alive: true}
}

func (v *Vert) live() bool { return v.alive }

// ID returns the vertex identity.
func (v *Vert) ID() VertID { return v.id }

// Pos returns the vertex position.
func (v *Vert) Pos() r3.Vec { return v.pos }

// MoveTo replaces the vertex position. Attributes of incident faces are
// stale afterwards; recompute them via Face.ComputeAttrs.
func (v *Vert) MoveTo(pos r3.Vec) { v.pos = pos }

// SetEdge installs the outgoing-edge link. Unconditional replacement with no
// validation; correctness is the calling algorithm's responsibility.
func (v *Vert) SetEdge(edge EdgePtr) { v.edge = edge }

// EdgePtr returns the outgoing-edge handle without resolving it.
func (v *Vert) EdgePtr() EdgePtr { return v.edge }

// Edge resolves the outgoing incident edge.
func (v *Vert) Edge() (*Edge, bool) { return v.edge.Resolve() }

// IsValid is a shallow check that the vertex's own link resolves. It does
// not imply the surrounding mesh is consistent.
func (v *Vert) IsValid() bool { return v.edge.IsValid() }
