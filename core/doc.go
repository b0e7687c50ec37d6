// Package core defines the half-edge mesh primitives: Vert, Edge, Face,
// the weak handle type Ptr that links them, the Mesh container that owns
// them, adjacency traversals, and the topology-editing algorithms.
//
// The connectivity graph is inherently cyclic: boundary loops, mutual edge
// pairing, and cross-references among all three entity kinds. The Mesh tables
// are the sole owners; every inter-entity link is a Ptr, a nullable weak
// handle that must be resolved before use and fails to resolve once its
// target has been unregistered by a topology edit.
//
// All mutating operations assume a closed, triangulated 2-manifold surface
// and a single writer. The Mesh performs no internal locking; guard it with
// one exclusive lock per mutating call if shared across goroutines —
// individual edits touch interdependent neighboring entities and cannot be
// interleaved at finer granularity.
//
// Errors:
//
//	ErrNilEntity       - a nil entity was passed to an operation.
//	ErrStaleEntity     - the entity is no longer registered in the mesh.
//	ErrFaceNotTriangle - a face does not have exactly 3 boundary edges.
//	ErrVertValence     - a vertex does not have exactly 3 incident edges.
//	ErrNoHorizon       - a removal set produced no horizon edges.
//	ErrHorizonBroken   - the horizon does not form one closed loop.
//	ErrEdgeUnresolved  - an edge endpoint link failed to resolve.
//	ErrUnpairedEdge    - no reverse edge exists; the mesh is not closed.
//	ErrPairMismatch    - an existing pair link disagrees with the reverse lookup.
//	ErrDanglingRef     - a link resolves outside the mesh tables.
//	ErrBrokenLoop      - a face boundary does not close in 3 next-steps.
package core
