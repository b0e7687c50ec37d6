package core

import "errors"

// Sentinel errors for mesh operations. Branch with errors.Is; implementations
// attach call-site context via %w wrapping and never panic at runtime.
var (
	// ErrNilEntity indicates a nil vertex, edge, or face argument.
	ErrNilEntity = errors.New("core: nil entity")

	// ErrStaleEntity indicates the argument entity has been unregistered
	// from its mesh and can no longer be operated on.
	ErrStaleEntity = errors.New("core: entity is no longer registered")

	// ErrFaceNotTriangle indicates a face whose boundary does not consist of
	// exactly 3 resolvable edges/vertices. Every topology edit here requires
	// triangular faces.
	ErrFaceNotTriangle = errors.New("core: face must have exactly 3 boundary edges")

	// ErrVertValence indicates RemoveVert was invoked on a vertex whose
	// valence is not exactly 3.
	ErrVertValence = errors.New("core: vertex must have exactly 3 incident edges")

	// ErrNoHorizon indicates AttachPoint found no horizon edges: the removal
	// set is empty, covers the whole surface, or is otherwise degenerate.
	ErrNoHorizon = errors.New("core: no horizon edges found")

	// ErrHorizonBroken indicates the horizon edges do not form a single
	// connected closed loop around the removal set.
	ErrHorizonBroken = errors.New("core: horizon does not form a connected loop")

	// ErrEdgeUnresolved indicates an edge's origin or target link failed to
	// resolve while building the pairing key map.
	ErrEdgeUnresolved = errors.New("core: edge endpoint could not be resolved")

	// ErrUnpairedEdge indicates no reverse-direction edge exists for some
	// edge: the mesh has an open boundary, unsupported by pair reconstruction.
	ErrUnpairedEdge = errors.New("core: no pair edge found")

	// ErrPairMismatch indicates an existing pair link does not agree with the
	// reverse (target, origin) lookup.
	ErrPairMismatch = errors.New("core: pair links do not match")

	// ErrDanglingRef indicates a link resolved to an entity that is not in
	// the mesh tables (reported by Validate).
	ErrDanglingRef = errors.New("core: reference resolves outside the mesh")

	// ErrBrokenLoop indicates walking next three times from a boundary edge
	// did not return to it (reported by Validate).
	ErrBrokenLoop = errors.New("core: face boundary loop does not close")
)
