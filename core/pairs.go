package core

import "fmt"

// Pair reconstruction. Construction code assembles triangles whose boundary
// loops exist but whose pair links do not; ConnectPairs derives the pair
// links for such a mesh in one batch, and VerifyPairs checks an already
// paired mesh for consistency. Both assume a closed surface: every directed
// edge A→B must have a reverse edge B→A on the neighboring face.

// edgeKey identifies a directed edge by its endpoint vertex identities.
type edgeKey struct {
	origin VertID
	target VertID
}

// forwardKey builds the (origin, target) key of e, failing if either
// endpoint link cannot be resolved.
func forwardKey(e *Edge) (edgeKey, bool) {
	o, ok := e.Origin()
	if !ok {
		return edgeKey{}, false
	}
	t, ok := e.Target()
	if !ok {
		return edgeKey{}, false
	}

	return edgeKey{origin: o.id, target: t.id}, true
}

// ConnectPairs establishes pair links on a fully assembled, pair-less mesh.
// Two-stage algorithm: first map every (origin, target) pair to its owning
// edge, then look up the reverse key for every edge still lacking a pair and
// link both directions at once.
//
// Returns ErrEdgeUnresolved if any edge's endpoints cannot be resolved and
// ErrUnpairedEdge if a reverse edge is missing, which means the mesh has an
// open boundary and cannot be closed by this reconstruction.
func ConnectPairs(m *Mesh) error {
	if m == nil {
		return ErrNilEntity
	}

	// 1. Collect all edge A→B relationships.
	hash := make(map[edgeKey]*Edge, len(m.edges))
	for _, e := range m.edges {
		key, ok := forwardKey(e)
		if !ok {
			return fmt.Errorf("ConnectPairs: edge %d: %w", e.id, ErrEdgeUnresolved)
		}
		hash[key] = e
	}

	// 2. For each edge without a valid pair, find the edge B→A. This skips
	// half the edges, because every hit links two pairs at once.
	for _, e := range m.edges {
		if e.pair.IsValid() {
			continue
		}
		key, ok := forwardKey(e)
		if !ok {
			return fmt.Errorf("ConnectPairs: edge %d: %w", e.id, ErrEdgeUnresolved)
		}
		pair, ok := hash[edgeKey{origin: key.target, target: key.origin}]
		if !ok {
			return fmt.Errorf("ConnectPairs: edge %d: %w", e.id, ErrUnpairedEdge)
		}
		e.SetPair(PtrTo(pair))
		pair.SetPair(PtrTo(e))
	}

	return nil
}

// VerifyPairs repeats the key construction of ConnectPairs and asserts that
// every existing pair link agrees with the reverse lookup in both
// directions. Returns ErrEdgeUnresolved, ErrUnpairedEdge, or
// ErrPairMismatch accordingly; nil means the pairing is consistent.
func VerifyPairs(m *Mesh) error {
	if m == nil {
		return ErrNilEntity
	}

	hash := make(map[edgeKey]*Edge, len(m.edges))
	for _, e := range m.edges {
		key, ok := forwardKey(e)
		if !ok {
			return fmt.Errorf("VerifyPairs: edge %d: %w", e.id, ErrEdgeUnresolved)
		}
		hash[key] = e
	}

	for _, e := range m.edges {
		key, ok := forwardKey(e)
		if !ok {
			return fmt.Errorf("VerifyPairs: edge %d: %w", e.id, ErrEdgeUnresolved)
		}
		pair, ok := hash[edgeKey{origin: key.target, target: key.origin}]
		if !ok {
			return fmt.Errorf("VerifyPairs: edge %d: %w", e.id, ErrUnpairedEdge)
		}
		ep, ok := e.Pair()
		if !ok || ep != pair {
			return fmt.Errorf("VerifyPairs: edge %d: %w", e.id, ErrPairMismatch)
		}
		pp, ok := pair.Pair()
		if !ok || pp != e {
			return fmt.Errorf("VerifyPairs: edge %d: %w", pair.id, ErrPairMismatch)
		}
	}

	return nil
}
