// Package hemesh is an in-memory half-edge mesh: a connectivity structure
// for closed, triangulated 2-manifold surfaces with O(1) local navigation
// and topology-preserving local edits.
//
// 🚀 What is hemesh?
//
//	A small, deterministic library that brings together:
//		• Core entities: vertices, half-edges and faces linked by weak handles
//		• Adjacency walks: nine lazy traversals over the one-ring and boundary loops
//		• Topology edits: face subdivision, horizon stitching, vertex collapse,
//		  edge flip and parametric edge split
//		• Pair reconstruction: closes a freshly assembled mesh and verifies it
//		• Builders: tetrahedron, octahedron, icosahedron, UV sphere, indexed faces
//		• Hull: incremental convex hull built on horizon stitching
//
// ✨ Why choose hemesh?
//
//   - Explicit invariants – pair involution and 3-edge boundary loops are
//     validated, never assumed
//   - Recoverable errors – structural preconditions surface as sentinel
//     errors, not panics
//   - Pure Go – vector math comes from gonum's spatial/r3, nothing else
//
// Under the hood, everything is organized under three subpackages:
//
//	core/    — Vert, Edge, Face, the Mesh container, traversals & topology edits
//	builder/ — construction entry points for canonical closed meshes
//	hull/    — incremental convex hull over core's horizon stitching
//
// Quick ASCII example:
//
//	      v3
//	     /│\
//	    / │ \
//	  v1──┼──v2     a tetrahedron: 4 vertices, 12 half-edges, 4 faces,
//	    \ │ /       every half-edge paired with its opposite twin.
//	     \│/
//	      v4
//
// The mesh is single-writer by design: wrap mutating calls in one exclusive
// lock if you share a Mesh across goroutines.
//
//	go get github.com/tholvien/hemesh
package hemesh
