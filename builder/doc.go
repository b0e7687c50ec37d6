// Package builder provides construction entry points for closed,
// triangulated meshes on top of core: canonical solids (Tetrahedron,
// Octahedron, Icosahedron), a parametric UVSphere, and FromIndexedFaces for
// arbitrary point clouds with a triangle index list.
//
// Every constructor assembles pair-less triangles through the core factory
// API and finishes with core.ConnectPairs, so non-closed input surfaces as
// core.ErrUnpairedEdge rather than a silently broken mesh.
//
// Determinism: vertex, edge, and face identities follow the construction
// order exactly; the same input always yields the same mesh.
//
// Errors:
//
//	ErrIndexRange   - a triangle references a point index out of range.
//	ErrBadDimension - a size parameter (radius, segments, rings) is out of range.
//	core sentinels  - wrapped construction failures (ErrUnpairedEdge, ...).
package builder
