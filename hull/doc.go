// Package hull computes the convex hull of a 3D point cloud as a closed,
// triangulated half-edge mesh.
//
// Build follows the incremental strategy: seed a tetrahedron from extreme
// points, then fold every remaining point in. A point inside the current hull
// is skipped; a point outside gets its visible faces flood-filled across
// face adjacency and replaced through the mesh's attach operation, which
// removes the visible region and stitches a fan around its horizon.
//
// The result always satisfies core.Validate and has outward face normals, so
// no face can see any input point.
//
// Errors:
//
//	ErrTooFewPoints - fewer than 4 input points.
//	ErrDegenerate   - all points coincident, collinear or coplanar.
//	ctx errors      - wrapped context cancellation (WithContext).
package hull
