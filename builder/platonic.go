package builder

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tholvien/hemesh/core"
)

const (
	methodTetrahedron = "Tetrahedron"
	methodOctahedron  = "Octahedron"
	methodIcosahedron = "Icosahedron"
)

// Tetrahedron builds the smallest closed triangulated surface from four
// points: p1 the apex, p2/p3/p4 the base seen left, right, rear from outside.
// With that arrangement every face winds counterclockwise seen from outside,
// so the computed normals point outward.
//
// Result: 4 vertices, 12 half-edges, 4 faces.
func Tetrahedron(p1, p2, p3, p4 r3.Vec) (*core.Mesh, error) {
	m := core.NewMesh()

	v1 := core.NewVert(m.NewVertID(), p1)
	v2 := core.NewVert(m.NewVertID(), p2)
	v3 := core.NewVert(m.NewVertID(), p3)
	v4 := core.NewVert(m.NewVertID(), p4)

	for _, w := range [][3]*core.Vert{
		{v1, v2, v3},
		{v2, v1, v4},
		{v3, v4, v1},
		{v4, v3, v2},
	} {
		tri, err := m.MakeTriangle(w[0], w[1], w[2])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodTetrahedron, err)
		}
		m.AddTriangle(tri)
	}

	m.AddVerts(v1, v2, v3, v4)

	if err := core.ConnectPairs(m); err != nil {
		return nil, fmt.Errorf("%s: %w", methodTetrahedron, err)
	}

	return m, nil
}

// Octahedron builds a six-point bipyramid: p1 the top apex, p2..p5 the
// equator (left front, right front, left back, right back), p6 the bottom
// apex. Faces wind counterclockwise seen from outside.
//
// Result: 6 vertices, 24 half-edges, 8 faces.
func Octahedron(p1, p2, p3, p4, p5, p6 r3.Vec) (*core.Mesh, error) {
	m := core.NewMesh()

	v1 := core.NewVert(m.NewVertID(), p1)
	v2 := core.NewVert(m.NewVertID(), p2)
	v3 := core.NewVert(m.NewVertID(), p3)
	v4 := core.NewVert(m.NewVertID(), p4)
	v5 := core.NewVert(m.NewVertID(), p5)
	v6 := core.NewVert(m.NewVertID(), p6)

	for _, w := range [][3]*core.Vert{
		{v1, v2, v3},
		{v1, v4, v2},
		{v1, v3, v5},
		{v1, v5, v4},
		{v6, v3, v2},
		{v6, v2, v4},
		{v6, v5, v3},
		{v6, v4, v5},
	} {
		tri, err := m.MakeTriangle(w[0], w[1], w[2])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodOctahedron, err)
		}
		m.AddTriangle(tri)
	}

	m.AddVerts(v1, v2, v3, v4, v5, v6)

	if err := core.ConnectPairs(m); err != nil {
		return nil, fmt.Errorf("%s: %w", methodOctahedron, err)
	}

	return m, nil
}

// Icosahedron builds the regular 20-face golden-ratio shell with every vertex
// at distance radius from the origin. Returns ErrBadDimension if radius is
// not positive.
//
// Result: 12 vertices, 60 half-edges, 20 faces.
func Icosahedron(radius float64) (*core.Mesh, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%s: radius %v: %w", methodIcosahedron, radius, ErrBadDimension)
	}

	// Corners of three mutually orthogonal golden rectangles, pushed out to
	// the requested radius.
	t := (1 + math.Sqrt(5)) / 2
	points := []r3.Vec{
		{X: -1, Y: t, Z: 0}, {X: 1, Y: t, Z: 0}, {X: -1, Y: -t, Z: 0}, {X: 1, Y: -t, Z: 0},
		{X: 0, Y: -1, Z: t}, {X: 0, Y: 1, Z: t}, {X: 0, Y: -1, Z: -t}, {X: 0, Y: 1, Z: -t},
		{X: t, Y: 0, Z: -1}, {X: t, Y: 0, Z: 1}, {X: -t, Y: 0, Z: -1}, {X: -t, Y: 0, Z: 1},
	}
	for i, p := range points {
		points[i] = r3.Scale(radius, r3.Unit(p))
	}

	tris := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	m, err := FromIndexedFaces(points, tris)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodIcosahedron, err)
	}

	return m, nil
}
