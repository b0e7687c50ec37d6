package core_test

import (
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tholvien/hemesh/core"
)

// testingT lets the fixture builders serve both tests and benchmarks.
type testingT interface {
	require.TestingT
	Helper()
}

// tetraPts returns apex (0,0,1) and base (-1,-1,0), (1,-1,0), (0,1,0).
func tetraPts() [4]r3.Vec {
	return [4]r3.Vec{
		{X: 0, Y: 0, Z: 1},
		{X: -1, Y: -1, Z: 0},
		{X: 1, Y: -1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
}

// buildTetra assembles a closed tetrahedron with outward-facing normals:
// triangles (1,2,3), (2,1,4), (3,4,1), (4,3,2) over the tetraPts corners.
func buildTetra(t testingT) (*core.Mesh, [4]*core.Vert) {
	t.Helper()

	m := core.NewMesh()
	pts := tetraPts()
	var vs [4]*core.Vert
	for i, p := range pts {
		vs[i] = core.NewVert(m.NewVertID(), p)
	}

	for _, idx := range [][3]int{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}, {3, 2, 1}} {
		tri, err := m.MakeTriangle(vs[idx[0]], vs[idx[1]], vs[idx[2]])
		require.NoError(t, err)
		m.AddTriangle(tri)
	}
	m.AddVerts(vs[:]...)
	require.NoError(t, core.ConnectPairs(m))

	return m, vs
}

// buildOcta assembles a closed square bipyramid: top apex, four equatorial
// vertices, bottom apex, stitched with the canonical 8-triangle sequence.
func buildOcta(t testingT) (*core.Mesh, [6]*core.Vert) {
	t.Helper()

	m := core.NewMesh()
	pts := [6]r3.Vec{
		{X: 0, Y: 0, Z: 1},
		{X: -1, Y: -1, Z: 0},
		{X: 1, Y: -1, Z: 0},
		{X: -1, Y: 1, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: -1},
	}
	var vs [6]*core.Vert
	for i, p := range pts {
		vs[i] = core.NewVert(m.NewVertID(), p)
	}

	seq := [][3]int{
		{0, 1, 2}, {0, 3, 1}, {0, 2, 4}, {0, 4, 3},
		{5, 2, 1}, {5, 1, 3}, {5, 4, 2}, {5, 3, 4},
	}
	for _, idx := range seq {
		tri, err := m.MakeTriangle(vs[idx[0]], vs[idx[1]], vs[idx[2]])
		require.NoError(t, err)
		m.AddTriangle(tri)
	}
	m.AddVerts(vs[:]...)
	require.NoError(t, core.ConnectPairs(m))

	return m, vs
}

// undirectedEdges returns EdgeCount/2, the undirected edge count.
func undirectedEdges(m *core.Mesh) int {
	return m.EdgeCount() / 2
}

// eulerCharacteristic returns V - E + F with E undirected; 2 for any closed
// surface of sphere topology.
func eulerCharacteristic(m *core.Mesh) int {
	return m.VertCount() - undirectedEdges(m) + m.FaceCount()
}
