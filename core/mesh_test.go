package core_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tholvien/hemesh/core"
)

func TestNewMesh_Empty(t *testing.T) {
	m := core.NewMesh()
	assert.Zero(t, m.VertCount())
	assert.Zero(t, m.EdgeCount())
	assert.Zero(t, m.FaceCount())
}

func TestIDs_StartAtOneAndNeverRepeat(t *testing.T) {
	m := core.NewMesh()
	assert.Equal(t, core.VertID(1), m.NewVertID())
	assert.Equal(t, core.VertID(2), m.NewVertID())
	assert.Equal(t, core.EdgeID(1), m.NewEdgeID())
	assert.Equal(t, core.FaceID(1), m.NewFaceID())
	assert.Equal(t, core.FaceID(2), m.NewFaceID())
}

func TestMakeTriangle_UnregisteredAndUnpaired(t *testing.T) {
	m := core.NewMesh()
	v1 := core.NewVert(m.NewVertID(), r3.Vec{X: 0, Y: 0, Z: 0})
	v2 := core.NewVert(m.NewVertID(), r3.Vec{X: 1, Y: 0, Z: 0})
	v3 := core.NewVert(m.NewVertID(), r3.Vec{X: 0, Y: 1, Z: 0})

	tri, err := m.MakeTriangle(v1, v2, v3)
	require.NoError(t, err)

	// Nothing is registered yet; registration is a separate explicit step.
	assert.Zero(t, m.VertCount())
	assert.Zero(t, m.EdgeCount())
	assert.Zero(t, m.FaceCount())

	// The boundary loop is wired, the pair links are not.
	n, ok := tri.E1.Next()
	require.True(t, ok)
	assert.Same(t, tri.E2, n)
	assert.False(t, tri.E1.PairPtr().IsValid())

	m.AddTriangle(tri)
	m.AddVerts(v1, v2, v3)
	assert.Equal(t, 3, m.VertCount())
	assert.Equal(t, 3, m.EdgeCount())
	assert.Equal(t, 1, m.FaceCount())
}

func TestMakeTriangle_NilVert(t *testing.T) {
	m := core.NewMesh()
	v := core.NewVert(m.NewVertID(), r3.Vec{})
	_, err := m.MakeTriangle(v, nil, v)
	assert.ErrorIs(t, err, core.ErrNilEntity)
}

func TestTetrahedron_CountsAndInvariants(t *testing.T) {
	m, _ := buildTetra(t)

	assert.Equal(t, 4, m.VertCount())
	assert.Equal(t, 12, m.EdgeCount())
	assert.Equal(t, 4, m.FaceCount())
	assert.Equal(t, 2, eulerCharacteristic(m))

	require.NoError(t, core.VerifyPairs(m))
	require.NoError(t, core.Validate(m))

	// Pair involution over every registered edge.
	for _, e := range m.Edges() {
		p, ok := e.Pair()
		require.True(t, ok)
		pp, ok := p.Pair()
		require.True(t, ok)
		assert.Same(t, e, pp)
	}
}

func TestTetrahedron_OutwardNormals(t *testing.T) {
	m, vs := buildTetra(t)

	// The centroid of all four corners lies inside; every face normal must
	// point away from it.
	var sum r3.Vec
	for _, v := range vs {
		sum = r3.Add(sum, v.Pos())
	}
	center := r3.Scale(0.25, sum)

	for _, f := range m.Faces() {
		assert.Negative(t, f.DirectedDistanceTo(center))
	}
}

func TestOctahedron_CountsAndInvariants(t *testing.T) {
	m, _ := buildOcta(t)

	assert.Equal(t, 6, m.VertCount())
	assert.Equal(t, 24, m.EdgeCount())
	assert.Equal(t, 8, m.FaceCount())
	assert.Equal(t, 2, eulerCharacteristic(m))
	require.NoError(t, core.VerifyPairs(m))
	require.NoError(t, core.Validate(m))
}

func TestSortedListings(t *testing.T) {
	m, _ := buildTetra(t)

	verts := m.Verts()
	require.Len(t, verts, 4)
	assert.True(t, slices.IsSortedFunc(verts, func(a, b *core.Vert) int {
		return int(a.ID()) - int(b.ID())
	}))

	v, ok := m.Vert(verts[0].ID())
	require.True(t, ok)
	assert.Same(t, verts[0], v)

	_, ok = m.Vert(9999)
	assert.False(t, ok)
}

func TestFacesAdjacent(t *testing.T) {
	m, _ := buildTetra(t)
	faces := m.Faces()

	// Every pair of distinct tetrahedron faces shares an edge.
	for i, a := range faces {
		for j, b := range faces {
			if i == j {
				continue
			}
			assert.True(t, m.FacesAdjacent(a, b))
		}
	}
	assert.False(t, m.FacesAdjacent(faces[0], nil))

	// Opposite bipyramid caps share no edge.
	mo, vsOcta := buildOcta(t)
	topFaces := slices.Collect(vsOcta[0].AdjacentFaces())
	botFaces := slices.Collect(vsOcta[5].AdjacentFaces())
	require.NotEmpty(t, topFaces)
	require.NotEmpty(t, botFaces)
	adjacentOnEquator := 0
	for _, a := range topFaces {
		for _, b := range botFaces {
			if mo.FacesAdjacent(a, b) {
				adjacentOnEquator++
			}
		}
	}
	// Each of the 4 top faces borders exactly one bottom face.
	assert.Equal(t, 4, adjacentOnEquator)
}

func TestFacesAdjacentPtr(t *testing.T) {
	m, _ := buildTetra(t)
	a := m.Faces()[0]
	b := m.Faces()[1]

	assert.True(t, m.FacesAdjacentPtr(core.PtrTo(a), core.PtrTo(b)))
	assert.False(t, m.FacesAdjacentPtr(core.FacePtr{}, core.PtrTo(b)))
}

func TestTriangulateFace(t *testing.T) {
	m, _ := buildTetra(t)
	target := m.Faces()[0]
	apexPos := r3.Vec{X: 0, Y: -0.4, Z: 0.4}

	require.NoError(t, m.TriangulateFace(apexPos, target))

	assert.Equal(t, 5, m.VertCount())
	assert.Equal(t, 18, m.EdgeCount())
	assert.Equal(t, 6, m.FaceCount())
	assert.Equal(t, 2, eulerCharacteristic(m))
	require.NoError(t, core.VerifyPairs(m))
	require.NoError(t, core.Validate(m))

	// The fresh apex vertex is registered with valence 3.
	apex, ok := m.Vert(5)
	require.True(t, ok)
	assert.Equal(t, apexPos, apex.Pos())
	assert.Len(t, slices.Collect(apex.AdjacentEdges()), 3)
}

func TestTriangulateFace_StaleFace(t *testing.T) {
	m, _ := buildTetra(t)
	target := m.Faces()[0]
	require.NoError(t, m.TriangulateFace(r3.Vec{X: 0, Y: -0.4, Z: 0.4}, target))

	err := m.TriangulateFace(r3.Vec{X: 0, Y: 0, Z: 0}, target)
	assert.ErrorIs(t, err, core.ErrStaleEntity)
	assert.ErrorIs(t, m.TriangulateFace(r3.Vec{}, nil), core.ErrNilEntity)
}

func TestAttachPoint_EmptyRemovalSet(t *testing.T) {
	m, _ := buildTetra(t)
	vertIDs := idsOfVerts(m)

	faces, err := m.AttachPoint(r3.Vec{X: 0, Y: 0, Z: 2}, nil)
	assert.ErrorIs(t, err, core.ErrNoHorizon)
	assert.Nil(t, faces)

	assert.Equal(t, 4, m.VertCount())
	assert.Equal(t, 12, m.EdgeCount())
	assert.Equal(t, 4, m.FaceCount())
	assert.Equal(t, vertIDs, idsOfVerts(m))
	require.NoError(t, core.Validate(m))
}

func TestAttachPoint_WholeSurface(t *testing.T) {
	m, _ := buildTetra(t)

	_, err := m.AttachPoint(r3.Vec{X: 0, Y: 0, Z: 5}, m.Faces())
	assert.ErrorIs(t, err, core.ErrNoHorizon)

	assert.Equal(t, 4, m.VertCount())
	assert.Equal(t, 12, m.EdgeCount())
	assert.Equal(t, 4, m.FaceCount())
	require.NoError(t, core.VerifyPairs(m))
	require.NoError(t, core.Validate(m))
}

func TestAttachPoint_SingleFace(t *testing.T) {
	m, _ := buildTetra(t)
	point := r3.Vec{X: 0, Y: 0, Z: 2}

	var visible *core.Face
	for _, f := range m.Faces() {
		if f.CanSee(point) {
			visible = f
			break
		}
	}
	require.NotNil(t, visible)

	created, err := m.AttachPoint(point, []*core.Face{visible})
	require.NoError(t, err)
	assert.Len(t, created, 3)

	// Same net effect as subdividing one face.
	assert.Equal(t, 5, m.VertCount())
	assert.Equal(t, 18, m.EdgeCount())
	assert.Equal(t, 6, m.FaceCount())
	assert.Equal(t, 2, eulerCharacteristic(m))
	require.NoError(t, core.VerifyPairs(m))
	require.NoError(t, core.Validate(m))
}

func TestAttachPoint_VisibleRegion(t *testing.T) {
	m, _ := buildOcta(t)
	point := r3.Vec{X: 0, Y: 0, Z: 3}

	var visible []*core.Face
	for _, f := range m.Faces() {
		if f.CanSee(point) {
			visible = append(visible, f)
		}
	}
	// All four top-cap faces see a point straight above the apex; the apex
	// itself is enclosed and goes away.
	require.Len(t, visible, 4)

	created, err := m.AttachPoint(point, visible)
	require.NoError(t, err)
	assert.Len(t, created, 4)

	assert.Equal(t, 6, m.VertCount())
	assert.Equal(t, 24, m.EdgeCount())
	assert.Equal(t, 8, m.FaceCount())
	assert.Equal(t, 2, eulerCharacteristic(m))
	require.NoError(t, core.VerifyPairs(m))
	require.NoError(t, core.Validate(m))

	// The old apex is gone, the new one carries the attach position.
	newApex, ok := m.Vert(7)
	require.True(t, ok)
	assert.Equal(t, point, newApex.Pos())
	_, ok = m.Vert(1)
	assert.False(t, ok)
}

func TestAttachPointPtr_DropsStaleHandles(t *testing.T) {
	m, _ := buildTetra(t)

	_, err := m.AttachPointPtr(r3.Vec{X: 0, Y: 0, Z: 2}, []core.FacePtr{{}})
	assert.ErrorIs(t, err, core.ErrNoHorizon)
}

func TestRemoveVert_RoundTripWithTriangulate(t *testing.T) {
	m, _ := buildTetra(t)
	require.NoError(t, m.TriangulateFace(r3.Vec{X: 0, Y: -0.4, Z: 0.4}, m.Faces()[0]))

	apex, ok := m.Vert(5)
	require.True(t, ok)
	require.NoError(t, m.RemoveVert(apex))

	assert.Equal(t, 4, m.VertCount())
	assert.Equal(t, 12, m.EdgeCount())
	assert.Equal(t, 4, m.FaceCount())
	assert.Equal(t, 2, eulerCharacteristic(m))
	require.NoError(t, core.VerifyPairs(m))
	require.NoError(t, core.Validate(m))

	// The apex and its structure stopped resolving everywhere.
	_, ok = m.Vert(5)
	assert.False(t, ok)
	assert.False(t, core.PtrTo(apex).IsValid())
}

func TestRemoveVert_WrongValence(t *testing.T) {
	m, vs := buildOcta(t)

	// Equatorial vertices have 4 incident edges.
	err := m.RemoveVert(vs[1])
	assert.ErrorIs(t, err, core.ErrVertValence)

	assert.Equal(t, 6, m.VertCount())
	assert.Equal(t, 24, m.EdgeCount())
	assert.Equal(t, 8, m.FaceCount())
	require.NoError(t, core.VerifyPairs(m))
	require.NoError(t, core.Validate(m))
}

func TestRemoveVert_StaleAndNil(t *testing.T) {
	m, _ := buildTetra(t)
	require.NoError(t, m.TriangulateFace(r3.Vec{X: 0, Y: -0.4, Z: 0.4}, m.Faces()[0]))
	apex, ok := m.Vert(5)
	require.True(t, ok)
	require.NoError(t, m.RemoveVert(apex))

	assert.ErrorIs(t, m.RemoveVert(apex), core.ErrStaleEntity)
	assert.ErrorIs(t, m.RemoveVert(nil), core.ErrNilEntity)
	assert.ErrorIs(t, m.RemoveVertPtr(core.PtrTo(apex)), core.ErrStaleEntity)
}

func idsOfVerts(m *core.Mesh) []core.VertID {
	verts := m.Verts()
	ids := make([]core.VertID, 0, len(verts))
	for _, v := range verts {
		ids = append(ids, v.ID())
	}

	return ids
}
