package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tholvien/hemesh/core"
)

const methodFromIndexedFaces = "FromIndexedFaces"

// FromIndexedFaces builds a mesh from an arbitrary point cloud and a
// triangle index list. Each triangle's winding becomes its face winding, so
// a consistently counterclockwise-from-outside index list yields outward
// normals.
//
// Every index is validated before anything is built (ErrIndexRange). The
// surface described by tris must be closed; an open boundary surfaces as a
// wrapped core.ErrUnpairedEdge from the final pair reconstruction.
func FromIndexedFaces(points []r3.Vec, tris [][3]int) (*core.Mesh, error) {
	// 1. Validate the whole index list up front so failure builds nothing.
	for ti, tri := range tris {
		for _, idx := range tri {
			if idx < 0 || idx >= len(points) {
				return nil, fmt.Errorf("%s: triangle %d index %d: %w",
					methodFromIndexedFaces, ti, idx, ErrIndexRange)
			}
		}
	}

	// 2. Register one vertex per point, identities in input order.
	m := core.NewMesh()
	verts := make([]*core.Vert, len(points))
	for i, p := range points {
		verts[i] = core.NewVert(m.NewVertID(), p)
		m.AddVert(verts[i])
	}

	// 3. One face and three boundary edges per triangle, loop wired in
	// index order, pairs left for reconstruction.
	for _, tri := range tris {
		face := core.NewFace(m.NewFaceID())

		var edges [3]*core.Edge
		for i, idx := range tri {
			e := core.NewEdgeWithOrigin(m.NewEdgeID(), core.PtrTo(verts[idx]))
			e.SetFace(core.PtrTo(face))
			verts[idx].SetEdge(core.PtrTo(e))
			edges[i] = e
		}
		for i, e := range edges {
			e.SetNext(core.PtrTo(edges[(i+1)%len(edges)]))
		}
		face.SetEdge(core.PtrTo(edges[0]))

		m.AddEdges(edges[:]...)
		if err := m.AddFace(face); err != nil {
			return nil, fmt.Errorf("%s: %w", methodFromIndexedFaces, err)
		}
	}

	// 4. Close the graph.
	if err := core.ConnectPairs(m); err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromIndexedFaces, err)
	}

	return m, nil
}
