package builder

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tholvien/hemesh/core"
)

const methodUVSphere = "UVSphere"

// UVSphere builds a latitude/longitude sphere of the given radius: two pole
// vertices, Rings-1 latitude rings of Segments vertices each, triangle fans
// at the poles and split quads in the bands between rings. All faces wind
// counterclockwise seen from outside.
//
// Returns ErrBadDimension if radius is not positive, Segments < 3 or
// Rings < 2. With the defaults (16 segments, 12 rings) the result has
// 178 vertices and 352 faces; in general S(R-1)+2 vertices and 2S(R-1) faces.
func UVSphere(radius float64, opts ...Option) (*core.Mesh, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("%s: radius %v: %w", methodUVSphere, radius, ErrBadDimension)
	}
	if o.Segments < 3 {
		return nil, fmt.Errorf("%s: segments %d: %w", methodUVSphere, o.Segments, ErrBadDimension)
	}
	if o.Rings < 2 {
		return nil, fmt.Errorf("%s: rings %d: %w", methodUVSphere, o.Rings, ErrBadDimension)
	}
	segs, rings := o.Segments, o.Rings

	// 1. Vertex grid: north pole, then ring i at colatitude pi*i/rings for
	// i in [1, rings-1], then south pole. Ring vertex (i, j) lands at index
	// 1 + (i-1)*segs + j.
	points := make([]r3.Vec, 0, segs*(rings-1)+2)
	points = append(points, r3.Vec{Z: radius})
	for i := 1; i < rings; i++ {
		theta := math.Pi * float64(i) / float64(rings)
		for j := 0; j < segs; j++ {
			phi := 2 * math.Pi * float64(j) / float64(segs)
			points = append(points, r3.Vec{
				X: radius * math.Sin(theta) * math.Cos(phi),
				Y: radius * math.Sin(theta) * math.Sin(phi),
				Z: radius * math.Cos(theta),
			})
		}
	}
	south := len(points)
	points = append(points, r3.Vec{Z: -radius})

	ringIdx := func(i, j int) int { return 1 + (i-1)*segs + j%segs }

	// 2. Triangles: a fan around each pole, two triangles per quad in the
	// bands between consecutive rings.
	tris := make([][3]int, 0, 2*segs*(rings-1))
	for j := 0; j < segs; j++ {
		tris = append(tris, [3]int{0, ringIdx(1, j), ringIdx(1, j+1)})
	}
	for i := 1; i < rings-1; i++ {
		for j := 0; j < segs; j++ {
			a, a1 := ringIdx(i, j), ringIdx(i, j+1)
			b, b1 := ringIdx(i+1, j), ringIdx(i+1, j+1)
			tris = append(tris, [3]int{a, b, b1}, [3]int{a, b1, a1})
		}
	}
	for j := 0; j < segs; j++ {
		tris = append(tris, [3]int{south, ringIdx(rings-1, j+1), ringIdx(rings-1, j)})
	}

	m, err := FromIndexedFaces(points, tris)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodUVSphere, err)
	}

	return m, nil
}
