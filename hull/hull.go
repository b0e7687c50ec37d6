package hull

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tholvien/hemesh/builder"
	"github.com/tholvien/hemesh/core"
)

const methodBuild = "Build"

// Sentinel errors for hull construction. Branch with errors.Is.
var (
	// ErrTooFewPoints indicates fewer than 4 input points; a 3D hull needs
	// a tetrahedron.
	ErrTooFewPoints = errors.New("hull: need at least 4 points")

	// ErrDegenerate indicates the input spans no volume: all points
	// coincident, collinear or coplanar within the visibility epsilon.
	ErrDegenerate = errors.New("hull: degenerate point cloud")
)

// Build computes the convex hull of points as a closed triangulated mesh
// with outward face normals. Input order does not affect the resulting
// surface, only entity identities. Interior and duplicate points are
// absorbed without effect.
func Build(points []r3.Vec, opts ...Option) (*core.Mesh, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(points) < 4 {
		return nil, fmt.Errorf("%s: %d points: %w", methodBuild, len(points), ErrTooFewPoints)
	}

	// 1. Seed with a volume-spanning tetrahedron of extreme points.
	seed, err := seedSimplex(points, o.Epsilon)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	m, err := builder.Tetrahedron(
		points[seed[0]], points[seed[1]], points[seed[2]], points[seed[3]])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	inSeed := map[int]bool{seed[0]: true, seed[1]: true, seed[2]: true, seed[3]: true}

	// 2. Fold the remaining points in one at a time.
	for i, p := range points {
		if inSeed[i] {
			continue
		}
		if err := o.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: point %d: %w", methodBuild, i, err)
		}

		visible := visibleRegion(m, p, o.Epsilon)
		if len(visible) == 0 {
			// Inside or on the current hull.
			continue
		}
		if _, err := m.AttachPoint(p, visible); err != nil {
			return nil, fmt.Errorf("%s: point %d: %w", methodBuild, i, err)
		}
	}

	return m, nil
}

// visibleRegion returns every face that sees p, collected by flood fill
// across face adjacency from the first lit face. On a convex surface the lit
// region is connected, so a single fill covers it. Empty when p is inside.
func visibleRegion(m *core.Mesh, p r3.Vec, eps float64) []*core.Face {
	var start *core.Face
	for _, f := range m.Faces() {
		if f.DirectedDistanceTo(p) > eps {
			start = f
			break
		}
	}
	if start == nil {
		return nil
	}

	visible := []*core.Face{start}
	seen := map[*core.Face]bool{start: true}
	for cursor := 0; cursor < len(visible); cursor++ {
		for f := range visible[cursor].AdjacentFaces() {
			if seen[f] {
				continue
			}
			seen[f] = true
			if f.DirectedDistanceTo(p) > eps {
				visible = append(visible, f)
			}
		}
	}

	return visible
}

// seedSimplex picks four indices spanning maximal volume: the farthest pair
// among the six axis extremes, the point farthest from their line, and the
// point farthest from the resulting plane, ordered so the tetrahedron built
// from them has outward normals.
func seedSimplex(points []r3.Vec, eps float64) ([4]int, error) {
	// 1. Axis extremes. Duplicates among them are harmless.
	ext := [6]int{}
	for i, p := range points {
		if p.X < points[ext[0]].X {
			ext[0] = i
		}
		if p.X > points[ext[1]].X {
			ext[1] = i
		}
		if p.Y < points[ext[2]].Y {
			ext[2] = i
		}
		if p.Y > points[ext[3]].Y {
			ext[3] = i
		}
		if p.Z < points[ext[4]].Z {
			ext[4] = i
		}
		if p.Z > points[ext[5]].Z {
			ext[5] = i
		}
	}

	// 2. Farthest pair among the extremes spans the longest seed edge.
	a, b := ext[0], ext[1]
	best := -1.0
	for i := 0; i < len(ext); i++ {
		for j := i + 1; j < len(ext); j++ {
			d := r3.Norm2(r3.Sub(points[ext[i]], points[ext[j]]))
			if d > best {
				best = d
				a, b = ext[i], ext[j]
			}
		}
	}
	if best <= eps*eps {
		return [4]int{}, fmt.Errorf("coincident points: %w", ErrDegenerate)
	}

	// 3. Farthest point from the line ab.
	ab := r3.Sub(points[b], points[a])
	abLen := r3.Norm(ab)
	c, best := -1, eps
	for i, p := range points {
		d := r3.Norm(r3.Cross(r3.Sub(p, points[a]), ab)) / abLen
		if d > best {
			best = d
			c = i
		}
	}
	if c < 0 {
		return [4]int{}, fmt.Errorf("collinear points: %w", ErrDegenerate)
	}

	// 4. Farthest point from the plane abc, on either side.
	normal := r3.Unit(r3.Cross(ab, r3.Sub(points[c], points[a])))
	d, best := -1, eps
	var side float64
	for i, p := range points {
		h := r3.Dot(r3.Sub(p, points[a]), normal)
		if ah := math.Abs(h); ah > best {
			best = ah
			d = i
			side = h
		}
	}
	if d < 0 {
		return [4]int{}, fmt.Errorf("coplanar points: %w", ErrDegenerate)
	}

	// 5. A tetrahedron (a,b,c,d) has outward normals when d lies behind the
	// plane of (a,b,c); swap b and c otherwise.
	if side > 0 {
		b, c = c, b
	}

	return [4]int{a, b, c, d}, nil
}
