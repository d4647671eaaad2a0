// Copyright (c) 2026 tokudaek
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
)

const (
	defaultEps = 1e-12

	// NoVertex marks the unbounded end of a ridge or region.
	NoVertex = -1
)

// Ridge is a single Voronoi edge separating the regions of two seeds.
// One of its vertex ids may be NoVertex, meaning the ridge extends to
// infinity on that side.
type Ridge struct {
	// Vertices holds the ids of the two Voronoi vertices bounding the
	// ridge, in the Tessellation's Vertices.
	Vertices [2]int
	// Seeds holds the ids of the two generator seeds the ridge separates.
	Seeds [2]int
}

// Unbounded reports whether the ridge has an endpoint at infinity.
func (r Ridge) Unbounded() bool {
	return r.Vertices[0] == NoVertex || r.Vertices[1] == NoVertex
}

// Tessellation is an unbounded planar Voronoi tessellation derived from the
// Delaunay triangulation of the seeds.
//
// Vertices is growable: callers patching unbounded ridges append replacement
// vertices through AddVertex and reference them by the returned id. Regions
// list vertex ids per region without any ordering guarantee, and may contain
// NoVertex for regions touching infinity. SeedRegion maps a seed id to its
// region id and is not the identity mapping; always go through it.
type Tessellation struct {
	Seeds      []r2.Point
	Vertices   []r2.Point
	Ridges     []Ridge
	Regions    [][]int
	SeedRegion []int
}

// AddVertex appends p to the vertex set and returns its id.
func (t *Tessellation) AddVertex(p r2.Point) int {
	t.Vertices = append(t.Vertices, p)
	return len(t.Vertices) - 1
}

// Region returns the vertex id list of the region owned by the given seed.
func (t *Tessellation) Region(seed int) []int {
	return t.Regions[t.SeedRegion[seed]]
}

type TessellationOptions struct {
	Eps float64
}

type TessellationOption func(*TessellationOptions) error

// WithEps overrides the epsilon passed to the convex hull computation.
func WithEps(eps float64) TessellationOption {
	return func(o *TessellationOptions) error {
		if eps <= 0 {
			return errNonPositiveEps
		}
		o.Eps = eps
		return nil
	}
}

// NewTessellation computes the Voronoi tessellation of the given seeds.
//
// The seeds are lifted onto the paraboloid z = x²+y² and their 3-D convex
// hull is computed; the downward faces of that hull are exactly the Delaunay
// triangles of the seeds. Each triangle's circumcenter becomes a Voronoi
// vertex, each Delaunay edge a Ridge, with NoVertex standing in for the
// missing neighbor of hull edges.
//
// At least 4 distinct, non-collinear seeds are required; otherwise a
// *DegenerateInputError is returned.
func NewTessellation(seeds []r2.Point, setters ...TessellationOption) (*Tessellation, error) {
	opts := TessellationOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	if err := checkSeeds(seeds, opts.Eps); err != nil {
		return nil, err
	}

	tris, err := triangulate(seeds, opts.Eps)
	if err != nil {
		return nil, err
	}

	t := &Tessellation{
		Seeds:    seeds,
		Vertices: make([]r2.Point, len(tris)),
	}
	for i, tri := range tris {
		c, ok := circumcenter(seeds[tri[0]], seeds[tri[1]], seeds[tri[2]])
		if !ok {
			return nil, &DegenerateInputError{Seed: tri[0], Reason: "degenerate triangle in triangulation"}
		}
		t.Vertices[i] = c
	}

	buildRidges(t, tris)
	buildRegions(t, tris)

	for i := range seeds {
		if len(t.Region(i)) == 0 {
			return nil, &DegenerateInputError{Seed: i, Reason: "seed missing from triangulation"}
		}
	}

	return t, nil
}

func checkSeeds(seeds []r2.Point, eps float64) error {
	if len(seeds) < 4 {
		return &DegenerateInputError{Seed: NoVertex, Reason: "fewer than 4 seeds"}
	}

	seen := make(map[r2.Point]int, len(seeds))
	for i, s := range seeds {
		if _, ok := seen[s]; ok {
			return &DegenerateInputError{Seed: i, Reason: "duplicate seed"}
		}
		seen[s] = i
	}

	a, b := seeds[0], seeds[1]
	ab := b.Sub(a)
	scale := ab.Norm()
	collinear := true
	for _, s := range seeds[2:] {
		d := s.Sub(a)
		if n := d.Norm(); n > scale {
			scale = n
		}
		if abs(ab.Cross(d)) > eps*scale*scale {
			collinear = false
			break
		}
	}
	if collinear {
		return &DegenerateInputError{Seed: NoVertex, Reason: "seeds are collinear"}
	}
	return nil
}

// triangulate returns the Delaunay triangles of the seeds as index triples.
func triangulate(seeds []r2.Point, eps float64) ([][3]int, error) {
	lifted := make([]r3.Vector, len(seeds))
	for i, s := range seeds {
		lifted[i] = r3.Vector{X: s.X, Y: s.Y, Z: s.X*s.X + s.Y*s.Y}
	}

	if cocircular(lifted, eps) {
		// All seeds lie on one circle: the lifted cloud is planar, which
		// the hull cannot triangulate. Any fan over the hull order is a
		// valid Delaunay triangulation here.
		return fanTriangulate(seeds), nil
	}

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(lifted, true, true, eps)
	if len(ch.Indices)%3 != 0 {
		return nil, &DegenerateInputError{Seed: NoVertex, Reason: "inconsistent number of indices returned from QuickHull"}
	}

	var tris [][3]int
	for base := 0; base+2 < len(ch.Indices); base += 3 {
		tri := [3]int{ch.Indices[base], ch.Indices[base+1], ch.Indices[base+2]}
		a, b, c := lifted[tri[0]], lifted[tri[1]], lifted[tri[2]]
		norm := b.Sub(a).Cross(c.Sub(a))
		// Downward faces of the lifted hull are the Delaunay triangles.
		// The hull's CCW faces wind inward, so a downward face has a
		// positive Z in this cross product.
		if norm.Z > 0 {
			tris = append(tris, tri)
		}
	}
	if len(tris) == 0 {
		return nil, &DegenerateInputError{Seed: NoVertex, Reason: "no lower hull faces"}
	}
	return tris, nil
}

// cocircular reports whether all lifted seeds lie on a single plane, which
// happens exactly when the original seeds lie on a single circle.
func cocircular(lifted []r3.Vector, eps float64) bool {
	a := lifted[0]
	var u, n r3.Vector
	haveU, haveN := false, false
	for _, p := range lifted[1:] {
		d := p.Sub(a)
		if !haveU {
			u, haveU = d, true
			continue
		}
		n = u.Cross(d)
		if n.Norm() > 0 {
			haveN = true
			break
		}
	}
	if !haveN {
		return true
	}
	n = n.Normalize()

	scale := 1.0
	for _, p := range lifted {
		if d := p.Sub(a).Norm(); d > scale {
			scale = d
		}
	}
	for _, p := range lifted {
		if abs(p.Sub(a).Dot(n)) > eps*scale {
			return false
		}
	}
	return true
}

func fanTriangulate(seeds []r2.Point) [][3]int {
	hull := ConvexHull(seeds)
	tris := make([][3]int, 0, len(hull)-2)
	for i := 1; i+1 < len(hull); i++ {
		tris = append(tris, [3]int{hull[0], hull[i], hull[i+1]})
	}
	return tris
}

// buildRidges derives one ridge per Delaunay edge, in first-encounter order
// over the triangles, pairing the two adjacent triangle circumcenters.
// Hull edges keep NoVertex on their second slot.
func buildRidges(t *Tessellation, tris [][3]int) {
	type edgeKey [2]int
	ridgeOf := make(map[edgeKey]int, len(tris)*2)

	for ti, tri := range tris {
		for k := range 3 {
			u, v := tri[k], tri[(k+1)%3]
			key := edgeKey{u, v}
			if u > v {
				key = edgeKey{v, u}
			}
			if ri, ok := ridgeOf[key]; ok {
				t.Ridges[ri].Vertices[1] = ti
				continue
			}
			ridgeOf[key] = len(t.Ridges)
			t.Ridges = append(t.Ridges, Ridge{
				Vertices: [2]int{ti, NoVertex},
				Seeds:    [2]int{u, v},
			})
		}
	}
}

// buildRegions fills Regions and SeedRegion. Region 0 is kept empty so that
// the seed to region mapping is never the identity; downstream consumers are
// expected to resolve regions through SeedRegion.
func buildRegions(t *Tessellation, tris [][3]int) {
	n := len(t.Seeds)
	t.Regions = make([][]int, n+1)
	t.Regions[0] = []int{}
	t.SeedRegion = make([]int, n)
	for i := range n {
		t.SeedRegion[i] = i + 1
	}

	for ti, tri := range tris {
		for _, s := range tri {
			reg := t.SeedRegion[s]
			t.Regions[reg] = append(t.Regions[reg], ti)
		}
	}

	for _, r := range t.Ridges {
		if !r.Unbounded() {
			continue
		}
		for _, s := range r.Seeds {
			reg := t.SeedRegion[s]
			if len(t.Regions[reg]) == 0 || t.Regions[reg][len(t.Regions[reg])-1] != NoVertex {
				t.Regions[reg] = append(t.Regions[reg], NoVertex)
			}
		}
	}
}

// circumcenter returns the center of the circle through a, b and c.
// ok is false when the three points are collinear.
func circumcenter(a, b, c r2.Point) (r2.Point, bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if d == 0 {
		return r2.Point{}, false
	}
	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y
	return r2.Point{
		X: (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d,
		Y: (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d,
	}, true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
