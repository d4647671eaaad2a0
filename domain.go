// Copyright (c) 2026 tokudaek
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voronoiareas

import (
	"math"

	"github.com/ctessum/geom"
	"github.com/golang/geo/r2"
)

// BoundedCell is the result of intersecting one Voronoi cell with the
// analysis domain: zero, one or many disjoint boundary rings.
type BoundedCell struct {
	SeedIndex int
	// Pieces holds the disjoint CCW rings of the intersection.
	Pieces [][]r2.Point
}

// Empty reports whether the cell lies entirely outside the domain.
func (b BoundedCell) Empty() bool {
	return len(b.Pieces) == 0
}

// Area returns the total area over all pieces.
func (b BoundedCell) Area() float64 {
	var sum float64
	for _, ring := range b.Pieces {
		sum += math.Abs(ringArea(ring))
	}
	return sum
}

// Centroid returns the area-weighted centroid across all pieces. An empty or
// zero-area cell yields NaN coordinates.
func (b BoundedCell) Centroid() r2.Point {
	total := b.Area()
	if total == 0 {
		return r2.Point{X: math.NaN(), Y: math.NaN()}
	}
	var c r2.Point
	for _, ring := range b.Pieces {
		c = c.Add(ringCentroid(ring).Mul(math.Abs(ringArea(ring))))
	}
	return c.Mul(1 / total)
}

// ClipToDomain intersects every cell with the domain polygon, a simple
// closed CCW or CW ring. The result has one entry per seed; a cell entirely
// outside the domain keeps zero pieces, and a cell straddling a concave
// feature of the domain may split into several.
//
// A non-simple domain yields an *InvalidDomainPolygonError; a domain
// disjoint from the rectangle is valid and leaves every cell empty.
func (d *Diagram) ClipToDomain(domain []r2.Point) ([]BoundedCell, error) {
	if err := validateDomain(domain); err != nil {
		return nil, err
	}

	dpoly := toGeomPolygon(domain)
	out := make([]BoundedCell, d.NumCells())
	for i, ring := range d.rings {
		isect := toGeomPolygon(ring).Intersection(dpoly)
		out[i] = BoundedCell{
			SeedIndex: i,
			Pieces:    polygonalPieces(isect),
		}
	}
	return out, nil
}

// polygonalPieces flattens an intersection result into rings. The Boolean
// ops return either a Polygon or a MultiPolygon depending on how many
// disjoint components survive.
func polygonalPieces(g geom.Polygonal) [][]r2.Point {
	switch p := g.(type) {
	case geom.Polygon:
		return fromGeomPolygon(p)
	case geom.MultiPolygon:
		var pieces [][]r2.Point
		for _, poly := range p {
			pieces = append(pieces, fromGeomPolygon(poly)...)
		}
		return pieces
	}
	return nil
}

// validateDomain rejects rings with fewer than 3 vertices, repeated
// consecutive vertices, any pair of non-adjacent crossing edges, or
// adjacent edges touching beyond their shared endpoint.
func validateDomain(domain []r2.Point) error {
	n := len(domain)
	if n < 3 {
		return &InvalidDomainPolygonError{Vertex: 0, Reason: "fewer than 3 vertices"}
	}
	for i, p := range domain {
		if p == domain[(i+1)%n] {
			return &InvalidDomainPolygonError{Vertex: i, Reason: "repeated consecutive vertex"}
		}
	}
	for i := range domain {
		// Adjacent edges may meet only at the shared vertex; a collinear
		// fold-back is a zero-width spike.
		a, b, c := domain[i], domain[(i+1)%n], domain[(i+2)%n]
		if turnSign(a, b, c) == 0 && c.Sub(b).Dot(b.Sub(a)) < 0 {
			return &InvalidDomainPolygonError{Vertex: (i + 1) % n, Reason: "boundary folds back on itself"}
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			if segmentsIntersect(domain[i], domain[(i+1)%n], domain[j], domain[(j+1)%n]) {
				return &InvalidDomainPolygonError{Vertex: i, Reason: "self-intersecting boundary"}
			}
		}
	}
	return nil
}

// segmentsIntersect reports whether segments ab and cd share any point.
func segmentsIntersect(a, b, c, d r2.Point) bool {
	d1 := turnSign(c, d, a)
	d2 := turnSign(c, d, b)
	d3 := turnSign(a, b, c)
	d4 := turnSign(a, b, d)
	if d1 != d2 && d3 != d4 {
		return true
	}
	return (d1 == 0 && onSegment(c, d, a)) ||
		(d2 == 0 && onSegment(c, d, b)) ||
		(d3 == 0 && onSegment(a, b, c)) ||
		(d4 == 0 && onSegment(a, b, d))
}

func turnSign(a, b, p r2.Point) int {
	cross := b.Sub(a).Cross(p.Sub(a))
	switch {
	case cross > 0:
		return 1
	case cross < 0:
		return -1
	}
	return 0
}

// onSegment assumes p is collinear with ab and reports whether it lies
// within the segment's bounding box.
func onSegment(a, b, p r2.Point) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}

func toGeomPolygon(ring []r2.Point) geom.Polygon {
	path := make([]geom.Point, len(ring))
	for i, p := range ring {
		path[i] = geom.Point{X: p.X, Y: p.Y}
	}
	return geom.Polygon{path}
}

// fromGeomPolygon converts every non-degenerate ring of the intersection
// result back to a CCW r2 ring.
func fromGeomPolygon(p geom.Polygon) [][]r2.Point {
	var pieces [][]r2.Point
	for _, path := range p {
		ring := make([]r2.Point, 0, len(path))
		for _, pt := range path {
			ring = append(ring, r2.Point{X: pt.X, Y: pt.Y})
		}
		ring = dedupeRing(ring)
		if len(ring) < 3 {
			continue
		}
		if ringArea(ring) < 0 {
			reverseRing(ring)
		}
		if ringArea(ring) == 0 {
			continue
		}
		pieces = append(pieces, ring)
	}
	return pieces
}

func reverseRing(ring []r2.Point) {
	for i, j := 0, len(ring)-1; i < j; i, j = i+1, j-1 {
		ring[i], ring[j] = ring[j], ring[i]
	}
}
