// Copyright (c) 2026 tokudaek
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voronoiareas

import (
	"math"

	"github.com/golang/geo/r2"
)

// clipRingToRect intersects a convex CCW ring with the rectangle by clipping
// against its four half-planes. The result stays convex and CCW; it may have
// fewer than 3 vertices when the ring barely touches the rectangle.
func clipRingToRect(ring []r2.Point, rect r2.Rect) []r2.Point {
	out := clipHalfPlane(ring, func(p r2.Point) float64 { return p.X - rect.X.Lo })
	out = clipHalfPlane(out, func(p r2.Point) float64 { return rect.X.Hi - p.X })
	out = clipHalfPlane(out, func(p r2.Point) float64 { return p.Y - rect.Y.Lo })
	out = clipHalfPlane(out, func(p r2.Point) float64 { return rect.Y.Hi - p.Y })
	return dedupeRing(out)
}

// clipHalfPlane keeps the part of the ring where inside(p) >= 0
// (Sutherland-Hodgman step).
func clipHalfPlane(ring []r2.Point, inside func(r2.Point) float64) []r2.Point {
	if len(ring) == 0 {
		return nil
	}
	out := make([]r2.Point, 0, len(ring)+1)
	for i, cur := range ring {
		next := ring[(i+1)%len(ring)]
		dc, dn := inside(cur), inside(next)
		if dc >= 0 {
			out = append(out, cur)
		}
		if (dc < 0) != (dn < 0) {
			t := dc / (dc - dn)
			out = append(out, cur.Add(next.Sub(cur).Mul(t)))
		}
	}
	return out
}

func dedupeRing(ring []r2.Point) []r2.Point {
	if len(ring) == 0 {
		return nil
	}
	out := ring[:0]
	for _, p := range ring {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	if len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

// ringArea returns the signed shoelace area of the ring: positive for CCW.
func ringArea(ring []r2.Point) float64 {
	var sum float64
	for i, p := range ring {
		q := ring[(i+1)%len(ring)]
		sum += p.Cross(q)
	}
	return sum / 2
}

// ringCentroid returns the area-weighted centroid of the ring. For rings of
// (near) zero area it falls back to the vertex mean.
func ringCentroid(ring []r2.Point) r2.Point {
	a := ringArea(ring)
	if a == 0 {
		return seedCentroid(ring)
	}
	var c r2.Point
	for i, p := range ring {
		q := ring[(i+1)%len(ring)]
		w := p.Cross(q)
		c = c.Add(p.Add(q).Mul(w))
	}
	return c.Mul(1 / (6 * a))
}

// isConvexCCW reports whether the ring is convex with counter-clockwise
// winding, tolerating collinear consecutive edges.
func isConvexCCW(ring []r2.Point) bool {
	if len(ring) < 3 {
		return false
	}
	for i, p := range ring {
		q := ring[(i+1)%len(ring)]
		r := ring[(i+2)%len(ring)]
		if q.Sub(p).Cross(r.Sub(q)) < -1e-12 {
			return false
		}
	}
	return math.Abs(ringArea(ring)) > 0
}
