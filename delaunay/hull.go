// Copyright (c) 2026 tokudaek
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"sort"

	"github.com/golang/geo/r2"
)

// ConvexHull returns the indices of the convex hull of pts, ordered
// counter-clockwise starting from the lexicographically smallest point.
// Interior and collinear points are dropped. Fewer than 3 distinct or fully
// collinear input points yield a result with fewer than 3 indices.
func ConvexHull(pts []r2.Point) []int {
	idx := make([]int, 0, len(pts))
	seen := make(map[r2.Point]struct{}, len(pts))
	for i, p := range pts {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		idx = append(idx, i)
	}
	if len(idx) < 3 {
		return idx
	}

	sort.Slice(idx, func(a, b int) bool {
		pa, pb := pts[idx[a]], pts[idx[b]]
		if pa.X != pb.X {
			return pa.X < pb.X
		}
		return pa.Y < pb.Y
	})

	// Monotone chain: lower hull then upper hull, strict turns only.
	hull := make([]int, 0, len(idx)+1)
	for _, i := range idx {
		for len(hull) >= 2 && turn(pts[hull[len(hull)-2]], pts[hull[len(hull)-1]], pts[i]) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, i)
	}
	lower := len(hull) + 1
	for j := len(idx) - 2; j >= 0; j-- {
		i := idx[j]
		for len(hull) >= lower && turn(pts[hull[len(hull)-2]], pts[hull[len(hull)-1]], pts[i]) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, i)
	}
	return hull[:len(hull)-1]
}

// turn returns the cross product of (a→b, a→c): positive for a left turn.
func turn(a, b, c r2.Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}
