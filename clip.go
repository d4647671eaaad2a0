// Copyright (c) 2026 tokudaek
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voronoiareas

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/tokudaek/voronoiareas/delaunay"
)

// clipRidges replaces the unbounded end of every half-infinite ridge with
// finite vertices on the clipping rectangle's boundary. The ridge ray starts
// at the finite vertex and runs along the ridge normal, oriented away from
// the seed centroid; the crossings of that ray with the rectangle become the
// replacement vertices. A finite vertex inside the rectangle yields the exit
// crossing only, a vertex outside yields both the entry and the exit
// crossing, and a ray that misses the rectangle yields none. New vertices
// are appended to the tessellation and the last one is patched into the
// ridge in place.
//
// The returned map holds ridge id to replacement vertex ids for every ridge
// whose ray meets the rectangle; the region closer consumes it.
func clipRidges(t *delaunay.Tessellation, rect r2.Rect) map[int][]int {
	center := seedCentroid(t.Seeds)
	repl := make(map[int][]int)

	for ri := range t.Ridges {
		r := &t.Ridges[ri]
		open := -1
		switch {
		case r.Vertices[0] == delaunay.NoVertex && r.Vertices[1] == delaunay.NoVertex:
			continue
		case r.Vertices[0] == delaunay.NoVertex:
			open = 0
		case r.Vertices[1] == delaunay.NoVertex:
			open = 1
		default:
			continue
		}

		v0 := t.Vertices[r.Vertices[1-open]]
		p0, p1 := t.Seeds[r.Seeds[0]], t.Seeds[r.Seeds[1]]

		tangent := p1.Sub(p0).Normalize()
		normal := tangent.Ortho()
		mid := p0.Add(p1).Mul(0.5)
		if mid.Sub(center).Dot(normal) < 0 {
			normal = normal.Mul(-1)
		}

		crossings := rayRectCrossings(v0, normal, rect)
		if len(crossings) == 0 {
			continue
		}
		ids := make([]int, len(crossings))
		for i, p := range crossings {
			ids[i] = t.AddVertex(p)
		}
		r.Vertices[open] = ids[len(ids)-1]
		repl[ri] = ids
	}
	return repl
}

// rayRectCrossings intersects the ray v0 + s·dir, s ≥ 0, with the rectangle
// using the slab test. It returns the crossings of the ray with the
// rectangle's boundary: the exit point always, preceded by the entry point
// when the ray starts outside. A ray that never meets the rectangle returns
// nil; replacement vertices must lie on the ridge, never off it.
func rayRectCrossings(v0, dir r2.Point, rect r2.Rect) []r2.Point {
	sEnter, sExit, ok := slab(v0.X, dir.X, rect.X.Lo, rect.X.Hi)
	if !ok {
		return nil
	}

	enter, exit, ok := slab(v0.Y, dir.Y, rect.Y.Lo, rect.Y.Hi)
	if !ok {
		return nil
	}
	if enter > sEnter {
		sEnter = enter
	}
	if exit < sExit {
		sExit = exit
	}

	if sExit < sEnter || sExit < 0 {
		return nil
	}
	if sEnter < 0 {
		sEnter = 0
	}

	exitPoint := clampToRect(v0.Add(dir.Mul(sExit)), rect)
	if sEnter == 0 {
		return []r2.Point{exitPoint}
	}
	entryPoint := clampToRect(v0.Add(dir.Mul(sEnter)), rect)
	return []r2.Point{entryPoint, exitPoint}
}

// slab returns the parameter interval over which val + s·comp stays within
// [lo, hi]. ok is false when the interval is empty, which for a zero
// component means val lies outside the slab.
func slab(val, comp, lo, hi float64) (enter, exit float64, ok bool) {
	if comp == 0 {
		if val < lo || val > hi {
			return 0, 0, false
		}
		return math.Inf(-1), math.Inf(1), true
	}
	enter = (lo - val) / comp
	exit = (hi - val) / comp
	if enter > exit {
		enter, exit = exit, enter
	}
	return enter, exit, true
}

// clampToRect guards the crossing points against floating point drift past
// the boundary they lie on.
func clampToRect(p r2.Point, rect r2.Rect) r2.Point {
	return r2.Point{
		X: math.Min(math.Max(p.X, rect.X.Lo), rect.X.Hi),
		Y: math.Min(math.Max(p.Y, rect.Y.Lo), rect.Y.Hi),
	}
}

func seedCentroid(seeds []r2.Point) r2.Point {
	var c r2.Point
	for _, s := range seeds {
		c = c.Add(s)
	}
	return c.Mul(1 / float64(len(seeds)))
}
