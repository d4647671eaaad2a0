// Copyright (c) 2026 tokudaek
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voronoiareas

import (
	"math"

	"github.com/golang/geo/r2"
	"go.uber.org/zap"

	"github.com/tokudaek/voronoiareas/delaunay"
)

// Diagram is a Voronoi diagram clipped to a rectangle: one closed convex
// cell per seed, jointly tiling the rectangle with no gaps or overlaps.
type Diagram struct {
	Seeds []r2.Point
	Rect  r2.Rect

	// rings holds one CCW convex ring per seed.
	rings [][]r2.Point
	opts  Options
}

// NewDiagram computes the bounded Voronoi diagram of the seeds over the
// given clipping rectangle.
//
// A single seed yields one cell covering the whole rectangle. Otherwise at
// least 4 distinct, non-collinear seeds are required
// (*delaunay.DegenerateInputError).
func NewDiagram(seeds []r2.Point, rect r2.Rect, setters ...Option) (*Diagram, error) {
	opts, err := applyOptions(setters)
	if err != nil {
		return nil, err
	}
	return newDiagram(seeds, rect, opts)
}

func newDiagram(seeds []r2.Point, rect r2.Rect, opts Options) (*Diagram, error) {
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	if !(rect.X.Lo < rect.X.Hi && rect.Y.Lo < rect.Y.Hi) {
		return nil, ErrInvalidRect
	}

	d := &Diagram{
		Seeds: append([]r2.Point(nil), seeds...),
		Rect:  rect,
		opts:  opts,
	}

	if len(seeds) == 1 {
		// The whole rectangle belongs to the only seed; there is no
		// tessellation to clip.
		v := rect.Vertices()
		d.rings = [][]r2.Point{v[:]}
		opts.Logger.Debug("bounded diagram built", zap.Int("seeds", 1), zap.Int("ridges", 0))
		return d, nil
	}

	t, err := delaunay.NewTessellation(d.Seeds, delaunay.WithEps(opts.Eps))
	if err != nil {
		return nil, err
	}

	repl := clipRidges(t, rect)
	opts.Logger.Debug("ridges clipped",
		zap.Int("ridges", len(t.Ridges)),
		zap.Int("unbounded", len(repl)))

	d.rings, err = closeRegions(t, rect, repl)
	if err != nil {
		return nil, err
	}
	opts.Logger.Debug("bounded diagram built",
		zap.Int("seeds", len(d.Seeds)),
		zap.Int("ridges", len(t.Ridges)))
	return d, nil
}

// closeRegions turns every region of the clipped tessellation into a closed
// convex CCW ring inside rect.
//
// Regions that touched infinity receive the clipper's replacement vertices
// for their seed's formerly unbounded ridges, each rectangle corner is
// assigned to the region of its nearest seed, and each region is rebuilt as
// the convex hull of its vertex set clipped to the rectangle.
func closeRegions(t *delaunay.Tessellation, rect r2.Rect, repl map[int][]int) ([][]r2.Point, error) {
	for s := range t.Seeds {
		reg := t.SeedRegion[s]
		if !containsSentinel(t.Regions[reg]) {
			continue
		}
		for ri, r := range t.Ridges {
			vids, clipped := repl[ri]
			if !clipped || (r.Seeds[0] != s && r.Seeds[1] != s) {
				continue
			}
			t.Regions[reg] = append(t.Regions[reg], vids...)
		}
		t.Regions[reg] = dropSentinel(t.Regions[reg])
	}

	for _, corner := range rect.Vertices() {
		s := nearestSeed(t.Seeds, corner)
		vid := t.AddVertex(corner)
		reg := t.SeedRegion[s]
		t.Regions[reg] = append(t.Regions[reg], vid)
	}

	rings := make([][]r2.Point, len(t.Seeds))
	for s := range t.Seeds {
		reg := t.SeedRegion[s]
		ids := t.Regions[reg]
		if len(ids) < 3 {
			return nil, &IllFormedRegionError{Region: reg, Reason: "fewer than 3 vertices"}
		}
		pts := make([]r2.Point, len(ids))
		for i, id := range ids {
			pts[i] = t.Vertices[id]
		}
		hull := delaunay.ConvexHull(pts)
		if len(hull) < 3 {
			return nil, &IllFormedRegionError{Region: reg, Reason: "degenerate convex hull"}
		}
		ring := make([]r2.Point, len(hull))
		for i, h := range hull {
			ring[i] = pts[h]
		}
		ring = clipRingToRect(ring, rect)
		if len(ring) < 3 || ringArea(ring) <= 0 {
			return nil, &IllFormedRegionError{Region: reg, Reason: "region collapses inside clipping rectangle"}
		}
		rings[s] = ring
	}
	return rings, nil
}

func containsSentinel(ids []int) bool {
	for _, id := range ids {
		if id == delaunay.NoVertex {
			return true
		}
	}
	return false
}

func dropSentinel(ids []int) []int {
	out := ids[:0]
	for _, id := range ids {
		if id != delaunay.NoVertex {
			out = append(out, id)
		}
	}
	return out
}

// nearestSeed returns the index of the seed closest to p, lowest index on
// ties.
func nearestSeed(seeds []r2.Point, p r2.Point) int {
	best, bestDist := 0, math.Inf(1)
	for i, s := range seeds {
		if d := s.Sub(p).Norm(); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// NumCells returns the number of cells, which equals the number of seeds.
func (d *Diagram) NumCells() int {
	return len(d.Seeds)
}

// Relax applies the given number of Lloyd relaxation steps: each step moves
// every seed to its cell's centroid and recomputes the diagram.
func (d *Diagram) Relax(steps int) error {
	for range steps {
		seeds := make([]r2.Point, d.NumCells())
		for i, ring := range d.rings {
			seeds[i] = ringCentroid(ring)
		}
		nd, err := newDiagram(seeds, d.Rect, d.opts)
		if err != nil {
			return err
		}
		*d = *nd
	}
	return nil
}
