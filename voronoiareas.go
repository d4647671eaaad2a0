// Copyright (c) 2026 tokudaek
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package voronoiareas computes bounded Voronoi diagrams: the unbounded
// tessellation of a 2-D seed set is clipped to a rectangle, every region is
// closed into a convex polygon, each cell is intersected with an arbitrary
// domain polygon, and a weighted adjacency graph over the resulting cell
// boundaries supports shortest-path statistics.
//
// All cell rings are counter-clockwise. The pipeline is deterministic for a
// given seed set and either produces a complete, internally consistent
// result or fails before producing any.
package voronoiareas

import (
	"github.com/golang/geo/r2"
	"go.uber.org/zap"
)

// Result bundles the outputs of one pipeline run.
type Result struct {
	Diagram *Diagram
	// Cells has one entry per seed, possibly empty or multi-piece.
	Cells []BoundedCell
	Graph *BoundaryGraph
	Paths *DistanceMatrix
	Stats *Stats
}

// Compute runs the full bounded Voronoi pipeline: tessellation, rectangle
// clipping, region closing, domain intersection, boundary graph construction
// and statistics aggregation.
func Compute(seeds []r2.Point, rect r2.Rect, domain []r2.Point, setters ...Option) (*Result, error) {
	opts, err := applyOptions(setters)
	if err != nil {
		return nil, err
	}
	log := opts.Logger

	d, err := newDiagram(seeds, rect, opts)
	if err != nil {
		return nil, err
	}

	cells, err := d.ClipToDomain(domain)
	if err != nil {
		return nil, err
	}
	nonEmpty := 0
	for _, c := range cells {
		if !c.Empty() {
			nonEmpty++
		}
	}
	log.Debug("cells clipped to domain",
		zap.Int("cells", len(cells)),
		zap.Int("nonempty", nonEmpty))

	graph := newBoundaryGraph(cells, opts)
	paths := graph.ShortestPaths()
	stats := ComputeStats(d, cells)

	log.Info("pipeline complete",
		zap.Int("seeds", len(seeds)),
		zap.Int("nodes", graph.NumNodes()),
		zap.Float64("area_mean", stats.AreaMean),
		zap.Float64("area_std", stats.AreaStd))

	return &Result{
		Diagram: d,
		Cells:   cells,
		Graph:   graph,
		Paths:   paths,
		Stats:   stats,
	}, nil
}
