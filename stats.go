// Copyright (c) 2026 tokudaek
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voronoiareas

import (
	"math"

	"github.com/golang/geo/r2"
)

// CellStats aggregates the per-cell measurements after domain clipping.
type CellStats struct {
	Seed r2.Point
	// Area is the total area over the cell's pieces; 0 for empty cells.
	Area float64
	// Centroid is the area-weighted centroid across pieces; NaN for
	// zero-area cells.
	Centroid r2.Point
	// Displacement is the distance between Centroid and Seed; NaN for
	// zero-area cells.
	Displacement float64
	Pieces       int
}

// Stats holds run-level aggregates over all bounded cells.
type Stats struct {
	Cells    []CellStats
	AreaMean float64
	// AreaStd is the population standard deviation of the areas.
	AreaStd float64
}

// ComputeStats measures every bounded cell against its originating seed.
// Zero-area cells contribute 0 to the area aggregates and NaN
// centroid/displacement.
func ComputeStats(d *Diagram, cells []BoundedCell) *Stats {
	st := &Stats{Cells: make([]CellStats, len(cells))}

	var sum, sumSq float64
	for i, c := range cells {
		seed := d.Seeds[c.SeedIndex]
		area := c.Area()
		centroid := c.Centroid()
		disp := centroid.Sub(seed).Norm()

		st.Cells[i] = CellStats{
			Seed:         seed,
			Area:         area,
			Centroid:     centroid,
			Displacement: disp,
			Pieces:       len(c.Pieces),
		}
		sum += area
		sumSq += area * area
	}

	n := float64(len(cells))
	if n > 0 {
		st.AreaMean = sum / n
		variance := sumSq/n - st.AreaMean*st.AreaMean
		if variance > 0 {
			st.AreaStd = math.Sqrt(variance)
		}
	}
	return st
}
