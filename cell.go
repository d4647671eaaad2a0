// Copyright (c) 2026 tokudaek
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voronoiareas

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Cell represents one bounded Voronoi cell. It is a view structure for
// accessing a cell in a Diagram. The cell's index corresponds to the index
// of its seed in the Diagram's Seeds.
type Cell struct {
	idx int
	d   *Diagram
}

// Cell returns the cell of the i-th seed.
// It returns an error if the index is out of range.
func (d *Diagram) Cell(i int) (Cell, error) {
	if i < 0 || i >= d.NumCells() {
		return Cell{}, fmt.Errorf("Cell: index %d out of range [0 %d)", i, d.NumCells())
	}
	return Cell{idx: i, d: d}, nil
}

// SeedIndex returns the index of the seed in the Diagram's Seeds.
func (c Cell) SeedIndex() int {
	return c.idx
}

// Seed returns the generator point of the cell.
func (c Cell) Seed() r2.Point {
	return c.d.Seeds[c.idx]
}

// NumVertices returns the number of vertices in the cell's boundary ring.
func (c Cell) NumVertices() int {
	return len(c.d.rings[c.idx])
}

// Ring returns the cell's boundary vertices in counter-clockwise order.
// The returned slice is owned by the Diagram and must not be mutated.
func (c Cell) Ring() []r2.Point {
	return c.d.rings[c.idx]
}

// Vertex returns the boundary vertex at the specified index.
// It returns an error if the index is out of range.
func (c Cell) Vertex(i int) (r2.Point, error) {
	ring := c.d.rings[c.idx]
	if i < 0 || i >= len(ring) {
		return r2.Point{}, fmt.Errorf("Vertex: index %d out of range [0 %d)", i, len(ring))
	}
	return ring[i], nil
}

// Area returns the cell's area. Always positive for a well-formed diagram.
func (c Cell) Area() float64 {
	return ringArea(c.d.rings[c.idx])
}

// Centroid returns the cell's area-weighted centroid.
func (c Cell) Centroid() r2.Point {
	return ringCentroid(c.d.rings[c.idx])
}
